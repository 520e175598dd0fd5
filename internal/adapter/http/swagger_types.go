// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Offers per category with metadata
type SwaggerSearchResponse struct {
	// Status is "succeeded"
	Status string `json:"status" example:"succeeded"`

	// Generation identifies the dispatch that produced the results
	Generation uint64 `json:"generation" example:"3"`

	// Results maps each category (FLIGHT, HOTEL, TRANSFER, EXPERIENCE) to its offers
	Results map[string][]SwaggerOffer `json:"results"`

	// Metadata contains information about the search execution
	Metadata SwaggerSearchMetadata `json:"metadata"`
}

// SwaggerSnapshot represents the current search state.
// @Description Current results sorted and filtered for display
type SwaggerSnapshot struct {
	Generation uint64 `json:"generation" example:"3"`

	// Loading is true while a search is in flight
	Loading bool `json:"loading" example:"false"`

	Results map[string][]SwaggerOffer `json:"results"`
}

// SwaggerSearchMetadata contains metadata about the search execution.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	// TotalResults is the total number of offers across categories
	TotalResults int `json:"totalResults" example:"8"`

	// Provider is the search collaborator that was queried
	Provider string `json:"provider" example:"gemini"`

	// SearchTimeMs is the search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs" example:"14250"`

	// Stale is true when a newer search superseded this one
	Stale bool `json:"stale,omitempty" example:"false"`
}

// SwaggerOffer represents a single service offer.
// @Description A sourced travel service with its booking information
type SwaggerOffer struct {
	ID       string `json:"id" example:"FLIGHT-1"`
	Category string `json:"category" example:"FLIGHT"`
	Title    string `json:"title" example:"GRU → REC direto"`
	Provider string `json:"provider,omitempty" example:"LATAM"`

	// Price is the net price as a decimal string
	Price    string `json:"price" example:"1200.00"`
	Currency string `json:"currency" example:"BRL"`

	Location          string `json:"location,omitempty" example:"Recife"`
	Details           string `json:"details,omitempty"`
	BaggageOrType     string `json:"baggageOrType,omitempty" example:"1 mala de 23kg"`
	FareRulesOrPolicy string `json:"fareRulesOrPolicy,omitempty"`

	Flight *SwaggerFlightInfo `json:"flight,omitempty"`

	// Ranking is 1 for the best offer; absent when unranked
	Ranking            int    `json:"ranking,omitempty" example:"1"`
	RecommendationType string `json:"recommendationType" example:"CHEAPEST"`
	Justification      string `json:"justification,omitempty"`

	Sourcing SwaggerSourcing `json:"sourcing"`

	Weekday   string `json:"diaDaSemana,omitempty" example:"Terça-feira"`
	TimeOfDay string `json:"horarioSimplificado,omitempty" example:"Manhã"`
}

// SwaggerFlightInfo contains flight route details.
// @Description Flight route and schedule
type SwaggerFlightInfo struct {
	Origin          string `json:"origin,omitempty" example:"GRU"`
	Destination     string `json:"destination,omitempty" example:"REC"`
	DepartureTime   string `json:"departureTime,omitempty" example:"08:15"`
	ArrivalTime     string `json:"arrivalTime,omitempty" example:"11:30"`
	Airline         string `json:"airline,omitempty" example:"LATAM"`
	Stops           *int   `json:"stops,omitempty" example:"0"`
	Duration        string `json:"duration,omitempty" example:"3h 15m"`
	DurationMinutes *int   `json:"durationMinutes,omitempty" example:"195"`
	CabinClass      string `json:"cabinClass,omitempty" example:"Econômica"`
}

// SwaggerSourcing contains where and how the offer can be booked.
// @Description Sourcing information for the agent
type SwaggerSourcing struct {
	ResearchSource    string `json:"fontePesquisa" example:"Site da companhia"`
	InformationOrigin string `json:"origemInformacao" example:"latam.com"`
	SupplierPhone     string `json:"telefoneFornecedor,omitempty"`
	SupplierWhatsApp  string `json:"whatsappFornecedor,omitempty"`
	ContractChannel   string `json:"canalContratacao" example:"SITE"`
	BookingContact    string `json:"contatoReserva" example:"latam.com"`
	BookingType       string `json:"tipoReserva" example:"DIRETA NO SITE"`
	DirectLink        string `json:"linkDireto,omitempty"`
}

// SwaggerPriceQuote represents a price preview.
// @Description Final price and margin for a base price and markup
type SwaggerPriceQuote struct {
	BasePrice   string `json:"basePrice" example:"1000"`
	MarkupType  string `json:"markupType" example:"percent"`
	MarkupValue string `json:"markupValue" example:"10"`
	FinalPrice  string `json:"finalPrice" example:"1100"`
	Margin      string `json:"margin" example:"100"`
}
