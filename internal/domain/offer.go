// Package domain contains the core business entities and rules for the travel sourcing assistant.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceCategory identifies the kind of travel service an offer represents.
type ServiceCategory string

// Known service categories, in display order.
const (
	CategoryFlight     ServiceCategory = "FLIGHT"
	CategoryHotel      ServiceCategory = "HOTEL"
	CategoryTransfer   ServiceCategory = "TRANSFER"
	CategoryExperience ServiceCategory = "EXPERIENCE"
)

// AllCategories returns every known category in display order.
func AllCategories() []ServiceCategory {
	return []ServiceCategory{CategoryFlight, CategoryHotel, CategoryTransfer, CategoryExperience}
}

// IsValid checks if the category is one of the known values.
func (c ServiceCategory) IsValid() bool {
	switch c {
	case CategoryFlight, CategoryHotel, CategoryTransfer, CategoryExperience:
		return true
	default:
		return false
	}
}

// ParseCategory converts a loosely formatted string to a ServiceCategory.
// The second return value is false when the string is not a known category.
func ParseCategory(s string) (ServiceCategory, bool) {
	c := ServiceCategory(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// TravelCategory is the agent's service-tier preference for a search.
type TravelCategory string

// Known travel tiers.
const (
	TravelEconomic TravelCategory = "ECONOMIC"
	TravelStandard TravelCategory = "STANDARD"
	TravelLuxury   TravelCategory = "LUXURY"
)

// IsValid checks if the travel category is one of the known values.
func (t TravelCategory) IsValid() bool {
	switch t {
	case TravelEconomic, TravelStandard, TravelLuxury:
		return true
	default:
		return false
	}
}

// Label returns the pt-BR profile label used when briefing the search collaborator.
func (t TravelCategory) Label() string {
	switch t {
	case TravelEconomic:
		return "ECONÔMICO"
	case TravelStandard:
		return "CUSTO-BENEFÍCIO"
	case TravelLuxury:
		return "LUXO/PREMIUM"
	default:
		return "PADRÃO"
	}
}

// RecommendationType explains why the collaborator highlighted an offer.
type RecommendationType string

// Known recommendation types.
const (
	RecommendationValue    RecommendationType = "VALUE"
	RecommendationCheapest RecommendationType = "CHEAPEST"
	RecommendationFastest  RecommendationType = "FASTEST"
	RecommendationPremium  RecommendationType = "PREMIUM"
	RecommendationNone     RecommendationType = "NONE"
)

// ParseRecommendationType maps a raw value to a RecommendationType.
// Unknown or empty values map to RecommendationNone.
func ParseRecommendationType(s string) RecommendationType {
	r := RecommendationType(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RecommendationValue, RecommendationCheapest, RecommendationFastest, RecommendationPremium:
		return r
	default:
		return RecommendationNone
	}
}

// ContractChannel is how the agent contracts the supplier (canalContratacao).
type ContractChannel string

// Known contract channels. Other values are kept verbatim.
const (
	ChannelSite         ContractChannel = "SITE"
	ChannelPhone        ContractChannel = "TELEFONE"
	ChannelWhatsApp     ContractChannel = "WHATSAPP"
	ChannelConsolidator ContractChannel = "CONSOLIDADORA"
)

// BookingType is how the reservation is made (tipoReserva).
type BookingType string

// Known booking types. Other values are kept verbatim.
const (
	BookingDirectSite BookingType = "DIRETA NO SITE"
	BookingByPhone    BookingType = "VIA TELEFONE"
	BookingByWhatsApp BookingType = "VIA WHATSAPP"
	BookingByAgent    BookingType = "VIA AGENTE"
)

// DefaultCurrency is used when the collaborator omits the currency of an offer.
const DefaultCurrency = "BRL"

// ServiceOption is a single sourced travel service option.
// It is immutable once received from the search collaborator.
type ServiceOption struct {
	// ID is the opaque supplier/search-assigned identifier
	ID string `json:"id"`

	// Category is attached during normalization; the collaborator does not echo it per item
	Category ServiceCategory `json:"category"`

	// Title is the display name of the offer (hotel name, flight summary, tour name)
	Title string `json:"title"`

	// Provider is the supplier or platform selling the service
	Provider string `json:"provider,omitempty"`

	// Price is the net cost basis, always >= 0
	Price decimal.Decimal `json:"price"`

	// Currency is an ISO-like currency code (e.g., "BRL")
	Currency string `json:"currency"`

	Location          string `json:"location,omitempty"`
	Details           string `json:"details,omitempty"`
	BaggageOrType     string `json:"baggageOrType,omitempty"`
	FareRulesOrPolicy string `json:"fareRulesOrPolicy,omitempty"`
	SearchIdentifier  string `json:"searchIdentifier,omitempty"`

	// Flight holds route and time attributes; nil for non-flight offers
	Flight *FlightInfo `json:"flight,omitempty"`

	// Ranking is the collaborator-assigned position (1 = best); 0 means unranked
	Ranking int `json:"ranking,omitempty"`

	RecommendationType RecommendationType `json:"recommendationType"`
	Justification      string             `json:"justification,omitempty"`

	// Sourcing is descriptive provenance, never used in computation
	Sourcing SourcingInfo `json:"sourcing"`

	// Weekday and TimeOfDay are the simplified schedule (diaDaSemana, horarioSimplificado)
	Weekday   string `json:"diaDaSemana,omitempty"`
	TimeOfDay string `json:"horarioSimplificado,omitempty"`
}

// FlightInfo contains the flight-specific optional attributes of an offer.
type FlightInfo struct {
	Origin          string `json:"origin,omitempty"`
	Destination     string `json:"destination,omitempty"`
	DepartureTime   string `json:"departureTime,omitempty"`
	ArrivalTime     string `json:"arrivalTime,omitempty"`
	Airline         string `json:"airline,omitempty"`
	Stops           *int   `json:"stops,omitempty"`
	Duration        string `json:"duration,omitempty"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
	CabinClass      string `json:"cabinClass,omitempty"`
}

// SourcingInfo is the mandatory provenance attached to every offer.
type SourcingInfo struct {
	ResearchSource    string          `json:"fontePesquisa"`
	InformationOrigin string          `json:"origemInformacao"`
	SupplierPhone     string          `json:"telefoneFornecedor,omitempty"`
	SupplierWhatsApp  string          `json:"whatsappFornecedor,omitempty"`
	ContractChannel   ContractChannel `json:"canalContratacao"`
	BookingContact    string          `json:"contatoReserva"`
	BookingType       BookingType     `json:"tipoReserva"`
	DirectLink        string          `json:"linkDireto,omitempty"`
}

// IsFlight reports whether the offer is a flight.
func (o ServiceOption) IsFlight() bool {
	return o.Category == CategoryFlight
}

// IsRanked reports whether the collaborator assigned a ranking to the offer.
func (o ServiceOption) IsRanked() bool {
	return o.Ranking >= 1
}

// Stops returns the number of stops, or nil when unknown or not a flight.
func (o ServiceOption) Stops() *int {
	if o.Flight == nil {
		return nil
	}
	return o.Flight.Stops
}

// FormatDuration formats minutes as "Xh Ym".
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// CategoryResults maps each returned category to its ordered list of offers.
// Categories absent from the collaborator reply are absent from the map.
type CategoryResults map[ServiceCategory][]ServiceOption

// Clone returns a copy whose slices can be modified without affecting the receiver.
func (r CategoryResults) Clone() CategoryResults {
	out := make(CategoryResults, len(r))
	for cat, offers := range r {
		cp := make([]ServiceOption, len(offers))
		copy(cp, offers)
		out[cat] = cp
	}
	return out
}

// Count returns the total number of offers across all categories.
func (r CategoryResults) Count() int {
	n := 0
	for _, offers := range r {
		n += len(offers)
	}
	return n
}

// Categories returns the categories present in the results, in display order.
func (r CategoryResults) Categories() []ServiceCategory {
	cats := make([]ServiceCategory, 0, len(r))
	for _, c := range AllCategories() {
		if _, ok := r[c]; ok {
			cats = append(cats, c)
		}
	}
	return cats
}

// FindOffer looks up an offer by ID across all categories, in display order.
func (r CategoryResults) FindOffer(id string) (ServiceOption, bool) {
	for _, c := range r.Categories() {
		for _, o := range r[c] {
			if o.ID == id {
				return o, true
			}
		}
	}
	return ServiceOption{}, false
}
