package http

import (
	"github.com/shopspring/decimal"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
	"github.com/travel-sourcing/sourcing-assistant/internal/share"
	"github.com/travel-sourcing/sourcing-assistant/internal/usecase"
)

// SearchResponseDTO is the body of a successful search.
type SearchResponseDTO struct {
	Status     domain.SearchStatus    `json:"status"`
	Generation uint64                 `json:"generation"`
	Results    domain.CategoryResults `json:"results"`
	Metadata   domain.SearchMetadata  `json:"metadata"`
}

// PackageResponseDTO is the quote view returned to the agent.
type PackageResponseDTO struct {
	Items []domain.PackageItem `json:"items"`
	Total decimal.Decimal      `json:"total"`
	Count int                  `json:"count"`

	// FormattedTotal is Total in pt-BR notation (e.g., "1.680,00")
	FormattedTotal string `json:"formattedTotal"`
}

// ShareResponseDTO is a ready-to-send WhatsApp message.
type ShareResponseDTO struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// OpportunitiesResponseDTO lists the saved opportunities.
type OpportunitiesResponseDTO struct {
	Opportunities []domain.Opportunity `json:"opportunities"`
	Count         int                  `json:"count"`
}

// ToSearchResponse converts a domain.SearchResult to SearchResponseDTO.
func ToSearchResponse(res domain.SearchResult) SearchResponseDTO {
	results := res.Results
	if results == nil {
		results = domain.CategoryResults{}
	}
	return SearchResponseDTO{
		Status:     res.Status,
		Generation: res.Generation,
		Results:    results,
		Metadata:   res.Metadata,
	}
}

// ToPackageResponse converts a usecase.PackageSnapshot to PackageResponseDTO.
func ToPackageResponse(snap usecase.PackageSnapshot) PackageResponseDTO {
	items := snap.Items
	if items == nil {
		items = []domain.PackageItem{}
	}
	return PackageResponseDTO{
		Items:          items,
		Total:          snap.Total,
		Count:          snap.Count,
		FormattedTotal: share.FormatAmount(snap.Total),
	}
}

// ToShareResponse converts a share.Message to ShareResponseDTO.
func ToShareResponse(msg share.Message) ShareResponseDTO {
	return ShareResponseDTO{Text: msg.Text, Link: msg.Link}
}

// ToOpportunitiesResponse wraps the saved opportunities.
func ToOpportunitiesResponse(opps []domain.Opportunity) OpportunitiesResponseDTO {
	if opps == nil {
		opps = []domain.Opportunity{}
	}
	return OpportunitiesResponseDTO{Opportunities: opps, Count: len(opps)}
}
