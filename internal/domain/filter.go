package domain

import (
	"github.com/shopspring/decimal"
)

// SortOption defines the available orderings for offers within a category.
type SortOption string

// Available sort options.
const (
	// SortByRanking sorts by collaborator ranking, unranked offers last (default)
	SortByRanking SortOption = "ranking"

	// SortByPrice sorts by net price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByNone keeps the collaborator's order
	SortByNone SortOption = "none"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByRanking, SortByPrice, SortByNone:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByRanking if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByRanking
}

// OfferFilter defines optional filters to apply to offers.
type OfferFilter struct {
	// MaxPrice filters out offers with a net price above this amount
	MaxPrice *decimal.Decimal `json:"maxPrice,omitempty"`

	// MaxStops filters out flights with more stops than this value.
	// Offers with unknown stops are kept.
	MaxStops *int `json:"maxStops,omitempty"`

	// Recommendations keeps only offers with one of these recommendation types.
	// Empty means no filtering by recommendation.
	Recommendations []RecommendationType `json:"recommendations,omitempty"`
}

// IsEmpty reports whether the filter has no criteria.
func (f *OfferFilter) IsEmpty() bool {
	return f == nil || (f.MaxPrice == nil && f.MaxStops == nil && len(f.Recommendations) == 0)
}

// Matches checks if an offer matches all the filter criteria.
func (f *OfferFilter) Matches(offer ServiceOption) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && offer.Price.GreaterThan(*f.MaxPrice) {
		return false
	}

	if f.MaxStops != nil {
		if stops := offer.Stops(); stops != nil && *stops > *f.MaxStops {
			return false
		}
	}

	if len(f.Recommendations) > 0 {
		found := false
		for _, r := range f.Recommendations {
			if r == offer.RecommendationType {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
