package usecase

import (
	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
)

// ApplyFilter returns a new mapping with only the offers that match the filter.
//
// Behavior:
//   - Returns a copy of the results if the filter is nil or empty
//   - Categories stay present even when every offer is filtered out
//   - Does NOT mutate the original results
func ApplyFilter(results domain.CategoryResults, filter *domain.OfferFilter) domain.CategoryResults {
	if filter.IsEmpty() {
		return results.Clone()
	}

	out := make(domain.CategoryResults, len(results))
	for category, offers := range results {
		out[category] = FilterOffers(offers, filter)
	}
	return out
}

// FilterOffers filters a single category's offers.
func FilterOffers(offers []domain.ServiceOption, filter *domain.OfferFilter) []domain.ServiceOption {
	result := make([]domain.ServiceOption, 0, len(offers))
	for _, o := range offers {
		if filter.Matches(o) {
			result = append(result, o)
		}
	}
	return result
}
