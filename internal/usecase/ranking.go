// Package usecase provides the business logic of the travel sourcing assistant.
package usecase

import (
	"sort"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
)

// SortOffers orders the offers of one category according to the given sort option.
// Uses stable sorting so equal keys keep the collaborator order.
//
// Sort options:
//   - SortByRanking (default): ascending by Ranking, unranked offers last
//   - SortByPrice: ascending by net price (cheapest first)
//   - SortByNone: collaborator order
//
// Behavior:
//   - Returns empty slice for empty input
//   - Empty or invalid sortBy defaults to SortByRanking
//   - Does NOT mutate the original offers slice
func SortOffers(offers []domain.ServiceOption, sortBy domain.SortOption) []domain.ServiceOption {
	if len(offers) == 0 {
		return offers
	}

	result := make([]domain.ServiceOption, len(offers))
	copy(result, offers)

	if len(result) == 1 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortByRanking
	}

	switch sortBy {
	case domain.SortByRanking:
		sort.SliceStable(result, func(i, j int) bool {
			return rankLess(result[i], result[j])
		})
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.LessThan(result[j].Price)
		})
	case domain.SortByNone:
	}

	return result
}

// rankLess orders ranked offers by position and puts unranked ones last.
func rankLess(a, b domain.ServiceOption) bool {
	switch {
	case a.IsRanked() && b.IsRanked():
		return a.Ranking < b.Ranking
	case a.IsRanked():
		return true
	default:
		return false
	}
}

// RankResults sorts every category of the results and returns a new mapping.
func RankResults(results domain.CategoryResults, sortBy domain.SortOption) domain.CategoryResults {
	out := make(domain.CategoryResults, len(results))
	for category, offers := range results {
		out[category] = SortOffers(offers, sortBy)
	}
	return out
}
