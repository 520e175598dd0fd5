package http

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
	"github.com/travel-sourcing/sourcing-assistant/internal/usecase"
)

// ToDomainParams converts a SearchRequest to domain.SearchParams.
// Defaults are left to the session so that "today" follows the agency timezone.
func ToDomainParams(req *SearchRequest) domain.SearchParams {
	params := domain.SearchParams{
		Destination:    strings.TrimSpace(req.Destination),
		Origin:         strings.TrimSpace(req.Origin),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Passengers:     req.Passengers,
		TravelCategory: domain.TravelCategory(req.TravelCategory),
	}
	for _, c := range req.Categories {
		params.Categories = append(params.Categories, domain.ServiceCategory(c))
	}
	return params
}

// ToDomainFilter converts a LatestQuery to a sort option and filter.
func ToDomainFilter(q *LatestQuery) (domain.SortOption, *domain.OfferFilter) {
	sortBy := domain.ParseSortOption(q.SortBy)

	filter := &domain.OfferFilter{MaxStops: q.MaxStops}
	if q.MaxPrice != nil {
		p := decimal.NewFromFloat(*q.MaxPrice)
		filter.MaxPrice = &p
	}
	for _, r := range q.Recommendations {
		filter.Recommendations = append(filter.Recommendations, domain.RecommendationType(r))
	}

	if filter.IsEmpty() {
		return sortBy, nil
	}
	return sortBy, filter
}

// ResolveMarkup turns a MarkupDTO into a markup type and value.
// When both fields are omitted the given defaults apply. Otherwise an empty type means
// percent, any other type is passed through (and priced as fixed), and an absent or
// non-numeric value yields an invalid value (zero markup).
func ResolveMarkup(m MarkupDTO, defType domain.MarkupType, defValue decimal.NullDecimal) (domain.MarkupType, decimal.NullDecimal) {
	if strings.TrimSpace(m.MarkupType) == "" && len(m.MarkupValue) == 0 {
		return defType, defValue
	}
	return domain.ParseMarkupType(m.MarkupType), domain.ParseMarkupValueJSON(m.MarkupValue)
}

// ToItemRequest converts an AddItemRequest into a usecase.ItemRequest.
func ToItemRequest(req *AddItemRequest, defType domain.MarkupType, defValue decimal.NullDecimal) usecase.ItemRequest {
	markupType, markupValue := ResolveMarkup(req.MarkupDTO, defType, defValue)
	return usecase.ItemRequest{
		OfferID:           req.OfferID,
		MarkupType:        markupType,
		MarkupValue:       markupValue,
		InternalNotes:     req.InternalNotes,
		CustomTitle:       strings.TrimSpace(req.CustomTitle),
		CustomDescription: req.CustomDescription,
	}
}

// ToOpportunityRequest converts an OpportunityRequest into a usecase.ItemRequest.
func ToOpportunityRequest(req *OpportunityRequest, defType domain.MarkupType, defValue decimal.NullDecimal) usecase.ItemRequest {
	markupType, markupValue := ResolveMarkup(req.MarkupDTO, defType, defValue)
	return usecase.ItemRequest{
		OfferID:       req.OfferID,
		MarkupType:    markupType,
		MarkupValue:   markupValue,
		InternalNotes: req.InternalNotes,
	}
}
