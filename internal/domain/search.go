package domain

import (
	"strings"
	"time"
)

// DateLayout is the layout of all date strings exchanged with the agent.
const DateLayout = "2006-01-02"

// DefaultLeadDays is how far ahead of today the default start date is placed.
const DefaultLeadDays = 3

// QuickRangeDays are the trip lengths offered as one-click end dates.
var QuickRangeDays = []int{3, 5, 7, 15}

// SearchParams defines the parameters of a travel sourcing request.
type SearchParams struct {
	// Destination is the free-text destination (city, region, airport); required
	Destination string `json:"destination"`

	// Origin is the optional departure location
	Origin string `json:"origin,omitempty"`

	// StartDate and EndDate are YYYY-MM-DD strings; either may be empty
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// Passengers is the number of travellers (default: 1)
	Passengers int `json:"passengers"`

	// Categories is the set of service categories to source
	Categories []ServiceCategory `json:"categories"`

	// TravelCategory is the service-tier preference (default: STANDARD)
	TravelCategory TravelCategory `json:"travelCategory,omitempty"`
}

// Validate checks the search parameters before any request is dispatched.
// The date range is checked before the destination.
func (s *SearchParams) Validate() error {
	start, hasStart, err := parseOptionalDate("startDate", s.StartDate)
	if err != nil {
		return err
	}
	end, hasEnd, err := parseOptionalDate("endDate", s.EndDate)
	if err != nil {
		return err
	}
	if hasStart && hasEnd && end.Before(start) {
		return NewValidationError("endDate", "endDate must not be before startDate")
	}

	if strings.TrimSpace(s.Destination) == "" {
		return NewValidationError("destination", "destination is required")
	}

	if s.Passengers < 1 {
		return NewValidationError("passengers", "passengers must be at least 1")
	}

	if len(s.Categories) == 0 {
		return NewValidationError("categories", "at least one category is required")
	}
	for _, c := range s.Categories {
		if !c.IsValid() {
			return NewValidationError("categories", "unknown category "+string(c))
		}
	}

	if s.TravelCategory != "" && !s.TravelCategory.IsValid() {
		return NewValidationError("travelCategory", "travelCategory must be one of: ECONOMIC, STANDARD, LUXURY")
	}

	return nil
}

func parseOptionalDate(field, value string) (time.Time, bool, error) {
	if value == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false, NewValidationError(field, field+" must be in YYYY-MM-DD format")
	}
	return t, true, nil
}

// SetDefaults applies default values to empty optional fields.
// today is the current date in the agency's timezone.
func (s *SearchParams) SetDefaults(today time.Time) {
	s.Destination = strings.TrimSpace(s.Destination)
	s.Origin = strings.TrimSpace(s.Origin)

	if s.Passengers == 0 {
		s.Passengers = 1
	}
	if s.TravelCategory == "" {
		s.TravelCategory = TravelStandard
	}
	if len(s.Categories) == 0 {
		s.Categories = []ServiceCategory{CategoryFlight, CategoryHotel}
	} else {
		s.Categories = dedupeCategories(s.Categories)
	}
	if s.StartDate == "" && !today.IsZero() {
		s.StartDate = today.AddDate(0, 0, DefaultLeadDays).Format(DateLayout)
	}
}

// dedupeCategories keeps the first occurrence of each category.
func dedupeCategories(cats []ServiceCategory) []ServiceCategory {
	seen := make(map[ServiceCategory]bool, len(cats))
	out := make([]ServiceCategory, 0, len(cats))
	for _, c := range cats {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// HasCategory reports whether c is among the requested categories.
func (s *SearchParams) HasCategory(c ServiceCategory) bool {
	for _, existing := range s.Categories {
		if existing == c {
			return true
		}
	}
	return false
}

// ToggleCategory adds c if absent, removes it otherwise.
func (s *SearchParams) ToggleCategory(c ServiceCategory) {
	if !s.HasCategory(c) {
		s.Categories = append(s.Categories, c)
		return
	}
	out := s.Categories[:0]
	for _, existing := range s.Categories {
		if existing != c {
			out = append(out, existing)
		}
	}
	s.Categories = out
}

// CategoryNames returns the requested categories as plain strings.
func (s *SearchParams) CategoryNames() []string {
	names := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		names[i] = string(c)
	}
	return names
}

// QuickEndDate returns start plus the given number of days.
func QuickEndDate(start string, days int) (string, error) {
	t, err := time.Parse(DateLayout, start)
	if err != nil {
		return "", WrapInvalidRequest("startDate must be in YYYY-MM-DD format, got %q", start)
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}
