package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
)

// rawOffer is one loosely typed offer record from the search collaborator.
type rawOffer map[string]any

// NormalizeResults parses the collaborator reply into typed offers.
//
// Behavior:
//   - Each item is tagged with the category key it was listed under
//   - Categories absent from the reply are absent from the result
//   - Unknown top-level keys and non-array category values are ignored
//   - Items that are not JSON objects are skipped and counted
//   - An empty or null reply is an empty result, not an error
//
// It returns the number of skipped items alongside the results.
func NormalizeResults(raw []byte) (domain.CategoryResults, int, error) {
	results := domain.CategoryResults{}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return results, 0, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	skipped := 0
	// positions counts raw records per category so default ids stay unique when
	// keys differ only in case.
	positions := make(map[domain.ServiceCategory]int)
	for key, value := range top {
		category, ok := domain.ParseCategory(key)
		if !ok {
			continue
		}

		var items []json.RawMessage
		if err := json.Unmarshal(value, &items); err != nil || items == nil {
			continue
		}

		base := positions[category]
		positions[category] += len(items)

		offers := make([]domain.ServiceOption, 0, len(items))
		for i, item := range items {
			record, ok := decodeRecord(item)
			if !ok {
				skipped++
				continue
			}
			offers = append(offers, normalizeOffer(category, base+i, record))
		}
		if existing, ok := results[category]; ok {
			offers = append(existing, offers...)
		}
		results[category] = offers
	}

	return results, skipped, nil
}

// decodeRecord decodes a single item, keeping numbers as json.Number.
func decodeRecord(item json.RawMessage) (rawOffer, bool) {
	dec := json.NewDecoder(bytes.NewReader(item))
	dec.UseNumber()

	var record rawOffer
	if err := dec.Decode(&record); err != nil || record == nil {
		return nil, false
	}
	return record, true
}

// normalizeOffer converts one record into a ServiceOption, defaulting every optional field.
func normalizeOffer(category domain.ServiceCategory, index int, r rawOffer) domain.ServiceOption {
	id := r.str("id")
	if id == "" {
		id = fmt.Sprintf("%s-%d", category, index+1)
	}

	price, ok := r.number("price")
	if !ok || price.IsNegative() {
		price = decimal.Zero
	}

	currency := strings.ToUpper(r.str("currency"))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	offer := domain.ServiceOption{
		ID:                 id,
		Category:           category,
		Title:              r.str("title"),
		Provider:           r.str("provider"),
		Price:              price,
		Currency:           currency,
		Location:           r.str("location"),
		Details:            r.str("details"),
		BaggageOrType:      r.str("baggageOrType"),
		FareRulesOrPolicy:  r.str("fareRulesOrPolicy"),
		SearchIdentifier:   r.str("searchIdentifier"),
		Ranking:            r.ranking(),
		RecommendationType: domain.ParseRecommendationType(r.str("recommendationType")),
		Justification:      r.str("justification"),
		Sourcing: domain.SourcingInfo{
			ResearchSource:    r.str("fontePesquisa"),
			InformationOrigin: r.str("origemInformacao"),
			SupplierPhone:     r.str("telefoneFornecedor"),
			SupplierWhatsApp:  r.str("whatsappFornecedor"),
			ContractChannel:   domain.ContractChannel(strings.ToUpper(r.str("canalContratacao"))),
			BookingContact:    r.str("contatoReserva"),
			BookingType:       domain.BookingType(strings.ToUpper(r.str("tipoReserva"))),
			DirectLink:        r.str("linkDireto"),
		},
		Weekday:   r.str("diaDaSemana"),
		TimeOfDay: r.str("horarioSimplificado"),
	}

	flight := domain.FlightInfo{
		Origin:          r.str("origin"),
		Destination:     r.str("destination"),
		DepartureTime:   r.str("departureTime"),
		ArrivalTime:     r.str("arrivalTime"),
		Airline:         r.str("airline"),
		Stops:           r.count("stops"),
		Duration:        r.str("duration"),
		DurationMinutes: r.count("durationMinutes"),
		CabinClass:      r.str("cabinClass"),
	}
	if category == domain.CategoryFlight || flight != (domain.FlightInfo{}) {
		offer.Flight = &flight
	}

	return offer
}

// str returns the trimmed string value of key, or "" when missing or not a string.
func (r rawOffer) str(key string) string {
	s, ok := r[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// number returns the value of key as a decimal when it is a number or a numeric string.
func (r rawOffer) number(key string) (decimal.Decimal, bool) {
	switch v := r[key].(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}

// ranking returns the collaborator ranking, or 0 when missing, below 1 or not an integer.
func (r rawOffer) ranking() int {
	d, ok := r.number("ranking")
	if !ok || !d.IsInteger() || d.LessThan(decimal.NewFromInt(1)) {
		return 0
	}
	return int(d.IntPart())
}

// count returns a non-negative integer field, or nil when absent or invalid.
func (r rawOffer) count(key string) *int {
	d, ok := r.number(key)
	if !ok || !d.IsInteger() || d.IsNegative() {
		return nil
	}
	n := int(d.IntPart())
	return &n
}
