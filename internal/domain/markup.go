package domain

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MarkupType defines how the markup value is applied to the base price.
type MarkupType string

// Available markup types.
const (
	// MarkupPercent adds basePrice * value / 100
	MarkupPercent MarkupType = "percent"

	// MarkupFixed adds value as an absolute amount
	MarkupFixed MarkupType = "fixed"
)

// DefaultMarkupPercent is the markup suggested for a freshly selected offer.
const DefaultMarkupPercent = 15

var hundred = decimal.NewFromInt(100)

// IsValid checks if the markup type is a known value.
func (m MarkupType) IsValid() bool {
	return m == MarkupPercent || m == MarkupFixed
}

// ParseMarkupType converts a string to a MarkupType.
// Returns MarkupPercent if the string is empty. Unknown types are kept as given and
// price as fixed amounts.
func ParseMarkupType(s string) MarkupType {
	m := MarkupType(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return MarkupPercent
	}
	return m
}

// ParseMarkupValue converts a loosely typed value to a markup amount.
// Non-numeric input (unparseable strings, NaN, booleans, nil, objects) yields an invalid
// NullDecimal, which the calculator treats as zero profit.
func ParseMarkupValue(raw any) decimal.NullDecimal {
	switch v := raw.(type) {
	case decimal.Decimal:
		return decimal.NewNullDecimal(v)
	case decimal.NullDecimal:
		return v
	case float64:
		return nullFromFloat(v)
	case float32:
		return nullFromFloat(float64(v))
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(v)))
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(v))
	case json.Number:
		return nullFromString(v.String())
	case string:
		return nullFromString(v)
	default:
		return decimal.NullDecimal{}
	}
}

// ParseMarkupValueJSON decodes a raw JSON token (number or numeric string) into a markup amount.
func ParseMarkupValueJSON(raw json.RawMessage) decimal.NullDecimal {
	if len(raw) == 0 {
		return decimal.NullDecimal{}
	}
	var v any
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return decimal.NullDecimal{}
	}
	return ParseMarkupValue(v)
}

func nullFromFloat(f float64) decimal.NullDecimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(f))
}

func nullFromString(s string) decimal.NullDecimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Profit computes the amount added on top of the base price.
// An invalid markup value yields zero. Any type other than MarkupPercent is applied as fixed.
func Profit(basePrice decimal.Decimal, markupType MarkupType, markupValue decimal.NullDecimal) decimal.Decimal {
	if !markupValue.Valid {
		return decimal.Zero
	}
	if markupType == MarkupPercent {
		return basePrice.Mul(markupValue.Decimal).Div(hundred)
	}
	return markupValue.Decimal
}

// ComputeFinalPrice returns basePrice plus the markup profit.
func ComputeFinalPrice(basePrice decimal.Decimal, markupType MarkupType, markupValue decimal.NullDecimal) decimal.Decimal {
	return basePrice.Add(Profit(basePrice, markupType, markupValue))
}

// Margin is the agent's gain on a sale: finalPrice - basePrice.
func Margin(basePrice, finalPrice decimal.Decimal) decimal.Decimal {
	return finalPrice.Sub(basePrice)
}

// PriceQuote is a derived pricing view. It is always built from its inputs in one call,
// so FinalPrice and Margin can never drift from BasePrice and the markup.
type PriceQuote struct {
	BasePrice   decimal.Decimal     `json:"basePrice"`
	MarkupType  MarkupType          `json:"markupType"`
	MarkupValue decimal.NullDecimal `json:"markupValue"`
	FinalPrice  decimal.Decimal     `json:"finalPrice"`
	Margin      decimal.Decimal     `json:"margin"`
}

// NewPriceQuote computes the final price and margin for the given inputs.
func NewPriceQuote(basePrice decimal.Decimal, markupType MarkupType, markupValue decimal.NullDecimal) PriceQuote {
	final := ComputeFinalPrice(basePrice, markupType, markupValue)
	return PriceQuote{
		BasePrice:   basePrice,
		MarkupType:  markupType,
		MarkupValue: markupValue,
		FinalPrice:  final,
		Margin:      Margin(basePrice, final),
	}
}
