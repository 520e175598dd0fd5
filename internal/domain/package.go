package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricedOffer is an offer together with the agent's pricing decision.
// PackageItem and Opportunity are both variants of this concept.
type PricedOffer struct {
	// Service is the source offer, copied at selection time
	Service ServiceOption `json:"service"`

	MarkupType  MarkupType          `json:"markupType"`
	MarkupValue decimal.NullDecimal `json:"markupValue"`

	// FinalPrice is derived from Service.Price and the markup; never set directly
	FinalPrice decimal.Decimal `json:"finalPrice"`

	InternalNotes string `json:"internalNotes"`
}

// NewPricedOffer prices an offer with the given markup.
func NewPricedOffer(offer ServiceOption, markupType MarkupType, markupValue decimal.NullDecimal, notes string) PricedOffer {
	return PricedOffer{
		Service:       offer,
		MarkupType:    markupType,
		MarkupValue:   markupValue,
		FinalPrice:    ComputeFinalPrice(offer.Price, markupType, markupValue),
		InternalNotes: notes,
	}
}

// Margin returns FinalPrice minus the offer's net price.
func (p PricedOffer) Margin() decimal.Decimal {
	return Margin(p.Service.Price, p.FinalPrice)
}

// PackageItem is one line of the quote being assembled for the end customer.
type PackageItem struct {
	// ID is "<offerID>-<unixMillis>", unique within a session
	ID string `json:"id"`

	PricedOffer

	CustomTitle       string `json:"customTitle,omitempty"`
	CustomDescription string `json:"customDescription,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DisplayTitle returns the custom title when set, otherwise the offer title.
func (p PackageItem) DisplayTitle() string {
	if p.CustomTitle != "" {
		return p.CustomTitle
	}
	return p.Service.Title
}

// Opportunity is a saved pricing decision for a single flight.
type Opportunity struct {
	ID string `json:"id"`

	PricedOffer

	// SavedAt is an RFC3339 timestamp
	SavedAt string `json:"savedAt"`
}
