package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/timeutil"
)

// ItemInput is the agent's pricing decision for one selected offer.
type ItemInput struct {
	Offer             domain.ServiceOption
	MarkupType        domain.MarkupType
	MarkupValue       decimal.NullDecimal
	InternalNotes     string
	CustomTitle       string
	CustomDescription string
}

// idGenerator issues "<offerID>-<unixMillis>" identifiers that are unique for its lifetime.
type idGenerator struct {
	clock  timeutil.Clock
	issued map[string]struct{}
}

func newIDGenerator(clock timeutil.Clock) idGenerator {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return idGenerator{clock: clock, issued: make(map[string]struct{})}
}

// next returns a fresh id and the time it was issued at.
func (g *idGenerator) next(offerID string) (string, time.Time) {
	now := g.clock.Now()
	base := fmt.Sprintf("%s-%d", offerID, now.UnixMilli())

	id := base
	for n := 2; ; n++ {
		if _, taken := g.issued[id]; !taken {
			break
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
	g.issued[id] = struct{}{}
	return id, now
}

// Quote owns the ordered collection of package items.
// Insertion order is display order. Quote is not safe for concurrent use.
type Quote struct {
	ids   idGenerator
	items []domain.PackageItem
}

// NewQuote creates an empty quote. A nil clock uses the system time.
func NewQuote(clock timeutil.Clock) *Quote {
	return &Quote{ids: newIDGenerator(clock)}
}

// Add prices the offer, appends it with a freshly generated id and returns the new item.
func (q *Quote) Add(in ItemInput) domain.PackageItem {
	id, now := q.ids.next(in.Offer.ID)
	item := domain.PackageItem{
		ID:                id,
		PricedOffer:       domain.NewPricedOffer(in.Offer, in.MarkupType, in.MarkupValue, in.InternalNotes),
		CustomTitle:       in.CustomTitle,
		CustomDescription: in.CustomDescription,
		CreatedAt:         now,
	}
	q.items = append(q.items, item)
	return item
}

// Remove drops the item with the given id. Unknown ids are a no-op.
// It reports whether an item was removed.
func (q *Quote) Remove(id string) bool {
	for i, item := range q.items {
		if item.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the items in insertion order.
func (q *Quote) Items() []domain.PackageItem {
	out := make([]domain.PackageItem, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of items.
func (q *Quote) Len() int {
	return len(q.items)
}

// Total sums the final prices of all current items. It is recomputed on every call.
func (q *Quote) Total() decimal.Decimal {
	return SumFinalPrices(q.items)
}

// SumFinalPrices adds up the final prices of the given items.
func SumFinalPrices(items []domain.PackageItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.FinalPrice)
	}
	return total
}

// OpportunityBook holds saved flight pricing decisions in save order.
// It is not safe for concurrent use.
type OpportunityBook struct {
	ids   idGenerator
	saved []domain.Opportunity
}

// NewOpportunityBook creates an empty book. A nil clock uses the system time.
func NewOpportunityBook(clock timeutil.Clock) *OpportunityBook {
	return &OpportunityBook{ids: newIDGenerator(clock)}
}

// Save prices a flight and records it. Non-flight offers return ErrNotAFlight.
func (b *OpportunityBook) Save(in ItemInput) (domain.Opportunity, error) {
	if !in.Offer.IsFlight() {
		return domain.Opportunity{}, fmt.Errorf("%w: offer %s is %s", domain.ErrNotAFlight, in.Offer.ID, in.Offer.Category)
	}

	id, now := b.ids.next(in.Offer.ID)
	opp := domain.Opportunity{
		ID:          id,
		PricedOffer: domain.NewPricedOffer(in.Offer, in.MarkupType, in.MarkupValue, in.InternalNotes),
		SavedAt:     now.UTC().Format(time.RFC3339),
	}
	b.saved = append(b.saved, opp)
	return opp, nil
}

// Remove drops the opportunity with the given id. Unknown ids are a no-op.
func (b *OpportunityBook) Remove(id string) bool {
	for i, opp := range b.saved {
		if opp.ID == id {
			b.saved = append(b.saved[:i:i], b.saved[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the saved opportunities in save order.
func (b *OpportunityBook) List() []domain.Opportunity {
	out := make([]domain.Opportunity, len(b.saved))
	copy(out, b.saved)
	return out
}
