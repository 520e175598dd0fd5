package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/logger"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/metrics"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/timeutil"
)

// SessionConfig contains configuration options for a Session.
type SessionConfig struct {
	// StaleGuard drops replies from searches superseded by a newer dispatch
	StaleGuard bool

	// DefaultMarkupPercent is applied when a pricing request carries no markup value.
	// An invalid value means domain.DefaultMarkupPercent.
	DefaultMarkupPercent decimal.NullDecimal

	Clock    timeutil.Clock
	Location *time.Location
	Metrics  *metrics.SearchMetrics
	Logger   *logger.Logger
}

// DefaultSessionConfig returns the default session configuration.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		StaleGuard:           true,
		DefaultMarkupPercent: decimal.NewNullDecimal(decimal.NewFromInt(domain.DefaultMarkupPercent)),
		Clock:                timeutil.NewRealClock(),
		Location:             time.UTC,
		Logger:               logger.Nop(),
	}
}

// SearchSnapshot is a read-only view of the current search state.
type SearchSnapshot struct {
	Generation uint64                 `json:"generation"`
	Loading    bool                   `json:"loading"`
	Params     *domain.SearchParams   `json:"params,omitempty"`
	Results    domain.CategoryResults `json:"results"`
}

// PackageSnapshot is a read-only view of the quote.
type PackageSnapshot struct {
	Items []domain.PackageItem `json:"items"`
	Total decimal.Decimal      `json:"total"`
	Count int                  `json:"count"`
}

// Session is the single owner of the agent's working state: the latest search results,
// the quote being assembled and the saved opportunities. All methods are safe for
// concurrent use and every read returns a copy.
type Session struct {
	search SearchUseCase
	cfg    SessionConfig

	mu            sync.Mutex
	generation    uint64
	pending       map[uint64]struct{}
	params        *domain.SearchParams
	results       domain.CategoryResults
	quote         *Quote
	opportunities *OpportunityBook
}

// NewSession creates a Session around the given search use case.
// If config is nil, DefaultSessionConfig is used.
func NewSession(search SearchUseCase, config *SessionConfig) *Session {
	cfg := DefaultSessionConfig()
	if config != nil {
		cfg.StaleGuard = config.StaleGuard
		if config.DefaultMarkupPercent.Valid {
			cfg.DefaultMarkupPercent = config.DefaultMarkupPercent
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Location != nil {
			cfg.Location = config.Location
		}
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
		cfg.Metrics = config.Metrics
	}

	return &Session{
		search:        search,
		cfg:           cfg,
		pending:       make(map[uint64]struct{}),
		results:       domain.CategoryResults{},
		quote:         NewQuote(cfg.Clock),
		opportunities: NewOpportunityBook(cfg.Clock),
	}
}

// Search runs one search on behalf of the agent.
//
// Validation happens before any state changes. On dispatch the previous results are
// cleared; the reply replaces them atomically. With the stale guard enabled a reply
// from a superseded dispatch is returned to its caller marked Stale but never
// written to the session.
func (s *Session) Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	params.SetDefaults(timeutil.Today(s.cfg.Clock, s.cfg.Location))
	if err := params.Validate(); err != nil {
		s.cfg.Metrics.IncSearch(metrics.OutcomeRejected)
		return domain.SearchResult{}, err
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.pending[gen] = struct{}{}
	s.results = domain.CategoryResults{}
	p := params
	s.params = &p
	s.mu.Unlock()

	log := s.cfg.Logger.WithGeneration(gen)
	log.Debug().Str("destination", params.Destination).Msg("search dispatched")

	res, err := s.search.Search(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, gen)

	if err != nil {
		return domain.SearchResult{}, err
	}
	res.Generation = gen

	if s.cfg.StaleGuard && gen != s.generation {
		res.Metadata.Stale = true
		s.cfg.Metrics.IncStale()
		log.Warn().
			Uint64("current_generation", s.generation).
			Msg("discarding stale search reply")
		return res, nil
	}

	s.results = res.Results.Clone()
	return res, nil
}

// Latest returns the current results sorted and filtered for display.
func (s *Session) Latest(sortBy domain.SortOption, filter *domain.OfferFilter) SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SearchSnapshot{
		Generation: s.generation,
		Loading:    len(s.pending) > 0,
		Results:    RankResults(ApplyFilter(s.results, filter), sortBy),
	}
	if s.params != nil {
		p := *s.params
		p.Categories = append([]domain.ServiceCategory(nil), s.params.Categories...)
		snap.Params = &p
	}
	return snap
}

// Offer looks up an offer in the current results.
func (s *Session) Offer(id string) (domain.ServiceOption, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results.FindOffer(id)
}

// DefaultMarkup returns the markup applied when a request omits one.
func (s *Session) DefaultMarkup() (domain.MarkupType, decimal.NullDecimal) {
	return domain.MarkupPercent, s.cfg.DefaultMarkupPercent
}

// PricePreview computes a price quote without touching session state.
func (s *Session) PricePreview(basePrice decimal.Decimal, markupType domain.MarkupType, markupValue decimal.NullDecimal) domain.PriceQuote {
	return domain.NewPriceQuote(basePrice, markupType, markupValue)
}

// ItemRequest selects an offer from the current results and prices it.
type ItemRequest struct {
	OfferID           string
	MarkupType        domain.MarkupType
	MarkupValue       decimal.NullDecimal
	InternalNotes     string
	CustomTitle       string
	CustomDescription string
}

// AddItem adds an offer from the current results to the quote.
// Returns ErrOfferNotFound when the offer is not in the current results.
func (s *Session) AddItem(req ItemRequest) (domain.PackageItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.results.FindOffer(req.OfferID)
	if !ok {
		return domain.PackageItem{}, domain.ErrOfferNotFound
	}

	item := s.quote.Add(ItemInput{
		Offer:             offer,
		MarkupType:        req.MarkupType,
		MarkupValue:       req.MarkupValue,
		InternalNotes:     req.InternalNotes,
		CustomTitle:       req.CustomTitle,
		CustomDescription: req.CustomDescription,
	})
	s.cfg.Metrics.SetPackageItems(s.quote.Len())
	return item, nil
}

// RemoveItem removes a quote item. Unknown ids are a no-op.
func (s *Session) RemoveItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.quote.Remove(id)
	s.cfg.Metrics.SetPackageItems(s.quote.Len())
	return removed
}

// Package returns the quote items and their total.
func (s *Session) Package() PackageSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.quote.Items()
	return PackageSnapshot{
		Items: items,
		Total: SumFinalPrices(items),
		Count: len(items),
	}
}

// SaveOpportunity saves a pricing decision for a flight from the current results.
func (s *Session) SaveOpportunity(req ItemRequest) (domain.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.results.FindOffer(req.OfferID)
	if !ok {
		return domain.Opportunity{}, domain.ErrOfferNotFound
	}

	return s.opportunities.Save(ItemInput{
		Offer:         offer,
		MarkupType:    req.MarkupType,
		MarkupValue:   req.MarkupValue,
		InternalNotes: req.InternalNotes,
	})
}

// RemoveOpportunity removes a saved opportunity. Unknown ids are a no-op.
func (s *Session) RemoveOpportunity(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opportunities.Remove(id)
}

// Opportunities returns the saved opportunities in save order.
func (s *Session) Opportunities() []domain.Opportunity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opportunities.List()
}
