// Package mock provides test doubles for the sourcing assistant.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, gated replies, specific payloads).
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
)

// HandlerFunc computes a reply for a single call.
type HandlerFunc func(ctx context.Context, params domain.SearchParams) ([]byte, error)

// Provider is a configurable mock implementation of domain.SearchProvider.
// It supports configurable delays, errors, raw replies and per-call handlers
// for testing timeouts, failures and overlapping searches.
type Provider struct {
	name    string
	reply   []byte
	err     error
	delay   time.Duration
	handler HandlerFunc

	mu         sync.Mutex
	callCount  int
	lastParams domain.SearchParams
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:  name,
		reply: []byte(`{}`),
	}
}

// WithReply configures the provider to return the given raw reply.
func (p *Provider) WithReply(raw []byte) *Provider {
	p.reply = raw
	return p
}

// WithResults configures the provider to return the given records keyed by category.
func (p *Provider) WithResults(results map[string][]map[string]any) *Provider {
	raw, err := json.Marshal(results)
	if err != nil {
		panic(fmt.Sprintf("mock: marshal results: %v", err))
	}
	p.reply = raw
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// WithHandler replaces the static reply with a per-call handler.
// Delay and error settings are ignored when a handler is set.
func (p *Provider) WithHandler(fn HandlerFunc) *Provider {
	p.handler = fn
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.SearchProvider.Search.
// It respects context cancellation, applies configured delay,
// and returns the configured reply or error.
func (p *Provider) Search(ctx context.Context, params domain.SearchParams) ([]byte, error) {
	p.mu.Lock()
	p.callCount++
	p.lastParams = params
	p.mu.Unlock()

	if p.handler != nil {
		return p.handler(ctx, params)
	}

	// Apply delay if configured
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	// Check context after delay
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.reply, nil
}

// CallCount returns the number of times Search was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// LastParams returns the parameters of the most recent call.
func (p *Provider) LastParams() domain.SearchParams {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastParams
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.SearchProvider at compile time.
var _ domain.SearchProvider = (*Provider)(nil)

// Gate blocks handler calls until Release is called.
// Entered is signalled once per call so tests can wait for a search to be in flight.
type Gate struct {
	Entered chan struct{}
	release chan struct{}
	once    sync.Once
}

// NewGate creates a closed gate.
func NewGate() *Gate {
	return &Gate{
		Entered: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

// Wait signals Entered and blocks until the gate is released or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	g.Entered <- struct{}{}
	select {
	case <-g.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release opens the gate for all current and future waiters.
func (g *Gate) Release() {
	g.once.Do(func() { close(g.release) })
}

// SampleFlights returns count flight records the way the search collaborator sends them.
// Prices start at basePrice and increase by 100 per record; ranking follows the order.
func SampleFlights(prefix string, count int, basePrice float64) []map[string]any {
	flights := make([]map[string]any, count)
	for i := 0; i < count; i++ {
		flights[i] = map[string]any{
			"id":                 fmt.Sprintf("%s-%d", prefix, i+1),
			"title":              fmt.Sprintf("GRU → REC opção %d", i+1),
			"provider":           "LATAM",
			"price":              basePrice + float64(i*100),
			"currency":           "BRL",
			"origin":             "GRU",
			"destination":        "REC",
			"departureTime":      fmt.Sprintf("%02d:00", 6+i*2),
			"arrivalTime":        fmt.Sprintf("%02d:15", 9+i*2),
			"airline":            "LATAM",
			"stops":              i % 2,
			"duration":           "3h 15m",
			"durationMinutes":    195,
			"ranking":            i + 1,
			"recommendationType": "VALUE",
			"fontePesquisa":      "latam.com",
			"origemInformacao":   "Site oficial da companhia",
			"canalContratacao":   "SITE",
			"contatoReserva":     "https://www.latamairlines.com/br/pt",
			"tipoReserva":        "DIRETA NO SITE",
		}
	}
	return flights
}

// SampleHotels returns count hotel records the way the search collaborator sends them.
func SampleHotels(prefix string, count int, basePrice float64) []map[string]any {
	hotels := make([]map[string]any, count)
	for i := 0; i < count; i++ {
		hotels[i] = map[string]any{
			"id":                 fmt.Sprintf("%s-%d", prefix, i+1),
			"title":              fmt.Sprintf("Hotel Boa Viagem %d", i+1),
			"provider":           "Booking.com",
			"price":              basePrice + float64(i*50),
			"currency":           "BRL",
			"location":           "Boa Viagem, Recife",
			"ranking":            i + 1,
			"recommendationType": "CHEAPEST",
			"fontePesquisa":      "Booking.com",
			"canalContratacao":   "WHATSAPP",
			"whatsappFornecedor": "5581999990000",
			"contatoReserva":     "+55 81 99999-0000",
			"tipoReserva":        "VIA WHATSAPP",
		}
	}
	return hotels
}
