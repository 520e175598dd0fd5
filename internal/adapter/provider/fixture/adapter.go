// Package fixture provides a SearchProvider that replays a recorded collaborator reply from disk.
// It backs local development, the CLI and integration tests when no API key is configured.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
)

// ProviderName is the unique identifier for this provider.
const ProviderName = "fixture"

// Adapter serves search replies from a JSON file.
type Adapter struct {
	mockDataPath string
	delay        time.Duration
}

// NewAdapter creates a fixture adapter reading from the given path.
func NewAdapter(mockDataPath string) *Adapter {
	return &Adapter{mockDataPath: mockDataPath}
}

// WithDelay makes every search wait d before answering, to simulate collaborator latency.
func (a *Adapter) WithDelay(d time.Duration) *Adapter {
	a.delay = d
	return a
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search returns the recorded reply restricted to the requested categories.
func (a *Adapter) Search(ctx context.Context, params domain.SearchParams) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	if a.delay > 0 {
		select {
		case <-time.After(a.delay):
		case <-ctx.Done():
			return nil, domain.NewProviderError(ProviderName, ctx.Err())
		}
	}

	data, err := os.ReadFile(a.mockDataPath)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("%w: reading fixture: %v", domain.ErrProviderUnavailable, err))
	}

	var reply map[string]json.RawMessage
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, domain.NewMalformedResponseError(ProviderName, err)
	}

	filtered := make(map[string]json.RawMessage, len(params.Categories))
	for key, value := range reply {
		category, ok := domain.ParseCategory(key)
		if !ok || (len(params.Categories) > 0 && !params.HasCategory(category)) {
			continue
		}
		filtered[key] = value
	}

	out, err := json.Marshal(filtered)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	return out, nil
}

// Ensure Adapter implements domain.SearchProvider at compile time.
var _ domain.SearchProvider = (*Adapter)(nil)
