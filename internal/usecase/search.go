package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/logger"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/metrics"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/timeutil"
)

// DefaultSearchTimeout bounds one call to the search collaborator.
const DefaultSearchTimeout = 60 * time.Second

// SearchUseCase defines the search orchestration.
type SearchUseCase interface {
	// Search validates the parameters, calls the collaborator once and normalizes the reply.
	// The returned error is non-nil only for validation failures, in which case no request
	// was made. Collaborator failures are reported through a failed SearchResult.
	Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error)
}

// Config contains configuration options for the search use case.
type Config struct {
	// Timeout bounds the collaborator call
	Timeout time.Duration

	// Clock and Location determine "today" for default dates
	Clock    timeutil.Clock
	Location *time.Location

	Metrics *metrics.SearchMetrics
	Logger  *logger.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:  DefaultSearchTimeout,
		Clock:    timeutil.NewRealClock(),
		Location: time.UTC,
		Logger:   logger.Nop(),
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c *Config) withDefaults() Config {
	cfg := DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	if c.Clock != nil {
		cfg.Clock = c.Clock
	}
	if c.Location != nil {
		cfg.Location = c.Location
	}
	if c.Logger != nil {
		cfg.Logger = c.Logger
	}
	cfg.Metrics = c.Metrics
	return cfg
}

type searchUseCase struct {
	provider domain.SearchProvider
	cfg      Config
}

// NewSearchUseCase creates a SearchUseCase backed by a single collaborator.
// If config is nil, default values are used.
func NewSearchUseCase(provider domain.SearchProvider, config *Config) SearchUseCase {
	return &searchUseCase{
		provider: provider,
		cfg:      config.withDefaults(),
	}
}

// Search implements SearchUseCase.Search.
func (uc *searchUseCase) Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	params.SetDefaults(timeutil.Today(uc.cfg.Clock, uc.cfg.Location))
	if err := params.Validate(); err != nil {
		uc.cfg.Metrics.IncSearch(metrics.OutcomeRejected)
		return domain.SearchResult{}, err
	}

	if uc.provider == nil {
		uc.cfg.Metrics.IncSearch(metrics.OutcomeFailed)
		return domain.NewFailedResult(domain.ErrProviderUnavailable, domain.SearchMetadata{}), nil
	}

	providerName := uc.provider.Name()
	log := logger.FromContextOr(ctx, uc.cfg.Logger).WithProvider(providerName)
	log.Info().
		Str("destination", params.Destination).
		Strs("categories", params.CategoryNames()).
		Str("travel_category", string(params.TravelCategory)).
		Msg("dispatching search")

	start := time.Now()
	raw, err := uc.callProvider(ctx, params)
	elapsed := time.Since(start)
	uc.cfg.Metrics.ObserveDuration(elapsed)

	metadata := domain.SearchMetadata{
		Provider:     providerName,
		SearchTimeMs: elapsed.Milliseconds(),
	}

	if err != nil {
		return uc.fail(log, err, metadata), nil
	}

	results, skipped, err := NormalizeResults(raw)
	if err != nil {
		return uc.fail(log, domain.NewProviderError(providerName, err), metadata), nil
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("skipped offer records that were not objects")
	}

	results = RankResults(results, domain.SortByRanking)
	for category, offers := range results {
		uc.cfg.Metrics.AddOffers(string(category), len(offers))
	}
	uc.cfg.Metrics.IncSearch(metrics.OutcomeSucceeded)

	res := domain.NewSucceededResult(results, metadata)
	log.Info().
		Int("total_results", res.Metadata.TotalResults).
		Int64("duration_ms", metadata.SearchTimeMs).
		Msg("search completed")
	return res, nil
}

// callProvider runs the collaborator call with the configured timeout and panic recovery.
func (uc *searchUseCase) callProvider(ctx context.Context, params domain.SearchParams) (raw []byte, err error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			raw = nil
			err = domain.NewProviderError(uc.provider.Name(), fmt.Errorf("provider panic: %v", r))
		}
	}()

	raw, err = uc.provider.Search(ctx, params)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, domain.ErrProviderTimeout) {
		err = fmt.Errorf("%w: %v", domain.NewProviderTimeoutError(uc.provider.Name()), err)
	}
	return raw, err
}

func (uc *searchUseCase) fail(log *logger.Logger, err error, metadata domain.SearchMetadata) domain.SearchResult {
	uc.cfg.Metrics.IncSearch(metrics.OutcomeFailed)
	log.Error().Err(err).Int64("duration_ms", metadata.SearchTimeMs).Msg("search failed")
	return domain.NewFailedResult(fmt.Errorf("%w: %w", domain.ErrSearchFailed, err), metadata)
}

// Ensure searchUseCase implements SearchUseCase at compile time.
var _ SearchUseCase = (*searchUseCase)(nil)
