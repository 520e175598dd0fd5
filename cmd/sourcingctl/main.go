// sourcingctl runs sourcing searches and price previews from the terminal.
//
// Usage:
//
//	sourcingctl price --base 1000 --type percent --value 15
//	sourcingctl search --destination Recife --start 2025-06-10 --end 2025-06-15 --category FLIGHT --category HOTEL
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/travel-sourcing/sourcing-assistant/internal/adapter/provider/fixture"
	"github.com/travel-sourcing/sourcing-assistant/internal/adapter/provider/gemini"
	"github.com/travel-sourcing/sourcing-assistant/internal/config"
	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/logger"
	"github.com/travel-sourcing/sourcing-assistant/internal/infrastructure/timeutil"
	"github.com/travel-sourcing/sourcing-assistant/internal/share"
	"github.com/travel-sourcing/sourcing-assistant/internal/usecase"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "sourcingctl",
		Usage:   "Travel sourcing assistant - search offers and preview prices",
		Version: version,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},

		Commands: []*cli.Command{
			priceCommand(),
			searchCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func priceCommand() *cli.Command {
	return &cli.Command{
		Name:  "price",
		Usage: "Preview the final price and margin for a base price and markup",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "base",
				Aliases:  []string{"b"},
				Usage:    "Net price",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Value:   string(domain.MarkupPercent),
				Usage:   "Markup type (percent, fixed)",
			},
			&cli.StringFlag{
				Name:  "value",
				Value: fmt.Sprint(domain.DefaultMarkupPercent),
				Usage: "Markup value; a non-numeric value means no markup",
			},
		},
		Action: runPrice,
	}
}

func runPrice(c *cli.Context) error {
	base, err := decimal.NewFromString(c.String("base"))
	if err != nil {
		return fmt.Errorf("invalid base price %q: %w", c.String("base"), err)
	}
	if base.IsNegative() {
		return fmt.Errorf("base price must not be negative")
	}

	quote := domain.NewPriceQuote(
		base,
		domain.ParseMarkupType(c.String("type")),
		domain.ParseMarkupValue(c.String("value")),
	)

	fmt.Printf("Base:   R$ %s\n", share.FormatAmount(quote.BasePrice))
	fmt.Printf("Final:  R$ %s\n", share.FormatAmount(quote.FinalPrice))
	fmt.Printf("Margin: R$ %s\n", share.FormatAmount(quote.Margin))
	return nil
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Run one sourcing search and print the ranked offers as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "destination",
				Aliases:  []string{"d"},
				Usage:    "Destination city, region or airport",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "origin",
				Aliases: []string{"o"},
				Usage:   "Departure location",
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "Start date (YYYY-MM-DD); defaults to three days from today",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "End date (YYYY-MM-DD)",
			},
			&cli.IntFlag{
				Name:  "days",
				Usage: "Trip length in days; sets the end date when --end is not given",
			},
			&cli.IntFlag{
				Name:  "passengers",
				Value: 1,
				Usage: "Number of travellers",
			},
			&cli.StringSliceFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "Service category to source (FLIGHT, HOTEL, TRANSFER, EXPERIENCE); repeatable",
			},
			&cli.StringFlag{
				Name:  "tier",
				Value: string(domain.TravelStandard),
				Usage: "Travel tier (ECONOMIC, STANDARD, LUXURY)",
			},
			&cli.StringFlag{
				Name:    "provider",
				Value:   config.ProviderFixture,
				Usage:   "Search collaborator (gemini, fixture)",
				EnvVars: []string{"SEARCH_PROVIDER"},
			},
			&cli.StringFlag{
				Name:    "fixture",
				Value:   "docs/response-mock/search_response.json",
				Usage:   "Recorded reply used by the fixture provider",
				EnvVars: []string{"FIXTURE_PATH"},
			},
			&cli.StringFlag{
				Name:    "gemini-api-key",
				Usage:   "Gemini API key",
				EnvVars: []string{"GEMINI_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "gemini-model",
				Value:   gemini.DefaultModel,
				Usage:   "Gemini model",
				EnvVars: []string{"GEMINI_MODEL"},
			},
			&cli.StringFlag{
				Name:    "timezone",
				Value:   "America/Sao_Paulo",
				Usage:   "Timezone that defines today",
				EnvVars: []string{"APP_TIMEZONE"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   usecase.DefaultSearchTimeout,
				Usage:   "Search timeout",
				EnvVars: []string{"TIMEOUT_SEARCH"},
			},
		},
		Action: runSearch,
	}
}

func runSearch(c *cli.Context) error {
	ctx := context.Background()

	log := logger.NewWithOutput(logger.Config{
		Level:  c.String("log-level"),
		Format: "console",
	}, os.Stderr)

	provider, err := newProvider(ctx, c)
	if err != nil {
		return err
	}

	loc, err := timeutil.GetLocation(c.String("timezone"))
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}

	params := domain.SearchParams{
		Destination:    c.String("destination"),
		Origin:         c.String("origin"),
		StartDate:      c.String("start"),
		EndDate:        c.String("end"),
		Passengers:     c.Int("passengers"),
		TravelCategory: domain.TravelCategory(c.String("tier")),
	}
	if days := c.Int("days"); days > 0 && params.EndDate == "" {
		if params.StartDate == "" {
			today := timeutil.Today(timeutil.NewRealClock(), loc)
			params.StartDate = timeutil.FormatDate(today.AddDate(0, 0, domain.DefaultLeadDays))
		}
		end, err := domain.QuickEndDate(params.StartDate, days)
		if err != nil {
			return err
		}
		params.EndDate = end
	}
	for _, name := range c.StringSlice("category") {
		cat, ok := domain.ParseCategory(name)
		if !ok {
			return fmt.Errorf("unknown category %q", name)
		}
		params.Categories = append(params.Categories, cat)
	}

	uc := usecase.NewSearchUseCase(provider, &usecase.Config{
		Timeout:  c.Duration("timeout"),
		Location: loc,
		Logger:   log,
	})

	started := time.Now()
	result, err := uc.Search(ctx, params)
	if err != nil {
		return err
	}
	if !result.IsSuccess() {
		return fmt.Errorf("search failed: %s", result.Reason)
	}

	fmt.Fprintf(os.Stderr, "Found %d offers in %s\n", result.Metadata.TotalResults, time.Since(started).Round(time.Millisecond))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(usecase.RankResults(result.Results, domain.SortByRanking))
}

func newProvider(ctx context.Context, c *cli.Context) (domain.SearchProvider, error) {
	registry := domain.NewProviderRegistry()
	registry.Register(fixture.NewAdapter(c.String("fixture")))

	if key := c.String("gemini-api-key"); key != "" {
		adapter, err := gemini.NewAdapter(ctx, gemini.Config{
			APIKey:    key,
			Model:     c.String("gemini-model"),
			Grounding: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		registry.Register(adapter)
	}

	name := c.String("provider")
	provider := registry.Get(name)
	if provider == nil {
		if name == config.ProviderGemini {
			return nil, fmt.Errorf("--gemini-api-key is required for the gemini provider")
		}
		return nil, fmt.Errorf("unknown provider %q, available: %v", name, registry.Names())
	}
	return provider, nil
}
