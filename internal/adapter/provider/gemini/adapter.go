// Package gemini implements the search collaborator on top of the Gemini API.
// One search is one generateContent call with a fixed pt-BR brief, a JSON response
// schema and, optionally, the Google Search grounding tool.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
)

// ProviderName is the unique identifier for this provider.
const ProviderName = "gemini"

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// Generator is the subset of the genai client used by the adapter.
// *genai.Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config contains the Gemini adapter settings.
type Config struct {
	APIKey string
	Model  string

	// Grounding enables the Google Search tool
	Grounding bool
}

// Adapter sends sourcing briefs to Gemini.
type Adapter struct {
	generator Generator
	model     string
	grounding bool
}

// NewAdapter creates an adapter with a Gemini API client.
func NewAdapter(ctx context.Context, cfg Config) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("%w: missing API key", domain.ErrProviderUnavailable))
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
	}
	return NewAdapterWithGenerator(client.Models, cfg), nil
}

// NewAdapterWithGenerator creates an adapter around an existing generator.
func NewAdapterWithGenerator(generator Generator, cfg Config) *Adapter {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Adapter{
		generator: generator,
		model:     model,
		grounding: cfg.Grounding,
	}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Model returns the Gemini model in use.
func (a *Adapter) Model() string {
	return a.model
}

// Search sends one brief and returns the JSON text of the reply.
func (a *Adapter) Search(ctx context.Context, params domain.SearchParams) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	resp, err := a.generator.GenerateContent(ctx, a.model, genai.Text(BuildPrompt(params)), a.generateConfig())
	if err != nil {
		return nil, a.mapError(ctx, err)
	}
	if resp == nil {
		return nil, nil
	}
	return stripCodeFence([]byte(resp.Text())), nil
}

func (a *Adapter) generateConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ResponseSchema(),
	}
	if a.grounding {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}

func (a *Adapter) mapError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.NewProviderTimeoutError(ProviderName), err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusServiceUnavailable:
			return domain.NewProviderError(ProviderName, fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, apiErr.Message))
		}
	}
	return domain.NewProviderError(ProviderName, err)
}

// stripCodeFence removes a surrounding ```json fence, which grounded replies sometimes carry.
func stripCodeFence(b []byte) []byte {
	b = bytes.TrimSpace(b)
	if !bytes.HasPrefix(b, []byte("```")) {
		return b
	}
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[i+1:]
	} else {
		return nil
	}
	b = bytes.TrimSuffix(bytes.TrimSpace(b), []byte("```"))
	return bytes.TrimSpace(b)
}

// Ensure Adapter implements domain.SearchProvider at compile time.
var _ domain.SearchProvider = (*Adapter)(nil)
