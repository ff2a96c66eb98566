package translation

import (
	"context"
	"errors"
	"fmt"
)

// Provider sends one prompt to a language model and returns its reply.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Provider names accepted by NewProvider.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default models per provider.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

var (
	// ErrNoAPIKey is returned when the selected provider has no key.
	ErrNoAPIKey = errors.New("translation: API key not found")
	// ErrUnknownProvider is returned for provider names other than openai and gemini.
	ErrUnknownProvider = errors.New("translation: unknown provider")
	// ErrNoTranslation is returned when the model replied without any meaning.
	ErrNoTranslation = errors.New("translation: no translation returned")
)

// ProviderConfig selects and configures a provider.
type ProviderConfig struct {
	Name      string
	Model     string
	OpenAIKey string
	GeminiKey string
}

// NewProvider creates the provider named in cfg.
func NewProvider(ctx context.Context, cfg ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case ProviderOpenAI, "":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("%w: set OPENAI_API_KEY or translate.openai_key in .langl.yaml", ErrNoAPIKey)
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model), nil
	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("%w: set GEMINI_API_KEY or translate.gemini_key in .langl.yaml", ErrNoAPIKey)
		}
		return NewGeminiProvider(ctx, cfg.GeminiKey, cfg.Model)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Name)
	}
}
