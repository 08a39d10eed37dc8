package llm

import (
	"fmt"
	"strings"

	"github.com/helmcode/rawmat/pkg/config"
)

// Provider represents the LLM provider type
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
)

// Settings configure a single provider instance.
type Settings struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Factory creates LLM instances based on provider
type Factory struct{}

// NewFactory creates a new LLM factory
func NewFactory() *Factory {
	return &Factory{}
}

// CreateLLM creates an LLM instance based on provider and settings
func (f *Factory) CreateLLM(provider Provider, s Settings) (LLM, error) {
	switch provider {
	case ProviderGemini:
		if s.APIKey == "" {
			return nil, fmt.Errorf("Gemini: %w", ErrMissingAPIKey)
		}
		return NewGemini(s.APIKey, s.BaseURL, s.Model), nil

	case ProviderClaude:
		if s.APIKey == "" {
			return nil, fmt.Errorf("Claude: %w", ErrMissingAPIKey)
		}
		return NewClaude(s.APIKey, s.BaseURL, s.Model), nil

	case ProviderOpenAI:
		if s.APIKey == "" {
			return nil, fmt.Errorf("OpenAI: %w", ErrMissingAPIKey)
		}
		return NewOpenAI(s.APIKey, s.BaseURL, s.Model), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// GetAvailableProviders returns a list of available LLM providers
func (f *Factory) GetAvailableProviders() []Provider {
	return []Provider{ProviderGemini, ProviderOpenAI, ProviderClaude}
}

// FromConfig creates the configured LLM. A non-empty modelOverride replaces
// the provider's configured model.
func FromConfig(cfg *config.Config, modelOverride string) (LLM, error) {
	provider := Provider(strings.ToLower(cfg.LLM.Provider))
	pc, ok := cfg.Provider(string(provider))
	if !ok {
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}

	s := Settings{APIKey: pc.APIKey, BaseURL: pc.BaseURL, Model: pc.Model}
	if modelOverride != "" {
		s.Model = modelOverride
	}
	return NewFactory().CreateLLM(provider, s)
}
