package llm

import (
	"fmt"
	"strings"

	"github.com/ppiankov/persona/internal/model"
)

// NewProvider creates a provider from configuration. An empty provider name
// disables narrative generation and returns nil.
func NewProvider(config Config) (Provider, error) {
	var (
		provider Provider
		err      error
	)

	// Assign only on success so a failed constructor never yields a non-nil
	// Provider holding a nil pointer
	switch strings.ToLower(config.Provider) {
	case "openai":
		var p *OpenAIProvider
		if p, err = NewOpenAIProvider(config); err == nil {
			provider = p
		}
	case "openrouter":
		var p *OpenAIProvider
		if p, err = NewOpenRouterProvider(config); err == nil {
			provider = p
		}
	case "anthropic", "claude":
		var p *AnthropicProvider
		if p, err = NewAnthropicProvider(config); err == nil {
			provider = p
		}
	case "ollama":
		var p *OllamaProvider
		if p, err = NewOllamaProvider(config); err == nil {
			provider = p
		}
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, openrouter, anthropic, ollama)", config.Provider)
	}

	return provider, err
}

// ConfigFromModel converts the runtime configuration into provider configuration
func ConfigFromModel(llmConfig model.LLMConfig, httpConfig model.HTTPConfig) Config {
	return Config{
		Provider:    llmConfig.Provider,
		Model:       llmConfig.Model,
		APIKey:      llmConfig.APIKey,
		BaseURL:     llmConfig.BaseURL,
		Timeout:     llmConfig.Timeout,
		MaxTokens:   llmConfig.MaxTokens,
		Temperature: llmConfig.Temperature,
		HTTPProxy:   httpConfig.HTTPProxy,
		HTTPSProxy:  httpConfig.HTTPSProxy,
		NoProxy:     httpConfig.NoProxy,
	}
}

// APIKeyEnv returns the environment variable holding the API key for a provider
func APIKeyEnv(provider string) string {
	switch strings.ToLower(provider) {
	case "openai":
		return "OPENAI_API_KEY"
	case "openrouter":
		return "OPENROUTER_API_KEY"
	case "anthropic", "claude":
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}
