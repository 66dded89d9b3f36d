package llm

import (
	"context"
	"time"
)

// Default request parameters applied when neither the request nor the config sets them
const (
	defaultMaxTokens   = 2000
	defaultTemperature = 0.5
	defaultTimeout     = 2 * time.Minute
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate returns the model's completion for a single prompt
	Generate(ctx context.Context, req Request) (*Response, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Request is one completion request
type Request struct {
	System      string
	Prompt      string
	Model       string  // Overrides the configured model
	MaxTokens   int     // Overrides the configured limit
	Temperature float64 // Overrides the configured temperature when > 0
}

// Response is the model's completion
type Response struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "openrouter", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/OpenRouter/Anthropic
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	Timeout     time.Duration
	MaxTokens   int
	Temperature float64

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// resolve fills request fields from the config and package defaults
func (c Config) resolve(req Request) Request {
	if req.Model == "" {
		req.Model = c.Model
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = c.MaxTokens
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = defaultMaxTokens
	}
	if req.Temperature <= 0 {
		req.Temperature = c.Temperature
	}
	if req.Temperature <= 0 {
		req.Temperature = defaultTemperature
	}
	return req
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}
