package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	HTTP         HTTPConfig         `yaml:"http" mapstructure:"http"`
	Source       SourceConfig       `yaml:"source" mapstructure:"source"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	LLM          LLMConfig          `yaml:"llm" mapstructure:"llm"`
	Analysis     AnalysisConfig     `yaml:"analysis" mapstructure:"analysis"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	Logging      LoggingConfig      `yaml:"logging" mapstructure:"logging"`
}

// HTTPConfig controls outbound requests
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
	MaxRetries   int           `yaml:"max_retries" mapstructure:"max_retries"`
}

// SourceConfig controls content acquisition
type SourceConfig struct {
	BaseURL       string `yaml:"base_url" mapstructure:"base_url"`
	Dir           string `yaml:"dir,omitempty" mapstructure:"dir"` // Read <dir>/<user>.json instead of the network
	Limit         int    `yaml:"limit" mapstructure:"limit"`       // Items per section
	RespectRobots bool   `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls fetched content caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig controls worker counts
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitingConfig controls requests against the content source
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// LLMConfig controls optional narrative generation
type LLMConfig struct {
	Enabled     bool          `yaml:"enabled" mapstructure:"enabled"`
	Provider    string        `yaml:"provider" mapstructure:"provider"` // openai, openrouter, anthropic, ollama
	Model       string        `yaml:"model" mapstructure:"model"`
	APIKey      string        `yaml:"-" mapstructure:"api_key"`
	BaseURL     string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Temperature float64       `yaml:"temperature" mapstructure:"temperature"`
	MaxTokens   int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// AnalysisConfig tunes the heuristic analyzers
type AnalysisConfig struct {
	TopicModel    string   `yaml:"topic_model" mapstructure:"topic_model"` // lda, keyword
	NumTopics     int      `yaml:"num_topics" mapstructure:"num_topics"`
	LDAIterations int      `yaml:"lda_iterations" mapstructure:"lda_iterations"`
	LDASeed       int64    `yaml:"lda_seed" mapstructure:"lda_seed"`
	SkipAnalyzers []string `yaml:"skip_analyzers,omitempty" mapstructure:"skip_analyzers"`
}

// OutputConfig controls rendered artifacts
type OutputConfig struct {
	Dir      string `yaml:"dir" mapstructure:"dir"`
	JSON     bool   `yaml:"json" mapstructure:"json"`
	Markdown bool   `yaml:"markdown" mapstructure:"markdown"`
	Verbose  bool   `yaml:"verbose" mapstructure:"verbose"`
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // text, json
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "persona/0.1 (+https://github.com/ppiankov/persona)",
			MaxBodyBytes: 5_000_000,
			MaxRetries:   3,
		},
		Source: SourceConfig{
			BaseURL:       "https://www.reddit.com",
			Limit:         50,
			RespectRobots: false,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".persona-cache",
			TTL:     time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 1,
			BurstSize:         2,
		},
		LLM: LLMConfig{
			Provider:    "openrouter",
			Model:       "openai/gpt-4o-mini",
			Temperature: 0.5,
			MaxTokens:   2000,
			Timeout:     2 * time.Minute,
		},
		Analysis: AnalysisConfig{
			TopicModel:    "lda",
			NumTopics:     5,
			LDAIterations: 200,
			LDASeed:       42,
		},
		Output: OutputConfig{
			Dir:      "output",
			JSON:     true,
			Markdown: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
