package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/persona/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	if err := registerDefaults(model.DefaultConfig()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	bindEnv()
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	def := model.DefaultConfig()
	if cfg.Cache.TTL != def.Cache.TTL {
		t.Errorf("Expected cache TTL %v, got %v", def.Cache.TTL, cfg.Cache.TTL)
	}
	if cfg.Source.Limit != def.Source.Limit {
		t.Errorf("Expected limit %d, got %d", def.Source.Limit, cfg.Source.Limit)
	}
	if cfg.Analysis.TopicModel != "lda" {
		t.Errorf("Expected lda topic model, got %s", cfg.Analysis.TopicModel)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PERSONA_CACHE_TTL", "2h")
	t.Setenv("PERSONA_CONCURRENCY_WORKERS", "8")
	t.Setenv("PERSONA_SOURCE_DIR", "/tmp/dumps")
	t.Setenv("REDDIT_USER_AGENT", "test-agent/1.0")
	resetViper(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Cache.TTL != 2*time.Hour {
		t.Errorf("Expected cache TTL 2h, got %v", cfg.Cache.TTL)
	}
	if cfg.Concurrency.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", cfg.Concurrency.Workers)
	}
	if cfg.Source.Dir != "/tmp/dumps" {
		t.Errorf("Expected source dir /tmp/dumps, got %q", cfg.Source.Dir)
	}
	if cfg.HTTP.UserAgent != "test-agent/1.0" {
		t.Errorf("Expected user agent from REDDIT_USER_AGENT, got %q", cfg.HTTP.UserAgent)
	}
}

func TestResolveCredentials(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("OLLAMA_BASE_URL", "http://ollama:11434")

	cfg := model.DefaultConfig()
	cfg.LLM.Provider = "anthropic"
	resolveCredentials(&cfg)
	if cfg.LLM.APIKey != "sk-ant-test" {
		t.Errorf("Expected key from ANTHROPIC_API_KEY, got %q", cfg.LLM.APIKey)
	}

	cfg = model.DefaultConfig()
	cfg.LLM.Provider = "ollama"
	resolveCredentials(&cfg)
	if cfg.LLM.APIKey != "" {
		t.Errorf("Expected no key for ollama, got %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.BaseURL != "http://ollama:11434" {
		t.Errorf("Expected base URL from OLLAMA_BASE_URL, got %q", cfg.LLM.BaseURL)
	}

	cfg = model.DefaultConfig()
	cfg.LLM.Provider = "anthropic"
	cfg.LLM.APIKey = "explicit"
	resolveCredentials(&cfg)
	if cfg.LLM.APIKey != "explicit" {
		t.Errorf("Expected explicit key kept, got %q", cfg.LLM.APIKey)
	}
}

func TestProfileFlags_Apply(t *testing.T) {
	var f profileFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd, time.Minute)

	err := cmd.Flags().Parse([]string{
		"--limit", "10",
		"--no-json",
		"--skip", "topics,social",
		"--llm",
		"--llm-provider", "ollama",
		"--output-dir", "reports",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cfg := model.DefaultConfig()
	f.apply(cmd, &cfg)

	if cfg.Source.Limit != 10 {
		t.Errorf("Expected limit 10, got %d", cfg.Source.Limit)
	}
	if cfg.Output.JSON {
		t.Error("Expected JSON output disabled")
	}
	if !cfg.Output.Markdown {
		t.Error("Expected Markdown output untouched")
	}
	if len(cfg.Analysis.SkipAnalyzers) != 2 || cfg.Analysis.SkipAnalyzers[0] != "topics" {
		t.Errorf("Unexpected skip list %v", cfg.Analysis.SkipAnalyzers)
	}
	if !cfg.LLM.Enabled || cfg.LLM.Provider != "ollama" {
		t.Errorf("Expected ollama LLM enabled, got %+v", cfg.LLM)
	}
	if cfg.LLM.Model != model.DefaultConfig().LLM.Model {
		t.Errorf("Expected unset model flag to keep %q, got %q", model.DefaultConfig().LLM.Model, cfg.LLM.Model)
	}
	if cfg.Output.Dir != "reports" {
		t.Errorf("Expected output dir reports, got %q", cfg.Output.Dir)
	}
	if cfg.Cache.Enabled != model.DefaultConfig().Cache.Enabled {
		t.Error("Expected cache setting untouched")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".persona", "config.yaml")

	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "api_key") {
		t.Error("Expected no API key in written config")
	}

	var cfg model.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Expected valid YAML, got %v", err)
	}
	if cfg.Source.Limit != model.DefaultConfig().Source.Limit {
		t.Errorf("Expected default limit, got %d", cfg.Source.Limit)
	}
	if cfg.HTTP.Timeout != model.DefaultConfig().HTTP.Timeout {
		t.Errorf("Expected default timeout, got %v", cfg.HTTP.Timeout)
	}

	if err := writeDefaultConfig(path); err == nil {
		t.Error("Expected error when config already exists")
	}
}

func TestBuildConfig_RejectsUnknownAnalysisValues(t *testing.T) {
	tests := map[string][]string{
		"topic model": {"--topic-model", "ldaa"},
		"skip":        {"--skip", "sentiment,mood"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			resetViper(t)

			var f profileFlags
			cmd := &cobra.Command{Use: "test"}
			f.register(cmd, time.Minute)
			if err := cmd.Flags().Parse(args); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if _, err := f.buildConfig(cmd); err == nil {
				t.Errorf("Expected error for %v", args)
			}
		})
	}

	resetViper(t)
	var f profileFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd, time.Minute)
	if err := cmd.Flags().Parse([]string{"--topic-model", "KEYWORD", "--skip", "social"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := f.buildConfig(cmd); err != nil {
		t.Errorf("Expected valid values accepted, got %v", err)
	}
}
