package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ppiankov/persona/internal/llm"
	"github.com/ppiankov/persona/internal/logging"
	"github.com/ppiankov/persona/internal/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const version = "v0.1.0"

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string

	logger *logrus.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "persona",
	Short: "Persona - heuristic behavioral profiles of public Reddit accounts",
	Long: `Persona reads the public posts and comments of a Reddit account and builds
a behavioral profile from them: sentiment, Big Five personality approximation,
writing style, topics, social network and activity rhythm.

Every score comes from transparent heuristics over the account's own text.
An optional language model can write a narrative persona on top, citing the
items it draws from. The narrative never changes the scores.

Persona describes public writing. It does not identify people.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number for Persona.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("persona %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.persona/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads .env, the config file and PERSONA_* environment variables
func initConfig() {
	// A missing .env is normal
	_ = godotenv.Load()

	if err := registerDefaults(model.DefaultConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error registering defaults: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".persona"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	bindEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// bindEnv maps PERSONA_* variables onto config keys (PERSONA_CACHE_TTL -> cache.ttl)
func bindEnv() {
	viper.SetEnvPrefix("PERSONA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Keys without a marshaled default
	for _, key := range []string{"source.dir", "http.http_proxy", "http.https_proxy", "http.no_proxy", "llm.base_url", "analysis.skip_analyzers"} {
		_ = viper.BindEnv(key)
	}
	_ = viper.BindEnv("llm.api_key", "PERSONA_LLM_API_KEY")
	_ = viper.BindEnv("http.user_agent", "PERSONA_HTTP_USER_AGENT", "REDDIT_USER_AGENT")
}

// registerDefaults makes every config key known to viper so that environment
// variables override nested keys during Unmarshal
func registerDefaults(cfg model.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal defaults: %w", err)
	}
	var tree map[string]any
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&tree); err != nil {
		return fmt.Errorf("decode defaults: %w", err)
	}
	setDefaults("", tree)
	return nil
}

func setDefaults(prefix string, tree map[string]any) {
	for key, value := range tree {
		if prefix != "" {
			key = prefix + "." + key
		}
		if sub, ok := value.(map[string]any); ok {
			setDefaults(key, sub)
			continue
		}
		viper.SetDefault(key, value)
	}
}

// loadConfig merges defaults, config file and environment into a Config
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// resolveCredentials fills the LLM key and Ollama address from provider
// environment variables. Provider-specific keys apply when no
// PERSONA_LLM_API_KEY is set.
func resolveCredentials(cfg *model.Config) {
	if cfg.LLM.APIKey == "" {
		if env := llm.APIKeyEnv(cfg.LLM.Provider); env != "" {
			cfg.LLM.APIKey = os.Getenv(env)
		}
	}
	if strings.EqualFold(cfg.LLM.Provider, "ollama") && cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = os.Getenv("OLLAMA_BASE_URL")
	}
}

func setupLogger() error {
	level := viper.GetString("logging.level")
	if level == "" {
		level = "info"
	}
	if verbose && logLevel == "" {
		level = "debug"
	}

	l, err := logging.New(level, viper.GetString("logging.format"))
	if err != nil {
		return err
	}
	logger = l
	return nil
}
