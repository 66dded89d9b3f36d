package cli

import (
	"time"

	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/pipeline"
	"github.com/spf13/cobra"
)

// profileFlags are the acquisition, analysis and output flags shared by
// analyze, compare and batch
type profileFlags struct {
	timeout       time.Duration
	outputDir     string
	noJSON        bool
	noMarkdown    bool
	limit         int
	userAgent     string
	noCache       bool
	insecureTLS   bool
	respectRobots bool
	sourceDir     string
	httpProxy     string
	httpsProxy    string
	topicModel    string
	skip          []string
	llmEnabled    bool
	llmProvider   string
	llmModel      string
}

func (f *profileFlags) register(cmd *cobra.Command, defaultTimeout time.Duration) {
	flags := cmd.Flags()

	// Output flags
	flags.StringVar(&f.outputDir, "output-dir", "", "output directory for reports (default from config: output)")
	flags.BoolVar(&f.noJSON, "no-json", false, "skip the JSON report")
	flags.BoolVar(&f.noMarkdown, "no-md", false, "skip the Markdown report")

	// Acquisition flags
	flags.DurationVar(&f.timeout, "timeout", defaultTimeout, "overall timeout")
	flags.IntVar(&f.limit, "limit", 0, "items requested per section (default from config: 50)")
	flags.StringVar(&f.userAgent, "ua", "", "HTTP User-Agent")
	flags.BoolVar(&f.noCache, "no-cache", false, "disable cache (force fresh fetch)")
	flags.BoolVar(&f.insecureTLS, "insecure", false, "skip TLS certificate verification")
	flags.BoolVar(&f.respectRobots, "respect-robots", false, "consult robots.txt before fetching")
	flags.StringVar(&f.sourceDir, "source-dir", "", "read <dir>/<user>.json instead of fetching from Reddit")
	flags.StringVar(&f.httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	flags.StringVar(&f.httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// Analysis flags
	flags.StringVar(&f.topicModel, "topic-model", "", "topic strategy (lda, keyword)")
	flags.StringSliceVar(&f.skip, "skip", nil, "analyzers to skip (sentiment, personality, writing_style, topics, social, activity)")

	// LLM flags
	flags.BoolVar(&f.llmEnabled, "llm", false, "enable LLM persona narrative")
	flags.StringVar(&f.llmProvider, "llm-provider", "", "LLM provider (openai, openrouter, anthropic, ollama)")
	flags.StringVar(&f.llmModel, "llm-model", "", "LLM model name")
}

// apply overrides cfg with the flags the user actually set
func (f *profileFlags) apply(cmd *cobra.Command, cfg *model.Config) {
	changed := cmd.Flags().Changed

	if changed("output-dir") {
		cfg.Output.Dir = f.outputDir
	}
	if f.noJSON {
		cfg.Output.JSON = false
	}
	if f.noMarkdown {
		cfg.Output.Markdown = false
	}
	if changed("limit") {
		cfg.Source.Limit = f.limit
	}
	if changed("ua") {
		cfg.HTTP.UserAgent = f.userAgent
	}
	if f.noCache {
		cfg.Cache.Enabled = false
	}
	if f.insecureTLS {
		cfg.HTTP.InsecureTLS = true
	}
	if changed("respect-robots") {
		cfg.Source.RespectRobots = f.respectRobots
	}
	if changed("source-dir") {
		cfg.Source.Dir = f.sourceDir
	}
	if changed("http-proxy") {
		cfg.HTTP.HTTPProxy = f.httpProxy
	}
	if changed("https-proxy") {
		cfg.HTTP.HTTPSProxy = f.httpsProxy
	}
	if changed("topic-model") {
		cfg.Analysis.TopicModel = f.topicModel
	}
	if changed("skip") {
		cfg.Analysis.SkipAnalyzers = f.skip
	}
	if changed("llm") {
		cfg.LLM.Enabled = f.llmEnabled
	}
	if changed("llm-provider") {
		cfg.LLM.Provider = f.llmProvider
	}
	if changed("llm-model") {
		cfg.LLM.Model = f.llmModel
	}
	cfg.Output.Verbose = cfg.Output.Verbose || verbose
}

// buildConfig loads configuration, applies the command's flags and resolves
// provider credentials for the final provider choice
func (f *profileFlags) buildConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	f.apply(cmd, cfg)
	if err := pipeline.ValidateAnalysisConfig(cfg.Analysis); err != nil {
		return nil, err
	}
	resolveCredentials(cfg)
	return cfg, nil
}
