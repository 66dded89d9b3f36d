package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/pipeline"
	"github.com/spf13/cobra"
)

var analyzeFlags profileFlags

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <username|profile-url>",
	Short: "Profile a single Reddit account",
	Long: `Analyze fetches an account's public posts and comments and builds:
- Sentiment and emotion profile
- Big Five personality approximation
- Writing style metrics
- Topics (LDA, keyword fallback)
- Social network and activity rhythm

Reports are written to the output directory as <user>_report.json and
<user>_report.md. With --llm, a narrative persona is saved next to them.

Example:
  persona analyze kojied
  persona analyze https://www.reddit.com/user/kojied/ --llm --llm-provider anthropic
  persona analyze kojied --source-dir ./dumps --topic-model keyword`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeFlags.register(analyzeCmd, 5*time.Minute)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := analyzeFlags.buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), analyzeFlags.timeout)
	defer cancel()

	if cfg.Output.Verbose {
		printRunHeader(cfg, args[0], analyzeFlags.timeout)
	}

	p := pipeline.NewPipeline(cfg, logger)

	report, err := p.Profile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("analyze %s: %w", args[0], err)
	}

	written, err := p.RenderReport(report, pipeline.OutputOptions{JSON: cfg.Output.JSON, Markdown: cfg.Output.Markdown})
	if err != nil {
		return err
	}

	p.Summarize(os.Stdout, report)
	printWritten(written)
	printNarrativeWarnings(report.Persona)

	return nil
}

func printRunHeader(cfg *model.Config, target string, timeout time.Duration) {
	fmt.Fprintf(os.Stderr, "Analyzing: %s\n", target)
	fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
	fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
	if cfg.Source.Dir != "" {
		fmt.Fprintf(os.Stderr, "Source: %s\n", cfg.Source.Dir)
	}
	fmt.Fprintf(os.Stderr, "Topics: %s\n", cfg.Analysis.TopicModel)
	if cfg.LLM.Enabled {
		fmt.Fprintf(os.Stderr, "LLM: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	}
	fmt.Fprintln(os.Stderr)
}

func printWritten(paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr)
	for _, path := range paths {
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", path)
	}
}

func printNarrativeWarnings(n *model.Narrative) {
	if n == nil {
		return
	}
	for _, w := range n.Warnings {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", w)
	}
}
