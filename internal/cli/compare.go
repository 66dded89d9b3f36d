package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/persona/internal/pipeline"
	"github.com/spf13/cobra"
)

var compareFlags profileFlags

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <user1> <user2>",
	Short: "Profile two accounts and contrast them",
	Long: `Compare profiles both accounts concurrently and writes
<user1>_vs_<user2>_comparison.json and .md with the personality traits side
by side. With --llm, a model-written comparison is included.

Example:
  persona compare kojied spez
  persona compare kojied spez --llm --llm-provider openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareFlags.register(compareCmd, 10*time.Minute)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := compareFlags.buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), compareFlags.timeout)
	defer cancel()

	if cfg.Output.Verbose {
		printRunHeader(cfg, args[0]+" vs "+args[1], compareFlags.timeout)
	}

	p := pipeline.NewPipeline(cfg, logger)

	cmp, err := p.Compare(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	written, err := p.RenderComparison(cmp, pipeline.OutputOptions{JSON: cfg.Output.JSON, Markdown: cfg.Output.Markdown})
	if err != nil {
		return err
	}

	for _, report := range cmp.Reports {
		p.Summarize(os.Stdout, report)
		fmt.Fprintln(os.Stdout)
	}
	if cmp.Narrative != nil && cmp.Narrative.Enabled {
		fmt.Fprintln(os.Stdout, cmp.Narrative.Text)
	}
	printWritten(written)
	printNarrativeWarnings(cmp.Narrative)

	return nil
}
