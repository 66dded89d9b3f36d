package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ppiankov/persona/internal/pipeline"
	"github.com/ppiankov/persona/internal/worker"
	"github.com/spf13/cobra"
)

var (
	batchFlags  profileFlags
	concurrency int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Profile many accounts from a file in parallel",
	Long: `Batch profiles multiple accounts concurrently:
- Read usernames or profile URLs from the input file (one per line, # comments)
- Profile accounts in parallel with a configurable worker count
- Requests share one per-host rate limiter
- Write individual reports for each account

Example:
  persona batch users.txt
  persona batch users.txt --concurrency 8 --output-dir ./reports
  persona batch users.txt --timeout 30m --no-cache`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchFlags.register(batchCmd, 30*time.Minute)
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, fmt.Sprintf("number of concurrent workers (default from config, max %d)", runtime.NumCPU()*4))
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := batchFlags.buildConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}
	if cfg.Concurrency.Workers <= 0 {
		cfg.Concurrency.Workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), batchFlags.timeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Persona Batch Processing\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", cfg.Output.Dir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchFlags.timeout)
	if cfg.LLM.Enabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	}
	fmt.Fprintf(os.Stderr, "\n")

	p := pipeline.NewPipeline(cfg, logger)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	opts := pipeline.OutputOptions{JSON: cfg.Output.JSON, Markdown: cfg.Output.Markdown}
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Username, result.Error)
			continue
		}

		written, err := p.RenderReport(result.Report, opts)
		if err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Username, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%d items, %d files)\n", result.Report.Username, itemCount(result.Report.ItemCounts), len(written))
		if cfg.Output.Verbose {
			for _, path := range written {
				fmt.Fprintf(os.Stderr, "    %s\n", path)
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d accounts\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", cfg.Output.Dir)
	fmt.Fprintf(os.Stderr, "\n")

	if successCount == 0 && failureCount > 0 {
		return fmt.Errorf("all %d accounts failed", failureCount)
	}
	return nil
}

func itemCount(counts map[string]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
