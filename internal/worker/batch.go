package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/persona/internal/model"
)

// Profiler builds the report for one account
type Profiler interface {
	Profile(ctx context.Context, username string) (*model.Report, error)
}

// ProfileJob profiles one account
type ProfileJob struct {
	Index    int
	Username string
	Profiler Profiler
}

// Execute executes the profile job
func (j *ProfileJob) Execute(ctx context.Context) Result {
	report, err := j.Profiler.Profile(ctx, j.Username)
	return &ProfileResult{
		index:    j.Index,
		Username: j.Username,
		Report:   report,
		Error:    err,
	}
}

// ProfileResult represents the result of a profile job
type ProfileResult struct {
	index    int
	Username string
	Report   *model.Report
	Error    error
}

// GetError returns the error from the profile result
func (r *ProfileResult) GetError() error {
	return r.Error
}

// BatchProcessor profiles multiple accounts concurrently
type BatchProcessor struct {
	profiler    Profiler
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(profiler Profiler, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		profiler:    profiler,
		concurrency: concurrency,
	}
}

// ProcessUsernames profiles every username and returns results in input order.
// Accounts not started before ctx is cancelled carry the context error.
func (b *BatchProcessor) ProcessUsernames(ctx context.Context, usernames []string) []*ProfileResult {
	out := make([]*ProfileResult, len(usernames))
	if len(usernames) == 0 {
		return out
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, username := range usernames {
		if !pool.Submit(&ProfileJob{Index: i, Username: username, Profiler: b.profiler}) {
			break
		}
	}

	for _, result := range pool.Wait() {
		r := result.(*ProfileResult)
		out[r.index] = r
	}

	for i, r := range out {
		if r == nil {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			out[i] = &ProfileResult{index: i, Username: usernames[i], Error: err}
		}
	}

	return out
}

// ProcessFile reads usernames from a file and profiles them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ProfileResult, error) {
	usernames, err := ReadUsernamesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read usernames: %w", err)
	}

	return b.ProcessUsernames(ctx, usernames), nil
}

// ReadUsernamesFromFile reads one username or profile URL per line. Blank
// lines and '#' comments are skipped; duplicates keep their first position.
func ReadUsernamesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var usernames []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			usernames = append(usernames, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return usernames, nil
}
