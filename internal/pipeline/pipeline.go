package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ppiankov/persona/internal/cache"
	"github.com/ppiankov/persona/internal/llm"
	"github.com/ppiankov/persona/internal/logging"
	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/source"
	"github.com/ppiankov/persona/internal/util"
	"github.com/ppiankov/persona/internal/worker"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Pipeline orchestrates acquisition, analysis and narrative generation
type Pipeline struct {
	source       source.Source
	sourceName   string
	store        *cache.ContentStore // nil when caching is disabled
	orchestrator *Orchestrator
	narrator     *llm.Narrator // nil when narratives are disabled
	renderer     *Renderer
	log          logrus.FieldLogger
	now          func() time.Time
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithCache caches acquired content sets under keys derived from sourceName
func WithCache(store *cache.ContentStore, sourceName string) Option {
	return func(p *Pipeline) {
		p.store = store
		p.sourceName = sourceName
	}
}

// WithNarrator enables model-written narratives
func WithNarrator(n *llm.Narrator) Option {
	return func(p *Pipeline) { p.narrator = n }
}

// WithRenderer sets the renderer used by RenderReport
func WithRenderer(r *Renderer) Option {
	return func(p *Pipeline) { p.renderer = r }
}

// WithLogger sets the pipeline logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Pipeline) { p.log = logging.OrDiscard(log) }
}

// WithClock overrides the report timestamp source
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New assembles a pipeline from its parts
func New(src source.Source, orchestrator *Orchestrator, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:       src,
		orchestrator: orchestrator,
		renderer:     NewRenderer("output"),
		log:          logging.Discard(),
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewPipeline wires a pipeline from configuration
func NewPipeline(cfg *model.Config, log logrus.FieldLogger) *Pipeline {
	log = logging.OrDiscard(log)

	var (
		src        source.Source
		sourceName string
	)
	if cfg.Source.Dir != "" {
		src = source.NewFileSource(cfg.Source.Dir)
		sourceName = "file"
	} else {
		fetcher := source.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.InsecureTLS, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy)
		fetcher.SetAttempts(cfg.HTTP.MaxRetries)

		opts := []source.RedditOption{
			source.WithThrottle(worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)),
			source.WithLimit(cfg.Source.Limit),
			source.WithLogger(log),
		}
		if cfg.Source.RespectRobots {
			opts = append(opts, source.WithRobots(util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)))
		}
		src = source.NewRedditClient(fetcher, cfg.Source.BaseURL, opts...)
		sourceName = "reddit"
	}

	opts := []Option{
		WithLogger(log),
		WithRenderer(NewRenderer(cfg.Output.Dir)),
	}

	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		opts = append(opts, WithCache(cache.NewContentStore(layered, cfg.Cache.TTL), sourceName))
	}

	if cfg.LLM.Enabled {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
		if err != nil {
			// Narratives then carry a "not configured" warning instead of failing the run
			log.WithField("error", err).Warn("llm provider unavailable")
		}
		opts = append(opts, WithNarrator(llm.NewNarrator(provider, log)))
	}

	return New(src, NewOrchestrator(cfg.Analysis, log), opts...)
}

// Profile acquires, analyzes and optionally narrates one account
func (p *Pipeline) Profile(ctx context.Context, username string) (*model.Report, error) {
	report, set, err := p.analyze(ctx, username)
	if err != nil {
		return nil, err
	}

	if p.narrator != nil {
		report.Persona = p.narrator.GeneratePersona(ctx, report.Username, PersonaBlock(set))
	}

	return report, nil
}

// Compare profiles two accounts concurrently and asks for a contrast of their content
func (p *Pipeline) Compare(ctx context.Context, username1, username2 string) (*model.Comparison, error) {
	var (
		reports [2]*model.Report
		sets    [2]model.ContentSet
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range []string{username1, username2} {
		g.Go(func() error {
			report, set, err := p.analyze(gctx, name)
			if err != nil {
				return err
			}
			reports[i], sets[i] = report, set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cmp := &model.Comparison{
		Usernames:   [2]string{reports[0].Username, reports[1].Username},
		Reports:     reports,
		GeneratedAt: p.now(),
	}
	if p.narrator != nil {
		cmp.Narrative = p.narrator.Compare(ctx,
			reports[0].Username, ComparisonBlock(sets[0]),
			reports[1].Username, ComparisonBlock(sets[1]))
	}

	return cmp, nil
}

func (p *Pipeline) analyze(ctx context.Context, username string) (*model.Report, model.ContentSet, error) {
	name := source.ExtractUsername(username)
	if name == "" {
		return nil, nil, fmt.Errorf("empty username in %q", username)
	}

	set, err := p.acquire(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	analysis, err := p.orchestrator.AnalyzeAll(ctx, set)
	if err != nil {
		return nil, nil, fmt.Errorf("analyze %s: %w", name, err)
	}

	counts := make(map[string]int, len(set))
	for section, items := range set {
		counts[section] = len(items)
	}

	p.log.WithFields(logrus.Fields{"user": name, "items": set.Len()}).Info("profile analyzed")

	return &model.Report{
		Username:    name,
		SourceURL:   source.ProfileURL(name),
		GeneratedAt: p.now(),
		ItemCounts:  counts,
		Analysis:    analysis,
		Principles:  model.DefaultPrinciples(),
		Samples:     samples(set, sampleCount),
	}, set, nil
}

// acquire reads through the content cache when one is configured
func (p *Pipeline) acquire(ctx context.Context, name string) (model.ContentSet, error) {
	var key string
	if p.store != nil {
		key = cache.CacheKey(p.sourceName, name)
		if set, ok := p.store.Load(key); ok {
			p.log.WithField("user", name).Debug("content cache hit")
			return set, nil
		}
	}

	set, err := p.source.FetchUser(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", name, err)
	}

	if p.store != nil {
		if err := p.store.Save(key, set); err != nil {
			p.log.WithFields(logrus.Fields{"user": name, "error": err}).Warn("content cache write failed")
		}
	}

	return set, nil
}

// OutputOptions selects the artifacts written by RenderReport and RenderComparison
type OutputOptions struct {
	JSON     bool
	Markdown bool
}

// RenderReport writes the selected report artifacts plus the persona text
// when a narrative was generated. It returns the written paths.
func (p *Pipeline) RenderReport(report *model.Report, opts OutputOptions) ([]string, error) {
	var written []string
	base := safeName(report.Username) + "_report"

	if opts.JSON {
		path := p.renderer.Path(base + ".json")
		if err := p.renderer.RenderJSON(report, path); err != nil {
			return written, fmt.Errorf("render JSON: %w", err)
		}
		written = append(written, path)
	}

	if opts.Markdown {
		path := p.renderer.Path(base + ".md")
		if err := p.renderer.RenderMarkdown(report, path); err != nil {
			return written, fmt.Errorf("render markdown: %w", err)
		}
		written = append(written, path)
	}

	if report.Persona != nil && report.Persona.Enabled {
		path, err := p.renderer.SavePersona(report.Username, report.Persona.Text, report.GeneratedAt)
		if err != nil {
			return written, fmt.Errorf("save persona: %w", err)
		}
		written = append(written, path)
	}

	return written, nil
}

// RenderComparison writes the selected comparison artifacts and returns their paths
func (p *Pipeline) RenderComparison(cmp *model.Comparison, opts OutputOptions) ([]string, error) {
	var written []string
	base := fmt.Sprintf("%s_vs_%s_comparison", safeName(cmp.Usernames[0]), safeName(cmp.Usernames[1]))

	if opts.JSON {
		path := p.renderer.Path(base + ".json")
		if err := p.renderer.RenderJSON(cmp, path); err != nil {
			return written, fmt.Errorf("render JSON: %w", err)
		}
		written = append(written, path)
	}

	if opts.Markdown {
		path := p.renderer.Path(base + ".md")
		if err := p.renderer.RenderComparisonMarkdown(cmp, path); err != nil {
			return written, fmt.Errorf("render markdown: %w", err)
		}
		written = append(written, path)
	}

	return written, nil
}

// Summarize prints a digest of report to w
func (p *Pipeline) Summarize(w io.Writer, report *model.Report) {
	p.renderer.RenderSummary(w, report)
}
