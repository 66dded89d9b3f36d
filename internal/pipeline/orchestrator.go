package pipeline

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ppiankov/persona/internal/analyze"
	"github.com/ppiankov/persona/internal/model"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Analyzer names accepted by AnalysisConfig.SkipAnalyzers
const (
	AnalyzerSentiment    = "sentiment"
	AnalyzerPersonality  = "personality"
	AnalyzerWritingStyle = "writing_style"
	AnalyzerTopics       = "topics"
	AnalyzerSocial       = "social"
	AnalyzerActivity     = "activity"
)

// AnalyzerNames lists every analyzer in report order
var AnalyzerNames = []string{AnalyzerSentiment, AnalyzerPersonality, AnalyzerWritingStyle, AnalyzerTopics, AnalyzerSocial, AnalyzerActivity}

// TopicModels lists the accepted AnalysisConfig.TopicModel values
var TopicModels = []string{string(model.TopicStrategyModel), string(model.TopicStrategyKeyword)}

// ValidateAnalysisConfig rejects unknown topic models and analyzer names.
// Matching ignores case and surrounding spaces; an empty topic model means lda.
func ValidateAnalysisConfig(cfg model.AnalysisConfig) error {
	if tm := normalizeName(cfg.TopicModel); tm != "" && !slices.Contains(TopicModels, tm) {
		return fmt.Errorf("unknown topic model %q (want one of: %s)", cfg.TopicModel, strings.Join(TopicModels, ", "))
	}
	for _, name := range cfg.SkipAnalyzers {
		if !slices.Contains(AnalyzerNames, normalizeName(name)) {
			return fmt.Errorf("unknown analyzer %q (want one of: %s)", name, strings.Join(AnalyzerNames, ", "))
		}
	}
	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Orchestrator runs every analyzer over one content set
type Orchestrator struct {
	sentiment   *analyze.SentimentAnalyzer
	personality *analyze.PersonalityAnalyzer
	style       *analyze.StyleAnalyzer
	topics      *analyze.TopicAnalyzer
	social      *analyze.SocialAnalyzer
	activity    *analyze.ActivityAnalyzer
	skip        map[string]bool
}

// NewOrchestrator builds the analyzers from cfg. TopicModel "keyword" disables
// the statistical topic modeler. cfg is expected to pass ValidateAnalysisConfig.
func NewOrchestrator(cfg model.AnalysisConfig, log logrus.FieldLogger) *Orchestrator {
	var modeler analyze.Modeler
	if normalizeName(cfg.TopicModel) != string(model.TopicStrategyKeyword) {
		modeler = analyze.NewLDAModeler(cfg.NumTopics, cfg.LDAIterations, cfg.LDASeed)
	}

	skip := make(map[string]bool, len(cfg.SkipAnalyzers))
	for _, name := range cfg.SkipAnalyzers {
		skip[normalizeName(name)] = true
	}

	return &Orchestrator{
		sentiment:   analyze.NewSentimentAnalyzer(),
		personality: analyze.NewPersonalityAnalyzer(),
		style:       analyze.NewStyleAnalyzer(),
		topics:      analyze.NewTopicAnalyzer(modeler, log),
		social:      analyze.NewSocialAnalyzer(),
		activity:    analyze.NewActivityAnalyzer(),
		skip:        skip,
	}
}

// Sentiment runs the sentiment & behavior analyzer
func (o *Orchestrator) Sentiment(set model.ContentSet) model.SentimentResult {
	return o.sentiment.Analyze(set)
}

// Personality runs the Big Five analyzer
func (o *Orchestrator) Personality(set model.ContentSet) model.PersonalityResult {
	return o.personality.Analyze(set)
}

// WritingStyle runs the writing style analyzer
func (o *Orchestrator) WritingStyle(set model.ContentSet) model.WritingStyleResult {
	return o.style.Analyze(set)
}

// Topics runs the topic analyzer
func (o *Orchestrator) Topics(set model.ContentSet) model.TopicResult {
	return o.topics.Analyze(set)
}

// Social runs the social network analyzer
func (o *Orchestrator) Social(set model.ContentSet) model.SocialResult {
	return o.social.Analyze(set)
}

// Activity runs the activity timeline analyzer
func (o *Orchestrator) Activity(set model.ContentSet) model.ActivityResult {
	return o.activity.Analyze(set)
}

// AnalyzeAll runs the analyzers concurrently. Skipped analyzers report the
// result of an empty content set. The only error is ctx cancellation.
func (o *Orchestrator) AnalyzeAll(ctx context.Context, set model.ContentSet) (model.Analysis, error) {
	var analysis model.Analysis
	g, gctx := errgroup.WithContext(ctx)

	run := func(name string, fn func(model.ContentSet)) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			input := set
			if o.skip[name] {
				input = model.NewContentSet()
			}
			fn(input)
			return nil
		})
	}

	// Each goroutine writes a distinct field
	run(AnalyzerSentiment, func(s model.ContentSet) { analysis.Sentiment = o.Sentiment(s) })
	run(AnalyzerPersonality, func(s model.ContentSet) { analysis.Personality = o.Personality(s) })
	run(AnalyzerWritingStyle, func(s model.ContentSet) { analysis.WritingStyle = o.WritingStyle(s) })
	run(AnalyzerTopics, func(s model.ContentSet) { analysis.Topics = o.Topics(s) })
	run(AnalyzerSocial, func(s model.ContentSet) { analysis.Social = o.Social(s) })
	run(AnalyzerActivity, func(s model.ContentSet) { analysis.Activity = o.Activity(s) })

	if err := g.Wait(); err != nil {
		return model.Analysis{}, err
	}
	return analysis, nil
}
