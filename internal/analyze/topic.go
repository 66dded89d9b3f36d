package analyze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/persona/internal/lexicon"
	"github.com/ppiankov/persona/internal/logging"
	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/textutil"
	"github.com/sirupsen/logrus"
)

// InsufficientTopicContent is the single insight reported when too little text exists
const InsufficientTopicContent = "Not enough content for meaningful topic analysis"

// TopicAnalyzer discovers discussion topics. It uses the statistical modeler when
// one is configured and falls back to keyword categories otherwise, or whenever
// the modeler fails.
type TopicAnalyzer struct {
	modeler Modeler
	log     logrus.FieldLogger
}

// NewTopicAnalyzer creates a topic analyzer. A nil modeler selects the keyword strategy.
func NewTopicAnalyzer(modeler Modeler, log logrus.FieldLogger) *TopicAnalyzer {
	if log == nil {
		log = logging.Discard()
	}
	return &TopicAnalyzer{modeler: modeler, log: log}
}

// Strategy reports which strategy Analyze tries first
func (a *TopicAnalyzer) Strategy() model.TopicStrategy {
	if a.modeler == nil {
		return model.TopicStrategyKeyword
	}
	return model.TopicStrategyModel
}

// Analyze gates on content volume, runs the selected strategy and derives insights
func (a *TopicAnalyzer) Analyze(set model.ContentSet) model.TopicResult {
	var docs []string
	for _, text := range set.Texts() {
		if textutil.Len(strings.TrimSpace(text)) > 50 {
			docs = append(docs, text)
		}
	}

	if len(docs) < 3 {
		result := emptyTopicResult()
		result.Insights = []string{InsufficientTopicContent}
		return result
	}

	var result model.TopicResult
	if a.modeler != nil {
		r, err := a.runModeler(docs)
		if err != nil {
			a.log.WithFields(logrus.Fields{
				"strategy":  model.TopicStrategyModel,
				"documents": len(docs),
				"error":     err,
			}).Warn("topic model failed, using keyword categories")
			result = KeywordTopics(docs)
		} else {
			result = r
		}
	} else {
		result = KeywordTopics(docs)
	}

	result.KeyPhrases = ExtractKeyPhrases(docs, 20)
	result.Insights = TopicInsights(result)
	return result
}

// runModeler maps both errors and panics from the modeler to an error
func (a *TopicAnalyzer) runModeler(docs []string) (result model.TopicResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("topic model panic: %v", r)
		}
	}()
	return a.modeler.Model(docs)
}

func emptyTopicResult() model.TopicResult {
	return model.TopicResult{
		Topics:                []model.Topic{},
		Distribution:          []model.TopicShare{},
		DominantTopics:        []string{},
		TopicKeywords:         map[string][]string{},
		ContentCategorization: map[string][]string{},
		KeyPhrases:            []model.Count{},
		Insights:              []string{},
	}
}

// KeywordTopics scores each document against the fixed topic categories
func KeywordTopics(docs []string) model.TopicResult {
	result := emptyTopicResult()
	result.Strategy = model.TopicStrategyKeyword

	scores := make([]int, len(lexicon.TopicCategories))
	content := make([][]string, len(lexicon.TopicCategories))

	for _, doc := range docs {
		lower := strings.ToLower(doc)
		best, bestScore := -1, 0
		for i, category := range lexicon.TopicCategories {
			n := textutil.CountPresent(lower, category.Terms)
			scores[i] += n
			if n > bestScore {
				best, bestScore = i, n
			}
		}
		if best >= 0 {
			content[best] = append(content[best], textutil.Preview(doc, 100)+"...")
		}
	}

	var active []int
	total := 0
	for i, s := range scores {
		if s > 0 {
			active = append(active, i)
			total += s
		}
	}
	if len(active) == 0 {
		return result
	}

	sort.SliceStable(active, func(a, b int) bool { return scores[active[a]] > scores[active[b]] })

	for rank, i := range active {
		category := lexicon.TopicCategories[i]
		share := float64(scores[i]) / float64(total)
		keywords := append([]string(nil), category.Terms[:5]...)

		result.Topics = append(result.Topics, model.Topic{
			ID:       rank,
			Label:    category.Name,
			Keywords: keywords,
			Weights:  []float64{share, share, share, share, share},
		})
		result.TopicKeywords[category.Name] = append([]string(nil), keywords...)
		result.Distribution = append(result.Distribution, model.TopicShare{Label: category.Name, Weight: share})

		examples := content[i]
		if len(examples) > 3 {
			examples = examples[:3]
		}
		result.ContentCategorization[category.Name] = append([]string{}, examples...)
	}

	// active is sorted by score with enumeration order on ties, so the first entry
	// is the first maximal category
	result.DominantTopics = []string{lexicon.TopicCategories[active[0]].Name}
	return result
}

// ExtractKeyPhrases counts repeated bigrams and trigrams across docs
func ExtractKeyPhrases(docs []string, n int) []model.Count {
	words := textutil.Words(strings.Join(docs, " "))

	phrases := textutil.NewCounter()
	for i := 0; i+1 < len(words); i++ {
		if p := words[i] + " " + words[i+1]; textutil.Len(p) > 6 {
			phrases.Add(p)
		}
	}
	for i := 0; i+2 < len(words); i++ {
		if p := words[i] + " " + words[i+1] + " " + words[i+2]; textutil.Len(p) > 10 {
			phrases.Add(p)
		}
	}

	filtered := textutil.NewCounter()
	for _, p := range phrases.Keys() {
		if c := phrases.Get(p); c > 1 && !lexicon.StopPhrases[p] {
			filtered.AddN(p, c)
		}
	}
	return filtered.MostCommon(n)
}

// TopicInsights describes the dominant topic, topic spread and category coverage
func TopicInsights(r model.TopicResult) []string {
	insights := []string{}

	if len(r.Topics) == 0 {
		return append(insights, "Unable to identify distinct topics from the content")
	}

	if len(r.DominantTopics) > 0 {
		dominant := r.DominantTopics[0]
		if r.Strategy == model.TopicStrategyModel {
			for _, t := range r.Topics {
				if t.Label == dominant {
					n := 3
					if len(t.Keywords) < n {
						n = len(t.Keywords)
					}
					insights = append(insights, "Primary discussion topics include: "+strings.Join(t.Keywords[:n], ", "))
					break
				}
			}
		} else {
			insights = append(insights, "Most frequently discusses: "+dominant)
		}
	}

	if len(r.Distribution) > 0 {
		activeTopics := 0
		for _, share := range r.Distribution {
			if share.Weight > 0.1 {
				activeTopics++
			}
		}
		if activeTopics > 3 {
			insights = append(insights, "Shows diverse interests across multiple topics")
		} else if activeTopics <= 2 {
			insights = append(insights, "Tends to focus on specific topic areas")
		}
	}

	withContent := 0
	for _, examples := range r.ContentCategorization {
		if len(examples) > 0 {
			withContent++
		}
	}
	if withContent > 1 {
		insights = append(insights, fmt.Sprintf("Active in %d different topic areas", withContent))
	}

	return insights
}
