package analyze

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ppiankov/persona/internal/lexicon"
	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/textutil"
)

var (
	listMarkupRe  = regexp.MustCompile(`\d+\.|\*|-`)
	repeatPunctRe = regexp.MustCompile(`[!?]{2,}`)
	wordRunRe     = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	shoutingRe    = regexp.MustCompile(`^[A-Z]{3,}$`)
)

// Trait levels
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// PersonalityAnalyzer approximates Big Five trait scores from keyword density
type PersonalityAnalyzer struct{}

// NewPersonalityAnalyzer creates a new personality analyzer
func NewPersonalityAnalyzer() *PersonalityAnalyzer {
	return &PersonalityAnalyzer{}
}

// Analyze scores every trait, selects dominant traits and derives insights
func (a *PersonalityAnalyzer) Analyze(set model.ContentSet) model.PersonalityResult {
	texts := set.Texts()
	if len(texts) == 0 {
		return model.PersonalityResult{
			Scores:          []model.TraitScore{},
			TraitIndicators: map[string][]string{},
			DominantTraits:  []string{},
			Insights:        []string{},
		}
	}

	scores := make([]model.TraitScore, 0, len(lexicon.Traits))
	for _, trait := range lexicon.Traits {
		scores = append(scores, a.scoreTrait(trait, texts))
	}

	result := model.PersonalityResult{
		Scores:          scores,
		TraitIndicators: TraitIndicators(texts),
		DominantTraits:  DominantTraits(scores),
	}
	result.Insights = PersonalityInsights(result)
	return result
}

// scoreTrait counts keyword occurrences per category plus the trait's structural signal
func (a *PersonalityAnalyzer) scoreTrait(trait lexicon.Trait, texts []string) model.TraitScore {
	indicators := make([]model.Count, 0, len(trait.Categories)+1)
	raw := 0

	for _, category := range trait.Categories {
		n := 0
		for _, text := range texts {
			n += textutil.CountOccurrences(strings.ToLower(text), category.Terms)
		}
		indicators = append(indicators, model.Count{Key: category.Name, Count: n})
		raw += n
	}

	if name, n, ok := structuralSignal(trait.Name, texts); ok {
		indicators = append(indicators, model.Count{Key: name, Count: n})
		raw += n
	}

	score := textutil.Clamp(float64(raw)/float64(len(texts))*trait.Multiplier, 0, 100)
	level := TraitLevel(score)

	return model.TraitScore{
		Trait:       trait.Name,
		Score:       score,
		Level:       level,
		Percentile:  int(textutil.Clamp(float64(int(score)), 1, 99)),
		Description: lexicon.TraitDescriptions[trait.Name][level],
		Indicators:  indicators,
	}
}

// structuralSignal returns the non-lexical signal a trait adds to its raw count
func structuralSignal(trait string, texts []string) (string, int, bool) {
	switch trait {
	case lexicon.Conscientiousness:
		n := 0
		for _, text := range texts {
			if listMarkupRe.MatchString(text) {
				n++
			}
			if textutil.Len(text) > 200 && strings.Count(text, "\n") > 2 {
				n++
			}
		}
		return "structure_patterns", n, true

	case lexicon.Extraversion:
		n := 0
		for _, text := range texts {
			lower := strings.ToLower(text)
			if strings.Contains(text, "?") && textutil.ContainsAny(lower, lexicon.SecondPersonWords) {
				n++
			}
			n += strings.Count(text, "!")
			if textutil.HasAnyPrefix(lower, lexicon.GreetingPrefixes) {
				n++
			}
		}
		return "interaction_patterns", n, true

	case lexicon.Agreeableness:
		score := 0.0
		for _, text := range texts {
			lower := strings.ToLower(text)
			score += float64(textutil.CountPresent(lower, lexicon.PolitePhrases))
			if !textutil.ContainsAny(lower, lexicon.ConfrontationalWords) {
				score += 0.5
			}
		}
		return "politeness_patterns", int(score), true

	case lexicon.Neuroticism:
		score := 0.0
		for _, text := range texts {
			score += float64(len(repeatPunctRe.FindAllString(text, -1)))
			score += float64(countShouting(text))
			score += float64(strings.Count(text, "...")) * 0.5
		}
		return "emotional_intensity", int(score), true
	}
	return "", 0, false
}

// TraitLevel classifies a score: high above 60, medium above 30, otherwise low
func TraitLevel(score float64) string {
	switch {
	case score > 60:
		return LevelHigh
	case score > 30:
		return LevelMedium
	default:
		return LevelLow
	}
}

// DominantTraits returns the top two traits by score, plus the third when it exceeds 50.
// Equal scores keep enumeration order.
func DominantTraits(scores []model.TraitScore) []string {
	ranked := append([]model.TraitScore(nil), scores...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	dominant := []string{}
	for i, s := range ranked {
		if i < 2 || (i == 2 && s.Score > 50) {
			dominant = append(dominant, s.Trait)
		}
	}
	return dominant
}

// TraitIndicators lists behavioral statements backed by phrases in the combined text
func TraitIndicators(texts []string) map[string][]string {
	combined := strings.ToLower(strings.Join(texts, " "))
	has := func(terms ...string) bool { return textutil.ContainsAny(combined, terms) }

	out := map[string][]string{
		lexicon.Openness:          {},
		lexicon.Conscientiousness: {},
		lexicon.Extraversion:      {},
		lexicon.Agreeableness:     {},
		lexicon.Neuroticism:       {},
	}
	add := func(trait, s string) { out[trait] = append(out[trait], s) }

	if has("creative", "art") {
		add(lexicon.Openness, "Shows interest in creative activities")
	}
	if has("learn", "curious") {
		add(lexicon.Openness, "Demonstrates curiosity and learning orientation")
	}
	if has("plan", "organize", "schedule") {
		add(lexicon.Conscientiousness, "Shows planning and organizational tendencies")
	}
	if has("goal", "achieve", "complete") {
		add(lexicon.Conscientiousness, "Demonstrates goal-oriented behavior")
	}
	if has("friends", "party", "social") {
		add(lexicon.Extraversion, "Shows social engagement preferences")
	}
	if strings.Count(combined, "!") > len(texts) {
		add(lexicon.Extraversion, "Uses enthusiastic language patterns")
	}
	if has("help", "support", "care") {
		add(lexicon.Agreeableness, "Shows helping and supportive behavior")
	}
	if has("thank", "please", "sorry") {
		add(lexicon.Agreeableness, "Uses polite and considerate language")
	}
	if has("stress", "worry", "anxious") {
		add(lexicon.Neuroticism, "Expresses stress and anxiety concerns")
	}
	if has("terrible", "awful", "worst") {
		add(lexicon.Neuroticism, "Uses emotionally intense negative language")
	}

	return out
}

// PersonalityInsights maps trait scores to statements in fixed evaluation order
func PersonalityInsights(r model.PersonalityResult) []string {
	insights := []string{}
	if len(r.Scores) == 0 {
		return insights
	}

	if len(r.DominantTraits) > 0 {
		names := make([]string, len(r.DominantTraits))
		for i, t := range r.DominantTraits {
			names[i] = titleCase(t)
		}
		insights = append(insights, "Dominant personality traits: "+strings.Join(names, ", "))
	}

	score := make(map[string]float64, len(r.Scores))
	for _, s := range r.Scores {
		score[s.Trait] = s.Score
		if s.Level == LevelHigh && s.Score > 70 {
			insights = append(insights, fmt.Sprintf("Shows strong %s: %s", titleCase(s.Trait), s.Description))
		}
	}

	if score[lexicon.Openness] > 60 && score[lexicon.Conscientiousness] > 60 {
		insights = append(insights, "Likely to be innovative while maintaining organized approach")
	}
	if score[lexicon.Extraversion] > 60 && score[lexicon.Agreeableness] > 60 {
		insights = append(insights, "Tends to be socially engaging and collaborative")
	}
	if score[lexicon.Neuroticism] < 30 {
		insights = append(insights, "Demonstrates emotional stability and resilience")
	} else if score[lexicon.Neuroticism] > 70 {
		insights = append(insights, "May be more sensitive to stress and emotional challenges")
	}

	return insights
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// countShouting counts words written entirely in three or more ASCII capitals.
// Word boundaries are Unicode-aware, so "ÉWOW" is one word and does not count.
func countShouting(text string) int {
	n := 0
	for _, w := range wordRunRe.FindAllString(text, -1) {
		if shoutingRe.MatchString(w) {
			n++
		}
	}
	return n
}
