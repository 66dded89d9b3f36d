package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/persona/internal/lexicon"
	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/textutil"
)

var communityRe = regexp.MustCompile(`/r/(\w+)`)

// Behavioral pattern names in reporting order
const (
	PatternQuestionAsker = "question_asker"
	PatternAdviceGiver   = "advice_giver"
	PatternStoryteller   = "storyteller"
	PatternDebater       = "debater"
	PatternSupporter     = "supporter"
)

var behaviorOrder = []string{PatternQuestionAsker, PatternAdviceGiver, PatternStoryteller, PatternDebater, PatternSupporter}

// SentimentAnalyzer scores polarity, emotions and behavioral patterns per item
type SentimentAnalyzer struct{}

// NewSentimentAnalyzer creates a new sentiment analyzer
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{}
}

// Analyze runs every sentiment and behavior measure over the set
func (a *SentimentAnalyzer) Analyze(set model.ContentSet) model.SentimentResult {
	items := set.Flatten()

	result := model.SentimentResult{
		Scores:      make([]model.ItemSentiment, 0, len(items)),
		Emotions:    a.Emotions(items),
		Behavior:    a.BehavioralPatterns(items),
		Communities: a.CommunityFrequency(items),
		Engagement:  a.Engagement(items),
	}

	for _, item := range items {
		result.Scores = append(result.Scores, model.ItemSentiment{
			TextPreview: textutil.Preview(item.Text, 100),
			Sentiment:   ScoreSentiment(item.Text),
			Category:    item.Category,
		})
	}

	result.Insights = SentimentInsights(result)
	return result
}

// ScoreSentiment returns (pos - neg) / (pos + neg) over keyword presence, 0 when neither occurs
func ScoreSentiment(text string) float64 {
	lower := strings.ToLower(text)
	pos := textutil.CountPresent(lower, lexicon.PositiveWords)
	neg := textutil.CountPresent(lower, lexicon.NegativeWords)
	if pos+neg == 0 {
		return 0
	}
	return textutil.Clamp(float64(pos-neg)/float64(pos+neg), -1, 1)
}

// Emotions returns the percentage of items matching each emotion lexicon
func (a *SentimentAnalyzer) Emotions(items []model.ContentItem) map[string]float64 {
	out := make(map[string]float64, len(lexicon.Emotions))
	for _, emotion := range lexicon.Emotions {
		matched := 0
		for _, item := range items {
			if textutil.ContainsAny(strings.ToLower(item.Text), emotion.Terms) {
				matched++
			}
		}
		out[emotion.Name] = textutil.Percent(matched, len(items))
	}
	return out
}

// BehavioralPatterns returns the percentage of items matching each behavioral detector
func (a *SentimentAnalyzer) BehavioralPatterns(items []model.ContentItem) map[string]float64 {
	counts := make(map[string]int, len(behaviorOrder))

	for _, item := range items {
		text := strings.ToLower(item.Text)

		if strings.Contains(text, "?") || textutil.HasAnyPrefix(text, lexicon.Interrogatives) {
			counts[PatternQuestionAsker]++
		}
		if textutil.ContainsAny(text, lexicon.AdvicePhrases) {
			counts[PatternAdviceGiver]++
		}
		if textutil.Len(text) > lexicon.StorytellerMinSize && textutil.ContainsAny(text, lexicon.StoryPhrases) {
			counts[PatternStoryteller]++
		}
		if textutil.ContainsAny(text, lexicon.DebatePhrases) {
			counts[PatternDebater]++
		}
		if textutil.ContainsAny(text, lexicon.SupportPhrases) {
			counts[PatternSupporter]++
		}
	}

	out := make(map[string]float64, len(behaviorOrder))
	for _, name := range behaviorOrder {
		out[name] = textutil.Percent(counts[name], len(items))
	}
	return out
}

// CommunityFrequency counts /r/<name> references in source locators and keeps the top 10
func (a *SentimentAnalyzer) CommunityFrequency(items []model.ContentItem) []model.Count {
	counter := textutil.NewCounter()
	for _, item := range items {
		for _, m := range communityRe.FindAllStringSubmatch(item.SourceLocator, -1) {
			counter.Add(m[1])
		}
	}
	return counter.MostCommon(10)
}

// Engagement averages content length by category
func (a *SentimentAnalyzer) Engagement(items []model.ContentItem) model.EngagementSummary {
	var postTotal, commentTotal, posts, comments int
	for _, item := range items {
		if item.Category == model.CategoryPost {
			posts++
			postTotal += textutil.Len(item.Text)
		} else {
			comments++
			commentTotal += textutil.Len(item.Text)
		}
	}

	return model.EngagementSummary{
		AvgPostLength:    textutil.Ratio(float64(postTotal), float64(posts)),
		AvgCommentLength: textutil.Ratio(float64(commentTotal), float64(comments)),
		TotalPosts:       posts,
		TotalComments:    comments,
		EngagementRatio:  textutil.Ratio(float64(comments), float64(posts+comments)),
	}
}

// SentimentInsights summarizes overall tone, the strongest behavior and the top community
func SentimentInsights(r model.SentimentResult) []string {
	insights := []string{}
	if len(r.Scores) == 0 {
		return insights
	}

	total := 0.0
	for _, s := range r.Scores {
		total += s.Sentiment
	}
	mean := total / float64(len(r.Scores))
	switch {
	case mean > 0.2:
		insights = append(insights, "Overall tone is positive")
	case mean < -0.2:
		insights = append(insights, "Overall tone is negative")
	default:
		insights = append(insights, "Overall tone is neutral")
	}

	top, topPct := "", 0.0
	for _, name := range behaviorOrder {
		if r.Behavior[name] > topPct {
			top, topPct = name, r.Behavior[name]
		}
	}
	if topPct > 50 {
		label := strings.ReplaceAll(top, "_", " ")
		insights = append(insights, fmt.Sprintf("Strongest behavioral pattern: %s (%.0f%% of content)", label, topPct))
	}

	if len(r.Communities) > 0 {
		insights = append(insights, fmt.Sprintf("Most active in r/%s", r.Communities[0].Key))
	}

	return insights
}
