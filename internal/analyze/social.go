package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/persona/internal/lexicon"
	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/textutil"
)

var (
	mentionRe          = regexp.MustCompile(`/?u/([A-Za-z0-9_-]+)`)
	communitySegmentRe = regexp.MustCompile(`/r/([A-Za-z0-9_]+)/`)
)

// Engagement styles
const (
	StyleSupportive  = "supportive"
	StyleChallenging = "challenging"
	StyleInquisitive = "inquisitive"
	StyleNeutral     = "neutral"
)

// Cross-community behavior types
const (
	CommunityFocused  = "focused"
	CommunityDiverse  = "diverse"
	CommunityBalanced = "balanced"
)

// SocialAnalyzer measures mentions, reply behavior, community spread and social cues
type SocialAnalyzer struct{}

// NewSocialAnalyzer creates a new social network analyzer
func NewSocialAnalyzer() *SocialAnalyzer {
	return &SocialAnalyzer{}
}

// Analyze runs every social measure. Interaction patterns are computed before
// the aggregate metrics that depend on them.
func (a *SocialAnalyzer) Analyze(set model.ContentSet) model.SocialResult {
	items := set.Flatten()

	result := model.SocialResult{
		Mentions:     a.Mentions(items),
		Replies:      a.Replies(items),
		Community:    a.Community(items),
		Interactions: a.Interactions(items),
	}
	result.Metrics = SocialMetrics(result)
	result.Insights = SocialInsights(result)
	return result
}

// Mentions extracts u/<name> references and addressed replies
func (a *SocialAnalyzer) Mentions(items []model.ContentItem) model.MentionAnalysis {
	m := model.MentionAnalysis{
		DirectMentions:       []string{},
		ReplyTargets:         []string{},
		FrequentInteractions: []model.Count{},
	}

	users := textutil.NewCounter()
	total := 0
	for _, item := range items {
		for _, match := range mentionRe.FindAllStringSubmatch(item.Text, -1) {
			users.Add(match[1])
			total++
		}

		lower := strings.ToLower(item.Text)
		if strings.HasPrefix(strings.TrimSpace(item.Text), "@") || textutil.HasAnyPrefix(lower, lexicon.ReplyGreetings) {
			m.ReplyTargets = append(m.ReplyTargets, textutil.Preview(item.Text, 50)+"...")
		}
	}

	if total > 0 {
		m.FrequentInteractions = users.MostCommon(10)
		m.MentionFrequency = float64(total) / float64(len(items))
		m.DirectMentions = users.Keys()
	}
	return m
}

// Replies counts reply, supportive, disagreement and question phrases per item
func (a *SocialAnalyzer) Replies(items []model.ContentItem) model.ReplyBehavior {
	var replies, supportive, disagreement, questions int
	r := model.ReplyBehavior{}

	for _, item := range items {
		text := strings.ToLower(item.Text)
		replies += textutil.CountPresent(text, lexicon.ReplyPhrases)
		supportive += textutil.CountPresent(text, lexicon.SupportivePhrases)
		disagreement += textutil.CountPresent(text, lexicon.DisagreementPhrases)
		if textutil.ContainsAny(text, lexicon.QuestionStarters) || strings.Contains(text, "?") {
			questions++
		}
		if textutil.Len(text) > 100 && !textutil.ContainsAny(text, lexicon.ReplyPhrases) {
			r.ConversationStarters++
		}
	}

	n := float64(len(items))
	r.ReplyIndicators = textutil.Ratio(float64(replies), n)
	r.SupportiveResponses = textutil.Ratio(float64(supportive), n)
	r.DisagreementResponses = textutil.Ratio(float64(disagreement), n)
	r.QuestionResponses = textutil.Ratio(float64(questions), n)
	r.EngagementStyle = EngagementStyle(r)
	return r
}

// EngagementStyle classifies reply ratios in priority order
func EngagementStyle(r model.ReplyBehavior) string {
	switch {
	case r.SupportiveResponses > r.DisagreementResponses*2:
		return StyleSupportive
	case r.DisagreementResponses > r.SupportiveResponses*2:
		return StyleChallenging
	case r.QuestionResponses > 0.3:
		return StyleInquisitive
	default:
		return StyleNeutral
	}
}

// Community counts activity and average content length per community
func (a *SocialAnalyzer) Community(items []model.ContentItem) model.CommunityEngagement {
	activity := textutil.NewCounter()
	lengths := textutil.NewCounter()

	for _, item := range items {
		match := communitySegmentRe.FindStringSubmatch(item.SourceLocator)
		if match == nil {
			continue
		}
		activity.Add(match[1])
		lengths.AddN(match[1], textutil.Len(item.Text))
	}

	c := model.CommunityEngagement{
		Activity:        activity.MostCommon(10),
		Diversity:       activity.Len(),
		EngagementDepth: make(map[string]float64, activity.Len()),
	}
	for _, name := range activity.Keys() {
		c.EngagementDepth[name] = float64(lengths.Get(name)) / float64(activity.Get(name))
	}

	if activity.Len() > 1 {
		ranked := activity.MostCommon(1)
		concentration := float64(ranked[0].Count) / float64(activity.Total())
		switch {
		case concentration > 0.7:
			c.CrossCommunity = model.CrossCommunityBehavior{Type: CommunityFocused, Description: "Primarily active in one community"}
		case concentration < 0.3:
			c.CrossCommunity = model.CrossCommunityBehavior{Type: CommunityDiverse, Description: "Actively participates across multiple communities"}
		default:
			c.CrossCommunity = model.CrossCommunityBehavior{Type: CommunityBalanced, Description: "Balanced participation across communities"}
		}
	}
	return c
}

// Interactions detects interaction cues, social cues, help and collaboration phrases
func (a *SocialAnalyzer) Interactions(items []model.ContentItem) model.InteractionPatterns {
	p := model.InteractionPatterns{SocialCues: make(map[string]float64, len(lexicon.SocialCues))}
	cues := make([]int, len(lexicon.SocialCues))
	interactions, totalLength := 0, 0

	for _, item := range items {
		text := strings.ToLower(item.Text)
		totalLength += textutil.Len(item.Text)

		if textutil.ContainsAny(text, lexicon.InteractionIndicators) {
			interactions++
		}
		for i, cue := range lexicon.SocialCues {
			cues[i] += textutil.CountPresent(text, cue.Terms)
		}
		p.HelpSeeking += textutil.CountPresent(text, lexicon.HelpSeeking)
		p.HelpOffering += textutil.CountPresent(text, lexicon.HelpOffering)
		p.CollaborationIndicators += textutil.CountPresent(text, lexicon.CollaborationPhrases)
	}

	n := float64(len(items))
	p.InteractionFrequency = textutil.Ratio(float64(interactions), n)
	p.ResponseLengthAvg = textutil.Ratio(float64(totalLength), n)
	for i, cue := range lexicon.SocialCues {
		p.SocialCues[cue.Name] = textutil.Ratio(float64(cues[i]), n)
	}
	return p
}

// SocialMetrics derives the four aggregate scores, each clamped to [0, 100]
func SocialMetrics(r model.SocialResult) model.SocialMetrics {
	cueTotal := 0.0
	for _, cue := range lexicon.SocialCues {
		cueTotal += r.Interactions.SocialCues[cue.Name]
	}

	bonus := textutil.Clamp(float64(r.Community.Diversity*2), 0, 20)
	switch r.Community.CrossCommunity.Type {
	case CommunityDiverse:
		bonus += 30
	case CommunityBalanced:
		bonus += 20
	}

	rb := r.Replies
	return model.SocialMetrics{
		SocialEngagementScore:     textutil.Clamp((r.Mentions.MentionFrequency+r.Interactions.InteractionFrequency+cueTotal)*50, 0, 100),
		CommunityIntegrationScore: textutil.Clamp(30+bonus, 0, 100),
		InteractionDiversityScore: textutil.Clamp((rb.SupportiveResponses+rb.QuestionResponses+rb.DisagreementResponses)*100, 0, 100),
		HelpfulnessScore:          textutil.Clamp(float64(r.Interactions.HelpOffering+r.Interactions.CollaborationIndicators)*50, 0, 100),
	}
}

// SocialInsights turns social measures into statements in fixed evaluation order
func SocialInsights(r model.SocialResult) []string {
	insights := []string{}

	if len(r.Mentions.FrequentInteractions) > 0 {
		insights = append(insights, "Frequently interacts with u/"+r.Mentions.FrequentInteractions[0].Key)
	}

	switch f := r.Mentions.MentionFrequency; {
	case f > 0.1:
		insights = append(insights, "Actively mentions and engages with other users")
	case f < 0.05:
		insights = append(insights, "Tends to post independently with limited direct user interactions")
	}

	switch d := r.Community.Diversity; {
	case d > 10:
		insights = append(insights, fmt.Sprintf("Actively participates in %d+ different communities", d))
	case d > 5:
		insights = append(insights, "Engages with multiple communities regularly")
	case d <= 2:
		insights = append(insights, "Focuses primarily on specific communities")
	}

	switch r.Replies.EngagementStyle {
	case StyleSupportive:
		insights = append(insights, "Shows supportive and encouraging interaction style")
	case StyleChallenging:
		insights = append(insights, "Tends to engage in debates and express disagreements")
	case StyleInquisitive:
		insights = append(insights, "Frequently asks questions and seeks information")
	}

	switch s := r.Metrics.SocialEngagementScore; {
	case s > 70:
		insights = append(insights, "Demonstrates high social engagement and interaction")
	case s < 30:
		insights = append(insights, "Shows limited social interaction patterns")
	}

	if r.Metrics.HelpfulnessScore > 50 {
		insights = append(insights, "Often offers help and assistance to others")
	}

	switch r.Community.CrossCommunity.Type {
	case CommunityDiverse:
		insights = append(insights, "Maintains diverse interests across multiple communities")
	case CommunityFocused:
		insights = append(insights, "Shows strong loyalty to specific communities")
	}

	return insights
}
