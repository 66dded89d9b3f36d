package model

// SentimentResult is the output of the sentiment & behavior analyzer
type SentimentResult struct {
	Scores      []ItemSentiment    `json:"sentiment_scores"`
	Emotions    map[string]float64 `json:"emotion_analysis"`    // Percent of items per emotion
	Behavior    map[string]float64 `json:"behavioral_patterns"` // Percent of items per pattern
	Communities []Count            `json:"subreddit_analysis"`  // Top 10 communities
	Engagement  EngagementSummary  `json:"engagement_patterns"`
	Insights    []string           `json:"insights"`
}

// ItemSentiment is the polarity of a single item in [-1, 1]
type ItemSentiment struct {
	TextPreview string   `json:"text_preview"`
	Sentiment   float64  `json:"sentiment"`
	Category    Category `json:"type"`
}

// EngagementSummary aggregates content length by category
type EngagementSummary struct {
	AvgPostLength    float64 `json:"avg_post_length"`
	AvgCommentLength float64 `json:"avg_comment_length"`
	TotalPosts       int     `json:"total_posts"`
	TotalComments    int     `json:"total_comments"`
	EngagementRatio  float64 `json:"engagement_ratio"` // comments / (posts + comments)
}

// PersonalityResult is the output of the Big Five analyzer
type PersonalityResult struct {
	Scores          []TraitScore        `json:"personality_scores"` // Fixed trait enumeration order
	TraitIndicators map[string][]string `json:"trait_indicators"`
	DominantTraits  []string            `json:"dominant_traits"`
	Insights        []string            `json:"personality_insights"`
}

// TraitScore is one Big Five trait approximation
type TraitScore struct {
	Trait       string  `json:"trait"`
	Score       float64 `json:"score"` // [0, 100]
	Level       string  `json:"level"` // high, medium, low
	Percentile  int     `json:"percentile"`
	Description string  `json:"description"`
	Indicators  []Count `json:"indicators"` // Raw count per keyword category and structural signal
}

// WritingStyleResult is the output of the writing style analyzer
type WritingStyleResult struct {
	Linguistic    LinguisticMetrics   `json:"linguistic_metrics"`
	Vocabulary    VocabularyAnalysis  `json:"vocabulary_analysis"`
	Punctuation   PunctuationPatterns `json:"punctuation_patterns"`
	Formality     FormalityAnalysis   `json:"formality_analysis"`
	Communication CommunicationStyle  `json:"communication_style"`
	Insights      []string            `json:"writing_insights"`
}

// LinguisticMetrics holds sentence/word length statistics
type LinguisticMetrics struct {
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgWordLength     float64 `json:"avg_word_length"`
	SentencesPerPost  float64 `json:"sentences_per_post"`
	WordsPerPost      float64 `json:"words_per_post"`
	ReadabilityScore  float64 `json:"readability_score"` // Flesch-like, unclamped
}

// VocabularyAnalysis holds richness and frequency statistics
type VocabularyAnalysis struct {
	UniqueWords        int     `json:"unique_words"`
	VocabularyRichness float64 `json:"vocabulary_richness"`
	ComplexWordsRatio  float64 `json:"complex_words_ratio"`
	MostCommonWords    []Count `json:"most_common_words"`
	RareWordsCount     int     `json:"rare_words_count"`
}

// PunctuationPatterns holds punctuation and emphasis ratios
type PunctuationPatterns struct {
	ExclamationRatio   float64 `json:"exclamation_ratio"`   // per character
	QuestionRatio      float64 `json:"question_ratio"`      // per character
	EllipsisUsage      float64 `json:"ellipsis_usage"`      // per item
	EmojiUsage         float64 `json:"emoji_usage"`         // per item
	CapsUsage          float64 `json:"caps_usage"`          // per word
	PunctuationDensity float64 `json:"punctuation_density"` // per character
}

// FormalityAnalysis holds formality ratios and classification
type FormalityAnalysis struct {
	FormalityScore    float64 `json:"formality_score"`
	ContractionsRatio float64 `json:"contractions_ratio"`
	SlangUsage        float64 `json:"slang_usage"`
	FormalWordsRatio  float64 `json:"formal_words_ratio"`
	FormalityLevel    string  `json:"formality_level"`
}

// CommunicationStyle holds per-item pattern densities
type CommunicationStyle struct {
	Assertiveness          float64 `json:"assertiveness"`
	Politeness             float64 `json:"politeness"`
	Enthusiasm             float64 `json:"enthusiasm"`
	AnalyticalTendency     float64 `json:"analytical_tendency"`
	StorytellingTendency   float64 `json:"storytelling_tendency"`
	QuestionAskingTendency float64 `json:"question_asking_tendency"`
}

// TopicStrategy names the algorithm that produced a topic result
type TopicStrategy string

const (
	TopicStrategyModel   TopicStrategy = "lda"
	TopicStrategyKeyword TopicStrategy = "keyword"
)

// TopicResult is the output of the topic analyzer
type TopicResult struct {
	Strategy              TopicStrategy       `json:"strategy,omitempty"`
	Topics                []Topic             `json:"topics"`
	Distribution          []TopicShare        `json:"topic_distribution"`
	DominantTopics        []string            `json:"dominant_topics"`
	TopicKeywords         map[string][]string `json:"topic_keywords"`
	ContentCategorization map[string][]string `json:"content_categorization"`
	KeyPhrases            []Count             `json:"key_phrases"`
	Insights              []string            `json:"topic_insights"`
}

// Topic is one discovered topic or matched category
type Topic struct {
	ID       int       `json:"topic_id"`
	Label    string    `json:"label"`
	Keywords []string  `json:"keywords"`
	Weights  []float64 `json:"weights"`
}

// TopicShare is a topic's normalized weight
type TopicShare struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// SocialResult is the output of the social network analyzer
type SocialResult struct {
	Mentions     MentionAnalysis     `json:"mentioned_users"`
	Replies      ReplyBehavior       `json:"reply_behavior"`
	Community    CommunityEngagement `json:"community_engagement"`
	Interactions InteractionPatterns `json:"interaction_patterns"`
	Metrics      SocialMetrics       `json:"social_metrics"`
	Insights     []string            `json:"network_insights"`
}

// MentionAnalysis summarizes user references in text bodies
type MentionAnalysis struct {
	DirectMentions       []string `json:"direct_mentions"` // Unique, first-seen order
	ReplyTargets         []string `json:"reply_targets"`
	FrequentInteractions []Count  `json:"frequent_interactions"` // Top 10
	MentionFrequency     float64  `json:"mention_frequency"`
}

// ReplyBehavior holds reply phrase ratios and the derived engagement style
type ReplyBehavior struct {
	ReplyIndicators       float64 `json:"reply_indicators"`
	ConversationStarters  int     `json:"conversation_starters"`
	SupportiveResponses   float64 `json:"supportive_responses"`
	DisagreementResponses float64 `json:"disagreement_responses"`
	QuestionResponses     float64 `json:"question_responses"`
	EngagementStyle       string  `json:"engagement_style"`
}

// CommunityEngagement summarizes activity per community
type CommunityEngagement struct {
	Activity        []Count                `json:"subreddit_activity"` // Top 10
	Diversity       int                    `json:"community_diversity"`
	EngagementDepth map[string]float64     `json:"engagement_depth"` // Average content length
	CrossCommunity  CrossCommunityBehavior `json:"cross_community_behavior"`
}

// CrossCommunityBehavior classifies activity concentration. Empty when fewer than two communities.
type CrossCommunityBehavior struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// InteractionPatterns holds per-item interaction and social-cue statistics
type InteractionPatterns struct {
	InteractionFrequency    float64            `json:"interaction_frequency"`
	ResponseLengthAvg       float64            `json:"response_length_avg"`
	SocialCues              map[string]float64 `json:"social_cues_usage"`
	CollaborationIndicators int                `json:"collaboration_indicators"`
	HelpSeeking             int                `json:"help_seeking_behavior"`
	HelpOffering            int                `json:"help_offering_behavior"`
}

// SocialMetrics are aggregate scores, each clamped to [0, 100]
type SocialMetrics struct {
	SocialEngagementScore     float64 `json:"social_engagement_score"`
	CommunityIntegrationScore float64 `json:"community_integration_score"`
	InteractionDiversityScore float64 `json:"interaction_diversity_score"`
	HelpfulnessScore          float64 `json:"helpfulness_score"`
}

// ActivityMode names the activity analysis branch that ran
type ActivityMode string

const (
	ActivityModeTimestamps ActivityMode = "timestamps"
	ActivityModeContent    ActivityMode = "content"
)

// ActivityResult is the output of the activity timeline analyzer
type ActivityResult struct {
	Mode ActivityMode `json:"mode"`

	// Timestamp branch
	HourlyActivity []int             `json:"hourly_activity,omitempty"` // 24 buckets
	DailyActivity  map[string]int    `json:"daily_activity,omitempty"`  // Weekday name -> count
	PeakHours      []int             `json:"peak_hours,omitempty"`
	Patterns       *ActivityPatterns `json:"activity_patterns,omitempty"`

	// Content branch
	PostingFrequency string                 `json:"posting_frequency,omitempty"`
	ContentLength    *ContentLengthPatterns `json:"content_length_patterns,omitempty"`
	EngagementStyle  string                 `json:"engagement_style,omitempty"`

	Insights []string `json:"activity_insights"`
}

// ActivityPatterns holds the day/night and weekend/weekday tendencies
type ActivityPatterns struct {
	TimePreference string `json:"time_preference"` // day_active, night_active
	ScheduleType   string `json:"schedule_type"`   // weekend_heavy, weekday_heavy
}

// ContentLengthPatterns is the content-length distribution
type ContentLengthPatterns struct {
	AverageLength float64 `json:"average_length"`
	ShortPosts    int     `json:"short_posts"`  // < 100 chars
	MediumPosts   int     `json:"medium_posts"` // 100-499 chars
	LongPosts     int     `json:"long_posts"`   // >= 500 chars
}
