package model

import "time"

// Report is the complete behavioral profile of one account
type Report struct {
	Username    string         `json:"username"`
	SourceURL   string         `json:"source_url,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
	ItemCounts  map[string]int `json:"item_counts"` // Items per section
	Analysis    Analysis       `json:"analysis"`
	Principles  Principles     `json:"principles"`
	Samples     []ContentItem  `json:"samples,omitempty"` // First items, quoted as citations

	Persona *Narrative `json:"persona,omitempty"` // Optional LLM write-up (never affects scores)
}

// Analysis collects the output of every analyzer for one content set
type Analysis struct {
	Sentiment    SentimentResult    `json:"sentiment"`
	Personality  PersonalityResult  `json:"personality"`
	WritingStyle WritingStyleResult `json:"writing_style"`
	Topics       TopicResult        `json:"topics"`
	Social       SocialResult       `json:"social"`
	Activity     ActivityResult     `json:"activity"`
}

// Comparison holds two profiles and the model-written contrast between them
type Comparison struct {
	Usernames   [2]string  `json:"usernames"`
	Reports     [2]*Report `json:"reports"`
	GeneratedAt time.Time  `json:"generated_at"`
	Narrative   *Narrative `json:"narrative,omitempty"`
}

// Narrative is free-form text produced by a language model
type Narrative struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	Text     string   `json:"text,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Principles documents how the profile should be read
type Principles struct {
	Heuristic   bool `json:"heuristic"`    // Keyword and pattern rules only, no trained models
	Transparent bool `json:"transparent"`  // Every score traces back to a lexicon and formula
	NonClinical bool `json:"non_clinical"` // No claim of psychological validity
}

// DefaultPrinciples returns the standard profile principles
func DefaultPrinciples() Principles {
	return Principles{
		Heuristic:   true,
		Transparent: true,
		NonClinical: true,
	}
}

// Count is a key with its frequency. Slices of Count keep ranking order.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
