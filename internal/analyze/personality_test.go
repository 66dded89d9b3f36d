package analyze

import (
	"reflect"
	"testing"

	"github.com/ppiankov/persona/internal/lexicon"
	"github.com/ppiankov/persona/internal/model"
)

func traitScores(values ...float64) []model.TraitScore {
	names := []string{lexicon.Openness, lexicon.Conscientiousness, lexicon.Extraversion, lexicon.Agreeableness, lexicon.Neuroticism}
	scores := make([]model.TraitScore, len(values))
	for i, v := range values {
		scores[i] = model.TraitScore{Trait: names[i], Score: v, Level: TraitLevel(v)}
	}
	return scores
}

func TestDominantTraits(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   []string
	}{
		{"third above 50", []float64{80, 75, 60, 40, 20}, []string{lexicon.Openness, lexicon.Conscientiousness, lexicon.Extraversion}},
		{"third at 50", []float64{80, 75, 50, 40, 20}, []string{lexicon.Openness, lexicon.Conscientiousness}},
		{"reordered", []float64{10, 20, 30, 90, 55}, []string{lexicon.Agreeableness, lexicon.Neuroticism}},
		{"ties keep enumeration order", []float64{0, 0, 0, 0, 0}, []string{lexicon.Openness, lexicon.Conscientiousness}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DominantTraits(traitScores(tt.scores...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTraitLevel(t *testing.T) {
	if TraitLevel(61) != LevelHigh || TraitLevel(60) != LevelMedium || TraitLevel(31) != LevelMedium || TraitLevel(30) != LevelLow {
		t.Error("Unexpected level thresholds")
	}
}

func TestPersonality_EmptySet(t *testing.T) {
	r := NewPersonalityAnalyzer().Analyze(model.NewContentSet())
	if len(r.Scores) != 0 || len(r.DominantTraits) != 0 || len(r.Insights) != 0 || len(r.TraitIndicators) != 0 {
		t.Errorf("Expected empty result, got %+v", r)
	}
}

func TestPersonality_OpennessCounting(t *testing.T) {
	// creative x2 (occurrences count) + art (inside "artistic") + artistic + new
	r := NewPersonalityAnalyzer().Analyze(postsOnly("creative creative artistic new"))

	open := r.Scores[0]
	if open.Trait != lexicon.Openness {
		t.Fatalf("Expected openness first, got %s", open.Trait)
	}

	want := []model.Count{
		{Key: "creativity", Count: 4},
		{Key: "curiosity", Count: 0},
		{Key: "intellectual", Count: 0},
		{Key: "novelty", Count: 1},
		{Key: "change", Count: 0},
	}
	if !reflect.DeepEqual(open.Indicators, want) {
		t.Errorf("Expected indicators %v, got %v", want, open.Indicators)
	}
	if open.Score != 50 {
		t.Errorf("Expected openness 50, got %f", open.Score)
	}
	if open.Level != LevelMedium || open.Percentile != 50 {
		t.Errorf("Expected medium/50, got %s/%d", open.Level, open.Percentile)
	}
	if open.Description != "Moderately open to new ideas and experiences" {
		t.Errorf("Unexpected description %q", open.Description)
	}

	wantIndicators := []string{"Shows interest in creative activities"}
	if !reflect.DeepEqual(r.TraitIndicators[lexicon.Openness], wantIndicators) {
		t.Errorf("Expected %v, got %v", wantIndicators, r.TraitIndicators[lexicon.Openness])
	}
}

func TestPersonality_StructuralSignals(t *testing.T) {
	r := NewPersonalityAnalyzer().Analyze(postsOnly("Hey you?! Is anyone there!!", "THIS IS BAD..."))

	find := func(trait, key string) int {
		for _, s := range r.Scores {
			if s.Trait != trait {
				continue
			}
			for _, c := range s.Indicators {
				if c.Key == key {
					return c.Count
				}
			}
		}
		t.Fatalf("indicator %s/%s not found", trait, key)
		return 0
	}

	// item 1: question with "you" (+1), three '!' (+3), "hey" prefix (+1)
	if got := find(lexicon.Extraversion, "interaction_patterns"); got != 5 {
		t.Errorf("Expected interaction_patterns 5, got %d", got)
	}
	// item 1: "?!" and "!!" runs (+2); item 2: THIS and BAD (+2), one ellipsis (+0.5)
	if got := find(lexicon.Neuroticism, "emotional_intensity"); got != 4 {
		t.Errorf("Expected emotional_intensity 4, got %d", got)
	}
	// neither item is polite or confrontational ("bad" is not in the list), so each adds 0.5
	if got := find(lexicon.Agreeableness, "politeness_patterns"); got != 1 {
		t.Errorf("Expected politeness_patterns 1, got %d", got)
	}
}

func TestPersonality_BoundsWithKeywordStuffing(t *testing.T) {
	r := NewPersonalityAnalyzer().Analyze(stuffedSet())

	for _, s := range r.Scores {
		if s.Score < 0 || s.Score > 100 {
			t.Errorf("%s score %f outside [0, 100]", s.Trait, s.Score)
		}
		if s.Percentile < 1 || s.Percentile > 99 {
			t.Errorf("%s percentile %d outside [1, 99]", s.Trait, s.Percentile)
		}
	}
	if r.Scores[0].Score != 100 {
		t.Errorf("Expected openness clamped at 100, got %f", r.Scores[0].Score)
	}
}

func TestPersonalityInsights(t *testing.T) {
	scores := traitScores(80, 75, 65, 65, 20)
	for i := range scores {
		scores[i].Description = lexicon.TraitDescriptions[scores[i].Trait][scores[i].Level]
	}
	r := model.PersonalityResult{Scores: scores, DominantTraits: DominantTraits(scores)}

	want := []string{
		"Dominant personality traits: Openness, Conscientiousness, Extraversion",
		"Shows strong Openness: Creative, curious, and open to new experiences",
		"Shows strong Conscientiousness: Organized, disciplined, and goal-oriented",
		"Likely to be innovative while maintaining organized approach",
		"Tends to be socially engaging and collaborative",
		"Demonstrates emotional stability and resilience",
	}
	if got := PersonalityInsights(r); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestPersonality_Deterministic(t *testing.T) {
	a := NewPersonalityAnalyzer()
	if !reflect.DeepEqual(a.Analyze(sampleSet()), a.Analyze(sampleSet())) {
		t.Error("Expected identical results for identical input")
	}
}

func TestCountShouting(t *testing.T) {
	tests := map[string]int{
		"WOW that is HUGE":      2,
		"OK fine":               0,
		"ÉWOW and WOWé":         0,
		"NASA_LAUNCH today":     0,
		"LOL, OMG! WTF?":        3,
		"snake_CASE ABC123 XYZ": 1,
	}
	for in, want := range tests {
		if got := countShouting(in); got != want {
			t.Errorf("countShouting(%q) = %d, want %d", in, got, want)
		}
	}
}
