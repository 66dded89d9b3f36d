package analyze

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/ppiankov/persona/internal/lexicon"
	"github.com/ppiankov/persona/internal/model"
)

var techDocs = []string{
	"I have been writing software and programming code for my new app every single day.",
	"The software team shipped new code and the app now handles data much faster.",
	"Programming languages and computer software make digital code easier to maintain.",
}

var ldaDocs = []string{
	"cats purr softly while kittens chase yarn around the warm kitchen floor every evening",
	"kittens and cats sleep on the warm blanket after they chase yarn for hours",
	"my cats love the yarn basket and the kittens purr when the kitchen gets warm",
	"rockets launch from the pad while engineers watch fuel pressure and engine telemetry",
	"engineers tested the engine and checked fuel pressure before the rockets launch today",
	"the launch pad crew fueled rockets while engineers monitored engine telemetry closely",
}

type failingModeler struct{}

func (failingModeler) Model([]string) (model.TopicResult, error) {
	return model.TopicResult{}, errors.New("fit diverged")
}

type panickingModeler struct{}

func (panickingModeler) Model([]string) (model.TopicResult, error) {
	panic("singular matrix")
}

func TestTopics_InsufficientContent(t *testing.T) {
	a := NewTopicAnalyzer(NewLDAModeler(5, 50, 42), nil)

	r := a.Analyze(postsOnly(techDocs[0], techDocs[1], "too short"))

	if !reflect.DeepEqual(r.Insights, []string{InsufficientTopicContent}) {
		t.Errorf("Expected single insufficient-content insight, got %v", r.Insights)
	}
	if len(r.Topics) != 0 || len(r.Distribution) != 0 || len(r.DominantTopics) != 0 {
		t.Errorf("Expected empty topic structures, got %+v", r)
	}
}

func TestTopics_KeywordStrategy(t *testing.T) {
	a := NewTopicAnalyzer(nil, nil)
	if a.Strategy() != model.TopicStrategyKeyword {
		t.Fatalf("Expected keyword strategy without a modeler, got %s", a.Strategy())
	}

	r := a.Analyze(postsOnly(techDocs...))

	if r.Strategy != model.TopicStrategyKeyword {
		t.Errorf("Expected keyword strategy, got %s", r.Strategy)
	}
	if !reflect.DeepEqual(r.DominantTopics, []string{"Technology"}) {
		t.Errorf("Expected Technology dominant, got %v", r.DominantTopics)
	}
	if r.Topics[0].Label != "Technology" || r.Topics[0].ID != 0 {
		t.Errorf("Expected Technology ranked first, got %+v", r.Topics[0])
	}
	if len(r.Topics[0].Keywords) != 5 || len(r.Topics[0].Weights) != 5 {
		t.Errorf("Expected 5 keywords and weights, got %+v", r.Topics[0])
	}
	if len(r.ContentCategorization["Technology"]) != 3 {
		t.Errorf("Expected 3 Technology examples, got %v", r.ContentCategorization["Technology"])
	}

	sum := 0.0
	for _, share := range r.Distribution {
		sum += share.Weight
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("Expected distribution to sum to 1, got %f", sum)
	}

	want := []string{"Most frequently discusses: Technology", "Tends to focus on specific topic areas"}
	if !reflect.DeepEqual(r.Insights, want) {
		t.Errorf("Expected insights %v, got %v", want, r.Insights)
	}
}

func TestKeywordTopics_ResultDoesNotAliasLexicon(t *testing.T) {
	before := append([]string(nil), lexicon.TopicCategories[0].Terms...)

	r := KeywordTopics(techDocs)
	_ = append(r.Topics[0].Keywords, "mutated")
	_ = append(r.TopicKeywords["Technology"], "mutated")
	r.Topics[0].Keywords[0] = "mutated"

	if !reflect.DeepEqual(lexicon.TopicCategories[0].Terms, before) {
		t.Errorf("Expected Technology terms unchanged, got %v", lexicon.TopicCategories[0].Terms)
	}
	if got := KeywordTopics(techDocs); !reflect.DeepEqual(got.Topics[0].Keywords, before[:5]) {
		t.Errorf("Expected keywords %v on a later run, got %v", before[:5], got.Topics[0].Keywords)
	}
}

func TestTopics_FallbackOnModelerFailure(t *testing.T) {
	for _, m := range []Modeler{failingModeler{}, panickingModeler{}} {
		a := NewTopicAnalyzer(m, nil)
		if a.Strategy() != model.TopicStrategyModel {
			t.Fatalf("Expected model strategy selected, got %s", a.Strategy())
		}

		r := a.Analyze(postsOnly(techDocs...))
		if r.Strategy != model.TopicStrategyKeyword {
			t.Errorf("%T: expected keyword fallback, got %s", m, r.Strategy)
		}
		if !reflect.DeepEqual(r.DominantTopics, []string{"Technology"}) {
			t.Errorf("%T: expected Technology dominant, got %v", m, r.DominantTopics)
		}
	}
}

func TestTopics_ShortDocumentsFallBack(t *testing.T) {
	docs := []string{
		"Supercalifragilistic expialidocious antidisestablishmentarianism words",
		"Pneumonoultramicroscopicsilicovolcanoconiosis floccinaucinihilipilification",
		"Hippopotomonstrosesquippedaliophobia sesquipedalian hyperbolically",
	}

	r := NewTopicAnalyzer(NewLDAModeler(5, 50, 42), nil).Analyze(postsOnly(docs...))

	if r.Strategy != model.TopicStrategyKeyword {
		t.Errorf("Expected keyword fallback for short documents, got %s", r.Strategy)
	}
	if !reflect.DeepEqual(r.Insights, []string{"Unable to identify distinct topics from the content"}) {
		t.Errorf("Unexpected insights %v", r.Insights)
	}
}

func TestLDAModeler_Model(t *testing.T) {
	m := NewLDAModeler(5, 100, 42)

	r, err := m.Model(ldaDocs)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if r.Strategy != model.TopicStrategyModel {
		t.Errorf("Expected lda strategy, got %s", r.Strategy)
	}
	if len(r.Topics) != 5 {
		t.Fatalf("Expected 5 topics, got %d", len(r.Topics))
	}
	for _, topic := range r.Topics {
		if len(topic.Keywords) == 0 || len(topic.Keywords) > 10 {
			t.Errorf("Topic %d has %d keywords", topic.ID, len(topic.Keywords))
		}
		if len(topic.Keywords) != len(topic.Weights) {
			t.Errorf("Topic %d keywords and weights differ in length", topic.ID)
		}
		if len(r.TopicKeywords[topic.Label]) > 5 {
			t.Errorf("Topic %s label keywords exceed 5", topic.Label)
		}
	}

	sum := 0.0
	for _, share := range r.Distribution {
		sum += share.Weight
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("Expected distribution to sum to 1, got %f", sum)
	}

	categorized := 0
	for _, examples := range r.ContentCategorization {
		categorized += len(examples)
	}
	if categorized != len(ldaDocs) {
		t.Errorf("Expected every document categorized, got %d", categorized)
	}
	if len(r.DominantTopics) != 1 {
		t.Errorf("Expected one dominant topic, got %v", r.DominantTopics)
	}
}

func TestLDAModeler_Deterministic(t *testing.T) {
	first, err := NewLDAModeler(3, 100, 42).Model(ldaDocs)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := NewLDAModeler(3, 100, 42).Model(ldaDocs)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical fits for the same seed")
	}
}

func TestLDAModeler_Errors(t *testing.T) {
	m := NewLDAModeler(5, 10, 42)

	if _, err := m.Model([]string{"one two three four five six seven"}); !errors.Is(err, ErrInsufficientDocuments) {
		t.Errorf("Expected ErrInsufficientDocuments, got %v", err)
	}

	unique := []string{
		"alpha bravo charlie delta echo foxtrot golf",
		"hotel india juliet kilo lima mike november",
		"oscar papa quebec romeo sierra tango uniform",
	}
	if _, err := m.Model(unique); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("Expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestPreprocessTopicText(t *testing.T) {
	got := PreprocessTopicText("Check https://go.dev NOW!!  It's 100% great")
	if got != "check now its great" {
		t.Errorf("Unexpected preprocessing %q", got)
	}
}

func TestExtractKeyPhrases(t *testing.T) {
	docs := []string{
		"machine learning models need data. machine learning is fun",
		"i think i think i think",
	}

	got := ExtractKeyPhrases(docs, 3)
	if len(got) == 0 || got[0].Key != "machine learning" || got[0].Count != 2 {
		t.Errorf("Expected 'machine learning' x2 first, got %v", got)
	}
	for _, p := range got {
		if p.Key == "i think" {
			t.Error("Expected stop phrase to be filtered")
		}
	}
}

func TestExtractKeyPhrases_CountsCharacters(t *testing.T) {
	// "éé ab" is 5 characters but 7 bytes
	if got := ExtractKeyPhrases([]string{"éé ab éé ab"}, 20); len(got) != 0 {
		t.Errorf("Expected short non-ASCII bigram dropped, got %v", got)
	}

	// "ééé abc" is 7 characters
	got := ExtractKeyPhrases([]string{"ééé abc ééé abc"}, 20)
	if len(got) == 0 || got[0].Key != "ééé abc" || got[0].Count != 2 {
		t.Errorf("Expected 'ééé abc' x2, got %v", got)
	}
}

func TestTopicInsights_ModelStrategy(t *testing.T) {
	r := model.TopicResult{
		Strategy: model.TopicStrategyModel,
		Topics: []model.Topic{
			{ID: 0, Label: "Topic 1", Keywords: []string{"cats", "yarn", "warm", "purr"}},
			{ID: 1, Label: "Topic 2", Keywords: []string{"rockets"}},
		},
		DominantTopics: []string{"Topic 1"},
		Distribution: []model.TopicShare{
			{Label: "Topic 1", Weight: 0.25}, {Label: "Topic 2", Weight: 0.25},
			{Label: "Topic 3", Weight: 0.25}, {Label: "Topic 4", Weight: 0.25},
		},
		ContentCategorization: map[string][]string{"Topic 1": {"a..."}, "Topic 2": {"b..."}},
	}

	want := []string{
		"Primary discussion topics include: cats, yarn, warm",
		"Shows diverse interests across multiple topics",
		"Active in 2 different topic areas",
	}
	if got := TopicInsights(r); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
