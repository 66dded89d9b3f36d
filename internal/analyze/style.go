package analyze

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ppiankov/persona/internal/lexicon"
	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/textutil"
)

var emojiRe = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1C0}-\x{1F1FF}]+`)

// Formality levels
const (
	FormalityFormal   = "formal"
	FormalityInformal = "informal"
	FormalityNeutral  = "neutral"
)

// StyleAnalyzer measures sentence structure, vocabulary, punctuation and formality
type StyleAnalyzer struct{}

// NewStyleAnalyzer creates a new writing style analyzer
func NewStyleAnalyzer() *StyleAnalyzer {
	return &StyleAnalyzer{}
}

// Analyze computes every writing style measure. An empty set yields zero metrics.
func (a *StyleAnalyzer) Analyze(set model.ContentSet) model.WritingStyleResult {
	texts := set.Texts()
	if len(texts) == 0 {
		return model.WritingStyleResult{
			Vocabulary: model.VocabularyAnalysis{MostCommonWords: []model.Count{}},
			Insights:   []string{},
		}
	}

	result := model.WritingStyleResult{
		Linguistic:    a.Linguistic(texts),
		Vocabulary:    a.Vocabulary(texts),
		Punctuation:   a.Punctuation(texts),
		Formality:     a.Formality(texts),
		Communication: a.Communication(texts),
	}
	result.Insights = StyleInsights(result)
	return result
}

// Linguistic computes sentence and word length statistics and the readability approximation
func (a *StyleAnalyzer) Linguistic(texts []string) model.LinguisticMetrics {
	var m model.LinguisticMetrics
	var sentences, sentenceWords, words, wordChars int

	for _, text := range texts {
		for _, s := range textutil.Sentences(text) {
			sentences++
			sentenceWords += len(strings.Fields(s))
		}
		for _, w := range textutil.Words(text) {
			words++
			wordChars += textutil.Len(w)
		}
	}

	if sentences > 0 {
		m.AvgSentenceLength = float64(sentenceWords) / float64(sentences)
		m.SentencesPerPost = float64(sentences) / float64(len(texts))
	}
	if words > 0 {
		m.AvgWordLength = float64(wordChars) / float64(words)
		m.WordsPerPost = float64(words) / float64(len(texts))
		// Flesch-like; deliberately unclamped
		m.ReadabilityScore = 206.835 - 1.015*m.AvgSentenceLength - 84.6*(m.AvgWordLength/4.7)
	}
	return m
}

// Vocabulary computes richness, complex-word ratio, top words and hapax count
func (a *StyleAnalyzer) Vocabulary(texts []string) model.VocabularyAnalysis {
	v := model.VocabularyAnalysis{MostCommonWords: []model.Count{}}

	all := textutil.NewCounter()
	total, complexWords := 0, 0
	for _, text := range texts {
		for _, w := range textutil.Words(text) {
			all.Add(w)
			total++
			if textutil.Len(w) > 6 {
				complexWords++
			}
		}
	}
	if total == 0 {
		return v
	}

	filtered := textutil.NewCounter()
	for _, w := range all.Keys() {
		n := all.Get(w)
		if n == 1 {
			v.RareWordsCount++
		}
		if !lexicon.StyleStopWords[w] && textutil.Len(w) > 2 {
			filtered.AddN(w, n)
		}
	}

	v.UniqueWords = all.Len()
	v.VocabularyRichness = float64(all.Len()) / float64(total)
	v.ComplexWordsRatio = float64(complexWords) / float64(total)
	v.MostCommonWords = filtered.MostCommon(10)
	return v
}

// Punctuation computes per-character, per-item and per-word punctuation ratios
func (a *StyleAnalyzer) Punctuation(texts []string) model.PunctuationPatterns {
	var p model.PunctuationPatterns
	var chars, exclamations, questions, ellipses, emojis, punct, words, caps int

	for _, text := range texts {
		chars += textutil.Len(text)
		exclamations += strings.Count(text, "!")
		questions += strings.Count(text, "?")
		ellipses += strings.Count(text, "...")
		emojis += len(emojiRe.FindAllString(text, -1))
		for _, r := range text {
			if strings.ContainsRune(lexicon.ASCIIPunctuation, r) {
				punct++
			}
		}
		for _, w := range strings.Fields(text) {
			words++
			if textutil.Len(w) > 1 && isUpperWord(w) {
				caps++
			}
		}
	}

	if chars > 0 {
		p.ExclamationRatio = float64(exclamations) / float64(chars)
		p.QuestionRatio = float64(questions) / float64(chars)
		p.EllipsisUsage = float64(ellipses) / float64(len(texts))
		p.EmojiUsage = float64(emojis) / float64(len(texts))
		p.PunctuationDensity = float64(punct) / float64(chars)
	}
	p.CapsUsage = textutil.Ratio(float64(caps), float64(words))
	return p
}

// isUpperWord reports whether w has at least one cased letter and no lowercase letters
func isUpperWord(w string) bool {
	cased := false
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// Formality compares formal connectives against contractions and slang
func (a *StyleAnalyzer) Formality(texts []string) model.FormalityAnalysis {
	f := model.FormalityAnalysis{FormalityLevel: FormalityNeutral}
	var words, contractions, formal, slang int

	for _, text := range texts {
		lower := strings.ToLower(text)
		words += len(textutil.Words(lower))
		contractions += textutil.CountPresent(lower, lexicon.Contractions)
		formal += textutil.CountPresent(lower, lexicon.FormalWords)
		slang += textutil.CountPresent(lower, lexicon.SlangWords)
	}
	if words == 0 {
		return f
	}

	total := float64(words)
	f.ContractionsRatio = float64(contractions) / total
	f.FormalWordsRatio = float64(formal) / total
	f.SlangUsage = float64(slang) / total
	f.FormalityScore = float64(2*formal-(contractions+2*slang)) / total

	switch {
	case f.FormalityScore > 0.01:
		f.FormalityLevel = FormalityFormal
	case f.FormalityScore < -0.01:
		f.FormalityLevel = FormalityInformal
	}
	return f
}

// Communication averages pattern hits per item
func (a *StyleAnalyzer) Communication(texts []string) model.CommunicationStyle {
	var assertive, polite, enthusiastic, analytical, story, questions int
	for _, text := range texts {
		lower := strings.ToLower(text)
		assertive += textutil.CountPresent(lower, lexicon.AssertivePhrases)
		polite += textutil.CountPresent(lower, lexicon.PoliteStyle)
		enthusiastic += textutil.CountPresent(lower, lexicon.EnthusiasticWords)
		analytical += textutil.CountPresent(lower, lexicon.AnalyticalWords)
		story += textutil.CountPresent(lower, lexicon.StorytellingWords)
		questions += strings.Count(text, "?")
	}

	n := float64(len(texts))
	return model.CommunicationStyle{
		Assertiveness:          textutil.Ratio(float64(assertive), n),
		Politeness:             textutil.Ratio(float64(polite), n),
		Enthusiasm:             textutil.Ratio(float64(enthusiastic), n),
		AnalyticalTendency:     textutil.Ratio(float64(analytical), n),
		StorytellingTendency:   textutil.Ratio(float64(story), n),
		QuestionAskingTendency: textutil.Ratio(float64(questions), n),
	}
}

// StyleInsights evaluates each threshold independently in fixed order
func StyleInsights(r model.WritingStyleResult) []string {
	insights := []string{}

	switch asl := r.Linguistic.AvgSentenceLength; {
	case asl > 20:
		insights = append(insights, "Tends to write in long, complex sentences")
	case asl < 10:
		insights = append(insights, "Prefers short, concise sentences")
	}

	switch rs := r.Linguistic.ReadabilityScore; {
	case rs > 60:
		insights = append(insights, "Writing is generally easy to read")
	case rs < 30:
		insights = append(insights, "Writing tends to be complex and challenging")
	}

	switch vr := r.Vocabulary.VocabularyRichness; {
	case vr > 0.7:
		insights = append(insights, "Uses a rich and diverse vocabulary")
	case vr < 0.3:
		insights = append(insights, "Tends to repeat common words and phrases")
	}

	if r.Vocabulary.ComplexWordsRatio > 0.2 {
		insights = append(insights, "Frequently uses sophisticated vocabulary")
	}

	switch r.Formality.FormalityLevel {
	case FormalityFormal:
		insights = append(insights, "Maintains a formal writing style")
	case FormalityInformal:
		insights = append(insights, "Uses casual, conversational language")
	}

	c := r.Communication
	if c.Enthusiasm > 1 {
		insights = append(insights, "Shows high enthusiasm in communication")
	}
	if c.QuestionAskingTendency > 2 {
		insights = append(insights, "Frequently asks questions and seeks input")
	}
	if c.AnalyticalTendency > 0.5 {
		insights = append(insights, "Demonstrates analytical thinking patterns")
	}
	if c.StorytellingTendency > 1 {
		insights = append(insights, "Often shares personal experiences and stories")
	}

	if r.Punctuation.ExclamationRatio > 0.01 {
		insights = append(insights, "Uses exclamation points frequently for emphasis")
	}
	if r.Punctuation.EmojiUsage > 1 {
		insights = append(insights, "Regularly incorporates emojis in communication")
	}

	return insights
}
