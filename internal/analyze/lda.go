package analyze

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"

	"github.com/ppiankov/persona/internal/lexicon"
	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/textutil"
)

var (
	urlRe      = regexp.MustCompile(`http\S+|www\S+|https\S+`)
	nonAlphaRe = regexp.MustCompile(`[^a-zA-Z\s]`)
)

// ErrInsufficientDocuments is returned when too few documents survive preprocessing
var ErrInsufficientDocuments = errors.New("fewer than 3 usable documents")

// ErrEmptyVocabulary is returned when document-frequency pruning removes every term
var ErrEmptyVocabulary = errors.New("no terms remain after pruning")

// Modeler discovers topics in a document collection
type Modeler interface {
	Model(docs []string) (model.TopicResult, error)
}

// LDAModeler fits latent Dirichlet allocation with collapsed Gibbs sampling.
// A fixed seed makes every fit reproducible.
type LDAModeler struct {
	Topics      int
	Iterations  int
	Seed        int64
	MaxFeatures int
	MinDF       int
	MaxDF       float64
}

// NewLDAModeler creates a modeler with the standard vectorizer bounds
func NewLDAModeler(topics, iterations int, seed int64) *LDAModeler {
	if topics <= 0 {
		topics = 5
	}
	if iterations <= 0 {
		iterations = 200
	}
	return &LDAModeler{
		Topics:      topics,
		Iterations:  iterations,
		Seed:        seed,
		MaxFeatures: 100,
		MinDF:       2,
		MaxDF:       0.8,
	}
}

// PreprocessTopicText lowercases, strips URLs and non-letters, and collapses whitespace
func PreprocessTopicText(text string) string {
	text = strings.ToLower(text)
	text = urlRe.ReplaceAllString(text, "")
	text = nonAlphaRe.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// Model preprocesses docs, builds the term matrix and fits the topic model
func (m *LDAModeler) Model(docs []string) (model.TopicResult, error) {
	var processed []string
	for _, doc := range docs {
		p := PreprocessTopicText(doc)
		if len(strings.Fields(p)) > 5 {
			processed = append(processed, p)
		}
	}
	if len(processed) < 3 {
		return model.TopicResult{}, ErrInsufficientDocuments
	}

	vocab, matrix, err := m.vectorize(processed)
	if err != nil {
		return model.TopicResult{}, err
	}

	k := m.Topics
	if k > len(processed) {
		k = len(processed)
	}
	fit := gibbsLDA(matrix, len(vocab), k, m.Iterations, m.Seed)

	result := model.TopicResult{
		Strategy:              model.TopicStrategyModel,
		Topics:                make([]model.Topic, 0, k),
		TopicKeywords:         make(map[string][]string, k),
		ContentCategorization: make(map[string][]string),
	}

	for t := 0; t < k; t++ {
		top := topIndices(fit.components[t], 10)
		keywords := make([]string, len(top))
		weights := make([]float64, len(top))
		for i, w := range top {
			keywords[i] = vocab[w]
			weights[i] = fit.components[t][w]
		}

		label := topicLabel(t)
		result.Topics = append(result.Topics, model.Topic{ID: t, Label: label, Keywords: keywords, Weights: weights})
		n := 5
		if len(keywords) < n {
			n = len(keywords)
		}
		result.TopicKeywords[label] = keywords[:n]
	}

	sums := make([]float64, k)
	total := 0.0
	for d, dist := range fit.docTopic {
		for t, v := range dist {
			sums[t] += v
			total += v
		}
		label := topicLabel(argmax(dist))
		result.ContentCategorization[label] = append(result.ContentCategorization[label], textutil.Preview(processed[d], 100)+"...")
	}

	result.Distribution = make([]model.TopicShare, k)
	for t := range sums {
		result.Distribution[t] = model.TopicShare{Label: topicLabel(t), Weight: textutil.Ratio(sums[t], total)}
	}
	result.DominantTopics = []string{topicLabel(argmax(sums))}

	return result, nil
}

func topicLabel(i int) string {
	return fmt.Sprintf("Topic %d", i+1)
}

// vectorize builds unigram+bigram counts with stop words removed, then prunes by
// document frequency and keeps the most frequent MaxFeatures terms. The returned
// vocabulary is sorted alphabetically.
func (m *LDAModeler) vectorize(docs []string) ([]string, []map[int]int, error) {
	docTerms := make([]map[string]int, len(docs))
	df := make(map[string]int)
	tf := make(map[string]int)

	for i, doc := range docs {
		var tokens []string
		for _, tok := range strings.Fields(doc) {
			if len(tok) >= 2 && !lexicon.EnglishStopWords[tok] {
				tokens = append(tokens, tok)
			}
		}

		counts := make(map[string]int)
		for j, tok := range tokens {
			counts[tok]++
			if j+1 < len(tokens) {
				counts[tok+" "+tokens[j+1]]++
			}
		}
		for term, n := range counts {
			df[term]++
			tf[term] += n
		}
		docTerms[i] = counts
	}

	maxDocs := m.MaxDF * float64(len(docs))
	var terms []string
	for term, n := range df {
		if n >= m.MinDF && float64(n) <= maxDocs {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	sort.Strings(terms)
	if m.MaxFeatures > 0 && len(terms) > m.MaxFeatures {
		sort.SliceStable(terms, func(i, j int) bool { return tf[terms[i]] > tf[terms[j]] })
		terms = terms[:m.MaxFeatures]
		sort.Strings(terms)
	}

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}

	matrix := make([]map[int]int, len(docs))
	for i, counts := range docTerms {
		row := make(map[int]int)
		for term, n := range counts {
			if w, ok := index[term]; ok {
				row[w] = n
			}
		}
		matrix[i] = row
	}

	return terms, matrix, nil
}

type ldaFit struct {
	components [][]float64 // topic x term pseudo-counts
	docTopic   [][]float64 // normalized per document
}

// gibbsLDA runs collapsed Gibbs sampling with symmetric priors of 1/k
func gibbsLDA(matrix []map[int]int, vocabSize, k, iterations int, seed int64) ldaFit {
	rng := rand.New(rand.NewSource(seed))
	alpha := 1.0 / float64(k)
	beta := 1.0 / float64(k)

	// Expand each row into a token sequence in ascending term order
	docs := make([][]int, len(matrix))
	for d, row := range matrix {
		ids := make([]int, 0, len(row))
		for w := range row {
			ids = append(ids, w)
		}
		sort.Ints(ids)
		for _, w := range ids {
			for n := 0; n < row[w]; n++ {
				docs[d] = append(docs[d], w)
			}
		}
	}

	ndk := make([][]int, len(docs))
	nkw := make([][]int, k)
	nk := make([]int, k)
	for t := range nkw {
		nkw[t] = make([]int, vocabSize)
	}

	assign := make([][]int, len(docs))
	for d, tokens := range docs {
		ndk[d] = make([]int, k)
		assign[d] = make([]int, len(tokens))
		for i, w := range tokens {
			t := rng.Intn(k)
			assign[d][i] = t
			ndk[d][t]++
			nkw[t][w]++
			nk[t]++
		}
	}

	probs := make([]float64, k)
	vBeta := float64(vocabSize) * beta
	for it := 0; it < iterations; it++ {
		for d, tokens := range docs {
			for i, w := range tokens {
				t := assign[d][i]
				ndk[d][t]--
				nkw[t][w]--
				nk[t]--

				sum := 0.0
				for j := 0; j < k; j++ {
					p := (float64(ndk[d][j]) + alpha) * (float64(nkw[j][w]) + beta) / (float64(nk[j]) + vBeta)
					sum += p
					probs[j] = sum
				}
				u := rng.Float64() * sum
				t = sort.SearchFloat64s(probs, u)
				if t >= k {
					t = k - 1
				}

				assign[d][i] = t
				ndk[d][t]++
				nkw[t][w]++
				nk[t]++
			}
		}
	}

	fit := ldaFit{
		components: make([][]float64, k),
		docTopic:   make([][]float64, len(docs)),
	}
	for t := 0; t < k; t++ {
		fit.components[t] = make([]float64, vocabSize)
		for w := 0; w < vocabSize; w++ {
			fit.components[t][w] = float64(nkw[t][w]) + beta
		}
	}
	for d := range docs {
		fit.docTopic[d] = make([]float64, k)
		denom := float64(len(docs[d])) + float64(k)*alpha
		for t := 0; t < k; t++ {
			fit.docTopic[d][t] = (float64(ndk[d][t]) + alpha) / denom
		}
	}
	return fit
}

// topIndices returns up to n indices of the largest values, ties by lower index
func topIndices(values []float64, n int) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] > values[idx[b]] })
	if len(idx) > n {
		idx = idx[:n]
	}
	return idx
}

// argmax returns the index of the first largest value
func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
