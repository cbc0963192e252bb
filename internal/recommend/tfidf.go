package recommend

import (
	"math"
	"strings"
	"unicode"
)

// englishStopwords is the baseline filtering policy for synopsis text.
// Tokenization itself is script-agnostic (any Unicode letter/digit run), so
// non-English synopses still vectorize; only English function words are
// dropped.
var englishStopwords = map[string]struct{}{}

func init() {
	words := strings.Fields(`
		a about above after again against all am an and any are as at be because
		been before being below between both but by can could did do does doing
		down during each few for from further had has have having he her here
		hers herself him himself his how i if in into is it its itself just me
		more most my myself no nor not now of off on once only or other our ours
		ourselves out over own same she should so some such than that the their
		theirs them themselves then there these they this those through to too
		under until up very was we were what when where which while who whom why
		will with you your yours yourself yourselves
	`)
	for _, w := range words {
		englishStopwords[w] = struct{}{}
	}
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if _, stop := englishStopwords[f]; !stop {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Vectorizer builds a TF-IDF vector space over a fixed document corpus.
// Fit derives the vocabulary and IDF weights from the corpus alone; Transform
// projects any text into that space without altering it. Documents made
// entirely of stopwords (or unknown terms) transform to the zero vector.
//
// Weighting matches the common smoothed form: idf = ln((1+n)/(1+df)) + 1,
// raw term counts for tf, and L2 normalization of the final vector.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

func NewVectorizer() *Vectorizer {
	return &Vectorizer{vocab: make(map[string]int)}
}

// Fit learns the vocabulary and IDF weights from docs.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, t := range tokenize(doc) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
			if _, ok := v.vocab[t]; !ok {
				v.vocab[t] = len(v.vocab)
			}
		}
	}

	n := float64(len(docs))
	v.idf = make([]float64, len(v.vocab))
	for term, idx := range v.vocab {
		v.idf[idx] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// Transform projects text into the fitted space as a sparse, L2-normalized
// vector keyed by vocabulary index. Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	vec := make(map[int]float64)
	for _, t := range tokenize(text) {
		if idx, ok := v.vocab[t]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx, tf := range vec {
		w := tf * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

// cosine returns the cosine similarity of two L2-normalized sparse vectors.
// Either vector being zero yields 0.
func cosine(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	return dot
}
