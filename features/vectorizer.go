package features

import (
	"log/slog"
	"math"
	"sort"
	"strings"

	"sentiment-lab/errors"
)

// VectorizerConfig bounds the vocabulary built during fit.
type VectorizerConfig struct {
	// MaxFeatures caps the vocabulary size; the cap keeps the terms with
	// the highest aggregate corpus frequency.
	MaxFeatures int
	// MinDF is the minimum number of documents a term must appear in.
	MinDF int
	// MaxDF is the maximum fraction of documents a term may appear in.
	MaxDF float64
	// NGramMin and NGramMax bound the n-gram sizes extracted per document.
	NGramMin int
	NGramMax int
}

// DefaultVectorizerConfig mirrors the settings the corpus was tuned with:
// top 10,000 terms, present in at least 5 documents and at most 95% of
// them, unigrams and bigrams.
func DefaultVectorizerConfig() VectorizerConfig {
	return VectorizerConfig{
		MaxFeatures: 10000,
		MinDF:       5,
		MaxDF:       0.95,
		NGramMin:    1,
		NGramMax:    2,
	}
}

// Vectorizer converts cleaned text into L2-normalized tf-idf vectors over
// a vocabulary learned once during Fit. The vocabulary is write-once: it
// is frozen after Fit and only read by Transform, so concurrent transforms
// are safe. Re-fitting discards the previous vocabulary.
type Vectorizer struct {
	cfg    VectorizerConfig
	log    *slog.Logger
	vocab  map[string]int
	terms  []string
	idf    []float64
	fitted bool
}

func NewVectorizer(cfg VectorizerConfig, log *slog.Logger) *Vectorizer {
	return &Vectorizer{cfg: cfg, log: log}
}

// Fit builds the vocabulary and idf table from the given documents.
// Term indices follow lexicographic term order, so identical input always
// yields an identical vocabulary.
func (v *Vectorizer) Fit(docs []string) {
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)

	for _, doc := range docs {
		terms := v.extract(doc)
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			corpusFreq[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	n := len(docs)
	retained := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df < v.cfg.MinDF {
			continue
		}
		if float64(df) > v.cfg.MaxDF*float64(n) {
			continue
		}
		retained = append(retained, term)
	}

	if len(retained) > v.cfg.MaxFeatures {
		// Keep the most frequent terms, ties broken lexicographically.
		sort.Slice(retained, func(i, j int) bool {
			fi, fj := corpusFreq[retained[i]], corpusFreq[retained[j]]
			if fi != fj {
				return fi > fj
			}
			return retained[i] < retained[j]
		})
		retained = retained[:v.cfg.MaxFeatures]
	}
	sort.Strings(retained)

	vocab := make(map[string]int, len(retained))
	idf := make([]float64, len(retained))
	for i, term := range retained {
		vocab[term] = i
		// Smooth idf: ln((1+N)/(1+df)) + 1.
		idf[i] = math.Log(float64(1+n)/float64(1+docFreq[term])) + 1
	}

	v.vocab = vocab
	v.terms = retained
	v.idf = idf
	v.fitted = true

	v.log.Info("vectorizer fitted",
		"documents", n,
		"candidate_terms", len(docFreq),
		"vocabulary", len(vocab),
	)
}

// Transform converts one text into a tf-idf vector using the fitted
// vocabulary. Terms outside the vocabulary contribute nothing; a text with
// no retained terms yields the zero vector.
func (v *Vectorizer) Transform(text string) (FeatureVector, error) {
	if !v.fitted {
		return nil, errors.ErrNotFitted
	}

	vec := make(FeatureVector)
	for _, term := range v.extract(text) {
		if idx, ok := v.vocab[term]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	vec.normalize()
	return vec, nil
}

// TransformAll converts a batch of texts.
func (v *Vectorizer) TransformAll(texts []string) ([]FeatureVector, error) {
	vectors := make([]FeatureVector, len(texts))
	for i, text := range texts {
		vec, err := v.Transform(text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// Config returns the configuration the vectorizer was built with.
func (v *Vectorizer) Config() VectorizerConfig {
	return v.cfg
}

// Vocabulary returns the fitted term → index mapping.
func (v *Vectorizer) Vocabulary() map[string]int {
	return v.vocab
}

// Terms returns the fitted terms in index order.
func (v *Vectorizer) Terms() []string {
	return v.terms
}

// IDF returns the fitted inverse document frequencies in index order.
func (v *Vectorizer) IDF() []float64 {
	return v.idf
}

// extract tokenizes on whitespace and emits every n-gram in the configured
// range, contiguous tokens joined by a single space.
func (v *Vectorizer) extract(text string) []string {
	tokens := strings.Fields(text)
	var terms []string
	for n := v.cfg.NGramMin; n <= v.cfg.NGramMax; n++ {
		if n < 1 {
			continue
		}
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
