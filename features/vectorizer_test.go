package features

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"sentiment-lab/errors"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() VectorizerConfig {
	return VectorizerConfig{
		MaxFeatures: 10000,
		MinDF:       1,
		MaxDF:       1.0,
		NGramMin:    1,
		NGramMax:    2,
	}
}

func TestVectorizer_TransformBeforeFit(t *testing.T) {
	v := NewVectorizer(testConfig(), discardLogger())
	_, err := v.Transform("anything")
	require.ErrorIs(t, err, errors.ErrNotFitted)
}

func TestVectorizer_UnitNorm(t *testing.T) {
	req := require.New(t)
	v := NewVectorizer(testConfig(), discardLogger())

	docs := []string{
		"love great wonderful",
		"hate terrible awful",
		"love hate mixed feelings",
		"great movie love story",
	}
	v.Fit(docs)

	vectors, err := v.TransformAll(docs)
	req.NoError(err)
	for i, vec := range vectors {
		req.InDelta(1.0, vec.Norm(), 1e-9, "doc %d", i)
	}

	// A document with no vocabulary terms yields the zero vector.
	zero, err := v.Transform("zzz qqq xxx")
	req.NoError(err)
	req.Empty(zero)
	req.Equal(0.0, zero.Norm())
}

func TestVectorizer_Ngrams(t *testing.T) {
	req := require.New(t)
	v := NewVectorizer(testConfig(), discardLogger())

	v.Fit([]string{"hate bad movie"})
	vocab := v.Vocabulary()

	for _, term := range []string{"hate", "bad", "movie", "hate bad", "bad movie"} {
		req.Contains(vocab, term)
	}
	req.NotContains(vocab, "hate bad movie")
}

func TestVectorizer_DocumentFrequencyBounds(t *testing.T) {
	req := require.New(t)
	cfg := testConfig()
	cfg.MinDF = 2
	cfg.MaxDF = 0.75
	v := NewVectorizer(cfg, discardLogger())

	// "common" appears in all 4 docs (df fraction 1.0 > 0.75),
	// "rare" in a single one (df 1 < 2), "love" in 2, "hate" in 2.
	v.Fit([]string{
		"common love",
		"common love",
		"common hate",
		"common hate rare",
	})

	vocab := v.Vocabulary()
	req.Contains(vocab, "love")
	req.Contains(vocab, "hate")
	req.NotContains(vocab, "common")
	req.NotContains(vocab, "rare")
}

func TestVectorizer_MaxFeaturesCap(t *testing.T) {
	req := require.New(t)
	cfg := testConfig()
	cfg.MaxFeatures = 2
	cfg.NGramMax = 1
	v := NewVectorizer(cfg, discardLogger())

	// Corpus frequencies: alpha 4, beta 3, gamma 1.
	v.Fit([]string{
		"alpha alpha beta",
		"alpha beta gamma",
		"alpha beta",
	})

	req.Len(v.Terms(), 2)
	req.Contains(v.Vocabulary(), "alpha")
	req.Contains(v.Vocabulary(), "beta")
	req.NotContains(v.Vocabulary(), "gamma")
}

func TestVectorizer_StableIndexOrder(t *testing.T) {
	req := require.New(t)
	docs := []string{"love great", "hate awful", "love movie"}

	first := NewVectorizer(testConfig(), discardLogger())
	first.Fit(docs)
	second := NewVectorizer(testConfig(), discardLogger())
	second.Fit(docs)

	req.Equal(first.Terms(), second.Terms())
	req.Equal(first.IDF(), second.IDF())

	// Indices follow lexicographic term order.
	terms := first.Terms()
	for i := 1; i < len(terms); i++ {
		req.Less(terms[i-1], terms[i])
	}
}

func TestVectorizer_TransformSubsetOfDocument(t *testing.T) {
	req := require.New(t)
	v := NewVectorizer(testConfig(), discardLogger())

	docs := []string{"love great wonderful", "hate terrible awful", "love story"}
	v.Fit(docs)

	doc := docs[0]
	vec, err := v.Transform(doc)
	req.NoError(err)
	req.NotEmpty(vec)

	terms := v.Terms()
	for idx := range vec {
		term := terms[idx]
		for _, token := range strings.Fields(term) {
			req.Contains(strings.Fields(doc), token)
		}
	}
}

func TestVectorizer_SmoothIDF(t *testing.T) {
	req := require.New(t)
	cfg := testConfig()
	cfg.NGramMax = 1
	v := NewVectorizer(cfg, discardLogger())

	// "love" df=2, "hate" df=1, n=2.
	v.Fit([]string{"love hate", "love"})

	vocab := v.Vocabulary()
	idf := v.IDF()
	req.InDelta(math.Log(3.0/3.0)+1, idf[vocab["love"]], 1e-12)
	req.InDelta(math.Log(3.0/2.0)+1, idf[vocab["hate"]], 1e-12)
}

func TestVectorizer_RefitDiscardsVocabulary(t *testing.T) {
	req := require.New(t)
	v := NewVectorizer(testConfig(), discardLogger())

	v.Fit([]string{"love story"})
	req.Contains(v.Vocabulary(), "love")

	v.Fit([]string{"hate movie"})
	req.NotContains(v.Vocabulary(), "love")
	req.Contains(v.Vocabulary(), "hate")
}
