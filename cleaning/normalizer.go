package cleaning

import (
	"regexp"
	"strings"

	"github.com/blevesearch/go-porterstemmer"
)

// Strategy selects the cleaning pipeline variant.
type Strategy string

const (
	// StrategyFast lowercases, strips noise and filters stopwords.
	StrategyFast Strategy = "fast"
	// StrategyFull adds Porter stemming and an English-only record filter.
	StrategyFull Strategy = "full"
)

// Preset bundles a strategy with the sample size it was tuned for.
type Preset struct {
	Strategy   Strategy
	SampleSize int
}

// Presets holds the two supported cleaning configurations.
var Presets = map[string]Preset{
	"fast": {Strategy: StrategyFast, SampleSize: 45000},
	"full": {Strategy: StrategyFull, SampleSize: 100000},
}

var (
	// URL-like tokens, @-mentions and hashtags are dropped whole.
	noisePattern = regexp.MustCompile(`http\S+|www\S+|@\w+|#\w+`)
	// Everything that is not a lowercase letter or whitespace becomes a space.
	nonLetterPattern = regexp.MustCompile(`[^a-z\s]`)
)

// Normalizer maps one raw text to one cleaned token string.
// It is pure: the same input always yields the same output, and its own
// output passes through unchanged.
type Normalizer struct {
	stopwords map[string]struct{}
	stem      bool
}

// NewNormalizer builds a normalizer for the given strategy using the
// provided stopword set. A nil set falls back to DefaultStopwords.
func NewNormalizer(strategy Strategy, stopwords map[string]struct{}) *Normalizer {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	return &Normalizer{
		stopwords: stopwords,
		stem:      strategy == StrategyFull,
	}
}

// Clean runs the fixed-order pipeline: lowercase, strip noise tokens,
// strip non-letters, tokenize, drop stopwords and short words, optionally
// stem, rejoin. Input that reduces to zero tokens yields "".
func (n *Normalizer) Clean(text string) string {
	lowered := strings.ToLower(text)
	lowered = noisePattern.ReplaceAllString(lowered, "")
	lowered = nonLetterPattern.ReplaceAllString(lowered, " ")

	words := strings.Fields(lowered)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if !n.keep(word) {
			continue
		}
		if n.stem {
			word = porterstemmer.StemString(word)
			// A stem may shrink below the length floor or collide with a
			// stopword; re-checking keeps Clean a fixed point of itself.
			if !n.keep(word) {
				continue
			}
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

func (n *Normalizer) keep(word string) bool {
	if len(word) < 3 {
		return false
	}
	_, stop := n.stopwords[word]
	return !stop
}
