package features

import "time"

// Bundle is the opaque serializable result of one pipeline run: the fitted
// vectorizer state plus the train/test partition. It mirrors what a
// downstream trainer needs to reload without re-fitting.
type Bundle struct {
	RunID     string           `json:"run_id"`
	CreatedAt time.Time        `json:"created_at"`
	Config    VectorizerConfig `json:"config"`
	Terms     []string         `json:"terms"`
	IDF       []float64        `json:"idf"`
	Train     Dataset          `json:"train"`
	Test      Dataset          `json:"test"`
}

// Vocabulary rebuilds the term → index mapping from the stored term list.
func (b Bundle) Vocabulary() map[string]int {
	vocab := make(map[string]int, len(b.Terms))
	for i, term := range b.Terms {
		vocab[term] = i
	}
	return vocab
}
