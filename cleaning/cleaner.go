package cleaning

import (
	"log/slog"
	"strings"

	"sentiment-lab/domain"

	"github.com/abadojack/whatlanggo"
)

// CleanStats reports how many records each cleaning stage removed.
// These counters are the only side effect of batch cleaning besides the
// returned corpus.
type CleanStats struct {
	Input       int
	Missing     int
	NonEnglish  int
	BecameEmpty int
	Duplicates  int
	Output      int
}

// Cleaner applies the normalizer to a whole corpus and filters the result.
type Cleaner struct {
	normalizer  *Normalizer
	englishOnly bool
	log         *slog.Logger
}

// NewCleaner builds a batch cleaner. The full strategy also excludes
// records whose raw text is not detected as English.
func NewCleaner(normalizer *Normalizer, strategy Strategy, log *slog.Logger) *Cleaner {
	return &Cleaner{
		normalizer:  normalizer,
		englishOnly: strategy == StrategyFull,
		log:         log,
	}
}

// CleanCorpus normalizes every record, then drops empties and duplicates.
// Per-record issues never fail the batch; they are counted and excluded.
func (c *Cleaner) CleanCorpus(records []domain.Record) ([]domain.CleanedRecord, CleanStats) {
	stats := CleanStats{Input: len(records)}

	cleaned := make([]domain.CleanedRecord, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.RawText) == "" {
			stats.Missing++
			continue
		}
		if c.englishOnly && !isEnglish(r.RawText) {
			stats.NonEnglish++
			continue
		}
		text := c.normalizer.Clean(r.RawText)
		if text == "" {
			stats.BecameEmpty++
			continue
		}
		cleaned = append(cleaned, domain.CleanedRecord{
			ID:          r.ID,
			CleanedText: text,
			Label:       r.Label,
		})
	}

	deduped := Deduplicate(cleaned)
	stats.Duplicates = len(cleaned) - len(deduped)
	stats.Output = len(deduped)

	c.log.Info("corpus cleaned",
		"input", stats.Input,
		"missing", stats.Missing,
		"non_english", stats.NonEnglish,
		"became_empty", stats.BecameEmpty,
		"duplicates", stats.Duplicates,
		"output", stats.Output,
	)
	return deduped, stats
}

func isEnglish(text string) bool {
	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391() == "en"
}
