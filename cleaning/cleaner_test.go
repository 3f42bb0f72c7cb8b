package cleaning

import (
	"io"
	"log/slog"
	"testing"

	"sentiment-lab/domain"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCleaner_CleanCorpus(t *testing.T) {
	req := require.New(t)
	normalizer := NewNormalizer(StrategyFast, nil)
	cleaner := NewCleaner(normalizer, StrategyFast, discardLogger())

	records := []domain.Record{
		{ID: "1", RawText: "I LOVE this!!! http://x.co #great", Label: domain.Positive},
		{ID: "2", RawText: "I love this", Label: domain.Positive},
		{ID: "3", RawText: "hate the bad movie", Label: domain.Negative},
		{ID: "4", RawText: "   ", Label: domain.Neutral},
		{ID: "5", RawText: "the a an", Label: domain.Neutral},
	}

	cleaned, stats := cleaner.CleanCorpus(records)

	// Record 2 cleans to the same "love" as record 1 and is dropped as a
	// duplicate; 4 is missing, 5 reduces to nothing.
	req.Len(cleaned, 2)
	req.Equal("love", cleaned[0].CleanedText)
	req.Equal(domain.Positive, cleaned[0].Label)
	req.Equal("hate bad movie", cleaned[1].CleanedText)
	req.Equal(domain.Negative, cleaned[1].Label)

	req.Equal(5, stats.Input)
	req.Equal(1, stats.Missing)
	req.Equal(1, stats.BecameEmpty)
	req.Equal(1, stats.Duplicates)
	req.Equal(2, stats.Output)
}

func TestCleaner_CleanCorpus_NonEnglishFilter(t *testing.T) {
	req := require.New(t)
	normalizer := NewNormalizer(StrategyFull, nil)
	cleaner := NewCleaner(normalizer, StrategyFull, discardLogger())

	records := []domain.Record{
		{ID: "1", RawText: "absolutely wonderful experience watching this with everyone", Label: domain.Positive},
		{ID: "2", RawText: "Это было совершенно ужасное зрелище вчера вечером", Label: domain.Negative},
	}

	cleaned, stats := cleaner.CleanCorpus(records)
	req.Len(cleaned, 1)
	req.Equal("1", cleaned[0].ID)
	req.Equal(1, stats.NonEnglish)
}

func TestDeduplicate_Idempotent(t *testing.T) {
	req := require.New(t)

	records := []domain.CleanedRecord{
		{ID: "1", CleanedText: "love", Label: domain.Positive},
		{ID: "2", CleanedText: "", Label: domain.Neutral},
		{ID: "3", CleanedText: "hate bad movie", Label: domain.Negative},
		{ID: "4", CleanedText: "love", Label: domain.Positive},
		{ID: "5", CleanedText: "hate bad movie", Label: domain.Negative},
	}

	once := Deduplicate(records)
	req.Len(once, 2)
	req.Equal("1", once[0].ID)
	req.Equal("3", once[1].ID)

	twice := Deduplicate(once)
	req.Equal(once, twice)
}

func TestDeduplicate_Empty(t *testing.T) {
	require.Empty(t, Deduplicate(nil))
	require.Empty(t, Deduplicate([]domain.CleanedRecord{{ID: "1", CleanedText: ""}}))
}
