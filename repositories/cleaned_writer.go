package repositories

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"sentiment-lab/domain"
)

// CleanedWriter persists the cleaned corpus as a plain CSV of
// {id, label, cleaned_text}, the hand-off format for downstream steps.
type CleanedWriter struct {
	path string
	log  *slog.Logger
}

func NewCleanedWriter(path string, log *slog.Logger) *CleanedWriter {
	return &CleanedWriter{path: path, log: log}
}

func (w *CleanedWriter) Write(records []domain.CleanedRecord) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("creating cleaned output: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"id", "label", "cleaned_text"}); err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.Write([]string{r.ID, string(r.Label), r.CleanedText}); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writing cleaned output: %w", err)
	}

	w.log.Info("cleaned corpus written", "path", w.path, "records", len(records))
	return nil
}
