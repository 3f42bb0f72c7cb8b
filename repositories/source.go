package repositories

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"sentiment-lab/domain"
	"sentiment-lab/errors"

	"golang.org/x/text/encoding/charmap"
)

// Sentiment140 column layout: sentiment code, tweet id, date, query, user, text.
const (
	columnSentiment = 0
	columnID        = 1
	columnText      = 5
	columnCount     = 6
)

// CSVSource reads the headerless, latin-1 encoded Sentiment140 dump.
// Malformed rows and unknown sentiment codes are dropped and counted,
// never fatal.
type CSVSource struct {
	path string
	log  *slog.Logger
}

func NewCSVSource(path string, log *slog.Logger) *CSVSource {
	return &CSVSource{path: path, log: log}
}

// Load decodes every usable row into a Record. A missing file surfaces
// ErrInputNotFound; a readable file with zero usable rows surfaces
// ErrEmptyInput.
func (s *CSVSource) Load() ([]domain.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errors.ErrInputNotFound, s.path)
		}
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records []domain.Record
	var skipped int
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		record, ok := s.decode(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrEmptyInput, s.path)
	}

	s.log.Info("dataset loaded",
		"path", s.path,
		"records", len(records),
		"skipped", skipped,
	)
	return records, nil
}

func (s *CSVSource) decode(row []string) (domain.Record, bool) {
	if len(row) < columnCount {
		return domain.Record{}, false
	}
	code, err := strconv.Atoi(strings.TrimSpace(row[columnSentiment]))
	if err != nil {
		return domain.Record{}, false
	}
	label, err := domain.LabelFromCode(code)
	if err != nil {
		return domain.Record{}, false
	}
	return domain.Record{
		ID:      strings.TrimSpace(row[columnID]),
		RawText: row[columnText],
		Label:   label,
	}, true
}
