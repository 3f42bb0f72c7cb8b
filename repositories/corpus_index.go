package repositories

import (
	"context"
	"log/slog"

	"sentiment-lab/domain"

	"github.com/blugelabs/bluge"
)

// SearchHit is one cleaned record matched by a term query.
type SearchHit struct {
	ID    string
	Label string
	Text  string
}

// CorpusIndex makes the cleaned corpus searchable through a bluge index,
// so prepared runs can be inspected with ad-hoc term queries.
type CorpusIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewCorpusIndex(writer *bluge.Writer, log *slog.Logger) *CorpusIndex {
	return &CorpusIndex{writer: writer, log: log}
}

// Index adds every cleaned record to the index in one batch. A record that
// fails to index is logged and skipped.
func (c *CorpusIndex) Index(records []domain.CleanedRecord) error {
	batch := bluge.NewBatch()
	for _, r := range records {
		doc := bluge.NewDocument(r.ID).
			AddField(bluge.NewTextField("text", r.CleanedText).StoreValue()).
			AddField(bluge.NewKeywordField("label", string(r.Label)).StoreValue())
		batch.Update(doc.ID(), doc)
	}
	if err := c.writer.Batch(batch); err != nil {
		return err
	}
	c.log.Info("corpus indexed", "records", len(records))
	return nil
}

// Search returns up to limit records whose cleaned text matches the term.
func (c *CorpusIndex) Search(ctx context.Context, term string, limit int) ([]SearchHit, error) {
	reader, err := c.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	query := bluge.NewMatchQuery(term).SetField("text")
	request := bluge.NewTopNSearch(limit, query)

	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var hits []SearchHit
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}

		var hit SearchHit
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID = string(value)
			case "label":
				hit.Label = string(value)
			case "text":
				hit.Text = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
