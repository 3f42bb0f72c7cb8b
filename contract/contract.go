//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"sentiment-lab/domain"
	"sentiment-lab/features"
)

// RecordSource decodes raw labeled records from wherever the dataset
// lives. The pipeline is agnostic to the storage format.
type RecordSource interface {
	Load() ([]domain.Record, error)
}

// FeatureStore persists the fitted artifact bundle of a pipeline run.
type FeatureStore interface {
	Store(bundle features.Bundle) error
	Load(runID string) (features.Bundle, error)
}

// CorpusIndexer makes a cleaned corpus searchable for inspection.
type CorpusIndexer interface {
	Index(records []domain.CleanedRecord) error
}

// CleanedSink receives the cleaned corpus for downstream persistence.
type CleanedSink interface {
	Write(records []domain.CleanedRecord) error
}
