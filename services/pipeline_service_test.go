package services_test

import (
	"io"
	"log/slog"
	"testing"

	"sentiment-lab/cleaning"
	"sentiment-lab/domain"
	"sentiment-lab/errors"
	"sentiment-lab/features"
	"sentiment-lab/mocks"
	"sentiment-lab/sampling"
	"sentiment-lab/services"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPipeline(t *testing.T, source *mocks.MockRecordSource,
	store *mocks.MockFeatureStore, sink *mocks.MockCleanedSink,
	indexer *mocks.MockCorpusIndexer) *services.PipelineService {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	normalizer := cleaning.NewNormalizer(cleaning.StrategyFast, nil)
	vectorizer := features.NewVectorizer(features.VectorizerConfig{
		MaxFeatures: 100,
		MinDF:       1,
		MaxDF:       1.0,
		NGramMin:    1,
		NGramMax:    2,
	}, log)

	return services.NewPipelineService(
		source,
		sampling.NewSampler(42, log),
		cleaning.NewCleaner(normalizer, cleaning.StrategyFast, log),
		vectorizer,
		features.NewSplitter(0.25, 42, log),
		store,
		sink,
		indexer,
		100,
		log,
	)
}

func TestPipelineService_Prepare(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockRecordSource(ctrl)
	store := mocks.NewMockFeatureStore(ctrl)
	sink := mocks.NewMockCleanedSink(ctrl)
	indexer := mocks.NewMockCorpusIndexer(ctrl)

	records := []domain.Record{
		{ID: "1", RawText: "I LOVE this!!! http://x.co #great", Label: domain.Positive},
		{ID: "2", RawText: "I love this", Label: domain.Positive},
		{ID: "3", RawText: "hate the bad movie", Label: domain.Negative},
		{ID: "4", RawText: "truly wonderful experience overall", Label: domain.Positive},
		{ID: "5", RawText: "absolutely horrible waste tonight", Label: domain.Negative},
		{ID: "6", RawText: "worst film ever seen", Label: domain.Negative},
		{ID: "7", RawText: "amazing story brilliant acting", Label: domain.Positive},
		{ID: "8", RawText: "boring plot terrible pacing", Label: domain.Negative},
	}
	source.EXPECT().Load().Return(records, nil)

	var stored features.Bundle
	store.EXPECT().Store(gomock.Any()).DoAndReturn(func(b features.Bundle) error {
		stored = b
		return nil
	})

	var written []domain.CleanedRecord
	sink.EXPECT().Write(gomock.Any()).DoAndReturn(func(rs []domain.CleanedRecord) error {
		written = rs
		return nil
	})
	indexer.EXPECT().Index(gomock.Any()).Return(nil)

	pipeline := newPipeline(t, source, store, sink, indexer)
	result, err := pipeline.Prepare()
	req.NoError(err)

	// Record 2 deduplicates against record 1.
	req.Equal(8, result.Loaded)
	req.Equal(8, result.Sampled)
	req.Equal(7, result.CleanStats.Output)
	req.Equal(1, result.CleanStats.Duplicates)
	req.Len(written, 7)

	req.NotEmpty(result.RunID)
	req.Equal(result.RunID, stored.RunID)
	req.Equal(result.Vocabulary, len(stored.Terms))
	req.Positive(result.Vocabulary)
	req.Equal(7, result.TrainSize+result.TestSize)
	req.Equal(stored.Train.Len(), result.TrainSize)
	req.Equal(stored.Test.Len(), result.TestSize)

	// Every stored vector is unit length or zero.
	for _, vec := range append(stored.Train.Vectors, stored.Test.Vectors...) {
		norm := vec.Norm()
		if norm != 0 {
			req.InDelta(1.0, norm, 1e-9)
		}
	}
}

func TestPipelineService_SourceErrorSurfaces(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockRecordSource(ctrl)
	source.EXPECT().Load().Return(nil, errors.ErrInputNotFound)

	pipeline := newPipeline(t, source,
		mocks.NewMockFeatureStore(ctrl),
		mocks.NewMockCleanedSink(ctrl),
		mocks.NewMockCorpusIndexer(ctrl))

	_, err := pipeline.Prepare()
	req.ErrorIs(err, errors.ErrInputNotFound)
}

func TestPipelineService_NothingSurvivesCleaning(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockRecordSource(ctrl)
	source.EXPECT().Load().Return([]domain.Record{
		{ID: "1", RawText: "the a an", Label: domain.Positive},
		{ID: "2", RawText: "   ", Label: domain.Negative},
	}, nil)

	pipeline := newPipeline(t, source,
		mocks.NewMockFeatureStore(ctrl),
		mocks.NewMockCleanedSink(ctrl),
		mocks.NewMockCorpusIndexer(ctrl))

	_, err := pipeline.Prepare()
	req.ErrorIs(err, errors.ErrEmptyInput)
}
