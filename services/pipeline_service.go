package services

import (
	"fmt"
	"log/slog"
	"time"

	"sentiment-lab/cleaning"
	"sentiment-lab/contract"
	"sentiment-lab/domain"
	"sentiment-lab/errors"
	"sentiment-lab/features"
	"sentiment-lab/sampling"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IPipelineService interface {
	Prepare() (PrepareResult, error)
}

// PrepareResult summarizes one full pipeline run.
type PrepareResult struct {
	RunID      string
	Loaded     int
	Sampled    int
	CleanStats cleaning.CleanStats
	Vocabulary int
	TrainSize  int
	TestSize   int
}

// PipelineService runs the whole preparation batch in order:
// source → sampler → cleaner → vectorizer → splitter, then hands the
// results to the cleaned sink, the corpus index and the feature store.
// Every stage materializes its output before the next one starts.
type PipelineService struct {
	source     contract.RecordSource
	sampler    *sampling.Sampler
	cleaner    *cleaning.Cleaner
	vectorizer *features.Vectorizer
	splitter   *features.Splitter
	store      contract.FeatureStore
	sink       contract.CleanedSink
	indexer    contract.CorpusIndexer
	sampleSize int
	log        *slog.Logger
}

func NewPipelineService(
	source contract.RecordSource,
	sampler *sampling.Sampler,
	cleaner *cleaning.Cleaner,
	vectorizer *features.Vectorizer,
	splitter *features.Splitter,
	store contract.FeatureStore,
	sink contract.CleanedSink,
	indexer contract.CorpusIndexer,
	sampleSize int,
	log *slog.Logger,
) *PipelineService {
	return &PipelineService{
		source:     source,
		sampler:    sampler,
		cleaner:    cleaner,
		vectorizer: vectorizer,
		splitter:   splitter,
		store:      store,
		sink:       sink,
		indexer:    indexer,
		sampleSize: sampleSize,
		log:        log,
	}
}

func (s *PipelineService) Prepare() (PrepareResult, error) {
	records, err := s.source.Load()
	if err != nil {
		return PrepareResult{}, err
	}

	sampled := s.sampler.Sample(records, s.sampleSize)
	cleaned, stats := s.cleaner.CleanCorpus(sampled)
	if len(cleaned) == 0 {
		return PrepareResult{}, fmt.Errorf("%w: nothing survived cleaning", errors.ErrEmptyInput)
	}

	if err := s.sink.Write(cleaned); err != nil {
		return PrepareResult{}, fmt.Errorf("persisting cleaned corpus: %w", err)
	}
	if err := s.indexer.Index(cleaned); err != nil {
		return PrepareResult{}, fmt.Errorf("indexing cleaned corpus: %w", err)
	}

	texts := lo.Map(cleaned, func(r domain.CleanedRecord, _ int) string {
		return r.CleanedText
	})
	labels := lo.Map(cleaned, func(r domain.CleanedRecord, _ int) domain.Label {
		return r.Label
	})

	s.vectorizer.Fit(texts)
	vectors, err := s.vectorizer.TransformAll(texts)
	if err != nil {
		return PrepareResult{}, err
	}

	split := s.splitter.Split(features.Dataset{Vectors: vectors, Labels: labels})

	bundle := features.Bundle{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Config:    s.vectorizer.Config(),
		Terms:     s.vectorizer.Terms(),
		IDF:       s.vectorizer.IDF(),
		Train:     split.Train,
		Test:      split.Test,
	}
	if err := s.store.Store(bundle); err != nil {
		return PrepareResult{}, fmt.Errorf("persisting feature bundle: %w", err)
	}

	result := PrepareResult{
		RunID:      bundle.RunID,
		Loaded:     len(records),
		Sampled:    len(sampled),
		CleanStats: stats,
		Vocabulary: len(bundle.Terms),
		TrainSize:  split.Train.Len(),
		TestSize:   split.Test.Len(),
	}
	s.log.Info("pipeline run complete",
		"run_id", result.RunID,
		"loaded", result.Loaded,
		"sampled", result.Sampled,
		"cleaned", stats.Output,
		"vocabulary", result.Vocabulary,
		"train", result.TrainSize,
		"test", result.TestSize,
	)
	return result, nil
}
