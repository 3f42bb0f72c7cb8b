package main

import (
	"fmt"
	"os"

	"sentiment-lab/cleaning"
	"sentiment-lab/features"
	"sentiment-lab/internal"
	"sentiment-lab/observability"
	"sentiment-lab/repositories"
	"sentiment-lab/sampling"
	"sentiment-lab/services"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
)

const topFeatureCount = 10

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the whole pipeline and centralizes error reporting so every
// defer (database close, index close) executes before the process exits.
func run() error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := internal.LoggerFromLevel(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing corpus index...")
		_ = blugeWriter.Close()
	}()

	preset := config.Preset()
	normalizer := cleaning.NewNormalizer(preset.Strategy, nil)
	vectorizer := features.NewVectorizer(features.VectorizerConfig{
		MaxFeatures: config.MaxFeatures,
		MinDF:       config.MinDF,
		MaxDF:       config.MaxDF,
		NGramMin:    config.NGramMin,
		NGramMax:    config.NGramMax,
	}, log)

	featureRepo := repositories.NewFeatureRepository(db, log)
	pipeline := services.NewPipelineService(
		repositories.NewCSVSource(config.DatasetPath, log),
		sampling.NewSampler(config.Seed, log),
		cleaning.NewCleaner(normalizer, preset.Strategy, log),
		vectorizer,
		features.NewSplitter(config.TestSize, config.Seed, log),
		featureRepo,
		repositories.NewCleanedWriter(config.CleanedPath, log),
		repositories.NewCorpusIndex(blugeWriter, log),
		config.EffectiveSampleSize(),
		log,
	)

	result, err := pipeline.Prepare()
	if err != nil {
		return err
	}

	printSummary(result)

	bundle, err := featureRepo.Load(result.RunID)
	if err != nil {
		return err
	}
	vectors := append(bundle.Train.Vectors, bundle.Test.Vectors...)
	observability.RenderTopFeatures(os.Stdout, observability.TopFeatures(vectors, bundle.Terms, topFeatureCount))
	return nil
}

func printSummary(result services.PrepareResult) {
	color.Green.Printf("Run %s complete\n", result.RunID)
	color.Cyan.Printf("  loaded:      %d\n", result.Loaded)
	color.Cyan.Printf("  sampled:     %d\n", result.Sampled)
	color.Cyan.Printf("  cleaned:     %d (missing=%d empty=%d non_english=%d duplicates=%d)\n",
		result.CleanStats.Output,
		result.CleanStats.Missing,
		result.CleanStats.BecameEmpty,
		result.CleanStats.NonEnglish,
		result.CleanStats.Duplicates,
	)
	color.Cyan.Printf("  vocabulary:  %d\n", result.Vocabulary)
	color.Cyan.Printf("  train/test:  %d/%d\n", result.TrainSize, result.TestSize)

	if mem, err := observability.ProcessMemoryMB(); err == nil {
		color.Gray.Printf("  memory:      %.1f MB\n", mem)
	}
}
