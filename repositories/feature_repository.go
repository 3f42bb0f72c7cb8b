package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sentiment-lab/features"

	"github.com/dgraph-io/badger/v4"
)

// RunMeta is the lightweight summary stored next to each bundle so runs
// can be listed without decoding the full artifact.
type RunMeta struct {
	RunID      string    `json:"run_id"`
	CreatedAt  time.Time `json:"created_at"`
	Vocabulary int       `json:"vocabulary"`
	TrainSize  int       `json:"train_size"`
	TestSize   int       `json:"test_size"`
}

// FeatureRepository persists fitted artifact bundles in BadgerDB.
// Keys are "features:{run_id}:bundle" for the full JSON bundle and
// "features:{run_id}:meta" for its summary, so a prefix scan over
// "features:" with a ":meta" filter lists every run.
type FeatureRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewFeatureRepository(db *badger.DB, log *slog.Logger) *FeatureRepository {
	return &FeatureRepository{db: db, log: log}
}

func (r *FeatureRepository) Store(bundle features.Bundle) error {
	bundleBytes, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}
	meta := RunMeta{
		RunID:      bundle.RunID,
		CreatedAt:  bundle.CreatedAt,
		Vocabulary: len(bundle.Terms),
		TrainSize:  bundle.Train.Len(),
		TestSize:   bundle.Test.Len(),
	}
	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encoding run meta: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(bundleKey(bundle.RunID), bundleBytes); err != nil {
			return err
		}
		return txn.Set(metaKey(bundle.RunID), metaBytes)
	})
	if err != nil {
		return err
	}

	r.log.Info("feature bundle stored",
		"run_id", bundle.RunID,
		"vocabulary", meta.Vocabulary,
		"train", meta.TrainSize,
		"test", meta.TestSize,
	)
	return nil
}

func (r *FeatureRepository) Load(runID string) (features.Bundle, error) {
	var bundle features.Bundle
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(bundleKey(runID))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &bundle)
		})
	})
	if err != nil {
		return features.Bundle{}, fmt.Errorf("loading bundle %s: %w", runID, err)
	}
	return bundle, nil
}

// ListRuns returns the stored run summaries, in key order.
func (r *FeatureRepository) ListRuns() ([]RunMeta, error) {
	var runs []RunMeta
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("features:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if !strings.HasSuffix(string(item.Key()), ":meta") {
				continue
			}
			err := item.Value(func(value []byte) error {
				var meta RunMeta
				if err := json.Unmarshal(value, &meta); err != nil {
					return err
				}
				runs = append(runs, meta)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return runs, err
}

func bundleKey(runID string) []byte {
	return []byte(fmt.Sprintf("features:%s:bundle", runID))
}

func metaKey(runID string) []byte {
	return []byte(fmt.Sprintf("features:%s:meta", runID))
}
