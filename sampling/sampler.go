package sampling

import (
	"log/slog"
	"math/rand"
	"sort"

	"sentiment-lab/domain"

	"github.com/samber/lo"
)

// Sampler draws a class-balanced subset of a corpus. All randomness comes
// from the configured seed, so the same input and seed always produce the
// same subset in the same order.
type Sampler struct {
	seed int64
	log  *slog.Logger
}

func NewSampler(seed int64, log *slog.Logger) *Sampler {
	return &Sampler{seed: seed, log: log}
}

// Sample returns at most target records with per-label counts as equal as
// possible. Labels with fewer records than their quota contribute all they
// have and leave the remainder to the larger classes. The combined subset
// is shuffled once so records are not grouped by label.
func (s *Sampler) Sample(records []domain.Record, target int) []domain.Record {
	if target <= 0 {
		return nil
	}

	r := rand.New(rand.NewSource(s.seed))
	byLabel := lo.GroupBy(records, func(rec domain.Record) domain.Label {
		return rec.Label
	})

	// Only labels actually present take part in the quota split. Smallest
	// classes are served first so their shortfall rolls over.
	present := make([]domain.Label, 0, len(domain.Labels))
	for _, label := range domain.Labels {
		if len(byLabel[label]) > 0 {
			present = append(present, label)
		}
	}
	sort.SliceStable(present, func(i, j int) bool {
		return len(byLabel[present[i]]) < len(byLabel[present[j]])
	})

	remaining := target
	picked := make(map[domain.Label][]domain.Record, len(present))
	for i, label := range present {
		quota := remaining / (len(present) - i)
		group := byLabel[label]
		take := quota
		if take > len(group) {
			take = len(group)
		}
		perm := r.Perm(len(group))
		subset := make([]domain.Record, 0, take)
		for _, idx := range perm[:take] {
			subset = append(subset, group[idx])
		}
		picked[label] = subset
		remaining -= take
	}

	// Reassemble in fixed label order before the final shuffle so the
	// shuffle input does not depend on class sizes.
	out := make([]domain.Record, 0, target)
	for _, label := range domain.Labels {
		out = append(out, picked[label]...)
	}
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	s.log.Info("corpus sampled",
		"available", len(records),
		"target", target,
		"sampled", len(out),
	)
	return out
}
