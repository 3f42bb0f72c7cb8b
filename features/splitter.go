package features

import (
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"sentiment-lab/domain"
)

// Dataset pairs feature vectors with their labels, index-aligned.
type Dataset struct {
	Vectors []FeatureVector `json:"vectors"`
	Labels  []domain.Label  `json:"labels"`
}

// Len returns the number of examples.
func (d Dataset) Len() int { return len(d.Vectors) }

// Split holds the train/test partition of a dataset.
type Split struct {
	Train Dataset
	Test  Dataset
}

// Splitter partitions a vectorized dataset into train and test subsets,
// label-stratified, with the same seeded determinism as the sampler.
type Splitter struct {
	testSize float64
	seed     int64
	log      *slog.Logger
}

func NewSplitter(testSize float64, seed int64, log *slog.Logger) *Splitter {
	return &Splitter{testSize: testSize, seed: seed, log: log}
}

// Split partitions the dataset. Each label's share of the test set matches
// its share of the whole; when a label has fewer than two examples,
// stratification is infeasible and a plain shuffled split is used instead.
func (s *Splitter) Split(ds Dataset) Split {
	r := rand.New(rand.NewSource(s.seed))
	testTotal := int(math.Round(s.testSize * float64(ds.Len())))

	byLabel := make(map[domain.Label][]int)
	for i, label := range ds.Labels {
		byLabel[label] = append(byLabel[label], i)
	}
	for _, indices := range byLabel {
		if len(indices) < 2 {
			s.log.Warn("stratification infeasible, falling back to plain split",
				"examples", ds.Len())
			return s.plainSplit(ds, r, testTotal)
		}
	}

	testCounts := allocateTestCounts(byLabel, s.testSize, testTotal)

	var testIdx, trainIdx []int
	for _, label := range domain.Labels {
		indices := byLabel[label]
		if len(indices) == 0 {
			continue
		}
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		take := testCounts[label]
		testIdx = append(testIdx, indices[:take]...)
		trainIdx = append(trainIdx, indices[take:]...)
	}
	r.Shuffle(len(trainIdx), func(i, j int) { trainIdx[i], trainIdx[j] = trainIdx[j], trainIdx[i] })
	r.Shuffle(len(testIdx), func(i, j int) { testIdx[i], testIdx[j] = testIdx[j], testIdx[i] })

	split := Split{Train: ds.subset(trainIdx), Test: ds.subset(testIdx)}
	s.log.Info("dataset split",
		"train", split.Train.Len(),
		"test", split.Test.Len(),
		"test_size", s.testSize,
	)
	return split
}

func (s *Splitter) plainSplit(ds Dataset, r *rand.Rand, testTotal int) Split {
	indices := make([]int, ds.Len())
	for i := range indices {
		indices[i] = i
	}
	r.Shuffle(len(indices), func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })
	return Split{
		Train: ds.subset(indices[testTotal:]),
		Test:  ds.subset(indices[:testTotal]),
	}
}

// allocateTestCounts gives each label floor(f*n) test examples and hands
// the remainder out by largest fractional part, so the test set total is
// exactly the rounded target.
func allocateTestCounts(byLabel map[domain.Label][]int, testSize float64, testTotal int) map[domain.Label]int {
	type share struct {
		label domain.Label
		frac  float64
	}

	counts := make(map[domain.Label]int, len(byLabel))
	shares := make([]share, 0, len(byLabel))
	allocated := 0
	for _, label := range domain.Labels {
		indices, ok := byLabel[label]
		if !ok {
			continue
		}
		exact := testSize * float64(len(indices))
		counts[label] = int(math.Floor(exact))
		allocated += counts[label]
		shares = append(shares, share{label: label, frac: exact - math.Floor(exact)})
	}

	sort.SliceStable(shares, func(i, j int) bool { return shares[i].frac > shares[j].frac })
	for i := 0; allocated < testTotal && i < len(shares); i++ {
		label := shares[i].label
		if counts[label] < len(byLabel[label]) {
			counts[label]++
			allocated++
		}
	}
	return counts
}

func (d Dataset) subset(indices []int) Dataset {
	out := Dataset{
		Vectors: make([]FeatureVector, 0, len(indices)),
		Labels:  make([]domain.Label, 0, len(indices)),
	}
	for _, i := range indices {
		out.Vectors = append(out.Vectors, d.Vectors[i])
		out.Labels = append(out.Labels, d.Labels[i])
	}
	return out
}
