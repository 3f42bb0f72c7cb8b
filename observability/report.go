package observability

import (
	"io"
	"os"
	"sort"
	"strconv"

	"sentiment-lab/features"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/process"
)

// TopFeature is a vocabulary term ranked by its mean tf-idf weight across
// a vectorized corpus.
type TopFeature struct {
	Term      string
	MeanTFIDF float64
}

// TopFeatures ranks the k most important terms by average tf-idf over the
// given vectors. Ties break lexicographically so the ranking is stable.
func TopFeatures(vectors []features.FeatureVector, terms []string, k int) []TopFeature {
	if len(vectors) == 0 || len(terms) == 0 {
		return nil
	}

	sums := make([]float64, len(terms))
	for _, vec := range vectors {
		for idx, weight := range vec {
			if idx >= 0 && idx < len(sums) {
				sums[idx] += weight
			}
		}
	}

	ranked := make([]TopFeature, len(terms))
	for i, term := range terms {
		ranked[i] = TopFeature{Term: term, MeanTFIDF: sums[i] / float64(len(vectors))}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].MeanTFIDF != ranked[j].MeanTFIDF {
			return ranked[i].MeanTFIDF > ranked[j].MeanTFIDF
		}
		return ranked[i].Term < ranked[j].Term
	})

	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// RenderTopFeatures prints the ranking as a plain table.
func RenderTopFeatures(w io.Writer, ranked []TopFeature) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Term", "Mean TF-IDF"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, f := range ranked {
		table.Append([]string{f.Term, strconv.FormatFloat(f.MeanTFIDF, 'f', 6, 64)})
	}
	table.Render()
}

// ProcessMemoryMB reports the resident memory of the current process, the
// rough equivalent of the original pipeline's memory readout.
func ProcessMemoryMB() (float64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, err
	}
	info, err := p.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return float64(info.RSS) / (1024 * 1024), nil
}
