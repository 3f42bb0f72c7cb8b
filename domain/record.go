package domain

import "fmt"

// Label is the sentiment class attached to every record.
type Label string

const (
	Negative Label = "negative"
	Neutral  Label = "neutral"
	Positive Label = "positive"
)

// Labels lists every valid class, in code order.
var Labels = []Label{Negative, Neutral, Positive}

// sentimentCodes maps the raw dataset codes to readable labels.
// The source encodes sentiment as 0 (negative), 2 (neutral), 4 (positive).
var sentimentCodes = map[int]Label{
	0: Negative,
	2: Neutral,
	4: Positive,
}

// LabelFromCode resolves a raw sentiment code.
// Unknown codes are a per-record condition, the caller drops the row.
func LabelFromCode(code int) (Label, error) {
	label, ok := sentimentCodes[code]
	if !ok {
		return "", fmt.Errorf("unknown sentiment code %d", code)
	}
	return label, nil
}

// Record is a raw ingested row. Immutable once built.
type Record struct {
	ID      string
	RawText string
	Label   Label
}

// CleanedRecord is derived from a Record by the normalizer.
// CleanedText may be empty, which marks the record for removal.
type CleanedRecord struct {
	ID          string
	CleanedText string
	Label       Label
}

// LabelCounts tallies records per class.
func LabelCounts(records []Record) map[Label]int {
	counts := make(map[Label]int, len(Labels))
	for _, r := range records {
		counts[r.Label]++
	}
	return counts
}
