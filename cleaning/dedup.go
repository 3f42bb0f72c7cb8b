package cleaning

import "sentiment-lab/domain"

// Deduplicate drops records with empty cleaned text, then keeps only the
// first-seen record for each distinct cleaned text. Order of first
// occurrence is preserved, so applying it twice changes nothing.
func Deduplicate(records []domain.CleanedRecord) []domain.CleanedRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]domain.CleanedRecord, 0, len(records))
	for _, r := range records {
		if r.CleanedText == "" {
			continue
		}
		if _, dup := seen[r.CleanedText]; dup {
			continue
		}
		seen[r.CleanedText] = struct{}{}
		out = append(out, r)
	}
	return out
}
