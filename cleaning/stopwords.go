package cleaning

// DefaultStopwords returns the built-in English stopword table used by the
// fast and full presets. Returned as a fresh set so callers can extend it
// without touching the shared list.
func DefaultStopwords() map[string]struct{} {
	words := []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "is", "am", "are", "was", "were", "be", "been",
		"have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "must", "shall", "can", "this", "that",
		"these", "those", "i", "you", "he", "she", "it", "we", "they", "me",
		"him", "her", "us", "them", "my", "your", "his", "our", "their",
		"not", "no", "yes", "get", "got", "go", "going", "come", "came",
		"see", "saw", "make", "made", "take", "took", "say", "said", "know",
		"think", "want", "like", "look", "way", "time", "day", "good", "new",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
