package rewriting

import "strings"

// wordyPhrases are replaced in order by ImproveClarity
var wordyPhrases = []struct {
	wordy   string
	concise string
}{
	{"was able to", "successfully"},
	{"in order to", "to"},
	{"at the end of the day", "ultimately"},
	{"it is important to note that", ""},
	{"the fact that", ""},
}

// ImproveClarity replaces wordy phrases with concise ones and trims the result.
// Matching is case-sensitive.
func ImproveClarity(text string) string {
	improved := text
	for _, p := range wordyPhrases {
		improved = strings.ReplaceAll(improved, p.wordy, p.concise)
	}
	return strings.TrimSpace(improved)
}

// WordyPhrases lists the wordy phrases found in text, case-insensitively,
// in replacement order. It returns nil when none are present.
func WordyPhrases(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, p := range wordyPhrases {
		if strings.Contains(lower, p.wordy) {
			found = append(found, p.wordy)
		}
	}
	return found
}
