package rewriting

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Focus areas
const (
	FocusClarity      = "clarity"
	FocusProfessional = "professional"
)

// minBulletLength is the shortest bullet, in characters, worth rewriting
const minBulletLength = 10

// BulletImprovements builds one offline suggestion per experience bullet
// longer than ten characters.
func BulletImprovements(bullets []string) []types.ResumeSuggestion {
	suggestions := []types.ResumeSuggestion{}
	for _, bullet := range bullets {
		if utf8.RuneCountInString(bullet) <= minBulletLength {
			continue
		}

		improved := ImproveClarity(bullet)
		var reasons []string
		if NeedsQuantification(bullet) {
			reasons = append(reasons, "Add quantifiable metrics")
		}
		if verbs := SuggestActionVerbs(bullet); len(verbs) > 0 {
			reasons = append(reasons, "Use stronger verb: "+verbs[0])
		}
		if len(reasons) == 0 {
			continue
		}

		focus := FocusProfessional
		if len(improved) > len(bullet) {
			focus = FocusClarity
		}
		suggestions = append(suggestions, types.ResumeSuggestion{
			OriginalText:  bullet,
			SuggestedText: improved,
			Reason:        strings.Join(reasons, " and "),
			FocusArea:     focus,
		})
	}
	return suggestions
}

// BulletReview is the full offline assessment of one bullet.
type BulletReview struct {
	Original            string   `json:"original"`
	Improved            string   `json:"improved"`
	StrongOpening       bool     `json:"strong_opening"`
	NeedsQuantification bool     `json:"needs_quantification"`
	SuggestedVerbs      []string `json:"suggested_verbs"`
	WordyPhrases        []string `json:"wordy_phrases,omitempty"`
}

// Review assesses a single bullet.
func Review(bullet string) BulletReview {
	return BulletReview{
		Original:            bullet,
		Improved:            ImproveClarity(bullet),
		StrongOpening:       StrongOpening(bullet),
		NeedsQuantification: NeedsQuantification(bullet),
		SuggestedVerbs:      SuggestActionVerbs(bullet),
		WordyPhrases:        WordyPhrases(bullet),
	}
}

// ExperienceBullets returns the non-empty experience descriptions of a resume.
func ExperienceBullets(resume *types.Resume) []string {
	if resume == nil {
		return nil
	}
	bullets := make([]string, 0, len(resume.Experience))
	for _, e := range resume.Experience {
		if d := types.Str(e.Description); d != "" {
			bullets = append(bullets, d)
		}
	}
	return bullets
}
