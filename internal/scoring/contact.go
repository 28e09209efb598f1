package scoring

import "github.com/jonathan/resume-analyzer/internal/types"

// Contact score levels
const (
	ContactBoth    = 100
	ContactOne     = 70
	ContactMissing = 30
)

// ContactScore returns 100 when both email and phone are present, 70 when
// exactly one is, and 30 otherwise.
func ContactScore(resume *types.Resume) int {
	if resume == nil {
		return ContactMissing
	}
	hasEmail := types.Str(resume.Email) != ""
	hasPhone := types.Str(resume.Phone) != ""

	switch {
	case hasEmail && hasPhone:
		return ContactBoth
	case hasEmail || hasPhone:
		return ContactOne
	default:
		return ContactMissing
	}
}
