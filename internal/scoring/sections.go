// Package scoring computes the resume-only ATS signals and their weighted aggregate.
package scoring

import (
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Section weights for the structure score
const (
	requiredSectionWeight = 70
	optionalSectionWeight = 30
)

var (
	requiredSections = []string{"summary", "experience", "education", "skills"}
	optionalSections = []string{"projects", "certifications"}
)

// SectionScore rates section coverage: required sections carry 70 points and
// optional sections 30, each pro-rated and floored, capped at 100.
func SectionScore(resume *types.Resume) int {
	if resume == nil {
		return 0
	}
	sections := resume.Sections()

	completedRequired := countPresent(sections, requiredSections)
	completedOptional := countPresent(sections, optionalSections)

	score := requiredSectionWeight*completedRequired/len(requiredSections) +
		optionalSectionWeight*completedOptional/len(optionalSections)
	return min(score, 100)
}

func countPresent(sections map[string]any, names []string) int {
	count := 0
	for _, name := range names {
		value, ok := sections[name]
		if ok && sectionPresent(value) {
			count++
		}
	}
	return count
}

// sectionPresent reports whether a section value is a non-empty string or list.
func sectionPresent(value any) bool {
	switch v := value.(type) {
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case []types.Skill:
		return len(v) > 0
	case []types.Education:
		return len(v) > 0
	case []types.Experience:
		return len(v) > 0
	default:
		return false
	}
}

// summaryMinLength is the shortest summary not reported as weak
const summaryMinLength = 20

// DetectMissingSections flags each scored section as missing (true) or present.
// A summary shorter than 20 characters counts as missing.
func DetectMissingSections(resume *types.Resume) map[string]bool {
	if resume == nil {
		resume = &types.Resume{}
	}
	return map[string]bool{
		"summary":        len(types.Str(resume.Summary)) < summaryMinLength,
		"experience":     len(resume.Experience) == 0,
		"education":      len(resume.Education) == 0,
		"skills":         len(resume.Skills) == 0,
		"certifications": len(resume.Certifications) == 0,
		"projects":       len(resume.Projects) == 0,
	}
}

const (
	completenessFieldPoints = 15
	completenessMaxMissing  = 2
)

// ValidateCompleteness checks the core profile fields (name, email, phone,
// experience, education, skills). Each present field adds 15 points; the resume
// is valid when at most two fields are missing.
func ValidateCompleteness(resume *types.Resume) types.Completeness {
	if resume == nil {
		resume = &types.Resume{}
	}
	fields := []struct {
		name    string
		present bool
	}{
		{"name", types.Str(resume.Name) != ""},
		{"email", types.Str(resume.Email) != ""},
		{"phone", types.Str(resume.Phone) != ""},
		{"experience", len(resume.Experience) > 0},
		{"education", len(resume.Education) > 0},
		{"skills", len(resume.Skills) > 0},
	}

	result := types.Completeness{Missing: []string{}}
	for _, f := range fields {
		if f.present {
			result.Score += completenessFieldPoints
			continue
		}
		result.Missing = append(result.Missing, f.name)
	}
	result.Valid = len(result.Missing) <= completenessMaxMissing
	return result
}
