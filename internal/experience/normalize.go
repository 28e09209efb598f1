package experience

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// NormalizeResume applies all normalization steps to a resume record
func NormalizeResume(resume *types.Resume) error {
	resume.Normalize()
	NormalizeSkills(resume)

	if err := ValidateSkillCategories(resume); err != nil {
		return err
	}

	if err := resume.Validate(); err != nil {
		return &NormalizationError{
			Message: "resume failed validation",
			Cause:   err,
		}
	}
	return nil
}

// NormalizeSkills trims skill names, drops empty ones and removes
// case-insensitive duplicates, keeping the first occurrence.
func NormalizeSkills(resume *types.Resume) {
	normalized := make([]types.Skill, 0, len(resume.Skills))
	seen := make(map[string]struct{})

	for _, skill := range resume.Skills {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, types.Skill{
			Name:     name,
			Category: types.SkillCategory(strings.ToLower(strings.TrimSpace(string(skill.Category)))),
		})
	}

	resume.Skills = normalized
}

// ValidateSkillCategories checks that every declared skill category is known.
// An empty category is allowed.
func ValidateSkillCategories(resume *types.Resume) error {
	valid := map[types.SkillCategory]bool{
		"":                      true,
		types.CategoryTechnical: true,
		types.CategoryTool:      true,
		types.CategorySoftSkill: true,
	}

	for _, skill := range resume.Skills {
		if !valid[skill.Category] {
			return &NormalizationError{
				Message: fmt.Sprintf("invalid category '%s' for skill '%s'", skill.Category, skill.Name),
			}
		}
	}
	return nil
}
