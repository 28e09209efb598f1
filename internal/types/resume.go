// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SkillCategory classifies a resume skill
type SkillCategory string

// Skill categories produced by the resume parser
const (
	CategoryTechnical SkillCategory = "technical"
	CategoryTool      SkillCategory = "tool"
	CategorySoftSkill SkillCategory = "soft_skill"
)

// Resume represents a structured resume produced by the external parser.
// List fields are never nil after Normalize.
type Resume struct {
	Name           *string      `json:"name"`
	Email          *string      `json:"email"`
	Phone          *string      `json:"phone"`
	Summary        *string      `json:"summary"`
	Skills         []Skill      `json:"skills" validate:"dive"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Certifications []string     `json:"certifications"`
	Projects       []string     `json:"projects"`
}

// Skill is a named skill with its category
type Skill struct {
	Name     string        `json:"name" validate:"required"`
	Category SkillCategory `json:"category" validate:"omitempty,oneof=technical tool soft_skill"`
}

// Education represents one education entry
type Education struct {
	Degree         *string `json:"degree"`
	Institution    *string `json:"institution"`
	GraduationYear *string `json:"graduation_year"`
	GPA            *string `json:"gpa"`
}

// Experience represents one work experience entry
type Experience struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
}

// Str returns the value of an optional string, or "" when absent.
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// Normalize replaces nil list fields with empty slices so that downstream counting is well-defined.
// It returns the receiver for chaining.
func (r *Resume) Normalize() *Resume {
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
	if r.Projects == nil {
		r.Projects = []string{}
	}
	return r
}

// Validate validates the Resume using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SkillNames returns the skill names in resume order.
func (r *Resume) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}

// Sections returns the six scored resume sections keyed by name.
// Absent optional strings are omitted so they are indistinguishable from a missing key.
func (r *Resume) Sections() map[string]any {
	sections := map[string]any{
		"experience":     r.Experience,
		"education":      r.Education,
		"skills":         r.Skills,
		"projects":       r.Projects,
		"certifications": r.Certifications,
	}
	if r.Summary != nil {
		sections["summary"] = *r.Summary
	}
	return sections
}

// ScoringText flattens the resume into the free text used by the ATS heuristics:
// name, email, phone, summary, skill names, experience descriptions, degrees,
// certifications and projects, joined by single spaces.
func (r *Resume) ScoringText() string {
	experience := make([]string, 0, len(r.Experience))
	for _, e := range r.Experience {
		experience = append(experience, Str(e.Description))
	}
	degrees := make([]string, 0, len(r.Education))
	for _, e := range r.Education {
		degrees = append(degrees, Str(e.Degree))
	}

	parts := []string{
		Str(r.Name),
		Str(r.Email),
		Str(r.Phone),
		Str(r.Summary),
		strings.Join(r.SkillNames(), " "),
		strings.Join(experience, " "),
		strings.Join(degrees, " "),
		strings.Join(r.Certifications, " "),
		strings.Join(r.Projects, " "),
	}
	return strings.Join(parts, " ")
}
