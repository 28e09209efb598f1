// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ATSScore is the resume-only ATS breakdown. All scores are in [0,100].
type ATSScore struct {
	ATSScore        int      `json:"ats_score"`
	StructureScore  int      `json:"structure_score"`
	ContactScore    int      `json:"contact_score"`
	ActionVerbScore int      `json:"action_verb_score"`
	MetricsScore    int      `json:"metrics_score"`
	Strengths       []string `json:"strengths"`
	ImprovementTips []string `json:"improvement_tips"`
}

// SkillMatch is the lexical skill-set comparison between a resume and a job
type SkillMatch struct {
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage int      `json:"match_percentage"`
}

// LexicalMatch combines every deterministic job-match signal
type LexicalMatch struct {
	SkillMatch SkillMatch `json:"skill_match"`
	// NearMatches maps missing skills to similar resume skills
	NearMatches         map[string]string `json:"near_matches,omitempty"`
	ExperienceRelevance int               `json:"experience_relevance"`
	Completeness        int               `json:"completeness"`
	EstimatedMatch      int               `json:"estimated_match"`
	KeywordMatch        int               `json:"keyword_match"`
	Band                string            `json:"band"`
	SuccessEstimate     string            `json:"success_estimate"`
}

// RoleSeniority is the seniority estimate for a single experience entry
type RoleSeniority struct {
	Title    string `json:"title"`
	Company  string `json:"company,omitempty"`
	Duration string `json:"duration,omitempty"`
	Years    *int   `json:"years"`
	Level    string `json:"level"`
}

// SeniorityReport summarizes experience tenure across a resume
type SeniorityReport struct {
	Roles      []RoleSeniority `json:"roles"`
	TotalYears int             `json:"total_years"`
	Level      string          `json:"level"`
}

// Completeness is the field-level completeness validation result
type Completeness struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
	Score   int      `json:"score"`
}
