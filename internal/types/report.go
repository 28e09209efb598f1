// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Report is the combined analysis of one resume, optionally against one job.
// Generator-backed sections are nil when the generator was not run or failed.
type Report struct {
	ID           string          `json:"id"`
	GeneratedAt  time.Time       `json:"generated_at"`
	ATS          ATSScore        `json:"ats"`
	Completeness Completeness    `json:"completeness"`
	Missing      map[string]bool `json:"missing_sections"`
	Seniority    SeniorityReport `json:"seniority"`
	Skills       SkillProfile    `json:"skills"`
	Match        *LexicalMatch   `json:"match,omitempty"`
	Priorities   []string        `json:"priorities"`
	JobMatch     *JobMatch       `json:"job_match,omitempty"`
	Feedback     *ResumeFeedback `json:"feedback,omitempty"`
	Interview    *InterviewSet   `json:"interview,omitempty"`
	Upstream     []string        `json:"upstream_errors,omitempty"`
}

// SkillProfile groups a resume's skills by declared category and maps each
// skill to its skill database category.
type SkillProfile struct {
	Groups  map[string][]string `json:"groups"`
	Domains map[string]string   `json:"domains"`
}
