// Package schemas embeds the JSON Schemas for every document the analyzer
// reads or writes.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// Schema names
const (
	Resume         = "resume"
	JobMatch       = "job_match"
	ResumeFeedback = "resume_feedback"
	InterviewSet   = "interview_set"
	ATSScore       = "ats_score"
	Report         = "report"
)

// Names lists every embedded schema.
func Names() []string {
	return []string{Resume, JobMatch, ResumeFeedback, InterviewSet, ATSScore, Report}
}

// Load returns the raw schema document for name.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name + ".schema.json")
	if err != nil {
		return "", fmt.Errorf("unknown schema %q: %w", name, err)
	}
	return string(data), nil
}
