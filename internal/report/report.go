// Package report assembles the offline analysis of a resume into one document.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
	rootschemas "github.com/jonathan/resume-analyzer/schemas"
)

// Options controls the clock-dependent parts of a report.
type Options struct {
	// CurrentYear overrides the clock for tenure arithmetic; 0 uses time.Now.
	CurrentYear int
	// Now stamps GeneratedAt; nil uses time.Now.
	Now func() time.Time
}

// Build runs every deterministic scorer over resume and, when job is non-nil,
// the lexical match against it. No generator is involved, so the result is
// always complete.
func Build(resume *types.Resume, job *matching.Job, opts Options) *types.Report {
	if resume == nil {
		resume = &types.Resume{}
	}
	resume.Normalize()

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	ats := scoring.CalculateATSScore(resume.ScoringText(), resume)
	completeness := scoring.ValidateCompleteness(resume)

	r := &types.Report{
		ID:           uuid.NewString(),
		GeneratedAt:  now().UTC(),
		ATS:          ats,
		Completeness: completeness,
		Missing:      scoring.DetectMissingSections(resume),
		Seniority:    experience.Report(resume, experience.CurrentYear(opts.CurrentYear)),
		Skills:       skillProfile(resume),
	}

	// without a job there is nothing to miss keywords against
	keywordMatch := 100
	if job != nil {
		match := matching.Lexical(resume, *job, ats.ATSScore)
		r.Match = &match
		keywordMatch = match.KeywordMatch
	}
	r.Priorities = scoring.ImprovementPriorities(ats.ATSScore, scoring.SectionScore(resume), keywordMatch)
	return r
}

func skillProfile(resume *types.Resume) types.SkillProfile {
	domains := make(map[string]string, len(resume.Skills))
	for _, s := range resume.Skills {
		domains[s.Name] = skills.Categorize(s.Name)
	}
	return types.SkillProfile{Groups: skills.GroupByType(resume.Skills), Domains: domains}
}

// Validate checks a report against the embedded report schema.
func Validate(r *types.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return schemas.ValidateDocument(rootschemas.Report, string(data))
}
