package matching

import (
	"math"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Composite match weights
const (
	skillWeight        = 0.4
	experienceWeight   = 0.35
	completenessWeight = 0.25
)

// EstimateMatch blends skill, experience and completeness percentages into one
// rounded score clamped to [0, 100].
func EstimateMatch(skillPct, experiencePct, completenessPct int) int {
	score := float64(skillPct)*skillWeight +
		float64(experiencePct)*experienceWeight +
		float64(completenessPct)*completenessWeight
	return clamp(int(math.Round(score)))
}

func clamp(v int) int {
	return max(0, min(100, v))
}

// Match bands
const (
	BandPerfect = "Perfect Match"
	BandGood    = "Good Match"
	BandPartial = "Partial Match"
	BandPoor    = "Poor Match"
)

// MatchBand labels a match percentage.
func MatchBand(pct int) string {
	switch {
	case pct >= 80:
		return BandPerfect
	case pct >= 60:
		return BandGood
	case pct >= 40:
		return BandPartial
	default:
		return BandPoor
	}
}

// EstimateApplicationSuccess combines the ATS score (60%) and job match (40%)
// into a short verdict on whether applying is worthwhile.
func EstimateApplicationSuccess(atsScore, matchPct int) string {
	combined := float64(atsScore)*0.6 + float64(matchPct)*0.4
	switch {
	case combined >= 80:
		return "Very High - Your profile is a great match for this role!"
	case combined >= 60:
		return "Moderate - You have most of the required skills. Worth applying!"
	case combined >= 40:
		return "Low - Consider developing some key skills before applying."
	default:
		return "Very Low - This role may require different expertise. Consider alternatives."
	}
}

// ResumeKeywords collects the lexical keywords of a resume: summary and
// experience description keywords plus every lower-cased skill name.
func ResumeKeywords(resume *types.Resume) map[string]bool {
	keywords := parsing.ExtractKeywords(types.Str(resume.Summary))
	for _, skill := range resume.Skills {
		keywords[strings.ToLower(skill.Name)] = true
	}
	for _, entry := range resume.Experience {
		for kw := range parsing.ExtractKeywords(types.Str(entry.Description)) {
			keywords[kw] = true
		}
	}
	return keywords
}

// JobKeywordMatch returns the rounded share of job-description keywords that
// also appear among the resume keywords. An empty description yields 0.
func JobKeywordMatch(resume *types.Resume, jobDescription string) int {
	jobKeywords := parsing.ExtractKeywords(jobDescription)
	if len(jobKeywords) == 0 || resume == nil {
		return 0
	}
	resumeKeywords := ResumeKeywords(resume)

	found := 0
	for kw := range jobKeywords {
		if resumeKeywords[kw] {
			found++
		}
	}
	return clamp(int(math.Round(100 * float64(found) / float64(len(jobKeywords)))))
}
