package matching

import (
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Job is the job side of a lexical match.
type Job struct {
	Description    string
	RequiredSkills []string
}

// Lexical runs every deterministic match signal for a resume against a job.
// When the job lists no required skills they are taken from the known skills
// mentioned in its description. atsScore feeds the application success estimate.
func Lexical(resume *types.Resume, job Job, atsScore int) types.LexicalMatch {
	if resume == nil {
		resume = &types.Resume{}
	}
	required := job.RequiredSkills
	if len(required) == 0 {
		required = skills.Mentioned(job.Description)
	}

	skillMatch := MatchSkills(resume.SkillNames(), required)
	relevance := ExperienceRelevance(resume.Experience)
	completeness := scoring.SectionScore(resume)
	estimated := EstimateMatch(skillMatch.MatchPercentage, relevance, completeness)

	return types.LexicalMatch{
		SkillMatch:          skillMatch,
		NearMatches:         NearMatches(resume.SkillNames(), skillMatch.MissingSkills),
		ExperienceRelevance: relevance,
		Completeness:        completeness,
		EstimatedMatch:      estimated,
		KeywordMatch:        JobKeywordMatch(resume, job.Description),
		Band:                MatchBand(estimated),
		SuccessEstimate:     EstimateApplicationSuccess(atsScore, estimated),
	}
}

// JobFromSample converts a built-in posting into a Job.
func JobFromSample(sample types.SampleJob) Job {
	return Job{Description: sample.Description, RequiredSkills: sample.RequiredSkills}
}
