package analysis

import (
	"context"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/rendering"
	"github.com/jonathan/resume-analyzer/internal/types"
	rootschemas "github.com/jonathan/resume-analyzer/schemas"
)

// ParseResume converts raw resume text into a normalized resume record.
func (a *Analyzer) ParseResume(ctx context.Context, resumeText string) (*types.Resume, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyInput
	}

	description, err := prompts.Get(prompts.Analysis, "parse-resume")
	if err != nil {
		return nil, a.fail(OpParseResume, StagePrompt, err)
	}
	prompt := llm.BuildExtractionPrompt(llm.ResumeSchema(description), resumeText)

	resume, err := generate[types.Resume](ctx, a, OpParseResume, rootschemas.Resume, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}
	if err := experience.NormalizeResume(resume); err != nil {
		return nil, a.fail(OpParseResume, StageNormalize, err)
	}
	return resume, nil
}

// MatchWithJob asks for a free-text assessment of how well resume fits the job.
func (a *Analyzer) MatchWithJob(ctx context.Context, resume *types.Resume, jobDescription string) (*types.JobMatch, error) {
	if resume == nil || strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyInput
	}

	resumeView, err := rendering.ForJobMatch(resume)
	if err != nil {
		return nil, a.fail(OpMatchJob, StagePrompt, err)
	}
	description, err := prompts.Render(prompts.Analysis, "match-job", map[string]string{
		"Resume": resumeView,
		"Job":    jobDescription,
	})
	if err != nil {
		return nil, a.fail(OpMatchJob, StagePrompt, err)
	}
	prompt := llm.BuildExtractionPrompt(llm.JobMatchSchema(description), "")

	match, err := generate[types.JobMatch](ctx, a, OpMatchJob, rootschemas.JobMatch, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}
	match.MatchingSkills = nonNil(match.MatchingSkills)
	match.MissingSkills = nonNil(match.MissingSkills)
	match.MatchingExperience = nonNil(match.MatchingExperience)
	match.GrowthAreas = nonNil(match.GrowthAreas)
	return match, nil
}

// GenerateSuggestions asks for concrete rewrites of resume content targeted at the job.
func (a *Analyzer) GenerateSuggestions(ctx context.Context, resume *types.Resume, jobDescription string) (*types.ResumeFeedback, error) {
	if resume == nil || strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyInput
	}

	resumeView, err := rendering.ForAnalysis(resume)
	if err != nil {
		return nil, a.fail(OpSuggestions, StagePrompt, err)
	}
	description, err := prompts.Render(prompts.Analysis, "suggest-improvements", map[string]string{
		"Resume": resumeView,
		"Job":    jobDescription,
	})
	if err != nil {
		return nil, a.fail(OpSuggestions, StagePrompt, err)
	}
	prompt := llm.BuildExtractionPrompt(llm.FeedbackSchema(description), "")

	feedback, err := generate[types.ResumeFeedback](ctx, a, OpSuggestions, rootschemas.ResumeFeedback, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, err
	}
	if feedback.Suggestions == nil {
		feedback.Suggestions = []types.ResumeSuggestion{}
	}
	feedback.TopActions = nonNil(feedback.TopActions)
	return feedback, nil
}

// InterviewTarget optionally names the role and company being interviewed for.
type InterviewTarget struct {
	JobTitle string
	Company  string
}

// GenerateInterviewQuestions asks for categorized interview questions. A
// non-empty target title replaces the generated role and a company sets the
// company context.
func (a *Analyzer) GenerateInterviewQuestions(ctx context.Context, resume *types.Resume, jobDescription string, target InterviewTarget) (*types.InterviewSet, error) {
	if resume == nil || strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyInput
	}

	resumeView, err := rendering.ForInterview(resume)
	if err != nil {
		return nil, a.fail(OpInterview, StagePrompt, err)
	}
	jobContext := ""
	if target.JobTitle != "" {
		jobContext = "Job Title: " + target.JobTitle + "\nCompany: " + target.Company + "\n"
	}
	description, err := prompts.Render(prompts.Analysis, "interview-questions", map[string]string{
		"Resume":     resumeView,
		"JobContext": jobContext,
		"Job":        jobDescription,
	})
	if err != nil {
		return nil, a.fail(OpInterview, StagePrompt, err)
	}
	prompt := llm.BuildExtractionPrompt(llm.InterviewSchema(description), "")

	set, err := generate[types.InterviewSet](ctx, a, OpInterview, rootschemas.InterviewSet, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}
	set.Normalize()
	if target.JobTitle != "" {
		set.Role = target.JobTitle
	}
	if target.Company != "" {
		set.CompanyContext = types.StrPtr("Interviewing at " + target.Company)
	}
	return set, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
