package analysis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/metrics"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
	tiers    []llm.ModelTier
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateJSON(ctx, prompt, tier)
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func testResume() *types.Resume {
	r := &types.Resume{
		Name:    types.StrPtr("Jane Doe"),
		Email:   types.StrPtr("jane@example.com"),
		Summary: types.StrPtr("Backend engineer."),
		Skills:  []types.Skill{{Name: "Go", Category: types.CategoryTechnical}},
		Experience: []types.Experience{
			{Title: types.StrPtr("Engineer"), Company: types.StrPtr("Acme"), Duration: types.StrPtr("2020 - Present")},
		},
	}
	return r.Normalize()
}

func TestParseResume(t *testing.T) {
	client := &fakeClient{response: "```json\n" + `{
		"name": "Jane Doe",
		"email": null,
		"skills": [{"name": " Go ", "category": "Technical"}, {"name": "go", "category": "technical"}],
		"experience": null,
		"projects": ["limiter"]
	}` + "\n```"}
	a := New(client)

	resume, err := a.ParseResume(t.Context(), "Jane Doe\nGo developer")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", types.Str(resume.Name))
	assert.Nil(t, resume.Email)
	require.Len(t, resume.Skills, 1)
	assert.Equal(t, "Go", resume.Skills[0].Name)
	assert.Equal(t, types.CategoryTechnical, resume.Skills[0].Category)
	assert.NotNil(t, resume.Experience)
	assert.Empty(t, resume.Experience)
	assert.NotNil(t, resume.Certifications)

	prompt := client.lastPrompt()
	assert.Contains(t, prompt, "expert resume parser")
	assert.Contains(t, prompt, "\"\"\"\nJane Doe\nGo developer\n\"\"\"")
	assert.Equal(t, llm.TierStandard, client.tiers[0])
}

func TestParseResume_Failures(t *testing.T) {
	tests := []struct {
		name      string
		client    *fakeClient
		wantStage string
	}{
		{"upstream error", &fakeClient{err: errors.New("quota exceeded")}, StageGenerate},
		{"not json", &fakeClient{response: "I cannot help with that"}, StageValidate},
		{"schema mismatch", &fakeClient{response: `{"name": 7}`}, StageValidate},
		{"unknown category", &fakeClient{response: `{"skills": [{"name": "Go", "category": "language"}]}`}, StageNormalize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume, err := New(tt.client).ParseResume(t.Context(), "some resume")
			require.Error(t, err)
			assert.Nil(t, resume)
			assert.ErrorIs(t, err, ErrUpstreamUnavailable)

			var upstream *UpstreamError
			require.ErrorAs(t, err, &upstream)
			assert.Equal(t, OpParseResume, upstream.Operation)
			assert.Equal(t, tt.wantStage, upstream.Stage)
		})
	}
}

func TestParseResume_EmptyInput(t *testing.T) {
	client := &fakeClient{}
	_, err := New(client).ParseResume(t.Context(), "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, client.prompts)
}

func TestUpstreamError_UnwrapsCause(t *testing.T) {
	cause := context.DeadlineExceeded
	err := error(&UpstreamError{Operation: OpMatchJob, Stage: StageGenerate, Cause: cause})

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "match_job failed at generate: context deadline exceeded", err.Error())
}

func TestMatchWithJob(t *testing.T) {
	client := &fakeClient{response: `{"match_percentage": 72, "job_title_match": "Strong", "matching_skills": ["Go"], "missing_skills": null}`}

	match, err := New(client).MatchWithJob(t.Context(), testResume(), "Backend role using Go and Kubernetes")
	require.NoError(t, err)

	assert.Equal(t, 72, match.MatchPercentage)
	assert.Equal(t, []string{"Go"}, match.MatchingSkills)
	assert.NotNil(t, match.MissingSkills)
	assert.NotNil(t, match.GrowthAreas)

	prompt := client.lastPrompt()
	assert.Contains(t, prompt, "RESUME:\nName: Jane Doe")
	assert.Contains(t, prompt, "JOB DESCRIPTION:\nBackend role using Go and Kubernetes")
	assert.NotContains(t, prompt, "jane@example.com")
	assert.NotContains(t, prompt, "Input:")
}

func TestMatchWithJob_PercentageOutOfRange(t *testing.T) {
	client := &fakeClient{response: `{"match_percentage": 130}`}

	_, err := New(client).MatchWithJob(t.Context(), testResume(), "job")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestMatchWithJob_EmptyJob(t *testing.T) {
	_, err := New(&fakeClient{}).MatchWithJob(t.Context(), testResume(), "")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestGenerateSuggestions(t *testing.T) {
	client := &fakeClient{response: `{
		"overall_assessment": "Solid",
		"suggestions": [{"original_text": "Worked on APIs", "suggested_text": "Built 4 APIs", "reason": "stronger verb", "focus_area": "quantification"}]
	}`}

	feedback, err := New(client).GenerateSuggestions(t.Context(), testResume(), "Go role")
	require.NoError(t, err)

	require.Len(t, feedback.Suggestions, 1)
	assert.Equal(t, "Built 4 APIs", feedback.Suggestions[0].SuggestedText)
	assert.NotNil(t, feedback.TopActions)
	assert.Contains(t, client.lastPrompt(), "Email: jane@example.com")
	assert.Equal(t, llm.TierAdvanced, client.tiers[0])
}

func TestGenerateSuggestions_MissingSuggestions(t *testing.T) {
	client := &fakeClient{response: `{"overall_assessment": "Solid"}`}

	_, err := New(client).GenerateSuggestions(t.Context(), testResume(), "Go role")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, StageValidate, upstream.Stage)
}

func TestGenerateInterviewQuestions(t *testing.T) {
	response := `{
		"role": "Engineer",
		"company_context": null,
		"technical_questions": [{"question": "Explain goroutines", "category": "technical", "why_asked": "Go depth", "tip": null}],
		"behavioral_questions": null,
		"preparation_tips": ["Research the company"]
	}`

	tests := []struct {
		name        string
		target      InterviewTarget
		wantRole    string
		wantCompany *string
		wantContext bool
	}{
		{"no target", InterviewTarget{}, "Engineer", nil, false},
		{"title and company", InterviewTarget{JobTitle: "Staff Engineer", Company: "Globex"}, "Staff Engineer", types.StrPtr("Interviewing at Globex"), true},
		{"company only", InterviewTarget{Company: "Globex"}, "Engineer", types.StrPtr("Interviewing at Globex"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: response}

			set, err := New(client).GenerateInterviewQuestions(t.Context(), testResume(), "Go backend role", tt.target)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRole, set.Role)
			assert.Equal(t, tt.wantCompany, set.CompanyContext)
			require.Len(t, set.TechnicalQuestions, 1)
			assert.Nil(t, set.TechnicalQuestions[0].Tip)
			assert.NotNil(t, set.BehavioralQuestions)
			assert.NotNil(t, set.RoleSpecificQuestions)

			prompt := client.lastPrompt()
			assert.Contains(t, prompt, "Candidate: Jane Doe")
			assert.Equal(t, tt.wantContext, strings.Contains(prompt, "Job Title: Staff Engineer\nCompany: Globex\nGo backend role"))
		})
	}
}

func TestAnalyzer_RecordsUpstreamMetrics(t *testing.T) {
	m := metrics.NewManager()
	a := New(&fakeClient{err: errors.New("boom")}, WithMetrics(m))

	_, err := a.MatchWithJob(t.Context(), testResume(), "job")
	require.Error(t, err)

	count, err := testutil.GatherAndCount(m.Registry(), "resume_analyzer_api_upstream_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
