package rendering

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		Name:    types.StrPtr("Jane Doe"),
		Email:   types.StrPtr("jane@example.com"),
		Phone:   types.StrPtr("555-0100"),
		Summary: types.StrPtr("Backend engineer building distributed systems."),
		Skills: []types.Skill{
			{Name: "Go", Category: types.CategoryTechnical},
			{Name: "Docker", Category: types.CategoryTool},
			{Name: "Teamwork"},
		},
		Education: []types.Education{
			{Degree: types.StrPtr("BSc Computer Science"), Institution: types.StrPtr("State University"), GraduationYear: types.StrPtr("2017"), GPA: types.StrPtr("3.8")},
		},
		Experience: []types.Experience{
			{Title: types.StrPtr("Senior Engineer"), Company: types.StrPtr("Acme"), Duration: types.StrPtr("2021 - Present"), Description: types.StrPtr("Led the platform team.")},
			{Title: types.StrPtr("Engineer"), Company: nil, Duration: types.StrPtr("2017-2021")},
		},
		Certifications: []string{"CKA"},
		Projects:       []string{"p1", "p2", "p3", "p4"},
	}
}

func TestResumeText(t *testing.T) {
	text, err := ResumeText(sampleResume())
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	assert.Equal(t, strings.Repeat("=", 60), lines[0])
	assert.Equal(t, "JANE DOE", lines[1])
	assert.Contains(t, text, "jane@example.com | 555-0100")
	assert.Contains(t, text, "PROFESSIONAL SUMMARY\n"+strings.Repeat("-", 40)+"\nBackend engineer building distributed systems.")
	assert.Contains(t, text, "Senior Engineer | Acme\n2021 - Present\nLed the platform team.")
	assert.Contains(t, text, "Engineer | Unknown\n2017-2021")
	assert.Contains(t, text, "BSc Computer Science | State University (2017) - GPA: 3.8")
	assert.Contains(t, text, "• Go (technical)")
	assert.Contains(t, text, "• Teamwork (General)")
	assert.Contains(t, text, "CERTIFICATIONS")
	assert.Contains(t, text, "• p4")
}

func TestResumeText_SkipsEmptySections(t *testing.T) {
	r := &types.Resume{Email: types.StrPtr("a@b.co")}
	text, err := ResumeText(r.Normalize())
	require.NoError(t, err)

	assert.Equal(t, "a@b.co", text)
}

func TestForAnalysis(t *testing.T) {
	text, err := ForAnalysis(sampleResume())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "Name: Jane Doe\nEmail: jane@example.com\nPhone: 555-0100\n"))
	assert.Contains(t, text, "\nProfessional Summary:\nBackend engineer")
	assert.Contains(t, text, "- Senior Engineer at Acme (2021 - Present)\n  Led the platform team.")
	assert.Contains(t, text, "Skills:\n- Go\n- Docker\n- Teamwork")
	assert.Contains(t, text, "- BSc Computer Science from State University (2017)")
	assert.Contains(t, text, "Projects:\n- p1\n- p2\n- p3\n- p4")
}

func TestForJobMatch_LimitsSkills(t *testing.T) {
	r := sampleResume()
	r.Skills = nil
	for i := range 25 {
		r.Skills = append(r.Skills, types.Skill{Name: fmt.Sprintf("s%d", i)})
	}

	text, err := ForJobMatch(r)
	require.NoError(t, err)

	assert.NotContains(t, text, "Email:")
	assert.Contains(t, text, "Technical Skills:\ns0, s1,")
	assert.Contains(t, text, "s19")
	assert.NotContains(t, text, "s20")
	assert.Contains(t, text, "- BSc Computer Science in State University")
	assert.NotContains(t, text, "Projects:")
}

func TestForInterview(t *testing.T) {
	text, err := ForInterview(sampleResume())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "Candidate: Jane Doe"))
	assert.Contains(t, text, "1. Senior Engineer at Acme (2021 - Present)\n   Led the platform team.")
	assert.Contains(t, text, "2. Engineer at Unknown (2017-2021)")
	assert.Contains(t, text, "Key Skills:\nGo, Docker, Teamwork")
	assert.Contains(t, text, "- p3")
	assert.NotContains(t, text, "- p4")
}

func TestExecute_NilResume(t *testing.T) {
	text, err := ForAnalysis(nil)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExecute_UnknownTemplate(t *testing.T) {
	_, err := Execute("missing.tmpl", sampleResume())
	require.Error(t, err)
	var tmplErr *TemplateError
	assert.ErrorAs(t, err, &tmplErr)
}

func TestComparisonTable(t *testing.T) {
	assert.Equal(t, "No results to compare", ComparisonTable(nil))

	table := ComparisonTable([]ComparisonRow{
		{Name: "An Extremely Long Candidate Name Here", MatchScore: 72, SkillMatch: 60, Summary: "Good Match"},
		{MatchScore: 10, SkillMatch: 0},
	})
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, strings.Repeat("=", 100), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Name                      Score      Skills Match    Fit"))
	assert.True(t, strings.HasPrefix(lines[3], "An Extremely Long Candida 72         60%             Good Match"))
	assert.True(t, strings.HasPrefix(lines[4], "Unknown                   10         0%              N/A"))
}
