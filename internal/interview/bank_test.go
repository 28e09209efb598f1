package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyDomain(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Backend Engineer", DomainBackend},
		{"API Platform Developer", DomainBackend},
		{"Frontend Developer", DomainFrontend},
		{"React Engineer", DomainFrontend},
		{"Data Scientist", DomainDataScience},
		{"ML Engineer", DomainDataScience},
		{"Product Manager", DomainGeneral},
		{"", DomainGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentifyDomain(tt.title))
		})
	}
}

func TestTechnicalQuestions(t *testing.T) {
	backend, err := TechnicalQuestions(DomainBackend)
	require.NoError(t, err)
	assert.Len(t, backend, 3)
	for _, q := range backend {
		assert.Equal(t, "technical", q.Category)
		require.NotNil(t, q.Tip)
	}

	general, err := TechnicalQuestions(DomainGeneral)
	require.NoError(t, err)
	assert.Empty(t, general)
}

func TestBehavioralQuestions_ReturnsCopy(t *testing.T) {
	first, err := BehavioralQuestions()
	require.NoError(t, err)
	require.Len(t, first, 5)
	first[0].Question = "changed"

	second, err := BehavioralQuestions()
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second[0].Question)
}

func TestRoleSpecificQuestions(t *testing.T) {
	tests := []struct {
		title     string
		wantCount int
		wantFirst string
	}{
		{"Senior Engineer", 1, "How do you approach mentoring junior developers?"},
		{"Senior Tech Lead", 2, "How do you approach mentoring junior developers?"},
		{"Solutions Architect", 1, "Tell me about a major technical decision you made and how you communicated it to stakeholders."},
		{"Engineering Manager", 1, "How do you handle performance issues with team members?"},
		{"Data Analyst", 1, "What excites you about the Data Analyst position?"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			questions, err := RoleSpecificQuestions(tt.title)
			require.NoError(t, err)
			require.Len(t, questions, tt.wantCount)
			assert.Equal(t, tt.wantFirst, questions[0].Question)
			assert.Equal(t, "role-specific", questions[0].Category)
		})
	}
}

func TestPreparationTips(t *testing.T) {
	base, err := PreparationTips("Product Owner")
	require.NoError(t, err)
	assert.Len(t, base, 5)

	engineer, err := PreparationTips("Senior Backend Engineer")
	require.NoError(t, err)
	assert.Len(t, engineer, 9)
	assert.Contains(t, engineer, "Explain your thought process clearly, not just the solution")
	assert.Contains(t, engineer, "Discuss how you foster team growth and development")
}

func TestTemplateSet(t *testing.T) {
	set, err := TemplateSet("Frontend Developer")
	require.NoError(t, err)

	assert.Equal(t, "Frontend Developer", set.Role)
	assert.Nil(t, set.CompanyContext)
	assert.Len(t, set.TechnicalQuestions, 2)
	assert.Len(t, set.BehavioralQuestions, 3)
	require.Len(t, set.RoleSpecificQuestions, 1)
	assert.Equal(t, "What excites you about the Frontend Developer position?", set.RoleSpecificQuestions[0].Question)
	assert.Len(t, set.PreparationTips, 7)
}
