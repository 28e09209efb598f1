package experience

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkills_TrimsAndDeduplicates(t *testing.T) {
	resume := &types.Resume{
		Skills: []types.Skill{
			{Name: " Go ", Category: "Technical"},
			{Name: "go", Category: "tool"},
			{Name: ""},
			{Name: "Docker", Category: " TOOL "},
		},
	}

	NormalizeSkills(resume)

	require.Len(t, resume.Skills, 2)
	assert.Equal(t, types.Skill{Name: "Go", Category: types.CategoryTechnical}, resume.Skills[0])
	assert.Equal(t, types.Skill{Name: "Docker", Category: types.CategoryTool}, resume.Skills[1])
}

func TestNormalizeResume_FillsEmptyLists(t *testing.T) {
	resume := &types.Resume{}

	require.NoError(t, NormalizeResume(resume))

	assert.NotNil(t, resume.Skills)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Certifications)
	assert.NotNil(t, resume.Projects)
}

func TestValidateSkillCategories_Invalid(t *testing.T) {
	resume := &types.Resume{Skills: []types.Skill{{Name: "Go", Category: "language"}}}

	err := ValidateSkillCategories(resume)
	require.Error(t, err)

	var normErr *NormalizationError
	require.ErrorAs(t, err, &normErr)
	assert.Contains(t, normErr.Error(), "invalid category 'language'")
}

func TestValidateSkillCategories_EmptyAllowed(t *testing.T) {
	resume := &types.Resume{Skills: []types.Skill{{Name: "Go"}}}
	assert.NoError(t, ValidateSkillCategories(resume))
}
