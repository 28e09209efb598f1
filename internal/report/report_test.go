package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

func TestBuild_ResumeOnly(t *testing.T) {
	resume, err := experience.LoadResume("../../testdata/valid/resume.json")
	require.NoError(t, err)

	r := Build(resume, nil, Options{CurrentYear: 2024, Now: fixedNow})

	_, err = uuid.Parse(r.ID)
	assert.NoError(t, err)
	assert.Equal(t, fixedNow(), r.GeneratedAt)
	assert.Nil(t, r.Match)
	assert.True(t, r.Completeness.Valid)
	assert.Equal(t, 90, r.Completeness.Score)
	assert.Equal(t, 7, r.Seniority.TotalYears)
	assert.Equal(t, experience.LevelSenior, r.Seniority.Level)
	assert.Len(t, r.Seniority.Roles, 2)
	assert.NotEmpty(t, r.Priorities)
	assert.NotContains(t, r.Priorities, "3. High: Add missing job-relevant keywords")
	assert.Equal(t, []string{"Go", "Python", "SQL"}, r.Skills.Groups[skills.GroupTechnical])
	assert.Equal(t, []string{"Leadership"}, r.Skills.Groups[skills.GroupSoftSkills])
	assert.Equal(t, skills.DevOpsTools, r.Skills.Domains["Docker"])
	assert.Equal(t, skills.ProgrammingLanguages, r.Skills.Domains["Go"])

	require.NoError(t, Validate(r))
}

func TestBuild_WithJob(t *testing.T) {
	resume, err := experience.LoadResume("../../testdata/valid/resume.json")
	require.NoError(t, err)
	sample, ok := matching.SampleJob(0)
	require.True(t, ok)
	job := matching.JobFromSample(sample)

	r := Build(resume, &job, Options{CurrentYear: 2024, Now: fixedNow})

	require.NotNil(t, r.Match)
	assert.Equal(t, matching.Lexical(resume, job, r.ATS.ATSScore), *r.Match)
	require.NoError(t, Validate(r))
}

func TestBuild_EmptyResume(t *testing.T) {
	r := Build(nil, nil, Options{CurrentYear: 2024, Now: fixedNow})

	assert.False(t, r.Completeness.Valid)
	assert.Equal(t, 0, r.Completeness.Score)
	assert.Equal(t, experience.LevelEntry, r.Seniority.Level)
	assert.Empty(t, r.Seniority.Roles)
	assert.Contains(t, r.Priorities, "1. Critical: Improve overall ATS compatibility")
	assert.Contains(t, r.Priorities, "2. High: Complete missing resume sections")

	require.NoError(t, Validate(r))
}

func TestBuild_UniqueIDs(t *testing.T) {
	a := Build(nil, nil, Options{CurrentYear: 2024})
	b := Build(nil, nil, Options{CurrentYear: 2024})
	assert.NotEqual(t, a.ID, b.ID)
}
