package experience

import (
	"testing"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYear = 2025

func intPtr(v int) *int { return &v }

func TestYearsFromDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     *int
	}{
		{name: "closed range", duration: "2020-2023", want: intPtr(3)},
		{name: "month names", duration: "Jan 2019 - Dec 2021", want: intPtr(2)},
		{name: "present", duration: "2021 - Present", want: intPtr(4)},
		{name: "present lower case", duration: "since 2022, present", want: intPtr(3)},
		// a lone year is measured to the current year even without "present"
		{name: "single year", duration: "2018", want: intPtr(7)},
		{name: "two years win over present", duration: "2015 - 2018 (present role since 2020)", want: intPtr(3)},
		{name: "reversed floors at zero", duration: "2023 - 2020", want: intPtr(0)},
		{name: "future year floors at zero", duration: "2030", want: intPtr(0)},
		{name: "no dates", duration: "no dates here", want: nil},
		{name: "empty", duration: "", want: nil},
		{name: "not a year", duration: "1800-1850", want: nil},
		{name: "embedded digits ignored", duration: "v20201", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YearsFromDuration(tt.duration, testYear)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestSeniorityLevel(t *testing.T) {
	tests := []struct {
		name  string
		years *int
		title string
		want  string
	}{
		{name: "lead title", years: intPtr(1), title: "Tech Lead", want: LevelLead},
		{name: "principal", years: nil, title: "Principal Engineer", want: LevelLead},
		{name: "vp", years: intPtr(0), title: "VP of Engineering", want: LevelLead},
		{name: "lead beats senior", years: intPtr(0), title: "Senior Lead Developer", want: LevelLead},
		{name: "senior title", years: intPtr(0), title: "Senior Engineer", want: LevelSenior},
		{name: "staff", years: intPtr(1), title: "Staff Engineer", want: LevelSenior},
		{name: "junior title", years: intPtr(10), title: "Junior Developer", want: LevelEntry},
		{name: "intern", years: intPtr(3), title: "Software Intern", want: LevelEntry},
		{name: "years senior", years: intPtr(5), title: "Engineer", want: LevelSenior},
		{name: "years mid", years: intPtr(2), title: "Engineer", want: LevelMid},
		{name: "years entry", years: intPtr(1), title: "Engineer", want: LevelEntry},
		{name: "unknown years", years: nil, title: "Engineer", want: LevelEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeniorityLevel(tt.years, tt.title))
		})
	}
}

func TestTotalYears(t *testing.T) {
	entries := []types.Experience{
		{Duration: types.StrPtr("2021 - Present")},
		{Duration: types.StrPtr("2017-2021")},
		{Duration: types.StrPtr("a while")},
		{},
	}
	assert.Equal(t, 8, TotalYears(entries, testYear))
	assert.Equal(t, 0, TotalYears(nil, testYear))
}

func TestReport(t *testing.T) {
	resume := &types.Resume{
		Experience: []types.Experience{
			{Title: types.StrPtr("Software Engineer"), Company: types.StrPtr("Acme"), Duration: types.StrPtr("2021 - Present")},
			{Title: types.StrPtr("Junior Developer"), Duration: types.StrPtr("2019-2021")},
			{Title: types.StrPtr("Volunteer")},
		},
	}

	report := Report(resume, testYear)

	require.Len(t, report.Roles, 3)
	assert.Equal(t, LevelMid, report.Roles[0].Level)
	assert.Equal(t, "Acme", report.Roles[0].Company)
	assert.Equal(t, LevelEntry, report.Roles[1].Level)
	assert.Nil(t, report.Roles[2].Years)
	assert.Equal(t, 6, report.TotalYears)
	assert.Equal(t, LevelSenior, report.Level)
}

func TestReport_Empty(t *testing.T) {
	report := Report(nil, testYear)
	assert.Empty(t, report.Roles)
	assert.Equal(t, LevelEntry, report.Level)
}

func TestCurrentYear(t *testing.T) {
	assert.Equal(t, 2001, CurrentYear(2001))
	assert.Equal(t, time.Now().Year(), CurrentYear(0))
}
