package experience

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Seniority levels
const (
	LevelEntry  = "entry-level"
	LevelMid    = "mid-level"
	LevelSenior = "senior"
	LevelLead   = "lead"
)

var yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

var (
	leadTitleWords   = []string{"lead", "principal", "architect", "director", "vp"}
	seniorTitleWords = []string{"senior", "sr", "staff"}
	entryTitleWords  = []string{"junior", "jr", "associate", "intern"}
)

// CurrentYear returns override when positive, otherwise the calendar year.
func CurrentYear(override int) int {
	if override > 0 {
		return override
	}
	return time.Now().Year()
}

// YearsFromDuration estimates the years covered by a duration string such as
// "2020-2023" or "Jan 2021 - Present". Two or more years give the span between
// the first two; a single year is treated as open-ended and measured to
// currentYear. It returns nil when the text holds no 19xx/20xx year.
func YearsFromDuration(duration string, currentYear int) *int {
	matches := yearPattern.FindAllString(duration, -1)
	if len(matches) == 0 {
		return nil
	}

	start, _ := strconv.Atoi(matches[0])
	end := currentYear
	if len(matches) >= 2 {
		end, _ = strconv.Atoi(matches[1])
	}

	years := max(0, end-start)
	return &years
}

// SeniorityLevel classifies a role. Title keywords win over tenure, checked
// in lead, senior, entry order; otherwise five or more years is senior and
// two or more is mid-level. A nil years counts as zero.
func SeniorityLevel(years *int, title string) string {
	lower := strings.ToLower(title)
	switch {
	case containsAny(lower, leadTitleWords):
		return LevelLead
	case containsAny(lower, seniorTitleWords):
		return LevelSenior
	case containsAny(lower, entryTitleWords):
		return LevelEntry
	}

	n := 0
	if years != nil {
		n = *years
	}
	switch {
	case n >= 5:
		return LevelSenior
	case n >= 2:
		return LevelMid
	default:
		return LevelEntry
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// TotalYears sums the estimable durations of all experience entries.
func TotalYears(entries []types.Experience, currentYear int) int {
	total := 0
	for _, entry := range entries {
		if years := YearsFromDuration(types.Str(entry.Duration), currentYear); years != nil {
			total += *years
		}
	}
	return total
}

// Report estimates seniority for every role and for the resume overall. The
// overall level uses the first (most recent) role title and total tenure.
func Report(resume *types.Resume, currentYear int) types.SeniorityReport {
	report := types.SeniorityReport{Roles: []types.RoleSeniority{}, Level: LevelEntry}
	if resume == nil {
		return report
	}

	for _, entry := range resume.Experience {
		years := YearsFromDuration(types.Str(entry.Duration), currentYear)
		title := types.Str(entry.Title)
		report.Roles = append(report.Roles, types.RoleSeniority{
			Title:    title,
			Company:  types.Str(entry.Company),
			Duration: types.Str(entry.Duration),
			Years:    years,
			Level:    SeniorityLevel(years, title),
		})
	}

	report.TotalYears = TotalYears(resume.Experience, currentYear)
	latestTitle := ""
	if len(resume.Experience) > 0 {
		latestTitle = types.Str(resume.Experience[0].Title)
	}
	total := report.TotalYears
	report.Level = SeniorityLevel(&total, latestTitle)
	return report
}
