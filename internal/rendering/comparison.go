package rendering

import (
	"fmt"
	"strconv"
	"strings"
)

// ComparisonRow is one resume's line in a side-by-side comparison.
type ComparisonRow struct {
	Name       string
	MatchScore int
	SkillMatch int
	Summary    string
}

const tableWidth = 100

// ComparisonTable lays out rows as a fixed-width text table. Names are cut
// to 25 characters and summaries to 20.
func ComparisonTable(rows []ComparisonRow) string {
	if len(rows) == 0 {
		return "No results to compare"
	}

	rule := strings.Repeat("=", tableWidth)
	lines := []string{
		rule,
		fmt.Sprintf("%-25s %-10s %-15s %-20s", "Name", "Score", "Skills Match", "Fit"),
		rule,
	}
	for _, row := range rows {
		name := row.Name
		if name == "" {
			name = "Unknown"
		}
		summary := row.Summary
		if summary == "" {
			summary = "N/A"
		}
		lines = append(lines, fmt.Sprintf("%-25s %-10s %-15s %-20s",
			truncate(name, 25),
			strconv.Itoa(row.MatchScore),
			strconv.Itoa(row.SkillMatch)+"%",
			truncate(summary, 20),
		))
	}
	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
