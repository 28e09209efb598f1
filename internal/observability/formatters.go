// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/rewriting"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, ending with "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to limit items as bullets, with a remainder line.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintATSScore outputs the ATS breakdown with its band, strengths and tips.
func (p *Printer) PrintATSScore(score *types.ATSScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score:    %d/100 (%s)\n", score.ATSScore, scoring.ATSBand(score.ATSScore)))
	sb.WriteString(fmt.Sprintf("Structure:    %d\n", score.StructureScore))
	sb.WriteString(fmt.Sprintf("Contact:      %d\n", score.ContactScore))
	sb.WriteString(fmt.Sprintf("Action verbs: %d\n", score.ActionVerbScore))
	sb.WriteString(fmt.Sprintf("Metrics:      %d\n", score.MetricsScore))
	sb.WriteString("\n")

	writeList(&sb, "Strengths", score.Strengths, maxItemsToShow)
	writeList(&sb, "Improvement Tips", score.ImprovementTips, maxItemsToShow)

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLexicalMatch outputs the deterministic job match signals.
func (p *Printer) PrintLexicalMatch(match *types.LexicalMatch) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Estimated match:      %d%% (%s)\n", match.EstimatedMatch, match.Band))
	sb.WriteString(fmt.Sprintf("Skill match:          %d%%\n", match.SkillMatch.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Experience relevance: %d\n", match.ExperienceRelevance))
	sb.WriteString(fmt.Sprintf("Completeness:         %d\n", match.Completeness))
	sb.WriteString(fmt.Sprintf("Keyword overlap:      %d%%\n", match.KeywordMatch))
	sb.WriteString("\n")

	writeList(&sb, "Matching skills", match.SkillMatch.MatchingSkills, maxItemsToShow)
	writeList(&sb, "Missing skills", match.SkillMatch.MissingSkills, maxItemsToShow)
	if len(match.NearMatches) > 0 {
		near := make([]string, 0, len(match.NearMatches))
		for want, have := range match.NearMatches {
			near = append(near, fmt.Sprintf("%s ~ %s", want, have))
		}
		sort.Strings(near)
		writeList(&sb, "Similar skills", near, maxItemsToShow)
	}
	if match.SuccessEstimate != "" {
		sb.WriteString("\n" + match.SuccessEstimate + "\n")
	}

	p.printBox("JOB MATCH ("+strings.ToUpper(match.Band)+")", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSeniority outputs per-role tenure and the overall level.
func (p *Printer) PrintSeniority(report *types.SeniorityReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level:       %s\n", report.Level))
	sb.WriteString(fmt.Sprintf("Total years: %d\n", report.TotalYears))

	count := min(len(report.Roles), maxItemsToShow)
	if count > 0 {
		sb.WriteString("\n")
	}
	for i := 0; i < count; i++ {
		role := report.Roles[i]
		years := "?"
		if role.Years != nil {
			years = fmt.Sprintf("%d", *role.Years)
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, role.Title))
		sb.WriteString(fmt.Sprintf("    %s yrs, %s\n", years, role.Level))
	}
	if len(report.Roles) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more roles\n", len(report.Roles)-maxItemsToShow))
	}

	p.printBox("SENIORITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs every section of an offline report.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}
	p.PrintATSScore(&report.ATS)
	p.PrintLexicalMatch(report.Match)
	p.PrintSeniority(&report.Seniority)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Completeness: %d (valid: %t)\n", report.Completeness.Score, report.Completeness.Valid))
	writeList(&sb, "Missing fields", report.Completeness.Missing, maxItemsToShow)
	sb.WriteString("\n")
	for _, priority := range report.Priorities {
		sb.WriteString(priority + "\n")
	}
	p.printBox("PRIORITIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBulletReviews outputs the deterministic bullet checks.
func (p *Printer) PrintBulletReviews(reviews []rewriting.BulletReview) {
	if len(reviews) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Reviewed %d bullets:\n\n", len(reviews)))

	count := min(len(reviews), maxItemsToShow)
	for i := 0; i < count; i++ {
		review := reviews[i]
		sb.WriteString(fmt.Sprintf("• %s\n", truncate(review.Original, 50)))

		checks := []string{}
		if review.StrongOpening {
			checks = append(checks, "✓verb")
		} else {
			checks = append(checks, "✗verb")
		}
		if review.NeedsQuantification {
			checks = append(checks, "✗metrics")
		} else {
			checks = append(checks, "✓metrics")
		}
		if len(review.WordyPhrases) > 0 {
			checks = append(checks, "✗wordy")
		}
		sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(checks, " ")))
		if len(review.SuggestedVerbs) > 0 {
			sb.WriteString(fmt.Sprintf("  Try: %s\n", strings.Join(review.SuggestedVerbs, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(reviews) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more bullets", len(reviews)-maxItemsToShow))
	}

	p.printBox("BULLET REVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterviewSet outputs the questions of an interview set by category.
func (p *Printer) PrintInterviewSet(set *types.InterviewSet) {
	if set == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role: %s\n", set.Role))
	if set.CompanyContext != nil {
		sb.WriteString(*set.CompanyContext + "\n")
	}
	sb.WriteString("\n")

	groups := []struct {
		name      string
		questions []types.InterviewQuestion
	}{
		{"Technical", set.TechnicalQuestions},
		{"Behavioral", set.BehavioralQuestions},
		{"Role-specific", set.RoleSpecificQuestions},
	}
	for _, g := range groups {
		texts := make([]string, 0, len(g.questions))
		for _, q := range g.questions {
			texts = append(texts, q.Question)
		}
		writeList(&sb, g.name, texts, 3)
	}
	writeList(&sb, "Tips", set.PreparationTips, 3)

	p.printBox("INTERVIEW PREP", strings.TrimSuffix(sb.String(), "\n"))
}
