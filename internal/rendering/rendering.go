// Package rendering turns structured resumes into plain text: a readable
// resume document and the condensed views embedded in generator prompts.
package rendering

import (
	"embed"
	"strings"
	"sync"
	"text/template"

	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names
const (
	TemplateResume    = "resume.tmpl"
	TemplateAnalysis  = "analysis.tmpl"
	TemplateJobMatch  = "job_match.tmpl"
	TemplateInterview = "interview.tmpl"
)

var (
	parseOnce sync.Once
	parsed    *template.Template
	parseErr  error
)

var funcs = template.FuncMap{
	"str":        types.Str,
	"unknown":    orUnknown,
	"upper":      strings.ToUpper,
	"join":       strings.Join,
	"rule":       strings.Repeat,
	"inc":        func(i int) int { return i + 1 },
	"limit":      limit,
	"skillNames": skillNames,
	"category":   category,
	"contact":    contactLine,
	"education":  educationLine,
}

func templates() (*template.Template, error) {
	parseOnce.Do(func() {
		parsed, parseErr = template.New("rendering").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	})
	return parsed, parseErr
}

// Execute renders resume with the named embedded template. Leading and
// trailing blank lines are removed.
func Execute(name string, resume *types.Resume) (string, error) {
	if resume == nil {
		return "", nil
	}
	tmpl, err := templates()
	if err != nil {
		return "", &TemplateError{Name: name, Message: "failed to parse templates", Cause: err}
	}

	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, name, resume); err != nil {
		return "", &TemplateError{Name: name, Message: "failed to execute template", Cause: err}
	}
	return strings.TrimSpace(sb.String()), nil
}

// ResumeText renders a human-readable plain-text resume.
func ResumeText(resume *types.Resume) (string, error) {
	return Execute(TemplateResume, resume)
}

// ForAnalysis renders the full resume view used by the suggestion prompt.
func ForAnalysis(resume *types.Resume) (string, error) {
	return Execute(TemplateAnalysis, resume)
}

// ForJobMatch renders the job-matching view: first 20 skills, no contact details.
func ForJobMatch(resume *types.Resume) (string, error) {
	return Execute(TemplateJobMatch, resume)
}

// ForInterview renders the interview view: numbered roles, first 15 skills and first 3 projects.
func ForInterview(resume *types.Resume) (string, error) {
	return Execute(TemplateInterview, resume)
}

func orUnknown(s *string) string {
	if v := types.Str(s); v != "" {
		return v
	}
	return "Unknown"
}

func limit(n int, items []string) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func skillNames(n int, skills []types.Skill) []string {
	names := make([]string, 0, min(n, len(skills)))
	for i, s := range skills {
		if i == n {
			break
		}
		names = append(names, s.Name)
	}
	return names
}

func category(c types.SkillCategory) string {
	if c == "" {
		return "General"
	}
	return string(c)
}

func contactLine(r *types.Resume) string {
	var parts []string
	if v := types.Str(r.Email); v != "" {
		parts = append(parts, v)
	}
	if v := types.Str(r.Phone); v != "" {
		parts = append(parts, v)
	}
	return strings.Join(parts, " | ")
}

func educationLine(e types.Education) string {
	line := types.Str(e.Degree) + " | " + types.Str(e.Institution)
	if year := types.Str(e.GraduationYear); year != "" {
		line += " (" + year + ")"
	}
	if gpa := types.Str(e.GPA); gpa != "" {
		line += " - GPA: " + gpa
	}
	return line
}
