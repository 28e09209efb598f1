// Package skills classifies skill names against a fixed skill database.
package skills

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Database categories
const (
	ProgrammingLanguages = "programming_languages"
	WebFrameworks        = "web_frameworks"
	Databases            = "databases"
	CloudPlatforms       = "cloud_platforms"
	DevOpsTools          = "devops_tools"
	DataScience          = "data_science"
	SoftSkills           = "soft_skills"
	Other                = "other"
)

type category struct {
	name   string
	skills []string
}

// database is ordered: the first category containing a skill wins.
var database = []category{
	{ProgrammingLanguages, []string{
		"Python", "JavaScript", "Java", "C++", "C#", "Go", "Rust",
		"TypeScript", "PHP", "Ruby", "Swift", "Kotlin", "R", "SQL",
	}},
	{WebFrameworks, []string{
		"React", "Vue", "Angular", "Django", "Flask", "FastAPI",
		"Express", "Spring", "ASP.NET", "Rails", "Next.js", "Nuxt",
	}},
	{Databases, []string{
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch",
		"DynamoDB", "Cassandra", "Firebase", "Oracle", "SQL Server",
	}},
	{CloudPlatforms, []string{
		"AWS", "Azure", "Google Cloud", "Heroku", "Vercel",
		"DigitalOcean", "Linode", "AWS Lambda", "CloudRun",
	}},
	{DevOpsTools, []string{
		"Docker", "Kubernetes", "Jenkins", "GitLab CI", "GitHub Actions",
		"Terraform", "Ansible", "CloudFormation", "Prometheus", "Grafana",
	}},
	{DataScience, []string{
		"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy",
		"Matplotlib", "Seaborn", "XGBoost", "Keras", "NLTK",
	}},
	{SoftSkills, []string{
		"Communication", "Leadership", "Problem-solving", "Teamwork",
		"Time management", "Attention to detail", "Adaptability",
		"Critical thinking", "Creativity", "Project management",
	}},
}

var (
	categoryIndex = buildIndex()
	mentionIndex  = buildMentionPatterns()
)

func buildIndex() map[string]string {
	index := make(map[string]string)
	for _, c := range database {
		for _, s := range c.skills {
			key := strings.ToLower(s)
			if _, seen := index[key]; !seen {
				index[key] = c.name
			}
		}
	}
	return index
}

type mention struct {
	skill   string
	pattern *regexp.Regexp
}

func buildMentionPatterns() []mention {
	var out []mention
	for _, c := range database {
		for _, s := range c.skills {
			out = append(out, mention{
				skill:   s,
				pattern: regexp.MustCompile(`(?i)(^|[^\w+#.])` + regexp.QuoteMeta(s) + `($|[^\w+#])`),
			})
		}
	}
	return out
}

// Categorize returns the database category of a skill by case-insensitive
// exact name, or Other.
func Categorize(name string) string {
	if c, ok := categoryIndex[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return Other
}

// Categories lists the database categories in lookup order.
func Categories() []string {
	names := make([]string, 0, len(database))
	for _, c := range database {
		names = append(names, c.name)
	}
	return names
}

// Mentioned returns the database skills named as whole words in text, in
// database order.
func Mentioned(text string) []string {
	found := []string{}
	if strings.TrimSpace(text) == "" {
		return found
	}
	for _, m := range mentionIndex {
		if m.pattern.MatchString(text) {
			found = append(found, m.skill)
		}
	}
	return found
}

// Groups of resume skills keyed by declared category
const (
	GroupTechnical  = "technical"
	GroupTools      = "tools"
	GroupSoftSkills = "soft_skills"
)

// GroupByType buckets resume skills by their declared category. Skills with an
// unknown or empty category are left out.
func GroupByType(resumeSkills []types.Skill) map[string][]string {
	groups := map[string][]string{
		GroupTechnical:  {},
		GroupTools:      {},
		GroupSoftSkills: {},
	}
	for _, s := range resumeSkills {
		switch types.SkillCategory(strings.ToLower(string(s.Category))) {
		case types.CategoryTechnical:
			groups[GroupTechnical] = append(groups[GroupTechnical], s.Name)
		case types.CategoryTool:
			groups[GroupTools] = append(groups[GroupTools], s.Name)
		case types.CategorySoftSkill:
			groups[GroupSoftSkills] = append(groups[GroupSoftSkills], s.Name)
		}
	}
	return groups
}
