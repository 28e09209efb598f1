package scoring

import (
	"regexp"

	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// actionVerbs is the closed vocabulary of strong action verbs
var actionVerbs = map[string]bool{
	"developed": true, "implemented": true, "created": true, "designed": true,
	"built": true, "achieved": true, "improved": true, "optimized": true,
	"led": true, "managed": true, "spearheaded": true, "directed": true,
	"launched": true, "automated": true, "increased": true, "reduced": true,
	"analyzed": true, "delivered": true, "deployed": true, "configured": true,
	"debugged": true, "architected": true, "scaled": true,
}

// metricPattern matches bare integers and percent signs.
var metricPattern = regexp.MustCompile(`\b\d+\b|%`)

// Points per signal occurrence
const (
	actionVerbPoints = 10
	metricPoints     = 15
)

// CountActionVerbs counts normalized tokens that are strong action verbs.
func CountActionVerbs(text string) int {
	count := 0
	for _, token := range parsing.Tokenize(text) {
		if actionVerbs[token] {
			count++
		}
	}
	return count
}

// CountMetricStatements counts integers and '%' characters in the raw text.
// The text is not normalized: normalization would strip the percent signs.
func CountMetricStatements(text string) int {
	return len(metricPattern.FindAllStringIndex(text, -1))
}

// ActionVerbScore converts an action-verb count to a 0-100 score.
func ActionVerbScore(hits int) int {
	return clampScore(hits * actionVerbPoints)
}

// MetricsScore converts a metric count to a 0-100 score.
func MetricsScore(hits int) int {
	return clampScore(hits * metricPoints)
}

func clampScore(v int) int {
	return max(0, min(100, v))
}
