// Package rewriting suggests offline improvements to experience bullets:
// stronger opening verbs, quantification and more concise phrasing.
package rewriting

import (
	"strings"
)

const suggestedVerbCount = 5

var (
	generalVerbs = []string{
		"Developed", "Implemented", "Created", "Designed", "Built",
		"Achieved", "Improved", "Enhanced", "Optimized", "Streamlined",
	}
	technicalVerbs = []string{
		"Architected", "Engineered", "Deployed", "Configured", "Debugged",
		"Integrated", "Optimized", "Scaled", "Automated", "Refactored",
	}
	leadershipVerbs = []string{
		"Led", "Directed", "Managed", "Supervised", "Coordinated",
		"Delegated", "Mentored", "Guided", "Orchestrated", "Championed",
	}
	analyticsVerbs = []string{
		"Analyzed", "Measured", "Evaluated", "Tracked", "Quantified",
		"Assessed", "Calculated", "Determined", "Identified", "Concluded",
	}
)

// verbContexts select extra verb sets by words found in the bullet
var verbContexts = []struct {
	triggers []string
	verbs    []string
}{
	{[]string{"code", "software", "data", "algorithm"}, technicalVerbs},
	{[]string{"team", "people", "staff", "group"}, leadershipVerbs},
	{[]string{"metric", "percent", "number", "report"}, analyticsVerbs},
}

// SuggestActionVerbs returns five distinct verbs for a bullet. Verbs from
// the sets triggered by the bullet's content come first, in set order,
// followed by the general verbs.
func SuggestActionVerbs(bullet string) []string {
	lower := strings.ToLower(bullet)

	var candidates []string
	for _, ctx := range verbContexts {
		if containsAny(lower, ctx.triggers) {
			candidates = append(candidates, ctx.verbs...)
		}
	}
	candidates = append(candidates, generalVerbs...)

	suggested := make([]string, 0, suggestedVerbCount)
	seen := make(map[string]bool)
	for _, v := range candidates {
		if seen[v] {
			continue
		}
		seen[v] = true
		suggested = append(suggested, v)
		if len(suggested) == suggestedVerbCount {
			break
		}
	}
	return suggested
}

// strongVerbs are accepted as a bullet's opening word
var strongVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "engineered": true,
	"implemented": true, "improved": true, "increased": true, "launched": true,
	"led": true, "optimized": true, "reduced": true, "scaled": true,
	"shipped": true, "transformed": true,
}

// StrongOpening reports whether the bullet starts with an action verb: a
// known strong verb or any past-tense word longer than three letters.
func StrongOpening(bullet string) bool {
	words := strings.Fields(strings.ToLower(bullet))
	if len(words) == 0 {
		return false
	}
	first := strings.TrimRight(words[0], ".,!?;:")
	if strongVerbs[first] {
		return true
	}
	return strings.HasSuffix(first, "ed") && len(first) > 3
}

var quantificationIndicators = []string{"%", "million", "thousand", "increased", "decreased", "reduced"}

// NeedsQuantification reports whether a bullet lacks any impact indicator.
func NeedsQuantification(bullet string) bool {
	return !containsAny(strings.ToLower(bullet), quantificationIndicators)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
