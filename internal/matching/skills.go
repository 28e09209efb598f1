// Package matching compares a resume against a job's requirements using
// deterministic lexical signals.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// nearMatchThreshold is the lowest similarity reported as a near match
const nearMatchThreshold = 80

// MatchSkills case-folds both lists and reports the intersection, the required
// skills the resume lacks, and the rounded share of requirements covered.
// An empty requirement list yields 0%: it signals a job description too thin
// to match against, not a perfect fit.
func MatchSkills(resumeSkills, requiredSkills []string) types.SkillMatch {
	have := foldSet(resumeSkills)
	want := foldSet(requiredSkills)

	result := types.SkillMatch{
		MatchingSkills: []string{},
		MissingSkills:  []string{},
	}
	for skill := range want {
		if have[skill] {
			result.MatchingSkills = append(result.MatchingSkills, skill)
		} else {
			result.MissingSkills = append(result.MissingSkills, skill)
		}
	}
	sort.Strings(result.MatchingSkills)
	sort.Strings(result.MissingSkills)

	if len(want) > 0 {
		pct := 100 * float64(len(result.MatchingSkills)) / float64(len(want))
		result.MatchPercentage = int(math.Round(pct))
	}
	return result
}

func foldSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}

// relevanceKeywords are role-neutral action stems matched as substrings.
var relevanceKeywords = []string{
	"develop", "design", "implement", "build", "create",
	"manage", "lead", "coordinate", "analyze", "optimize",
	"test", "deploy", "architect", "scale", "improve",
}

// ExperienceRelevance averages, over experience entries with a description,
// the rounded share of relevance keywords found in that description.
// It returns 0 when no entry has a description.
func ExperienceRelevance(entries []types.Experience) int {
	total := 0
	count := 0
	for _, entry := range entries {
		description := types.Str(entry.Description)
		if description == "" {
			continue
		}
		total += descriptionRelevance(strings.ToLower(description))
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

func descriptionRelevance(description string) int {
	found := 0
	for _, keyword := range relevanceKeywords {
		if strings.Contains(description, keyword) {
			found++
		}
	}
	score := int(math.Round(100 * float64(found) / float64(len(relevanceKeywords))))
	return min(score, 100)
}

// NearMatches pairs each missing skill with the most similar resume skill,
// for spellings such as "Postgres" against "PostgreSQL" that exact matching
// misses. Pairs below the threshold are left out; ties keep the earlier
// resume skill. It returns nil when nothing is close.
func NearMatches(resumeSkills, missing []string) map[string]string {
	var near map[string]string
	for _, want := range missing {
		best, bestScore := "", 0
		for _, have := range resumeSkills {
			if score := parsing.Similarity(want, have); score > bestScore {
				best, bestScore = have, score
			}
		}
		if bestScore < nearMatchThreshold {
			continue
		}
		if near == nil {
			near = make(map[string]string)
		}
		near[want] = best
	}
	return near
}
