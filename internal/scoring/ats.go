package scoring

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights for the ATS aggregate
const (
	structureWeight  = 0.4
	contactWeight    = 0.2
	actionVerbWeight = 0.2
	metricsWeight    = 0.2
)

// Thresholds shared by strengths and tips
const (
	structureThreshold  = 80
	actionVerbThreshold = 70
	metricsThreshold    = 70
)

// CalculateATSScore scores a resume without reference to any job. resumeText is
// the free text the verb and metric signals are counted in; section and contact
// coverage come from the structured record. It never fails: missing fields lower
// the sub-scores.
func CalculateATSScore(resumeText string, resume *types.Resume) types.ATSScore {
	structure := SectionScore(resume)
	contact := ContactScore(resume)
	actionVerb := ActionVerbScore(CountActionVerbs(resumeText))
	metrics := MetricsScore(CountMetricStatements(resumeText))

	return types.ATSScore{
		ATSScore:        WeightedATS(structure, contact, actionVerb, metrics),
		StructureScore:  structure,
		ContactScore:    contact,
		ActionVerbScore: actionVerb,
		MetricsScore:    metrics,
		Strengths:       generateStrengths(structure, contact, actionVerb, metrics),
		ImprovementTips: generateTips(structure, contact, actionVerb, metrics),
	}
}

// WeightedATS combines the four sub-scores into the rounded ATS aggregate.
func WeightedATS(structure, contact, actionVerb, metrics int) int {
	score := float64(structure)*structureWeight +
		float64(contact)*contactWeight +
		float64(actionVerb)*actionVerbWeight +
		float64(metrics)*metricsWeight
	return clampScore(int(math.Round(score)))
}

func generateStrengths(structure, contact, actionVerb, metrics int) []string {
	strengths := make([]string, 0, 4)
	if structure >= structureThreshold {
		strengths = append(strengths, "Solid structure and section coverage")
	}
	if contact == ContactBoth {
		strengths = append(strengths, "Complete contact details present")
	}
	if actionVerb >= actionVerbThreshold {
		strengths = append(strengths, "Good use of strong action verbs")
	}
	if metrics >= metricsThreshold {
		strengths = append(strengths, "Achievements are quantified with metrics")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Resume captured; ready for focused improvements")
	}
	return strengths
}

func generateTips(structure, contact, actionVerb, metrics int) []string {
	tips := make([]string, 0, 5)
	if structure < structureThreshold {
		tips = append(tips,
			"Add or expand key sections (summary, experience, education, skills)",
			"Use clear headings and consistent formatting",
		)
	}
	if contact < ContactBoth {
		tips = append(tips, "Include both a professional email and phone number in the header")
	}
	if actionVerb < actionVerbThreshold {
		tips = append(tips, "Start bullet points with strong action verbs (e.g., Led, Built, Optimized)")
	}
	if metrics < metricsThreshold {
		tips = append(tips, "Quantify impact with numbers or percentages where possible")
	}
	if len(tips) == 0 {
		tips = append(tips, "Solid foundation. Fine-tune by tailoring keywords to each application.")
	}
	return tips
}

// ATS score bands
const (
	BandExcellent        = "Excellent"
	BandGood             = "Good"
	BandFair             = "Fair"
	BandNeedsImprovement = "Needs Improvement"
)

// ATSBand returns the qualitative label for an ATS score.
func ATSBand(score int) string {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandFair
	default:
		return BandNeedsImprovement
	}
}

// ImprovementPriorities orders the next steps for a resume given its ATS score,
// completeness score and keyword match (all 0-100).
func ImprovementPriorities(atsScore, completeness, keywordMatch int) []string {
	priorities := make([]string, 0, 5)
	if atsScore < 50 {
		priorities = append(priorities, "1. Critical: Improve overall ATS compatibility")
	}
	if completeness < 60 {
		priorities = append(priorities, "2. High: Complete missing resume sections")
	}
	if keywordMatch < 50 {
		priorities = append(priorities, "3. High: Add missing job-relevant keywords")
	}
	if atsScore >= 70 {
		priorities = append(priorities,
			"4. Medium: Quantify achievements with metrics",
			"5. Medium: Use stronger action verbs",
		)
	}
	if len(priorities) == 0 {
		priorities = append(priorities, "Your resume is in good shape! Minor refinements can help.")
	}
	return priorities
}
