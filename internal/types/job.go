// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SampleJob is a built-in job description used for demos and offline matching
type SampleJob struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

// JobMatch is the generator-produced job fit assessment
type JobMatch struct {
	MatchPercentage       int      `json:"match_percentage" validate:"min=0,max=100"`
	JobTitleMatch         string   `json:"job_title_match"`
	MatchingSkills        []string `json:"matching_skills"`
	MissingSkills         []string `json:"missing_skills"`
	MatchingExperience    []string `json:"matching_experience"`
	GrowthAreas           []string `json:"growth_areas"`
	SuitabilityAssessment string   `json:"suitability_assessment"`
	CareerAlignment       string   `json:"career_alignment"`
}

// ResumeSuggestion is a single rewrite suggestion
type ResumeSuggestion struct {
	OriginalText  string `json:"original_text"`
	SuggestedText string `json:"suggested_text"`
	Reason        string `json:"reason"`
	FocusArea     string `json:"focus_area"`
}

// ResumeFeedback is the generator-produced improvement feedback
type ResumeFeedback struct {
	OverallAssessment string             `json:"overall_assessment"`
	Suggestions       []ResumeSuggestion `json:"suggestions"`
	TopActions        []string           `json:"top_actions"`
}

// InterviewQuestion is a single generated interview question
type InterviewQuestion struct {
	Question string  `json:"question"`
	Category string  `json:"category"`
	WhyAsked string  `json:"why_asked"`
	Tip      *string `json:"tip"`
}

// InterviewSet groups generated interview questions by category
type InterviewSet struct {
	Role                  string              `json:"role"`
	CompanyContext        *string             `json:"company_context"`
	TechnicalQuestions    []InterviewQuestion `json:"technical_questions"`
	BehavioralQuestions   []InterviewQuestion `json:"behavioral_questions"`
	RoleSpecificQuestions []InterviewQuestion `json:"role_specific_questions"`
	PreparationTips       []string            `json:"preparation_tips"`
}

// Normalize replaces nil question and tip lists with empty slices.
func (s *InterviewSet) Normalize() *InterviewSet {
	if s.TechnicalQuestions == nil {
		s.TechnicalQuestions = []InterviewQuestion{}
	}
	if s.BehavioralQuestions == nil {
		s.BehavioralQuestions = []InterviewQuestion{}
	}
	if s.RoleSpecificQuestions == nil {
		s.RoleSpecificQuestions = []InterviewQuestion{}
	}
	if s.PreparationTips == nil {
		s.PreparationTips = []string{}
	}
	return s
}
