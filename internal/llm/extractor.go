package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure a JSON-producing prompt asks for.
type ExtractionSchema struct {
	Name         string        // Schema name (e.g., "ParsedResume", "JobMatch")
	Description  string        // Task preamble
	Fields       []SchemaField // Expected output fields
	Instructions []string      // Extra rules; defaults to verbatim-extraction rules when empty
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint, e.g. "string|null", "[\"string\"]"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

var defaultInstructions = []string{
	"Extract information directly from the text, do not invent or summarize.",
	"If a field is not present, use null for strings and [] for lists.",
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	instructions := schema.Instructions
	if len(instructions) == 0 {
		instructions = defaultInstructions
	}
	sb.WriteString("IMPORTANT:\n")
	for _, line := range instructions {
		sb.WriteString("- ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	// the description may already carry its inputs
	if inputText != "" {
		sb.WriteString("\nInput:\n\"\"\"\n")
		sb.WriteString(inputText)
		sb.WriteString("\n\"\"\"\n")
	}

	return sb.String()
}

const questionShape = `[{"question": "string", "category": "string", "why_asked": "string|null", "tip": "string|null"}]`

// ResumeSchema describes a parsed resume record.
func ResumeSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "ParsedResume",
		Description: description,
		Fields: []SchemaField{
			{Name: "name", Type: "string|null", Description: "Full name"},
			{Name: "email", Type: "string|null", Description: "Email address"},
			{Name: "phone", Type: "string|null", Description: "Phone number"},
			{Name: "summary", Type: "string|null", Description: "Professional summary or objective"},
			{Name: "skills", Type: `[{"name": "string", "category": "technical"|"tool"|"soft_skill"}]`, Description: "Every skill with a category", Required: true},
			{Name: "education", Type: `[{"degree": "string|null", "institution": "string|null", "graduation_year": "string|null", "gpa": "string|null"}]`, Required: true},
			{Name: "experience", Type: `[{"title": "string|null", "company": "string|null", "duration": "string|null", "description": "string|null"}]`, Required: true},
			{Name: "certifications", Type: `["string"]`, Description: "Certifications and courses", Required: true},
			{Name: "projects", Type: `["string"]`, Description: "Notable projects", Required: true},
		},
		Instructions: []string{
			"Copy values from the resume; do not invent details.",
			"If a field is not present, use null for strings and [] for lists.",
			"Every skill must have one of the categories technical, tool or soft_skill.",
		},
	}
}

// JobMatchSchema describes a free-text job fit assessment.
func JobMatchSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "JobMatch",
		Description: description,
		Fields: []SchemaField{
			{Name: "match_percentage", Type: "integer 0-100", Description: "Overall match", Required: true},
			{Name: "job_title_match", Type: "string", Description: "Assessment of job title fit", Required: true},
			{Name: "matching_skills", Type: `["string"]`, Required: true},
			{Name: "missing_skills", Type: `["string"]`, Description: "Required skills the candidate lacks", Required: true},
			{Name: "matching_experience", Type: `["string"]`, Description: "Relevant experience areas", Required: true},
			{Name: "growth_areas", Type: `["string"]`, Required: true},
			{Name: "suitability_assessment", Type: "string", Required: true},
			{Name: "career_alignment", Type: "string", Required: true},
		},
		Instructions: []string{
			"Be realistic and constructive.",
			"Base every statement on the resume and job description provided.",
		},
	}
}

// FeedbackSchema describes resume improvement suggestions.
func FeedbackSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "ResumeFeedback",
		Description: description,
		Fields: []SchemaField{
			{Name: "overall_assessment", Type: "string", Required: true},
			{Name: "suggestions", Type: `[{"original_text": "string", "suggested_text": "string", "reason": "string", "focus_area": "string"}]`, Description: "3-5 concrete rewrites", Required: true},
			{Name: "top_actions", Type: `["string"]`, Required: true},
		},
		Instructions: []string{
			"Quote original_text verbatim from the resume.",
			"Prefer stronger action verbs, quantified results and keywords from the job description.",
		},
	}
}

// InterviewSchema describes a categorized interview question set.
func InterviewSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "InterviewSet",
		Description: description,
		Fields: []SchemaField{
			{Name: "role", Type: "string|null"},
			{Name: "company_context", Type: "string|null"},
			{Name: "technical_questions", Type: questionShape, Required: true},
			{Name: "behavioral_questions", Type: questionShape, Required: true},
			{Name: "role_specific_questions", Type: questionShape, Required: true},
			{Name: "preparation_tips", Type: `["string"]`, Description: "3-4 tips", Required: true},
		},
		Instructions: []string{
			"Generate 3 questions in each category.",
			"Behavioral questions should invite STAR format answers.",
		},
	}
}
