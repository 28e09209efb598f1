// Package interview builds template interview question sets without calling
// the language model. Questions come from an embedded bank keyed by domain
// and role keywords.
package interview

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed bank.json
var bankJSON []byte

// Domains
const (
	DomainBackend     = "backend"
	DomainFrontend    = "frontend"
	DomainDataScience = "data-science"
	DomainGeneral     = "general"
)

// questionsPerCategory caps technical and behavioral questions in a template set.
const questionsPerCategory = 3

type keyedQuestion struct {
	Keywords []string                `json:"keywords"`
	Question types.InterviewQuestion `json:"question"`
}

type keyedTips struct {
	Keywords []string `json:"keywords"`
	Tips     []string `json:"tips"`
}

type bank struct {
	Behavioral   []types.InterviewQuestion            `json:"behavioral"`
	Technical    map[string][]types.InterviewQuestion `json:"technical"`
	RoleSpecific []keyedQuestion                      `json:"role_specific"`
	DefaultRole  types.InterviewQuestion              `json:"default_role_question"`
	Tips         struct {
		Base        []string    `json:"base"`
		Conditional []keyedTips `json:"conditional"`
	} `json:"tips"`
}

var (
	loadOnce sync.Once
	loaded   *bank
	loadErr  error
)

func questionBank() (*bank, error) {
	loadOnce.Do(func() {
		var b bank
		if err := json.Unmarshal(bankJSON, &b); err != nil {
			loadErr = fmt.Errorf("failed to parse question bank: %w", err)
			return
		}
		loaded = &b
	})
	return loaded, loadErr
}

// domainKeywords are checked in order; the first domain with a matching word wins
var domainKeywords = []struct {
	domain string
	words  []string
}{
	{DomainBackend, []string{"backend", "server", "api"}},
	{DomainFrontend, []string{"frontend", "ui", "ux", "react", "vue"}},
	{DomainDataScience, []string{"data", "ml", "ai", "science"}},
}

// IdentifyDomain maps a job title onto a question domain by substring match.
func IdentifyDomain(jobTitle string) string {
	title := strings.ToLower(jobTitle)
	for _, d := range domainKeywords {
		if containsAny(title, d.words) {
			return d.domain
		}
	}
	return DomainGeneral
}

// BehavioralQuestions returns a copy of the full behavioral bank.
func BehavioralQuestions() ([]types.InterviewQuestion, error) {
	b, err := questionBank()
	if err != nil {
		return nil, err
	}
	return append([]types.InterviewQuestion(nil), b.Behavioral...), nil
}

// TechnicalQuestions returns the technical bank for domain; unknown domains have none.
func TechnicalQuestions(domain string) ([]types.InterviewQuestion, error) {
	b, err := questionBank()
	if err != nil {
		return nil, err
	}
	return append([]types.InterviewQuestion{}, b.Technical[domain]...), nil
}

// RoleSpecificQuestions picks questions whose keywords appear in the title,
// falling back to a question about the role itself.
func RoleSpecificQuestions(jobTitle string) ([]types.InterviewQuestion, error) {
	b, err := questionBank()
	if err != nil {
		return nil, err
	}

	title := strings.ToLower(jobTitle)
	questions := []types.InterviewQuestion{}
	for _, kq := range b.RoleSpecific {
		if containsAny(title, kq.Keywords) {
			questions = append(questions, kq.Question)
		}
	}
	if len(questions) == 0 {
		q := b.DefaultRole
		q.Question = prompts.Format(q.Question, map[string]string{"Title": jobTitle})
		questions = append(questions, q)
	}
	return questions, nil
}

// PreparationTips returns the base tips plus those triggered by words in the title.
func PreparationTips(jobTitle string) ([]string, error) {
	b, err := questionBank()
	if err != nil {
		return nil, err
	}

	title := strings.ToLower(jobTitle)
	tips := append([]string{}, b.Tips.Base...)
	for _, kt := range b.Tips.Conditional {
		if containsAny(title, kt.Keywords) {
			tips = append(tips, kt.Tips...)
		}
	}
	return tips, nil
}

// TemplateSet assembles an interview set for jobTitle from the bank: up to
// three technical questions for the title's domain, the first three
// behavioral questions, role-specific questions and preparation tips.
func TemplateSet(jobTitle string) (*types.InterviewSet, error) {
	technical, err := TechnicalQuestions(IdentifyDomain(jobTitle))
	if err != nil {
		return nil, err
	}
	behavioral, err := BehavioralQuestions()
	if err != nil {
		return nil, err
	}
	roleSpecific, err := RoleSpecificQuestions(jobTitle)
	if err != nil {
		return nil, err
	}
	tips, err := PreparationTips(jobTitle)
	if err != nil {
		return nil, err
	}

	set := &types.InterviewSet{
		Role:                  jobTitle,
		TechnicalQuestions:    technical[:min(questionsPerCategory, len(technical))],
		BehavioralQuestions:   behavioral[:min(questionsPerCategory, len(behavioral))],
		RoleSpecificQuestions: roleSpecific,
		PreparationTips:       tips,
	}
	return set, nil
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
