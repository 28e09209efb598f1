package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/interview"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Prepare interview questions for a job",
	Long: `Generates technical, behavioral and role-specific interview questions with
preparation tips. With --offline the questions come from the built-in bank for
the job title and no API key is needed.`,
	RunE: runInterview,
}

var (
	interviewTitle   string
	interviewCompany string
	interviewOffline bool
)

// defaultInterviewTitle is used offline when neither --title nor a job names one
const defaultInterviewTitle = "Software Engineer"

func init() {
	addResumeFlag(interviewCmd)
	addJobFlags(interviewCmd)
	addOutFlag(interviewCmd)
	interviewCmd.Flags().StringVar(&interviewTitle, "title", "", "Job title being interviewed for")
	interviewCmd.Flags().StringVar(&interviewCompany, "company", "", "Company being interviewed with")
	interviewCmd.Flags().BoolVar(&interviewOffline, "offline", false, "Use the built-in question bank instead of the generator")
	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	var set *types.InterviewSet
	if interviewOffline {
		set, err = offlineInterview(cmd, cfg, log)
	} else {
		set, err = generatedInterview(cmd, cfg, log)
	}
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer(cmd).PrintInterviewSet(set)
	}
	return writeJSON(cmd, set)
}

func offlineInterview(cmd *cobra.Command, cfg config.Config, log *logrus.Logger) (*types.InterviewSet, error) {
	title := interviewTitle
	if title == "" {
		job, err := resolveJob(cmd.Context(), cmd, cfg, log)
		if err != nil {
			return nil, err
		}
		if job != nil {
			title = job.Title
		}
	}
	if title == "" {
		title = defaultInterviewTitle
	}

	set, err := interview.TemplateSet(title)
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %w", err)
	}
	if interviewCompany != "" {
		set.CompanyContext = types.StrPtr("Interviewing at " + interviewCompany)
	}
	return set, nil
}

func generatedInterview(cmd *cobra.Command, cfg config.Config, log *logrus.Logger) (*types.InterviewSet, error) {
	resume, err := loadResume(cfg)
	if err != nil {
		return nil, err
	}
	job, err := requireJobDescription(cmd.Context(), cmd, cfg, log)
	if err != nil {
		return nil, err
	}

	analyzer, closeClient, err := newAnalyzer(cmd.Context(), cfg, log)
	if err != nil {
		return nil, err
	}
	defer closeClient()

	target := analysis.InterviewTarget{JobTitle: interviewTitle, Company: interviewCompany}
	set, err := analyzer.GenerateInterviewQuestions(cmd.Context(), resume, job.Description, target)
	if err != nil {
		return nil, fmt.Errorf("failed to generate interview questions: %w", err)
	}
	return set, nil
}
