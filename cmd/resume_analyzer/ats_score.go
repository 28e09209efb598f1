package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/spf13/cobra"
)

var atsScoreCmd = &cobra.Command{
	Use:   "ats-score",
	Short: "Score a resume for ATS compatibility",
	Long:  "Scores a resume JSON file on structure, contact details, action verbs and quantified achievements, and lists strengths and improvement tips.",
	RunE:  runATSScore,
}

func init() {
	addResumeFlag(atsScoreCmd)
	addOutFlag(atsScoreCmd)
	rootCmd.AddCommand(atsScoreCmd)
}

func runATSScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	resume, err := loadResume(cfg)
	if err != nil {
		return err
	}

	score := scoring.CalculateATSScore(resume.ScoringText(), resume)
	if cfg.Verbose {
		printer(cmd).PrintATSScore(&score)
	}
	if err := writeJSON(cmd, score); err != nil {
		return fmt.Errorf("failed to write ATS score: %w", err)
	}
	return nil
}
