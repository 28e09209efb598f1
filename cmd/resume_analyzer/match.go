package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against a job without the generator",
	Long: `Compares resume skills with the job's required skills (or the known skills its
description mentions), rates experience relevance and estimates overall fit.`,
	RunE: runMatch,
}

func init() {
	addResumeFlag(matchCmd)
	addJobFlags(matchCmd)
	addOutFlag(matchCmd)
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	resume, err := loadResume(cfg)
	if err != nil {
		return err
	}
	job, err := requireJob(cmd.Context(), cmd, cfg, log)
	if err != nil {
		return err
	}

	ats := scoring.CalculateATSScore(resume.ScoringText(), resume)
	result := matching.Lexical(resume, job.Job, ats.ATSScore)
	if cfg.Verbose {
		printer(cmd).PrintLexicalMatch(&result)
	}
	if err := writeJSON(cmd, result); err != nil {
		return fmt.Errorf("failed to write match: %w", err)
	}
	return nil
}
