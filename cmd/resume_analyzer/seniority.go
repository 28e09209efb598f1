package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/spf13/cobra"
)

var seniorityCmd = &cobra.Command{
	Use:   "seniority",
	Short: "Estimate years of experience and seniority per role",
	RunE:  runSeniority,
}

func init() {
	addResumeFlag(seniorityCmd)
	addOutFlag(seniorityCmd)
	rootCmd.AddCommand(seniorityCmd)
}

func runSeniority(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	resume, err := loadResume(cfg)
	if err != nil {
		return err
	}

	report := experience.Report(resume, experience.CurrentYear(cfg.CurrentYear))
	if cfg.Verbose {
		printer(cmd).PrintSeniority(&report)
	}
	if err := writeJSON(cmd, report); err != nil {
		return fmt.Errorf("failed to write seniority report: %w", err)
	}
	return nil
}
