package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/report"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the offline analysis report for a resume",
	Long: `Combines the ATS score, completeness check, missing sections, seniority
estimate and improvement priorities into one report. With a job it also
includes the lexical match.`,
	RunE: runReport,
}

func init() {
	addResumeFlag(reportCmd)
	addJobFlags(reportCmd)
	addOutFlag(reportCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	resume, err := loadResume(cfg)
	if err != nil {
		return err
	}
	job, err := resolveJob(cmd.Context(), cmd, cfg, log)
	if err != nil {
		return err
	}

	var target *matching.Job
	if job != nil {
		target = &job.Job
	}
	r := report.Build(resume, target, report.Options{CurrentYear: cfg.CurrentYear})
	if err := report.Validate(r); err != nil {
		return fmt.Errorf("report failed schema validation: %w", err)
	}

	if cfg.Verbose {
		printer(cmd).PrintReport(r)
	}
	if err := writeJSON(cmd, r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
