package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var jobMatchCmd = &cobra.Command{
	Use:   "job-match",
	Short: "Assess job fit with the generator",
	Long:  "Asks the generator for a match percentage, matching and missing skills, growth areas and a suitability assessment. Requires a Gemini API key.",
	RunE:  runJobMatch,
}

func init() {
	addResumeFlag(jobMatchCmd)
	addJobFlags(jobMatchCmd)
	addOutFlag(jobMatchCmd)
	rootCmd.AddCommand(jobMatchCmd)
}

func runJobMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	resume, err := loadResume(cfg)
	if err != nil {
		return err
	}
	job, err := requireJobDescription(cmd.Context(), cmd, cfg, log)
	if err != nil {
		return err
	}

	analyzer, closeClient, err := newAnalyzer(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer closeClient()

	match, err := analyzer.MatchWithJob(cmd.Context(), resume, job.Description)
	if err != nil {
		return fmt.Errorf("failed to match job: %w", err)
	}
	return writeJSON(cmd, match)
}
