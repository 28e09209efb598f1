package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate resume improvement suggestions for a job",
	Long:  "Asks the generator for an overall assessment, rewrite suggestions and top actions tailored to a job. Requires a Gemini API key.",
	RunE:  runSuggest,
}

func init() {
	addResumeFlag(suggestCmd)
	addJobFlags(suggestCmd)
	addOutFlag(suggestCmd)
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
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

	feedback, err := analyzer.GenerateSuggestions(cmd.Context(), resume, job.Description)
	if err != nil {
		return fmt.Errorf("failed to generate suggestions: %w", err)
	}
	return writeJSON(cmd, feedback)
}
