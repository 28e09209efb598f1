package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract a structured resume from a txt, pdf or docx document",
	Long:  "Extracts text from a resume document and asks the generator to structure it into resume JSON. Requires a Gemini API key.",
	RunE:  runParseResume,
}

var parseInputFile string

func init() {
	parseResumeCmd.Flags().StringVarP(&parseInputFile, "file", "f", "", "Path to resume document (required)")
	addOutFlag(parseResumeCmd)

	if err := parseResumeCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	doc, err := ingestion.IngestFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume document: %w", err)
	}
	log.WithField("hash", doc.Metadata.Hash).Debug("extracted resume text")

	analyzer, closeClient, err := newAnalyzer(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer closeClient()

	resume, err := analyzer.ParseResume(cmd.Context(), doc.Text)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	return writeJSON(cmd, resume)
}
