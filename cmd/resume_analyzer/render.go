package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume JSON file as plain text",
	RunE:  runRender,
}

func init() {
	addResumeFlag(renderCmd)
	renderCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Write the text to this file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	resume, err := loadResume(cfg)
	if err != nil {
		return err
	}

	text, err := rendering.ResumeText(resume)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}
	return writeOutput(cmd, []byte(text+"\n"))
}
