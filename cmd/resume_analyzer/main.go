// Package main provides the resume_analyzer CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume analysis CLI and HTTP API server",
	Long: `resume_analyzer scores resumes for ATS compatibility, matches them against job
descriptions, estimates seniority and, with a Gemini API key, generates job fit
assessments, improvement suggestions and interview questions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Global flags
var (
	configPath  string
	apiKey      string
	verbose     bool
	currentYear int
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a JSON config file")
	flags.StringVar(&apiKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print human-readable summaries and debug logs to stderr")
	flags.IntVar(&currentYear, "year", 0, "Year used for tenure arithmetic (defaults to the current year)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
