package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	rootschemas "github.com/jonathan/resume-analyzer/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against an embedded schema",
	Long:  "Validates a JSON file against one of the embedded schemas: " + strings.Join(rootschemas.Names(), ", ") + ".",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateFile   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Schema name (required)")
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to JSON file (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if err := schemas.ValidateFile(validateSchema, validateFile); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s matches schema %s\n", validateFile, validateSchema)
	return nil
}
