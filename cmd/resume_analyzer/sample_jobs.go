package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var sampleJobsCmd = &cobra.Command{
	Use:   "sample-jobs",
	Short: "List the built-in sample job postings",
	Long:  "Lists the built-in job postings with the index to pass to --sample.",
	Args:  cobra.NoArgs,
	RunE:  runSampleJobs,
}

func init() {
	addOutFlag(sampleJobsCmd)
	rootCmd.AddCommand(sampleJobsCmd)
}

type indexedSampleJob struct {
	Index int `json:"index"`
	types.SampleJob
}

func runSampleJobs(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	samples := matching.SampleJobs()
	jobs := make([]indexedSampleJob, 0, len(samples))
	for i, s := range samples {
		jobs = append(jobs, indexedSampleJob{Index: i, SampleJob: s})
		if cfg.Verbose {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "[%d] %s at %s\n", i, s.Title, s.Company)
		}
	}
	return writeJSON(cmd, jobs)
}
