package main

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/report"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis, offline and generated, for a resume and job",
	Long: `Builds the offline report and runs the generator's job match, suggestions and
interview questions concurrently. A generator failure leaves its section out
and is listed under upstream_errors; the offline sections are always present.`,
	RunE: runAnalyze,
}

func init() {
	addResumeFlag(analyzeCmd)
	addJobFlags(analyzeCmd)
	addOutFlag(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
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

	r := report.Build(resume, &job.Job, report.Options{CurrentYear: cfg.CurrentYear})
	runGenerators(cmd.Context(), analyzer, r, resume, job, log)
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

// runGenerators fills the generated sections of r concurrently. Failures are
// logged and recorded on r rather than aborting the others.
func runGenerators(ctx context.Context, analyzer *analysis.Analyzer, r *types.Report, resume *types.Resume, job *jobInput, log *logrus.Logger) {
	var mu sync.Mutex
	failed := func(op string, err error) {
		log.WithError(err).WithField("operation", op).Warn("generator call failed")
		mu.Lock()
		r.Upstream = append(r.Upstream, op)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		match, err := analyzer.MatchWithJob(gctx, resume, job.Description)
		if err != nil {
			failed(analysis.OpMatchJob, err)
			return nil
		}
		r.JobMatch = match
		return nil
	})
	g.Go(func() error {
		feedback, err := analyzer.GenerateSuggestions(gctx, resume, job.Description)
		if err != nil {
			failed(analysis.OpSuggestions, err)
			return nil
		}
		r.Feedback = feedback
		return nil
	})
	g.Go(func() error {
		target := analysis.InterviewTarget{JobTitle: job.Title}
		set, err := analyzer.GenerateInterviewQuestions(gctx, resume, job.Description, target)
		if err != nil {
			failed(analysis.OpInterview, err)
			return nil
		}
		r.Interview = set
		return nil
	})
	_ = g.Wait()

	// Keep the listing stable regardless of completion order.
	sort.Strings(r.Upstream)
}
