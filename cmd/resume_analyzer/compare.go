package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/rendering"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var compareCmd = &cobra.Command{
	Use:   "compare RESUME.json [RESUME.json...]",
	Short: "Rank several resumes against one job",
	Long:  "Runs the offline match for each resume against the same job and prints a table ordered by estimated match.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompare,
}

// maxConcurrentCompares bounds resume loading and scoring
const maxConcurrentCompares = 4

func init() {
	addJobFlags(compareCmd)
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	job, err := requireJob(cmd.Context(), cmd, cfg, log)
	if err != nil {
		return err
	}

	rows := make([]rendering.ComparisonRow, len(args))
	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentCompares)
	for i, path := range args {
		g.Go(func() error {
			resume, err := experience.LoadResume(path)
			if err != nil {
				return fmt.Errorf("failed to load resume %s: %w", path, err)
			}
			ats := scoring.CalculateATSScore(resume.ScoringText(), resume)
			match := matching.Lexical(resume, job.Job, ats.ATSScore)
			rows[i] = rendering.ComparisonRow{
				Name:       displayName(resume, path),
				MatchScore: match.EstimatedMatch,
				SkillMatch: match.SkillMatch.MatchPercentage,
				Summary:    match.Band,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].MatchScore > rows[b].MatchScore
	})
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), rendering.ComparisonTable(rows))
	return nil
}

// displayName is the resume's name, or its file name without extension.
func displayName(resume *types.Resume, path string) string {
	if name := strings.TrimSpace(types.Str(resume.Name)); name != "" {
		return name
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
