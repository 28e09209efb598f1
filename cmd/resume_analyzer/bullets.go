package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/rewriting"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var bulletsCmd = &cobra.Command{
	Use:   "bullets",
	Short: "Review experience bullets offline",
	Long: `Reviews each experience bullet for a strong opening verb, quantified results
and wordy phrasing, and proposes offline rewrites. Reads the bullets from
--resume, or reviews a single --text bullet.`,
	RunE: runBullets,
}

var bulletText string

func init() {
	addResumeFlag(bulletsCmd)
	addOutFlag(bulletsCmd)
	bulletsCmd.Flags().StringVar(&bulletText, "text", "", "Review a single bullet instead of a resume")
	rootCmd.AddCommand(bulletsCmd)
}

// bulletsResult is the output of the bullets command
type bulletsResult struct {
	Reviews      []rewriting.BulletReview `json:"reviews"`
	Improvements []types.ResumeSuggestion `json:"improvements"`
}

func runBullets(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var bullets []string
	if bulletText != "" {
		bullets = []string{bulletText}
	} else {
		resume, err := loadResume(cfg)
		if err != nil {
			return fmt.Errorf("%w; or pass --text", err)
		}
		bullets = rewriting.ExperienceBullets(resume)
	}

	result := bulletsResult{
		Reviews:      make([]rewriting.BulletReview, 0, len(bullets)),
		Improvements: rewriting.BulletImprovements(bullets),
	}
	for _, b := range bullets {
		result.Reviews = append(result.Reviews, rewriting.Review(b))
	}

	if cfg.Verbose {
		printer(cmd).PrintBulletReviews(result.Reviews)
	}
	return writeJSON(cmd, result)
}
