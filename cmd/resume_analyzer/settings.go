package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/cache"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logging"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Input flags shared by the analysis commands
var (
	resumePath  string
	jobPath     string
	jobURL      string
	skillsList  string
	sampleIndex int
	outputPath  string
)

// newLLMClient is replaced in tests.
var newLLMClient = llm.NewClient

// l1CacheEntries bounds the in-process cache in front of Redis
const l1CacheEntries = 1000

func addResumeFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to resume JSON file")
}

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&jobPath, "job", "j", "", "Path to job description file (txt, md, pdf or docx)")
	cmd.Flags().StringVar(&jobURL, "job-url", "", "URL of a job posting to fetch")
	cmd.Flags().IntVar(&sampleIndex, "sample", -1, "Index of a built-in sample job (see sample-jobs)")
	cmd.Flags().StringVar(&skillsList, "skills", "", "Comma-separated required skills")
}

func addOutFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "out", "o", "", "Write JSON output to this file instead of stdout")
}

// loadSettings resolves the effective configuration. Explicit flags win over
// the --config file, which wins over the environment.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	fileCfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = loaded
	}
	if err := fileCfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	var cliCfg config.Config
	if flags.Changed("resume") {
		cliCfg.Resume = resumePath
	}
	if flags.Changed("job") {
		cliCfg.Job = jobPath
	}
	if flags.Changed("job-url") {
		cliCfg.JobURL = jobURL
	}
	if flags.Changed("skills") {
		cliCfg.RequiredSkills = splitList(skillsList)
	}
	if flags.Changed("api-key") {
		cliCfg.APIKey = apiKey
	}
	if flags.Changed("year") {
		cliCfg.CurrentYear = currentYear
	}
	if flags.Changed("port") {
		cliCfg.Port = servePort
	}
	cliCfg.Verbose = verbose || fileCfg.Verbose

	// A job given on the command line replaces whichever source the file named.
	if cliCfg.Job != "" || cliCfg.JobURL != "" {
		fileCfg.Job, fileCfg.JobURL = "", ""
	}

	cfg := cliCfg.MergeWithDefaults(*fileCfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// newLogger writes JSON logs to stderr: debug when verbose, otherwise
// LOG_LEVEL or warn.
func newLogger(cmd *cobra.Command, cfg config.Config) *logrus.Logger {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	if cfg.Verbose {
		level = "debug"
	}
	return logging.NewWithOutput(cmd.ErrOrStderr(), level)
}

func printer(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// newCache returns an in-process cache, fronting Redis when one is configured
// and reachable. The returned func releases the Redis connection.
func newCache(ctx context.Context, cfg config.Config, log *logrus.Logger) (cache.Cache, func()) {
	l1 := cache.NewMemoryCache(l1CacheEntries)
	if cfg.RedisURL == "" {
		return l1, func() {}
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, using in-process cache only")
		return l1, func() {}
	}
	log.WithField("redis", cfg.RedisURL).Debug("using tiered cache")
	l2 := cache.NewRedisCache(rdb)
	return cache.NewTiered(l1, l2, log), func() { _ = l2.Close() }
}

// newAnalyzer builds the generator-backed analyzer. The returned func closes
// the underlying client.
func newAnalyzer(ctx context.Context, cfg config.Config, log *logrus.Logger) (*analysis.Analyzer, func(), error) {
	client, err := newLLMClient(ctx, llm.ConfigFromEnv(), cfg.APIKey)
	if err != nil {
		if errors.Is(err, llm.ErrNoAPIKey) {
			return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
		}
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return analysis.New(client, analysis.WithLogger(log)), func() { _ = client.Close() }, nil
}

func loadResume(cfg config.Config) (*types.Resume, error) {
	if cfg.Resume == "" {
		return nil, fmt.Errorf("--resume is required (or set 'resume' in config)")
	}
	resume, err := experience.LoadResume(cfg.Resume)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	return resume, nil
}

// jobInput is a resolved job with a display title.
type jobInput struct {
	matching.Job
	Title string
}

// resolveJob builds the job from --sample, the job file or the job URL, in
// that order. Explicit required skills replace the source's list; given
// alone they make a job with no description. It returns nil when no job
// source is set.
func resolveJob(ctx context.Context, cmd *cobra.Command, cfg config.Config, log *logrus.Logger) (*jobInput, error) {
	var job *jobInput

	switch {
	case cmd.Flags().Changed("sample"):
		sample, ok := matching.SampleJob(sampleIndex)
		if !ok {
			return nil, fmt.Errorf("sample job %d not found (0-%d)", sampleIndex, len(matching.SampleJobs())-1)
		}
		job = &jobInput{Job: matching.JobFromSample(sample), Title: sample.Title}

	case cfg.Job != "":
		doc, err := ingestion.IngestFile(cfg.Job)
		if err != nil {
			return nil, fmt.Errorf("failed to read job description: %w", err)
		}
		job = &jobInput{Job: matching.Job{Description: doc.Text}, Title: firstLine(doc.Text)}

	case cfg.JobURL != "":
		c, closeCache := newCache(ctx, cfg, log)
		defer closeCache()
		doc, err := ingestion.IngestURL(ctx, fetch.NewCachedFetcher(c, nil, 0), cfg.JobURL, log)
		if err != nil {
			return nil, err
		}
		title := doc.Metadata.Title
		if title == "" {
			title = firstLine(doc.Text)
		}
		job = &jobInput{Job: matching.Job{Description: doc.Text}, Title: title}
	}

	if len(cfg.RequiredSkills) > 0 {
		if job == nil {
			job = &jobInput{}
		}
		job.RequiredSkills = cfg.RequiredSkills
	}
	return job, nil
}

// requireJob resolves the job and fails when none was given.
func requireJob(ctx context.Context, cmd *cobra.Command, cfg config.Config, log *logrus.Logger) (*jobInput, error) {
	job, err := resolveJob(ctx, cmd, cfg, log)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("a job is required: use --job, --job-url, --sample or --skills")
	}
	return job, nil
}

// requireJobDescription is requireJob for commands that need posting text.
func requireJobDescription(ctx context.Context, cmd *cobra.Command, cfg config.Config, log *logrus.Logger) (*jobInput, error) {
	job, err := requireJob(ctx, cmd, cfg, log)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(job.Description) == "" {
		return nil, fmt.Errorf("a job description is required: use --job, --job-url or --sample")
	}
	return job, nil
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// writeJSON writes v as indented JSON to --out, or to stdout when unset.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return writeOutput(cmd, append(data, '\n'))
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outputPath)
	return nil
}
