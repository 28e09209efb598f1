package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logging"
	"github.com/jonathan/resume-analyzer/internal/metrics"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the scoring, matching and seniority endpoints.
Generator endpoints are enabled when a Gemini API key is configured; results
are cached in memory, fronting Redis when REDIS_URL is set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := logging.New()
	if cfg.Verbose {
		log.SetLevel(logging.ParseLevel("debug"))
	}
	m := metrics.NewManager()

	resultCache, closeCache := newCache(cmd.Context(), cfg, log)
	defer closeCache()

	opts := []server.Option{
		server.WithLogger(log),
		server.WithMetrics(m),
		server.WithCache(resultCache),
	}
	if cfg.APIKey != "" {
		client, err := newLLMClient(cmd.Context(), llm.ConfigFromEnv(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts = append(opts, server.WithAnalyzer(analysis.New(client, analysis.WithLogger(log), analysis.WithMetrics(m))))
	} else {
		log.Warn("GEMINI_API_KEY not set, generator endpoints disabled")
	}

	srv := server.New(server.Config{
		Port:        cfg.Port,
		CurrentYear: cfg.CurrentYear,
		CacheTTL:    cfg.TTL(),
	}, opts...)
	defer srv.Close()

	return srv.Start()
}
