// Package analysis drives the language-model collaborator: it renders the
// prompt, asks for JSON, validates the reply against an embedded schema and
// decodes it into the shared types. Any failure yields an *UpstreamError.
package analysis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logging"
	"github.com/jonathan/resume-analyzer/internal/metrics"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/sirupsen/logrus"
)

// Operation names, used in errors, logs and metrics
const (
	OpParseResume = "parse_resume"
	OpMatchJob    = "match_job"
	OpSuggestions = "suggestions"
	OpInterview   = "interview"
)

// Analyzer runs generator-backed operations against one llm.Client.
type Analyzer struct {
	client  llm.Client
	logger  *logrus.Logger
	metrics *metrics.Manager
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger used for upstream failures.
func WithLogger(logger *logrus.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithMetrics records upstream call outcomes on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(a *Analyzer) {
		a.metrics = m
	}
}

// New creates an Analyzer. The client is not closed by the Analyzer.
func New(client llm.Client, opts ...Option) *Analyzer {
	a := &Analyzer{
		client: client,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// generate performs one prompt round trip and decodes the validated reply into T.
func generate[T any](ctx context.Context, a *Analyzer, op, schemaName, prompt string, tier llm.ModelTier) (*T, error) {
	start := time.Now()
	raw, err := a.client.GenerateJSON(ctx, prompt, tier)
	if a.metrics != nil {
		a.metrics.RecordUpstreamCall(op, err)
	}
	if err != nil {
		return nil, a.fail(op, StageGenerate, err)
	}

	raw = llm.CleanJSONBlock(raw)
	if err := schemas.ValidateDocument(schemaName, raw); err != nil {
		return nil, a.fail(op, StageValidate, err)
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, a.fail(op, StageDecode, err)
	}

	a.logger.WithFields(logrus.Fields{
		"operation":  op,
		"model":      a.client.GetModel(tier),
		"latency_ms": time.Since(start).Milliseconds(),
	}).Debug("generator call succeeded")
	return &out, nil
}

func (a *Analyzer) fail(op, stage string, cause error) error {
	a.logger.WithFields(logrus.Fields{
		"operation": op,
		"stage":     stage,
	}).WithError(cause).Warn("generator call failed")
	return &UpstreamError{Operation: op, Stage: stage, Cause: cause}
}
