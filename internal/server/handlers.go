package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-analyzer/internal/cache"
	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/report"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/sirupsen/logrus"
)

// resumeCarrier is implemented by every request that embeds a resume.
type resumeCarrier interface {
	resumeRecord() *types.Resume
}

// ResumeRequest is the body of /ats-score
type ResumeRequest struct {
	Resume *types.Resume `json:"resume" validate:"required"`
}

func (r *ResumeRequest) resumeRecord() *types.Resume { return r.Resume }

// JobRequest is the body of /match/lexical and /report. A job is given by
// description and/or required skills, or by a built-in sample index.
type JobRequest struct {
	Resume         *types.Resume `json:"resume" validate:"required"`
	JobDescription string        `json:"job_description,omitempty"`
	RequiredSkills []string      `json:"required_skills,omitempty"`
	Sample         *int          `json:"sample,omitempty"`
	CurrentYear    int           `json:"current_year,omitempty" validate:"omitempty,min=1900,max=2200"`
}

func (r *JobRequest) resumeRecord() *types.Resume { return r.Resume }

// hasJob reports whether any job input was supplied.
func (r *JobRequest) hasJob() bool {
	return r.Sample != nil || strings.TrimSpace(r.JobDescription) != "" || len(r.RequiredSkills) > 0
}

// job resolves the request's job input.
func (r *JobRequest) job() (matching.Job, error) {
	if r.Sample != nil {
		sample, ok := matching.SampleJob(*r.Sample)
		if !ok {
			return matching.Job{}, &ErrValidation{Field: "sample", Message: fmt.Sprintf("unknown sample job %d", *r.Sample)}
		}
		return matching.JobFromSample(sample), nil
	}
	if !r.hasJob() {
		return matching.Job{}, &ErrValidation{Field: "job_description", Message: "job_description, required_skills or sample is required"}
	}
	return matching.Job{Description: r.JobDescription, RequiredSkills: r.RequiredSkills}, nil
}

// SeniorityRequest is the body of /seniority
type SeniorityRequest struct {
	Resume      *types.Resume `json:"resume" validate:"required"`
	CurrentYear int           `json:"current_year,omitempty" validate:"omitempty,min=1900,max=2200"`
}

func (r *SeniorityRequest) resumeRecord() *types.Resume { return r.Resume }

// decodeRequest reads a JSON body into req, normalizes the embedded resume and
// validates the result.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, req resumeCarrier) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return &ErrValidation{Field: "body", Message: "request body is empty"}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}

	if resume := req.resumeRecord(); resume != nil {
		if err := experience.NormalizeResume(resume); err != nil {
			return &ErrValidation{Field: "resume", Message: err.Error()}
		}
	}

	if err := s.validate.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

// validationError reports the first failed field of a validator error.
func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return &ErrValidation{Field: strings.ToLower(fe.Field()), Message: fe.Tag()}
	}
	return &ErrValidation{Field: "body", Message: "invalid request"}
}

// cached returns the cached value for key or computes and stores it. Cache
// failures are logged and never fail the request.
func cached[T any](ctx context.Context, s *Server, key string, compute func() T) T {
	var value T
	hit, err := s.cache.GetJSON(ctx, key, &value)
	if err != nil {
		s.logger.WithError(err).WithField("request_id", middleware.GetRequestID(ctx)).Warn("cache read failed")
	}
	s.metrics.RecordCacheLookup(hit)
	if hit {
		return value
	}

	value = compute()
	if err := s.cache.SetJSON(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.WithError(err).WithField("request_id", middleware.GetRequestID(ctx)).Warn("cache write failed")
	}
	return value
}

// resumeKey is the canonical JSON form of a normalized resume.
func resumeKey(resume *types.Resume) string {
	data, err := json.Marshal(resume)
	if err != nil {
		return ""
	}
	return string(data)
}

// lexicalKey encodes the skills list as JSON so skill boundaries survive.
func lexicalKey(resumeJSON string, job matching.Job) string {
	skills, _ := json.Marshal(job.RequiredSkills)
	return cache.Key("lexical", resumeJSON, job.Description, string(skills))
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"generator": s.analyzer != nil,
	})
}

// handleSampleJobs lists the built-in job postings
func (s *Server) handleSampleJobs(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": matching.SampleJobs()})
}

// handleATSScore scores a resume without a job
func (s *Server) handleATSScore(w http.ResponseWriter, r *http.Request) {
	var req ResumeRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	start := time.Now()
	key := cache.Key("ats", resumeKey(req.Resume))
	score := cached(r.Context(), s, key, func() types.ATSScore {
		return scoring.CalculateATSScore(req.Resume.ScoringText(), req.Resume)
	})
	s.metrics.RecordScoring("ats", time.Since(start))
	s.metrics.ObserveScore("ats", score.ATSScore)

	s.jsonResponse(w, http.StatusOK, score)
}

// handleLexicalMatch runs the deterministic job match
func (s *Server) handleLexicalMatch(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	job, err := req.job()
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	start := time.Now()
	resumeJSON := resumeKey(req.Resume)
	key := lexicalKey(resumeJSON, job)
	match := cached(r.Context(), s, key, func() types.LexicalMatch {
		ats := scoring.CalculateATSScore(req.Resume.ScoringText(), req.Resume)
		return matching.Lexical(req.Resume, job, ats.ATSScore)
	})
	s.metrics.RecordScoring("lexical_match", time.Since(start))
	s.metrics.ObserveScore("match", match.EstimatedMatch)

	s.jsonResponse(w, http.StatusOK, match)
}

// handleSeniority estimates tenure and seniority
func (s *Server) handleSeniority(w http.ResponseWriter, r *http.Request) {
	var req SeniorityRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	start := time.Now()
	result := experience.Report(req.Resume, experience.CurrentYear(s.year(req.CurrentYear)))
	s.metrics.RecordScoring("seniority", time.Since(start))

	s.jsonResponse(w, http.StatusOK, result)
}

// handleReport builds the full offline report, with a job when one is given
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	var job *matching.Job
	if req.hasJob() {
		j, err := req.job()
		if err != nil {
			s.errorResponse(w, r, err)
			return
		}
		job = &j
	}

	start := time.Now()
	result := report.Build(req.Resume, job, report.Options{CurrentYear: s.year(req.CurrentYear)})
	s.metrics.RecordScoring("report", time.Since(start))
	s.metrics.ObserveScore("ats", result.ATS.ATSScore)

	if err := report.Validate(result); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(r.Context()),
			"report_id":  result.ID,
		}).Error("report failed schema validation")
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// year picks the request year, then the configured year; 0 means the clock.
func (s *Server) year(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.currentYear
}
