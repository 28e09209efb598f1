package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// GenerateRequest is the body of /match and /suggestions
type GenerateRequest struct {
	Resume         *types.Resume `json:"resume" validate:"required"`
	JobDescription string        `json:"job_description" validate:"required"`
}

func (r *GenerateRequest) resumeRecord() *types.Resume { return r.Resume }

// InterviewRequest is the body of /interview
type InterviewRequest struct {
	Resume         *types.Resume `json:"resume" validate:"required"`
	JobDescription string        `json:"job_description" validate:"required"`
	JobTitle       string        `json:"job_title,omitempty"`
	Company        string        `json:"company,omitempty"`
}

func (r *InterviewRequest) resumeRecord() *types.Resume { return r.Resume }

// ParseResponse is the response of /resumes/parse
type ParseResponse struct {
	Resume   *types.Resume       `json:"resume"`
	Metadata *ingestion.Metadata `json:"metadata"`
}

// requireAnalyzer writes 503 and returns false when no generator is configured.
func (s *Server) requireAnalyzer(w http.ResponseWriter, r *http.Request) bool {
	if s.analyzer == nil {
		s.errorResponse(w, r, ErrGeneratorDisabled)
		return false
	}
	return true
}

// handleParseResume extracts text from an uploaded document and structures it
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if !s.requireAnalyzer(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, r, err)
			return
		}
		s.errorResponse(w, r, &ErrValidation{Field: "file", Message: "multipart field 'file' is required"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	doc, err := ingestion.IngestBytes(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	resume, err := s.analyzer.ParseResume(r.Context(), doc.Text)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ParseResponse{Resume: resume, Metadata: doc.Metadata})
}

// handleMatch asks the generator for a job fit assessment
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if !s.requireAnalyzer(w, r) {
		return
	}
	var req GenerateRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	match, err := s.analyzer.MatchWithJob(r.Context(), req.Resume, req.JobDescription)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.metrics.ObserveScore("generated_match", match.MatchPercentage)
	s.jsonResponse(w, http.StatusOK, match)
}

// handleSuggestions asks the generator for rewrite suggestions
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if !s.requireAnalyzer(w, r) {
		return
	}
	var req GenerateRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	feedback, err := s.analyzer.GenerateSuggestions(r.Context(), req.Resume, req.JobDescription)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, feedback)
}

// handleInterview asks the generator for interview questions
func (s *Server) handleInterview(w http.ResponseWriter, r *http.Request) {
	if !s.requireAnalyzer(w, r) {
		return
	}
	var req InterviewRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	set, err := s.analyzer.GenerateInterviewQuestions(r.Context(), req.Resume, req.JobDescription, analysis.InterviewTarget{
		JobTitle: req.JobTitle,
		Company:  req.Company,
	})
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, set)
}
