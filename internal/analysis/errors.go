package analysis

import (
	"errors"
	"fmt"
)

// ErrUpstreamUnavailable marks every failure of the language-model collaborator.
// Callers surface it as "no result" and never substitute a value.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ErrEmptyInput is returned before any upstream call when there is nothing to analyze.
var ErrEmptyInput = errors.New("input is empty")

// Failure stages
const (
	StageGenerate  = "generate"
	StageValidate  = "validate"
	StageDecode    = "decode"
	StageNormalize = "normalize"
	StagePrompt    = "prompt"
)

// UpstreamError describes where a generator-backed operation failed.
type UpstreamError struct {
	Operation string
	Stage     string
	Cause     error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed at %s: %v", e.Operation, e.Stage, e.Cause)
	}
	return fmt.Sprintf("%s failed at %s", e.Operation, e.Stage)
}

// Unwrap exposes both ErrUpstreamUnavailable and the underlying cause.
func (e *UpstreamError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUpstreamUnavailable}
	}
	return []error{ErrUpstreamUnavailable, e.Cause}
}
