package rendering

import "fmt"

// TemplateError represents an error parsing or executing a text template
type TemplateError struct {
	Name    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s: %s", e.Name, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
