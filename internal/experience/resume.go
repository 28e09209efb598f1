package experience

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// LoadResume reads a resume record from a JSON file and normalizes it.
func LoadResume(path string) (*types.Resume, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return DecodeResume(content)
}

// DecodeResume parses a JSON resume record. Unknown keys are ignored and
// missing lists become empty, so partial records still score.
func DecodeResume(content []byte) (*types.Resume, error) {
	var resume types.Resume
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := NormalizeResume(&resume); err != nil {
		return nil, err
	}
	return &resume, nil
}
