package schemas

import (
	"os"
	"path/filepath"
	"testing"

	rootschemas "github.com/jonathan/resume-analyzer/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "age"],
  "properties": {
    "name": {"type": "string"},
    "age": {"type": "integer"}
  }
}`

func TestValidateJSONString(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"valid", `{"name": "Ada", "age": 36}`, false},
		{"missing field", `{"name": "Ada"}`, true},
		{"wrong type", `{"name": "Ada", "age": "old"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(personSchema, tt.doc)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type")
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok)
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("does_not_exist", `{}`)
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "does_not_exist", loadErr.Name)
}

func TestValidateDocument_NotJSON(t *testing.T) {
	err := ValidateDocument(rootschemas.Resume, `{not json`)
	require.Error(t, err)
	_, isValidation := err.(*ValidationError)
	assert.False(t, isValidation)
}

func TestValidateDocument_ErrorNamesSchema(t *testing.T) {
	err := ValidateDocument(rootschemas.JobMatch, `{}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job_match validation failed")
	assert.Contains(t, err.Error(), "match_percentage")
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "match.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"match_percentage": 70}`), 0o644))

	assert.NoError(t, ValidateFile(rootschemas.JobMatch, path))

	err := ValidateFile(rootschemas.JobMatch, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
