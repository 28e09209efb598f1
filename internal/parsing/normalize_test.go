package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"lowercases", "Go Developer", "go developer"},
		{"strips punctuation", "Led a team, improved throughput by 20%!", "led a team improved throughput by 20"},
		{"keeps underscore and digits", "snake_case v2", "snake_case v2"},
		{"keeps whitespace runs", "a  \tb\nc", "a  \tb\nc"},
		{"strips symbols inside words", "C++/C#", "cc"},
		{"unicode letters kept", "Café Ünïcode", "café ünïcode"},
		{"only punctuation", "!!! ...", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello, World!",
		"Developed 3 APIs (REST/gRPC) — 40% faster",
		"  MIXED case_with_underscores 123 ",
		"e-mail: jane.doe@example.com",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"led", "a", "team"}, Tokenize("  Led a   team. "))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("?!"))
}

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords("The engineer designed and built scalable APIs, with Go.")

	assert.True(t, keywords["engineer"])
	assert.True(t, keywords["designed"])
	assert.True(t, keywords["built"])
	assert.True(t, keywords["scalable"])
	assert.True(t, keywords["apis"])
	assert.False(t, keywords["the"], "stopword")
	assert.False(t, keywords["and"], "stopword")
	assert.False(t, keywords["with"], "stopword")
	assert.False(t, keywords["go"], "too short")
}

func TestExtractKeywords_Empty(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
}
