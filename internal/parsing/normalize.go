// Package parsing provides text normalization and lexical comparison helpers
// shared by every scoring heuristic.
package parsing

import (
	"strings"
	"unicode"
)

// Normalize lower-cases text and removes every character that is neither a
// word character (letter, digit, underscore) nor whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if isWordRune(r) || unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Tokenize normalizes text and splits it on whitespace runs.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// stopwords are dropped by ExtractKeywords
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "up": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true, "can": true,
	"this": true, "that": true, "these": true, "those": true, "i": true, "you": true,
	"he": true, "she": true, "it": true, "we": true, "they": true,
}

const keywordTrimChars = ".,;:!?\"'"

// ExtractKeywords returns the set of lower-cased words longer than two
// characters, with surrounding punctuation stripped and stopwords removed.
func ExtractKeywords(text string) map[string]bool {
	keywords := make(map[string]bool)
	if text == "" {
		return keywords
	}

	for _, word := range strings.Fields(strings.ToLower(text)) {
		if stopwords[word] {
			continue
		}
		stripped := strings.Trim(word, keywordTrimChars)
		if len([]rune(stripped)) > 2 {
			keywords[stripped] = true
		}
	}
	return keywords
}
