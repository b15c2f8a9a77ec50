package parser

import (
	"strings"

	"github.com/siherrmann/wordarray/core/validation"
)

// ParseLine splits line on validation.DelimiterRegex and returns the
// trimmed parts that are valid words, in order. A blank line gives an empty
// slice.
func ParseLine(line string) []string {
	words := []string{}
	if strings.TrimSpace(line) == "" {
		return words
	}

	for _, part := range validation.DelimiterRegex.Split(line, -1) {
		part = strings.TrimSpace(part)
		if part != "" && validation.IsValidWord(part) {
			words = append(words, part)
		}
	}
	return words
}
