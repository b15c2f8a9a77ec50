package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"Comma separated", "apple, banana, cat", []string{"apple", "banana", "cat"}},
		{"Mixed delimiters", " apple;banana - cat\tdog ", []string{"apple", "banana", "cat", "dog"}},
		{"Invalid parts are dropped", "apple, 42, b4d, кот", []string{"apple", "кот"}},
		{"Leading delimiter", ", apple", []string{"apple"}},
		{"Blank line", "   ", []string{}},
		{"No valid words", "1 2 3", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := ParseLine(tt.line)
			assert.NotNil(t, words, "Expected a non-nil slice")
			assert.Equal(t, tt.expected, words)
		})
	}
}
