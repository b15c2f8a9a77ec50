package model

import (
	"fmt"
	"unicode/utf8"
)

// Statistics summarizes the word lengths of a word array.
// Lengths are counted in characters (runes), not bytes.
type Statistics struct {
	AverageLength   float64 `json:"average_length"`
	TotalCharacters int     `json:"total_characters"`
	MaxLength       int     `json:"max_length"`
	MinLength       int     `json:"min_length"`
	WordCount       int     `json:"word_count"`
}

// NewStatistics computes the statistics for words.
// All fields are zero for an empty slice.
func NewStatistics(words []string) Statistics {
	if len(words) == 0 {
		return Statistics{}
	}

	stats := Statistics{
		WordCount: len(words),
		MinLength: utf8.RuneCountInString(words[0]),
	}
	for _, w := range words {
		length := utf8.RuneCountInString(w)
		stats.TotalCharacters += length
		stats.MaxLength = max(stats.MaxLength, length)
		stats.MinLength = min(stats.MinLength, length)
	}
	stats.AverageLength = float64(stats.TotalCharacters) / float64(stats.WordCount)

	return stats
}

func (s Statistics) String() string {
	return fmt.Sprintf("Statistics[avg=%g, sum=%d, max=%d, min=%d, count=%d]",
		s.AverageLength, s.TotalCharacters, s.MaxLength, s.MinLength, s.WordCount)
}
