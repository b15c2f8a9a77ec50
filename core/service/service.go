package service

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/siherrmann/wordarray/core/validation"
	"github.com/siherrmann/wordarray/helper"
	"github.com/siherrmann/wordarray/model"
)

// Service answers questions about the words of a single array and builds
// transformed copies. It never touches a repository.
//
// Word lengths are counted in runes. Letter and alphabetical comparisons
// ignore case. Where several words qualify, the first one in array order wins.
type Service struct {
	log *slog.Logger
}

// NewService creates a service. Logger may be nil.
func NewService(logger *slog.Logger) *Service {
	return &Service{
		log: helper.LoggerOrDiscard(logger).With(slog.String("component", "service")),
	}
}

// ShortestWord returns the first word with the fewest characters, "" for an empty array
func (s *Service) ShortestWord(array *model.WordArray) string {
	result := s.pick(array, func(candidate, best string) bool {
		return utf8.RuneCountInString(candidate) < utf8.RuneCountInString(best)
	})
	s.log.Debug("Shortest word found", slog.String("array_id", array.ID().String()), slog.String("word", result))
	return result
}

// LongestWord returns the first word with the most characters, "" for an empty array
func (s *Service) LongestWord(array *model.WordArray) string {
	result := s.pick(array, func(candidate, best string) bool {
		return utf8.RuneCountInString(candidate) > utf8.RuneCountInString(best)
	})
	s.log.Debug("Longest word found", slog.String("array_id", array.ID().String()), slog.String("word", result))
	return result
}

// FirstAlphabetically returns the alphabetically smallest word, "" for an empty array
func (s *Service) FirstAlphabetically(array *model.WordArray) string {
	result := s.pick(array, func(candidate, best string) bool {
		return compareFold(candidate, best) < 0
	})
	s.log.Debug("First word alphabetically", slog.String("array_id", array.ID().String()), slog.String("word", result))
	return result
}

// LastAlphabetically returns the alphabetically greatest word, "" for an empty array
func (s *Service) LastAlphabetically(array *model.WordArray) string {
	result := s.pick(array, func(candidate, best string) bool {
		return compareFold(candidate, best) > 0
	})
	s.log.Debug("Last word alphabetically", slog.String("array_id", array.ID().String()), slog.String("word", result))
	return result
}

// AverageLength returns the mean word length, 0 for an empty array
func (s *Service) AverageLength(array *model.WordArray) float64 {
	return model.NewStatistics(array.Words()).AverageLength
}

// TotalCharacters returns the sum of all word lengths
func (s *Service) TotalCharacters(array *model.WordArray) int {
	return model.NewStatistics(array.Words()).TotalCharacters
}

// CountLongerThan counts the words with more than length characters
func (s *Service) CountLongerThan(array *model.WordArray, length int) int {
	count := len(s.WordsLongerThan(array, length))
	s.log.Debug("Counted words longer than", slog.Int("length", length), slog.Int("count", count))
	return count
}

// CountShorterThan counts the words with fewer than length characters
func (s *Service) CountShorterThan(array *model.WordArray, length int) int {
	count := s.count(array, func(word string) bool {
		return utf8.RuneCountInString(word) < length
	})
	s.log.Debug("Counted words shorter than", slog.Int("length", length), slog.Int("count", count))
	return count
}

// CountStartingWith counts the words whose first letter is letter
func (s *Service) CountStartingWith(array *model.WordArray, letter rune) int {
	count := s.count(array, func(word string) bool {
		r, _ := utf8.DecodeRuneInString(word)
		return word != "" && unicode.ToLower(r) == unicode.ToLower(letter)
	})
	s.log.Debug("Counted words starting with", slog.String("letter", string(letter)), slog.Int("count", count))
	return count
}

// CountEndingWith counts the words whose last letter is letter
func (s *Service) CountEndingWith(array *model.WordArray, letter rune) int {
	count := s.count(array, func(word string) bool {
		r, _ := utf8.DecodeLastRuneInString(word)
		return word != "" && unicode.ToLower(r) == unicode.ToLower(letter)
	})
	s.log.Debug("Counted words ending with", slog.String("letter", string(letter)), slog.Int("count", count))
	return count
}

// WordsLongerThan returns the words with more than length characters in array order
func (s *Service) WordsLongerThan(array *model.WordArray, length int) []string {
	return s.filter(array, func(word string) bool {
		return utf8.RuneCountInString(word) > length
	})
}

// WordsContaining returns the words containing substring, ignoring case
func (s *Service) WordsContaining(array *model.WordArray, substring string) []string {
	substring = strings.ToLower(substring)
	return s.filter(array, func(word string) bool {
		return strings.Contains(strings.ToLower(word), substring)
	})
}

// UniqueWords returns the words without repetitions, keeping first occurrences in order
func (s *Service) UniqueWords(array *model.WordArray) []string {
	seen := make(map[string]struct{}, array.Len())
	return s.filter(array, func(word string) bool {
		if _, ok := seen[word]; ok {
			return false
		}
		seen[word] = struct{}{}
		return true
	})
}

// ReplaceWords returns a new array where every word equal to oldWord is
// replaced by newWord. The result is validated and gets a fresh ID, it is
// not added to any repository.
func (s *Service) ReplaceWords(array *model.WordArray, oldWord string, newWord string) (*model.WordArray, error) {
	s.log.Debug("Replacing words", slog.String("array_id", array.ID().String()), slog.String("old", oldWord), slog.String("new", newWord))
	return s.replace(array, "replace words", newWord, func(word string) bool {
		return word == oldWord
	})
}

// ReplaceWordsByLength returns a new array where every word with exactly
// length characters is replaced by newWord. Like ReplaceWords, the result
// is validated and not stored.
func (s *Service) ReplaceWordsByLength(array *model.WordArray, length int, newWord string) (*model.WordArray, error) {
	s.log.Debug("Replacing words by length", slog.String("array_id", array.ID().String()), slog.Int("length", length), slog.String("new", newWord))
	return s.replace(array, "replace words by length", newWord, func(word string) bool {
		return utf8.RuneCountInString(word) == length
	})
}

func (s *Service) replace(array *model.WordArray, operation string, newWord string, match func(string) bool) (*model.WordArray, error) {
	words := array.Words()
	for i, word := range words {
		if match(word) {
			words[i] = newWord
		}
	}

	err := validation.ValidateArray(words)
	if err != nil {
		s.log.Debug("Replacement rejected", slog.String("operation", operation), slog.Any("error", err))
		return nil, helper.NewError(operation, err)
	}

	replaced := model.NewWordArray(words)
	s.log.Debug("Words replaced", slog.String("operation", operation), slog.String("result", replaced.String()))
	return replaced, nil
}

// pick returns the first word for which better reports true against every
// earlier choice
func (s *Service) pick(array *model.WordArray, better func(candidate, best string) bool) string {
	words := array.Words()
	if len(words) == 0 {
		return ""
	}
	best := words[0]
	for _, word := range words[1:] {
		if better(word, best) {
			best = word
		}
	}
	return best
}

func (s *Service) count(array *model.WordArray, match func(string) bool) int {
	return len(s.filter(array, match))
}

func (s *Service) filter(array *model.WordArray, match func(string) bool) []string {
	out := []string{}
	for _, word := range array.Words() {
		if match(word) {
			out = append(out, word)
		}
	}
	return out
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
