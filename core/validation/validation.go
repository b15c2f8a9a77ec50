package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/siherrmann/wordarray/helper"
)

const (
	// WordPattern matches a word made of Latin or Cyrillic letters only
	WordPattern = `^[a-zA-Zа-яА-ЯёЁ]+$`
	// DelimiterPattern separates words in an input line
	DelimiterPattern = `[,\s;\-]+`
)

var (
	ErrNilArray    = errors.New("word array is nil")
	ErrEmptyArray  = errors.New("word array is empty")
	ErrInvalidWord = errors.New("invalid word")
)

var (
	wordRegex = regexp.MustCompile(WordPattern)
	// DelimiterRegex is the compiled DelimiterPattern
	DelimiterRegex = regexp.MustCompile(DelimiterPattern)
)

// validate is shared, validator.Validate is safe for concurrent use.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	mustRegisterValidation(v, "word", validateWord)
	return v
}

// mustRegisterValidation panics if the tag cannot be registered
func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

func validateWord(fl validator.FieldLevel) bool {
	return wordRegex.MatchString(fl.Field().String())
}

// IsValidWord reports whether word consists of letters only.
// Surrounding whitespace makes a word invalid.
func IsValidWord(word string) bool {
	return validate.Var(word, "required,word") == nil
}

// ValidateArray checks that words is non-nil, non-empty and that every
// trimmed word is valid. The returned error wraps one of ErrNilArray,
// ErrEmptyArray or ErrInvalidWord.
func ValidateArray(words []string) error {
	if words == nil {
		return helper.NewError("validate array", ErrNilArray)
	}
	if len(words) == 0 {
		return helper.NewError("validate array", ErrEmptyArray)
	}

	for i, word := range words {
		err := validate.Var(strings.TrimSpace(word), "required,word")
		if err != nil {
			return helper.NewError("validate array", fmt.Errorf("%w at index %d: %q", ErrInvalidWord, i, word))
		}
	}

	return nil
}

// ValidateLine reports whether line contains at least one valid word
func ValidateLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	for _, part := range DelimiterRegex.Split(line, -1) {
		if IsValidWord(strings.TrimSpace(part)) {
			return true
		}
	}
	return false
}
