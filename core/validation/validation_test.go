package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidWord(t *testing.T) {
	tests := []struct {
		name  string
		word  string
		valid bool
	}{
		{"Latin word", "apple", true},
		{"Mixed case", "Banana", true},
		{"Cyrillic word", "яблоко", true},
		{"Cyrillic yo", "ёж", true},
		{"Empty", "", false},
		{"Digits", "abc1", false},
		{"Surrounding whitespace", " apple ", false},
		{"Punctuation", "it's", false},
		{"Hyphen", "well-known", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidWord(tt.word))
		})
	}
}

func TestValidateArray(t *testing.T) {
	t.Run("Valid array", func(t *testing.T) {
		err := ValidateArray([]string{"apple", " banana ", "кот"})
		assert.NoError(t, err, "Expected trimmed words to be valid")
	})

	t.Run("Nil array", func(t *testing.T) {
		err := ValidateArray(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNilArray)
	})

	t.Run("Empty array", func(t *testing.T) {
		err := ValidateArray([]string{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyArray)
	})

	t.Run("Blank word", func(t *testing.T) {
		err := ValidateArray([]string{"apple", "   "})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidWord)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("Word with digits", func(t *testing.T) {
		err := ValidateArray([]string{"apple2"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidWord)
		assert.Contains(t, err.Error(), "validate array")
	})
}

func TestValidateLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		valid bool
	}{
		{"Comma separated", "apple, banana, cat", true},
		{"Mixed delimiters", "apple;banana - cat\tdog", true},
		{"One valid word among garbage", "123, apple, 4x", true},
		{"Only numbers", "1, 2, 3", false},
		{"Blank", "   ", false},
		{"Empty", "", false},
		{"Only delimiters", ",;--", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateLine(tt.line))
		})
	}
}

func TestMustRegisterValidation(t *testing.T) {
	t.Run("Valid registration", func(t *testing.T) {
		v := validator.New()
		assert.NotPanics(t, func() { mustRegisterValidation(v, "word", validateWord) })
		assert.NoError(t, v.Var("apple", "word"))
	})

	t.Run("Failed registration panics", func(t *testing.T) {
		assert.Panics(t, func() { mustRegisterValidation(validator.New(), "", validateWord) }, "Expected an empty tag to panic")
		assert.Panics(t, func() { mustRegisterValidation(validator.New(), "word", nil) }, "Expected a nil function to panic")
	})
}
