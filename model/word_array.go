package model

import (
	"encoding/json"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// WordArray is an immutable, identified sequence of words.
// The zero value has a nil ID and is ignored by the repository.
type WordArray struct {
	id    uuid.UUID
	words []string
}

// NewWordArray creates a word array with a fresh random ID.
// The words are copied; a nil slice results in an empty array.
func NewWordArray(words []string) *WordArray {
	copied := make([]string, len(words))
	copy(copied, words)
	return &WordArray{
		id:    uuid.New(),
		words: copied,
	}
}

// ID returns the identity of the array, uuid.Nil for a nil array
func (a *WordArray) ID() uuid.UUID {
	if a == nil {
		return uuid.Nil
	}
	return a.id
}

// Words returns a copy of the words
func (a *WordArray) Words() []string {
	if a == nil {
		return []string{}
	}
	copied := make([]string, len(a.words))
	copy(copied, a.words)
	return copied
}

// Len returns the number of words
func (a *WordArray) Len() int {
	if a == nil {
		return 0
	}
	return len(a.words)
}

// IsEmpty reports whether the array holds no words
func (a *WordArray) IsEmpty() bool {
	return a.Len() == 0
}

// Equal reports whether both arrays share the same ID and the same words in the same order.
// Matching IDs alone are not enough.
func (a *WordArray) Equal(other *WordArray) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	if a.id != other.id || len(a.words) != len(other.words) {
		return false
	}
	for i := range a.words {
		if a.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal
func (a *WordArray) Hash() uint64 {
	if a == nil {
		return 0
	}
	h := xxhash.New()
	_, _ = h.Write(a.id[:])
	for _, w := range a.words {
		_, _ = h.WriteString(w)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

func (a *WordArray) String() string {
	if a == nil {
		return "WordArray{nil}"
	}
	var sb strings.Builder
	sb.WriteString("WordArray{id=")
	sb.WriteString(a.id.String())
	sb.WriteString(", words=[")
	sb.WriteString(strings.Join(a.words, ", "))
	sb.WriteString("]}")
	return sb.String()
}

// MarshalJSON renders the array as {"id": ..., "words": [...]}
func (a *WordArray) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    uuid.UUID `json:"id"`
		Words []string  `json:"words"`
	}{
		ID:    a.ID(),
		Words: a.Words(),
	})
}
