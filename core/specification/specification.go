package specification

import (
	"github.com/google/uuid"
	"github.com/siherrmann/wordarray/model"
)

// Specification is a side-effect free predicate over a word array
type Specification func(array *model.WordArray) bool

// StatisticsReader gives read access to cached statistics.
// The warehouse implements it.
type StatisticsReader interface {
	Statistics(id uuid.UUID) (model.Statistics, bool)
}

// Specified evaluates the specification. A nil specification or a nil
// array never matches.
func (s Specification) Specified(array *model.WordArray) bool {
	if s == nil || array == nil {
		return false
	}
	return s(array)
}

// ByID matches the array with the given ID
func ByID(id uuid.UUID) Specification {
	return func(array *model.WordArray) bool {
		return array.ID() == id
	}
}

// ByWordCount matches arrays holding exactly count words
func ByWordCount(count int) Specification {
	return func(array *model.WordArray) bool {
		return array.Len() == count
	}
}

// Empty matches arrays without words
func Empty() Specification {
	return func(array *model.WordArray) bool {
		return array.IsEmpty()
	}
}

// ByMaxLength matches arrays whose cached maximum word length equals length.
// Arrays without a cached record never match, so results depend on the
// reader having seen the array's ADD event.
func ByMaxLength(reader StatisticsReader, length int) Specification {
	return byCachedStatistics(reader, func(stats model.Statistics) bool {
		return stats.MaxLength == length
	})
}

// ByMinLength matches arrays whose cached minimum word length equals length.
// Like ByMaxLength it relies on the cache.
func ByMinLength(reader StatisticsReader, length int) Specification {
	return byCachedStatistics(reader, func(stats model.Statistics) bool {
		return stats.MinLength == length
	})
}

func byCachedStatistics(reader StatisticsReader, match func(model.Statistics) bool) Specification {
	return func(array *model.WordArray) bool {
		if reader == nil {
			return false
		}
		stats, ok := reader.Statistics(array.ID())
		return ok && match(stats)
	}
}

// And matches when every specification matches.
// It matches everything when called without specifications.
func And(specs ...Specification) Specification {
	return func(array *model.WordArray) bool {
		for _, s := range specs {
			if !s.Specified(array) {
				return false
			}
		}
		return true
	}
}

// Or matches when at least one specification matches
func Or(specs ...Specification) Specification {
	return func(array *model.WordArray) bool {
		for _, s := range specs {
			if s.Specified(array) {
				return true
			}
		}
		return false
	}
}

// Not inverts a specification
func Not(spec Specification) Specification {
	return func(array *model.WordArray) bool {
		return !spec.Specified(array)
	}
}
