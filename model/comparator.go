package model

import (
	"bytes"
	"cmp"
	"strings"
)

// CompareFunc orders two word arrays for use with slices.SortFunc
type CompareFunc func(a, b *WordArray) int

// CompareByID orders arrays by their ID bytes
func CompareByID(a, b *WordArray) int {
	ia, ib := a.ID(), b.ID()
	return bytes.Compare(ia[:], ib[:])
}

// CompareByLength orders arrays by word count
func CompareByLength(a, b *WordArray) int {
	return cmp.Compare(a.Len(), b.Len())
}

// CompareByFirstWord orders arrays by their first word, ignoring case.
// Empty arrays come first.
func CompareByFirstWord(a, b *WordArray) int {
	return compareEdgeWord(a, b, func(words []string) string { return words[0] })
}

// CompareByLastWord orders arrays by their last word, ignoring case.
// Empty arrays come first.
func CompareByLastWord(a, b *WordArray) int {
	return compareEdgeWord(a, b, func(words []string) string { return words[len(words)-1] })
}

// CompareAlphabetically orders arrays by the first differing word, ignoring case,
// and then by word count.
func CompareAlphabetically(a, b *WordArray) int {
	wa, wb := a.Words(), b.Words()
	for i := 0; i < min(len(wa), len(wb)); i++ {
		if c := compareFold(wa[i], wb[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(wa), len(wb))
}

func compareEdgeWord(a, b *WordArray, pick func([]string) string) int {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return 0
	case a.IsEmpty():
		return -1
	case b.IsEmpty():
		return 1
	}
	return compareFold(pick(a.Words()), pick(b.Words()))
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
