//go:build !solution

// Package patternfinder counts the fixed-length substrings of a string.
package patternfinder

import (
	"errors"
	"unicode/utf8"

	"gitlab.com/slon/patternfinder/freqtable"
)

// ErrInvalidArgument matches every validation failure of CountPatterns.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes why the input was rejected.
// Error returns the reason as is, so it can be shown to the user directly.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Reason
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Reasons reported by ArgumentError.
const (
	ReasonEmptyInput     = "The input string must contain at least one symbol"
	ReasonNonPositiveLen = "The pattern length must be more than zero"
	ReasonPatternTooLong = "The input string length must be more than the pattern length"
)

// CountPatterns finds every substring of patternLength characters in input
// and counts how many times each one occurs. Overlapping occurrences are
// counted separately.
//
// Length is measured in runes. The keys of the returned table are slices of
// input and are ordered by first occurrence.
func CountPatterns(input string, patternLength int) (*freqtable.Table[string], error) {
	if input == "" {
		return nil, &ArgumentError{Reason: ReasonEmptyInput}
	}
	if patternLength <= 0 {
		return nil, &ArgumentError{Reason: ReasonNonPositiveLen}
	}

	// offsets[i] is the byte offset of the i-th rune, offsets[n] == len(input).
	offsets := runeOffsets(input)
	n := len(offsets) - 1
	if n < patternLength {
		return nil, &ArgumentError{Reason: ReasonPatternTooLong}
	}

	windows := n - patternLength + 1
	patterns := freqtable.NewWithCapacity[string](windows)
	for i := 0; i < windows; i++ {
		patterns.Inc(input[offsets[i]:offsets[i+patternLength]])
	}

	return patterns, nil
}

func runeOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
