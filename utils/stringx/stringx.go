// File: stringx.go
// Title: Core String Utility Functions
// Description: Byte-oriented string primitives: wrap-around indexing,
//              ASCII case mapping, prefix and suffix tests, counting and
//              cutting around separators. All functions are pure and safe
//              for concurrent use.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Wrap-around indexing, ASCII case, left/right of

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if !IsBlank(s) {
			return s
		}
	}
	return ""
}

// SplitLines splits a string into lines, accepting \n, \r\n and \r endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return strings.Split(s, "\n")
}

// wrap maps any position onto [0, size). Negative positions count from
// the end: -1 is the last byte.
func wrap(pos, size int) int {
	if pos >= 0 {
		return pos % size
	}
	return size - 1 + (pos+1)%size
}

// At returns the byte at pos with wrap-around: At("hello", 5) is 'h',
// At("hello", -1) is 'o'. An empty string yields 0.
func At(s string, pos int) byte {
	if len(s) == 0 {
		return 0
	}
	return s[wrap(pos, len(s))]
}

// Front returns the first byte of s, or 0 if s is empty.
func Front(s string) byte {
	return At(s, 0)
}

// Back returns the last byte of s, or 0 if s is empty.
func Back(s string) byte {
	return At(s, -1)
}

// PopBack returns s without its last byte.
func PopBack(s string) string {
	if len(s) == 0 {
		return s
	}
	return s[:len(s)-1]
}

// PopFront returns s without its first byte.
func PopFront(s string) string {
	if len(s) == 0 {
		return s
	}
	return s[1:]
}

// Uppercase maps ASCII letters to upper case. Other bytes are unchanged.
func Uppercase(s string) string {
	return mapASCII(s, 'a', 'z', 'A'-'a')
}

// Lowercase maps ASCII letters to lower case. Other bytes are unchanged.
func Lowercase(s string) string {
	return mapASCII(s, 'A', 'Z', 'a'-'A')
}

func mapASCII(s string, lo, hi byte, delta int) string {
	i := 0
	for i < len(s) && (s[i] < lo || s[i] > hi) {
		i++
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] >= lo && b[i] <= hi {
			b[i] = byte(int(b[i]) + delta)
		}
	}
	return string(b)
}

// Count returns the number of non-overlapping occurrences of substr in s.
// An empty substr occurs zero times.
func Count(s, substr string) int {
	if substr == "" {
		return 0
	}
	return strings.Count(s, substr)
}

// LeftOf returns the text before the first occurrence of sep, or s itself
// when sep does not occur.
func LeftOf(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}

// RightOf returns the text after the first occurrence of sep, or s itself
// when sep does not occur.
func RightOf(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[i+len(sep):]
	}
	return s
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// StartsWithFold is StartsWith ignoring ASCII case.
func StartsWithFold(s, prefix string) bool {
	return len(s) >= len(prefix) && Uppercase(s[:len(prefix)]) == Uppercase(prefix)
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// EndsWithFold is EndsWith ignoring ASCII case.
func EndsWithFold(s, suffix string) bool {
	return len(s) >= len(suffix) && Uppercase(s[len(s)-len(suffix):]) == Uppercase(suffix)
}
