// File: split.go
// Title: Tokenize and Split
// Description: Breaks text on any byte of a delimiter set, either dropping
//              the delimiters or keeping each one as its own token.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package stringx

type byteSet [256]bool

func newByteSet(chars string) *byteSet {
	var set byteSet
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = true
	}
	return &set
}

// Tokenize splits s on every byte in delims. Empty tokens are dropped, so
// Tokenize("a,,b,", ",") is ["a" "b"].
func Tokenize(s, delims string) []string {
	set := newByteSet(delims)
	tokens := []string{}

	start := -1
	for i := 0; i < len(s); i++ {
		if set[s[i]] {
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}

	return tokens
}

// Split splits s on every byte in delims, keeping each delimiter as a
// token of its own: Split("a=b", "=") is ["a" "=" "b"].
func Split(s, delims string) []string {
	set := newByteSet(delims)
	tokens := []string{}

	start := 0
	for i := 0; i < len(s); i++ {
		if !set[s[i]] {
			continue
		}
		if i > start {
			tokens = append(tokens, s[start:i])
		}
		tokens = append(tokens, s[i:i+1])
		start = i + 1
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}

	return tokens
}
