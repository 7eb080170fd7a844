// File: strip.go
// Title: Strip and Trim
// Description: Removes leading and trailing bytes from a set. An empty set
//              means ASCII whitespace. Trim* names are aliases.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package stringx

import "strings"

const asciiSpace = " \t\n\v\f\r"

func cutset(chars string) string {
	if chars == "" {
		return asciiSpace
	}
	return chars
}

// Strip removes leading and trailing bytes found in chars
func Strip(s, chars string) string {
	return strings.Trim(s, cutset(chars))
}

// LStrip removes leading bytes found in chars
func LStrip(s, chars string) string {
	return strings.TrimLeft(s, cutset(chars))
}

// RStrip removes trailing bytes found in chars
func RStrip(s, chars string) string {
	return strings.TrimRight(s, cutset(chars))
}

// Trim is an alias for Strip
func Trim(s, chars string) string {
	return Strip(s, chars)
}

// LTrim is an alias for LStrip
func LTrim(s, chars string) string {
	return LStrip(s, chars)
}

// RTrim is an alias for RStrip
func RTrim(s, chars string) string {
	return RStrip(s, chars)
}
