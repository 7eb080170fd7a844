// File: match.go
// Title: Glob Matching
// Description: Shell-style wildcard matching. '*' matches any run of bytes,
//              '?' matches any single byte except '.'.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Iterative matcher with single-star backtracking

package stringx

// Matches reports whether s matches the wildcard pattern in full
func Matches(s, pattern string) bool {
	p, i := 0, 0
	star, mark := -1, 0

	for i < len(s) {
		switch {
		case p < len(pattern) && pattern[p] == '*':
			star, mark = p, i
			p++
		case p < len(pattern) && (pattern[p] == s[i] || (pattern[p] == '?' && s[i] != '.')):
			p++
			i++
		case star >= 0:
			p = star + 1
			mark++
			i = mark
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}

// MatchesFold is Matches ignoring ASCII case
func MatchesFold(s, pattern string) bool {
	return Matches(Uppercase(s), Uppercase(pattern))
}
