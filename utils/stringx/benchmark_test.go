// File: benchmark_test.go
// Title: String Utility Benchmarks
// Description: Benchmarks for the hot paths: stringification, matching
//              and the multi-pattern replacer.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial benchmarks

package stringx

import (
	"strings"
	"testing"
)

func BenchmarkToString(b *testing.B) {
	values := []any{42, 3.14159, "text", true, int64(-7)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToString(values[i%len(values)])
	}
}

func BenchmarkMatches(b *testing.B) {
	s := strings.Repeat("ab", 50) + ".txt"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Matches(s, "*ab*b.t?t")
	}
}

func BenchmarkReplacementTable(b *testing.B) {
	table, _ := NewReplacementTable("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")
	input := strings.Repeat(`<p class="x">a & b</p>`, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = table.Replace(input)
	}
}

func BenchmarkTokenize(b *testing.B) {
	input := strings.Repeat("alpha, beta;gamma ", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Tokenize(input, ",; ")
	}
}
