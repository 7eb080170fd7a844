// File: replace_test.go
// Title: Literal Replacement Tests
// Description: Tests for Replace, Replace1 and the multi-pattern
//              ReplacementTable, including precedence and termination.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial tests

package stringx

import (
	"strings"
	"testing"

	wireerror "github.com/msto63/wire/core/error"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		name                   string
		s, target, replacement string
		want                   string
	}{
		{"grows each match", "aaa", "a", "bb", "bbbbbb"},
		{"replacement contains target", "a", "a", "aa", "aa"},
		{"non-overlapping", "aaaa", "aa", "b", "bb"},
		{"no match", "abc", "x", "y", "abc"},
		{"empty target", "abc", "", "x", "abc"},
		{"delete", "a-b-c", "-", "", "abc"},
		{"empty input", "", "a", "b", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Replace(tt.s, tt.target, tt.replacement); got != tt.want {
				t.Errorf("Replace(%q, %q, %q) = %q, want %q", tt.s, tt.target, tt.replacement, got, tt.want)
			}
		})
	}
}

func TestReplace1(t *testing.T) {
	if got := Replace1("aXbX", "X", "-"); got != "a-bX" {
		t.Errorf("Replace1() = %q, want a-bX", got)
	}
	if got := Replace1("abc", "", "-"); got != "abc" {
		t.Errorf("Replace1() with empty target = %q, want abc", got)
	}
}

func TestReplacementTablePrecedence(t *testing.T) {
	t.Run("from map tries greatest key first", func(t *testing.T) {
		got, err := ReplaceMap("cat", map[string]string{"cat": "dog", "ca": "X"})
		if err != nil {
			t.Fatalf("ReplaceMap() error = %v", err)
		}
		if got != "dog" {
			t.Errorf("ReplaceMap() = %q, want dog", got)
		}
	})

	t.Run("insertion order tries last pair first", func(t *testing.T) {
		table, err := NewReplacementTable("cat", "dog", "ca", "X")
		if err != nil {
			t.Fatalf("NewReplacementTable() error = %v", err)
		}
		if got := table.Replace("cat"); got != "Xt" {
			t.Errorf("Replace() = %q, want Xt", got)
		}
	})

	t.Run("longer target added last wins", func(t *testing.T) {
		table, _ := NewReplacementTable("ca", "X", "cat", "dog")
		if got := table.Replace("cat"); got != "dog" {
			t.Errorf("Replace() = %q, want dog", got)
		}
	})
}

func TestReplacementTableReplace(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		input string
		want  string
	}{
		{"empty table", nil, "abc", "abc"},
		{"swap without rescanning", []string{"a", "b", "b", "a"}, "abba", "baab"},
		{"replacement not rescanned", []string{"a", "b", "b", "c"}, "ab", "bc"},
		{"html escape", []string{"&", "&amp;", "<", "&lt;", ">", "&gt;"}, "<a & b>", "&lt;a &amp; b&gt;"},
		{"multi-byte targets", []string{"{{", "<", "}}", ">"}, "x{{y}}z", "x<y>z"},
		{"empty input", []string{"a", "b"}, "", ""},
		{"deletion", []string{" ", ""}, "a b c", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewReplacementTable(tt.pairs...)
			if err != nil {
				t.Fatalf("NewReplacementTable() error = %v", err)
			}
			if got := table.Replace(tt.input); got != tt.want {
				t.Errorf("Replace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReplacementTableOutputLength(t *testing.T) {
	table, _ := NewReplacementTable("ab", "X", "c", "YYY")
	input := "abcxabcab"

	got := table.Replace(input)

	// 3 x "ab" -> 3 bytes, 2 x "c" -> 6 bytes, 1 untouched byte
	want := len(input) - 3*2 + 3*1 - 2*1 + 2*3
	if len(got) != want {
		t.Errorf("len(Replace(%q)) = %d (%q), want %d", input, len(got), got, want)
	}
	if got != "XYYYxXYYYX" {
		t.Errorf("Replace(%q) = %q", input, got)
	}
}

func TestReplacementTableErrors(t *testing.T) {
	t.Run("odd pair count", func(t *testing.T) {
		_, err := NewReplacementTable("a", "b", "c")
		if !wireerror.HasCode(err, wireerror.CodeInvalidInput) {
			t.Errorf("error = %v, want INVALID_INPUT", err)
		}
	})

	t.Run("empty target in pairs", func(t *testing.T) {
		_, err := NewReplacementTable("a", "b", "", "c")
		if !wireerror.HasCode(err, wireerror.CodeEmptyTarget) {
			t.Fatalf("error = %v, want EMPTY_TARGET", err)
		}
		if index, _ := err.(*wireerror.Error).Detail("index"); index != 1 {
			t.Errorf("index detail = %v, want 1", index)
		}
	})

	t.Run("empty target in map", func(t *testing.T) {
		_, err := ReplaceMap("abc", map[string]string{"": "x"})
		if !wireerror.HasCode(err, wireerror.CodeEmptyTarget) {
			t.Errorf("error = %v, want EMPTY_TARGET", err)
		}
	})
}

func TestReplacementTableEntries(t *testing.T) {
	table, _ := ReplacementTableFromMap(map[string]string{"b": "2", "a": "1"})

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	entries := table.Entries()
	if entries[0].Target != "a" || entries[1].Target != "b" {
		t.Errorf("Entries() = %v, want sorted by target", entries)
	}

	entries[0].Replacement = "changed"
	if table.Replace("a") != "1" {
		t.Error("Entries() should return a copy")
	}
}

func TestReplacementTableTerminates(t *testing.T) {
	table, _ := NewReplacementTable("a", "aa", "aa", "aaa")
	input := strings.Repeat("a", 1000)

	got := table.Replace(input)
	if got != strings.Repeat("aaa", 500) {
		t.Errorf("Replace() length = %d, want 1500", len(got))
	}
}
