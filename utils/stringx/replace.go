// File: replace.go
// Title: Literal Replacement
// Description: Single-target replacement and the multi-pattern replacer.
//              A ReplacementTable substitutes many literal targets in one
//              left-to-right pass; at each position the entries are tried
//              from the last to the first and the first match wins.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: ReplacementTable with insertion and key ordering

package stringx

import (
	"strings"

	wireerrors "github.com/msto63/wire/core/errors"
	"github.com/msto63/wire/utils/mapx"
)

// Replace replaces every non-overlapping occurrence of target, scanning
// left to right and resuming after each inserted replacement. An empty
// target leaves s unchanged.
func Replace(s, target, replacement string) string {
	if target == "" {
		return s
	}
	return strings.ReplaceAll(s, target, replacement)
}

// Replace1 replaces the first occurrence of target only. An empty target
// leaves s unchanged.
func Replace1(s, target, replacement string) string {
	if target == "" {
		return s
	}
	return strings.Replace(s, target, replacement, 1)
}

// Replacement is one entry of a ReplacementTable
type Replacement struct {
	Target      string
	Replacement string
}

// ReplacementTable is an immutable ordered list of literal substitutions.
// It is safe for concurrent use.
type ReplacementTable struct {
	entries []Replacement
	first   byteSet
}

// NewReplacementTable builds a table from target, replacement pairs in
// the order given. Later pairs take precedence over earlier ones when
// several targets match at the same position.
func NewReplacementTable(pairs ...string) (*ReplacementTable, error) {
	if len(pairs)%2 != 0 {
		return nil, wireerrors.InvalidInput(wireerrors.ModuleStringx, "NewReplacementTable",
			len(pairs), "an even number of target/replacement strings")
	}

	entries := make([]Replacement, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		entries = append(entries, Replacement{Target: pairs[i], Replacement: pairs[i+1]})
	}
	return newTable("NewReplacementTable", entries)
}

// ReplacementTableFromMap builds a table from m with entries in ascending
// key order, so the lexicographically greatest matching target wins.
func ReplacementTableFromMap(m map[string]string) (*ReplacementTable, error) {
	entries := make([]Replacement, 0, len(m))
	for _, e := range mapx.SortedEntries(m) {
		entries = append(entries, Replacement{Target: e.Key, Replacement: e.Value})
	}
	return newTable("ReplacementTableFromMap", entries)
}

func newTable(operation string, entries []Replacement) (*ReplacementTable, error) {
	t := &ReplacementTable{entries: entries}
	for i, e := range entries {
		if e.Target == "" {
			return nil, wireerrors.EmptyTarget(operation, i)
		}
		t.first[e.Target[0]] = true
	}
	return t, nil
}

// Replace applies the table to s in a single left-to-right pass. At each
// position the entries are tried in reverse table order; the first whose
// target matches is emitted as its replacement and the scan skips past the
// target. Replacement text is never rescanned.
func (t *ReplacementTable) Replace(s string) string {
	if len(t.entries) == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); {
		if t.first[s[i]] {
			if e, ok := t.match(s[i:]); ok {
				sb.WriteString(e.Replacement)
				i += len(e.Target)
				continue
			}
		}
		sb.WriteByte(s[i])
		i++
	}

	return sb.String()
}

func (t *ReplacementTable) match(rest string) (Replacement, bool) {
	for j := len(t.entries) - 1; j >= 0; j-- {
		if strings.HasPrefix(rest, t.entries[j].Target) {
			return t.entries[j], true
		}
	}
	return Replacement{}, false
}

// Len returns the number of entries
func (t *ReplacementTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in table order
func (t *ReplacementTable) Entries() []Replacement {
	return append([]Replacement(nil), t.entries...)
}

// ReplaceMap applies the substitutions in m to s, trying targets in
// descending key order at each position.
func ReplaceMap(s string, m map[string]string) (string, error) {
	t, err := ReplacementTableFromMap(m)
	if err != nil {
		return "", err
	}
	return t.Replace(s), nil
}
