// File: aggregate.go
// Title: Aggregate Formatter
// Description: Applies a per-element template across slices and maps and
//              concatenates the results between a prefix and a suffix.
//              Maps are walked in ascending key order.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Join over slices and maps, Strings collection

package formatx

import (
	"cmp"
	"strings"

	"github.com/msto63/wire/utils/mapx"
)

// DefaultFormat renders one element per line
const DefaultFormat = "\x01\n"

// Join returns pre, then Format(format, item) for every item, then post
func Join[T any](items []T, format, pre, post string) string {
	var sb strings.Builder
	sb.WriteString(pre)
	for _, item := range items {
		sb.WriteString(Format(format, item))
	}
	sb.WriteString(post)
	return sb.String()
}

// JoinKeys is Join over the keys of m in ascending order
func JoinKeys[K cmp.Ordered, V any](m map[K]V, format, pre, post string) string {
	return Join(mapx.SortedKeys(m), format, pre, post)
}

// JoinValues is Join over the values of m, ordered by key
func JoinValues[K cmp.Ordered, V any](m map[K]V, format, pre, post string) string {
	return Join(mapx.SortedValues(m), format, pre, post)
}

// JoinPairs formats every entry of m with the key as \x01 and the value as
// \x02, in ascending key order
func JoinPairs[K cmp.Ordered, V any](m map[K]V, format, pre, post string) string {
	var sb strings.Builder
	sb.WriteString(pre)
	for _, e := range mapx.SortedEntries(m) {
		sb.WriteString(Format(format, e.Key, e.Value))
	}
	sb.WriteString(post)
	return sb.String()
}

// Strings is an ordered collection of strings
type Strings []string

// Str formats the collection. A single element is returned as
// pre + element + post without applying format.
func (s Strings) Str(format, pre, post string) string {
	if len(s) == 1 {
		return pre + s[0] + post
	}
	return Join(s, format, pre, post)
}

// String renders one element per line
func (s Strings) String() string {
	return s.Str(DefaultFormat, "", "")
}

// At returns the element at pos with wrap-around; negative positions count
// from the end. An empty collection yields "".
func (s Strings) At(pos int) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	if pos >= 0 {
		return s[pos%n]
	}
	return s[n-1+(pos+1)%n]
}
