// File: mapx.go
// Title: Ordered Map Views
// Description: Deterministic, key-ordered views of Go maps. Aggregate
//              formatting, replacement tables, INI output and symbol listings
//              all iterate maps through these helpers so output never depends
//              on Go's randomized map order.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Sorted key, value and entry views; prefix selection

package mapx

import (
	"cmp"
	"slices"
	"strings"
)

// Entry represents a key-value pair
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SortedValues returns the values of m ordered by their keys
func SortedValues[K cmp.Ordered, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, k := range SortedKeys(m) {
		values = append(values, m[k])
	}
	return values
}

// SortedEntries returns the entries of m in ascending key order
func SortedEntries[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	if m == nil {
		return nil
	}

	entries := make([]Entry[K, V], 0, len(m))
	for _, k := range SortedKeys(m) {
		entries = append(entries, Entry[K, V]{Key: k, Value: m[k]})
	}
	return entries
}

// Merge creates a new map by merging multiple maps.
// Later maps override values from earlier maps for duplicate keys.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	totalSize := 0
	for _, m := range maps {
		totalSize += len(m)
	}

	result := make(map[K]V, totalSize)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// WithPrefix returns the entries whose key starts with prefix, with the
// prefix removed from the key
func WithPrefix[V any](m map[string]V, prefix string) map[string]V {
	if m == nil {
		return nil
	}

	result := make(map[string]V)
	for k, v := range m {
		if rest, ok := strings.CutPrefix(k, prefix); ok && rest != "" {
			result[rest] = v
		}
	}
	return result
}
