// Package mapx provides deterministic views of Go maps.
//
// Package: mapx
// Title: Ordered Map Views
// Description: Go maps iterate in random order. Every wire component that
//              renders a map (aggregate formatting, replacement tables built
//              from maps, INI output, symbol listings) walks it through
//              SortedKeys or SortedEntries instead.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Ordered views for the string utilities
//
// Usage:
//   for _, e := range mapx.SortedEntries(m) {
//     fmt.Println(e.Key, e.Value)
//   }
package mapx
