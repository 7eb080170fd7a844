// Package stringx provides byte-oriented string utilities for wire.
//
// Package: stringx
// Title: Extended String Utilities
// Description: Canonical stringification of values and lenient parsing
//              back into scalars, lossless float text, wrap-around
//              indexing, ASCII case mapping, glob matching, stripping,
//              tokenizing, and literal replacement of one or many targets
//              in a single pass.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Conversions, primitives and the multi-pattern replacer
//
// All functions operate on bytes; multi-byte UTF-8 sequences pass through
// unchanged but are not treated as single characters.
//
// Usage:
//   import "github.com/msto63/wire/utils/stringx"
//
//   stringx.ToString(3.5)            // "3.5"
//   stringx.As[int]("42")            // 42
//   stringx.Matches("a.txt", "*.txt") // true
//
//   table, err := stringx.NewReplacementTable("&", "&amp;", "<", "&lt;")
//   if err != nil {
//     return err
//   }
//   escaped := table.Replace("<a & b>")
package stringx
