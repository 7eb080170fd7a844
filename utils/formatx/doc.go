// Package formatx provides positional and aggregate text formatting.
//
// Package: formatx
// Title: Positional and Aggregate Formatting
// Description: Templates use raw bytes \x01, \x02, ... as positional
//              placeholders, so any text can be a template without an
//              escaping syntax. Values are stringified with stringx.ToString.
//              Aggregate helpers apply a template to every element of a
//              slice or map.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation
//
// Usage:
//   formatx.Format("\x01 says hi to \x02", "Alice", "Bob")
//   formatx.Join([]int{1, 2, 3}, "[\x01]", "", "")
//   formatx.JoinPairs(settings, "\x01=\x02\n", "", "")
package formatx
