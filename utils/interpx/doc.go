// Package interpx expands $name references in text.
//
// Package: interpx
// Title: Text Interpolator
// Description: Replaces $name and $(name) references with values from a
//              Resolver, expanding resolved values recursively and
//              rejecting self-referencing symbols. A Symbols table is
//              provided for callers that do not bring their own resolver.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Interpolator, Symbols, Extract
//
// Syntax:
//
//	$name          letters, digits and '_'; '.' and "->" join identifiers
//	$(any text)    the text is expanded first, then used as the name
//	$$             a literal '$'
//
// Any other '$' is copied through. Unknown names fail with a
// LOOKUP_FAILED error unless the interpolator uses MissingEmpty.
//
// Usage:
//
//	symbols := interpx.NewSymbols()
//	symbols.Set("name", "world")
//
//	out, err := interpx.Interpolate("Hello, $name!", symbols)
//	if err != nil {
//		return err
//	}
//
// Errors carry codes from core/error: LOOKUP_FAILED, CYCLIC_REFERENCE and
// INTERP_SYNTAX.
package interpx
