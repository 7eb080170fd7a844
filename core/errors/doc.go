// Package errors provides the standard error constructors for the wire
// packages.
//
// Package: errors
// Title: Standard Error Handling API for wire
// Description: Every error produced by a wire package is a *core/error.Error
//              tagged with the module and operation that produced it. This
//              package holds the constructors so the shape stays consistent.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Constructors for replacement, interpolation and eval
//
// Usage:
//
//	err := errors.Lookup("user")
//	errors.ExtractModule(err)    // "interpx"
//	errors.ExtractOperation(err) // "resolve"
package errors
