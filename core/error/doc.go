// Package error provides the structured error type shared by the wire packages.
//
// Package: error
// Title: wire Error Handling
// Description: Errors carry a code, a severity, free-form details and a stack
//              trace. Codes are the contract: callers test them with HasCode
//              for the outermost error or IsCode for a wrapped chain.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Codes for replacement, interpolation and evaluation
//
// Usage:
//
//	import wireerror "github.com/msto63/wire/core/error"
//
//	err := wireerror.New("unknown symbol").
//		WithCode(wireerror.CodeLookupFailed).
//		WithDetail("name", "user")
//
//	if wireerror.IsCode(err, wireerror.CodeLookupFailed) {
//		// fall back to a default
//	}
package error
