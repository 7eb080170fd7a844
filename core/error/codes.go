// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the wire packages so that
//              callers can classify failures without matching on messages.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Codes for formatting, replacement, interpolation,
//                       evaluation and INI handling

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Replacement tables
	CodeEmptyTarget Code = "EMPTY_TARGET"

	// Interpolation
	CodeLookupFailed    Code = "LOOKUP_FAILED"
	CodeCyclicReference Code = "CYCLIC_REFERENCE"
	CodeInterpSyntax    Code = "INTERP_SYNTAX"

	// Expression evaluation
	CodeEvalSyntax       Code = "EVAL_SYNTAX"
	CodeEvalDivideByZero Code = "EVAL_DIVISION_BY_ZERO"

	// Conversion
	CodeConversionFailed Code = "CONVERSION_FAILED"

	// Configuration and file formats
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeEmptyTarget, CodeLookupFailed, CodeCyclicReference, CodeInterpSyntax,
		CodeEvalSyntax, CodeEvalDivideByZero, CodeConversionFailed,
		CodeConfigError, CodeMissingConfig, CodeInvalidFormat, CodeValidationFailed:
		return true
	}
	return false
}
