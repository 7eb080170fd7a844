// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              onto log levels when an error is reported through LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Severity mapping for the wire error codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input that the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation with a usable fallback
	SeverityMedium

	// SeverityHigh indicates a failure the caller cannot recover from locally
	SeverityHigh

	// SeverityCritical indicates a broken invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeCyclicReference, CodeConfigError:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeEmptyTarget, CodeInterpSyntax,
		CodeEvalSyntax, CodeEvalDivideByZero, CodeInvalidFormat,
		CodeValidationFailed, CodeConversionFailed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
