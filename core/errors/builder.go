// File: builder.go
// Title: Shared Error Builder
// Description: Fluent builder that tags errors with the module and operation
//              that produced them, so every wire package reports failures
//              in the same shape.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Builder trimmed to the wire modules

package errors

import (
	"fmt"

	wireerror "github.com/msto63/wire/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleFormatx = "formatx"
	ModuleInterpx = "interpx"
	ModuleEvalx   = "evalx"
	ModuleGetoptx = "getoptx"
	ModuleConfig  = "config"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  wireerror.Severity
	code      wireerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: wireerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity wireerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code wireerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *wireerror.Error {
	if eb.code == "" {
		eb.code = wireerror.CodeUnknown
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *wireerror.Error
	if eb.cause != nil {
		err = wireerror.Wrap(eb.cause, eb.message)
	} else {
		err = wireerror.New(eb.message)
	}

	op := eb.module
	if eb.operation != "" {
		op = eb.module + "." + eb.operation
	}

	return err.
		WithSeverity(eb.severity).
		WithCode(eb.code).
		WithOperation(op).
		WithDetails(eb.details)
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if wireErr, ok := err.(*wireerror.Error); ok {
		if module, ok := wireErr.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if wireErr, ok := err.(*wireerror.Error); ok {
		if operation, ok := wireErr.Details()["operation"].(string); ok {
			return operation
		}
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}
