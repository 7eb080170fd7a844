// File: standards.go
// Title: Standard Errors for wire Modules
// Description: Constructors for the error conditions the string utilities can
//              report: invalid input, empty replacement targets, failed
//              symbol lookups, reference cycles, syntax errors and invalid
//              file formats.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Constructors for replacement, interpolation and eval

package errors

import (
	"fmt"
	"strings"

	wireerror "github.com/msto63/wire/core/error"
)

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *wireerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(wireerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(wireerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *wireerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s: expected %s", module, operation, expectedFormat).
		Code(wireerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(wireerror.SeverityLow).
		Build()
}

// EmptyTarget reports a replacement table entry whose target is empty.
// Such an entry would never advance the scan position.
func EmptyTarget(operation string, index int) *wireerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Messagef("replacement target %d is empty", index).
		Code(wireerror.CodeEmptyTarget).
		Detail("index", index).
		Severity(wireerror.SeverityLow).
		Build()
}

// Lookup reports a symbol that the resolver does not know
func Lookup(name string) *wireerror.Error {
	return NewErrorBuilder(ModuleInterpx).
		Operation("resolve").
		Messagef("symbol %q not found", name).
		Code(wireerror.CodeLookupFailed).
		Detail("name", name).
		Severity(wireerror.SeverityMedium).
		Build()
}

// CyclicReference reports a symbol that resolves back to itself. chain lists
// the names in resolution order, ending with the repeated name.
func CyclicReference(chain []string) *wireerror.Error {
	return NewErrorBuilder(ModuleInterpx).
		Operation("resolve").
		Messagef("cyclic reference: %s", strings.Join(chain, " -> ")).
		Code(wireerror.CodeCyclicReference).
		Detail("chain", append([]string(nil), chain...)).
		Severity(wireerror.SeverityHigh).
		Build()
}

// Syntax reports malformed input at a byte offset
func Syntax(module, operation string, code wireerror.Code, input string, offset int, reason string) *wireerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s at offset %d", reason, offset)).
		Code(code).
		Detail("input", input).
		Detail("offset", offset).
		Severity(wireerror.SeverityLow).
		Build()
}

// DivisionByZero reports a division by zero during evaluation
func DivisionByZero(input string, offset int) *wireerror.Error {
	return NewErrorBuilder(ModuleEvalx).
		Operation("eval").
		Message(fmt.Sprintf("division by zero at offset %d", offset)).
		Code(wireerror.CodeEvalDivideByZero).
		Detail("input", input).
		Detail("offset", offset).
		Severity(wireerror.SeverityLow).
		Build()
}

// OperationFailed wraps a cause with module and operation context
func OperationFailed(module, operation string, code wireerror.Code, cause error) *wireerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s failed", module, operation).
		Cause(cause).
		Code(code).
		Severity(wireerror.SeverityHigh).
		Build()
}
