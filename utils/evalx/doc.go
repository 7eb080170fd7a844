// Package evalx evaluates simple arithmetic expressions.
//
// Package: evalx
// Title: Expression Evaluator
// Description: Numbers, + - * /, unary signs and parentheses with the
//              usual precedence. Results are float64.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation
//
// Usage:
//
//	value, err := evalx.Eval("2 + 3 * 4") // 14
//
// Malformed input fails with EVAL_SYNTAX, a zero divisor with
// EVAL_DIVISION_BY_ZERO. Both carry the byte offset of the problem in the
// "offset" detail.
package evalx
