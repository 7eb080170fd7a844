// File: convert.go
// Title: Value Conversions
// Description: Converts arbitrary values to their canonical text form and
//              text back to scalar values. Parsing is lenient: text that
//              is not a number still converts through its truthiness.
//              Precise and ParsePrecise round-trip floats losslessly.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: ToString, As, Precise and ParsePrecise

package stringx

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	wireerror "github.com/msto63/wire/core/error"
	wireerrors "github.com/msto63/wire/core/errors"
)

// Scalar lists the kinds As can produce
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ToString returns the canonical text of v. Strings are returned as is,
// integers in decimal, floats in the shortest form that parses back to the
// same value, booleans as true/false and nil as the empty string.
// fmt.Stringer and error values use their own text; anything else is
// rendered by fmt.Sprint.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case uintptr:
		return strconv.FormatUint(uint64(x), 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	default:
		return fmt.Sprint(x)
	}
}

// Truthy reports whether s counts as true: anything except "", "0" and
// "false".
func Truthy(s string) bool {
	return s != "" && s != "0" && s != "false"
}

// As parses s into T. Numbers are read from the leading numeric prefix of s
// after optional whitespace, so As[int]("12px") is 12. When s has no numeric
// prefix the result is 1 (or true) if s is Truthy and 0 (or false) otherwise.
// For 8-bit integer kinds a single-byte string yields that byte's value:
// As[byte]("A") is 65.
func As[T Scalar](s string) T {
	var result T
	v := reflect.ValueOf(&result).Elem()

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)

	case reflect.Bool:
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			v.SetBool(b)
		} else {
			v.SetBool(Truthy(s))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Kind() == reflect.Int8 && len(s) == 1 {
			v.SetInt(int64(int8(s[0])))
			break
		}
		v.SetInt(parseInt(s))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Kind() == reflect.Uint8 && len(s) == 1 {
			v.SetUint(uint64(s[0]))
			break
		}
		v.SetUint(uint64(parseInt(s)))

	case reflect.Float32, reflect.Float64:
		v.SetFloat(parseFloat(s))
	}

	return result
}

func truthValue(s string) int64 {
	if Truthy(s) {
		return 1
	}
	return 0
}

// numericPrefix returns the longest leading run of s that reads as a
// number: optional sign, digits and, when fraction is set, a decimal
// fraction and exponent.
func numericPrefix(s string, fraction bool) string {
	s = strings.TrimLeft(s, asciiSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if fraction {
		if i < len(s) && s[i] == '.' {
			i++
			for i < len(s) && isDigit(s[i]) {
				i++
				digits++
			}
		}
		if digits > 0 && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
			j := i + 1
			if j < len(s) && (s[j] == '+' || s[j] == '-') {
				j++
			}
			if j < len(s) && isDigit(s[j]) {
				for j < len(s) && isDigit(s[j]) {
					j++
				}
				i = j
			}
		}
	}

	if digits == 0 {
		return ""
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func parseInt(s string) int64 {
	prefix := numericPrefix(s, false)
	if prefix == "" {
		return truthValue(s)
	}
	// out of range values come back clamped to the nearest bound
	n, _ := strconv.ParseInt(prefix, 10, 64)
	return n
}

func parseFloat(s string) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}
	prefix := numericPrefix(s, true)
	if prefix == "" {
		return float64(truthValue(s))
	}
	f, _ := strconv.ParseFloat(prefix, 64)
	return f
}

// Precise returns the exact hexadecimal text of f, such as "0x1.8p+01"
// for 3. Infinities are "INF" and "-INF", not-a-number is "NaN".
func Precise(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'x', -1, 64)
}

// ParsePrecise parses the output of Precise, as well as any decimal or
// hexadecimal float, back into a float64.
func ParsePrecise(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, wireerror.Wrap(err, "cannot parse precise float").
			WithCode(wireerror.CodeConversionFailed).
			WithOperation(wireerrors.ModuleStringx + ".ParsePrecise").
			WithDetail("input", s)
	}
	return f, nil
}
