// File: format.go
// Title: Positional Formatter
// Description: Substitutes positional placeholder bytes in a template. A
//              template byte k with 1 <= k <= len(args) is replaced by the
//              text of args[k-1]; every other byte, including 0, is copied
//              as is. Templates can be re-applied to fill the placeholders
//              the previous pass left alone.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Variadic Format, Template chaining, Labeled

package formatx

import (
	"strings"

	"github.com/msto63/wire/utils/stringx"
)

// Format replaces each placeholder byte \x01..\xNN of template with the
// text of the matching argument. Bytes above len(args) are kept literally,
// so Format("\x01 and \x02", "a") is "a and \x02".
func Format(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}

	values := make([]string, len(args))
	for i, arg := range args {
		values[i] = stringx.ToString(arg)
	}
	return expand(template, values)
}

func expand(template string, values []string) string {
	n := len(values)

	first := -1
	for i := 0; i < len(template); i++ {
		if c := template[i]; c >= 1 && int(c) <= n {
			first = i
			break
		}
	}
	if first < 0 {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template) + 16*n)
	sb.WriteString(template[:first])

	for i := first; i < len(template); i++ {
		c := template[i]
		if c >= 1 && int(c) <= n {
			sb.WriteString(values[c-1])
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Template is a format string that can be applied repeatedly. Each Apply
// returns a new Template; the receiver is never modified.
type Template string

// Apply formats the current text against args
func (t Template) Apply(args ...any) Template {
	return Template(Format(string(t), args...))
}

// String returns the template text
func (t Template) String() string {
	return string(t)
}

// Append appends the text of each value to dst
func Append(dst string, values ...any) string {
	var sb strings.Builder
	sb.WriteString(dst)
	for _, v := range values {
		sb.WriteString(stringx.ToString(v))
	}
	return sb.String()
}

// Labeled formats one line per value, passing the value's label as \x01 and
// the value as \x02. labels is a list separated by commas or whitespace; a
// label is reduced to the part after its last "." or "->", so "cfg.host"
// becomes "host". Missing labels are empty, surplus labels are ignored.
//
//	Labeled("\x01=\x02\n", "user, cfg.port", "msto63", 8080)
//	// user=msto63
//	// port=8080
func Labeled(format, labels string, values ...any) string {
	names := stringx.Tokenize(labels, ", \r\n\t")

	var sb strings.Builder
	for i, v := range values {
		name := ""
		if i < len(names) {
			name = shortName(names[i])
		}
		sb.WriteString(Format(format, name, v))
	}
	return sb.String()
}

func shortName(name string) string {
	for _, sep := range []string{".", "->"} {
		if i := strings.LastIndex(name, sep); i >= 0 {
			name = name[i+len(sep):]
		}
	}
	return name
}
