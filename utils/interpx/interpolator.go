// File: interpolator.go
// Title: Text Interpolator
// Description: Expands $name and $(name) references in text from a
//              Resolver. Resolved values are expanded in turn; the chain of
//              names being resolved is carried through the recursion so a
//              symbol that refers back to itself fails instead of looping.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package interpx

import (
	"slices"
	"strings"

	wireerror "github.com/msto63/wire/core/error"
	wireerrors "github.com/msto63/wire/core/errors"
	wirelog "github.com/msto63/wire/core/log"
)

// MaxDepth bounds the nesting of resolutions in one call
const MaxDepth = 64

// MissingPolicy decides what happens when a name cannot be resolved
type MissingPolicy int

const (
	// MissingError fails the interpolation with a lookup error
	MissingError MissingPolicy = iota

	// MissingEmpty substitutes the empty string
	MissingEmpty
)

// String returns the policy name
func (p MissingPolicy) String() string {
	switch p {
	case MissingError:
		return "error"
	case MissingEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// ParseMissingPolicy parses "error" or "empty"
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "":
		return MissingError, nil
	case "empty":
		return MissingEmpty, nil
	default:
		return MissingError, wireerrors.InvalidInput(wireerrors.ModuleInterpx, "ParseMissingPolicy", s, "error or empty")
	}
}

// Interpolator expands symbol references. The zero value is not usable;
// Resolver must be set. An Interpolator holds no per-call state and may be
// shared between goroutines if its Resolver may.
type Interpolator struct {
	Resolver Resolver
	Policy   MissingPolicy
	Logger   *wirelog.Logger
}

// Option configures an Interpolator
type Option func(*Interpolator)

// WithPolicy sets the policy for unresolved names
func WithPolicy(policy MissingPolicy) Option {
	return func(ip *Interpolator) {
		ip.Policy = policy
	}
}

// WithLogger traces resolutions at trace level
func WithLogger(logger *wirelog.Logger) Option {
	return func(ip *Interpolator) {
		ip.Logger = logger
	}
}

// New creates an Interpolator reading symbols from resolver
func New(resolver Resolver, opts ...Option) *Interpolator {
	ip := &Interpolator{Resolver: resolver}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// Interpolate expands text with the default policy
func Interpolate(text string, resolver Resolver) (string, error) {
	return New(resolver).Interpolate(text)
}

// Interpolate expands every reference in text:
//
//	$name     name is letters, digits, '_' and "." or "->" separators
//	$(text)   text is expanded first, then resolved as a name
//	$$        a literal '$'
//
// A '$' followed by anything else is copied literally.
func (ip *Interpolator) Interpolate(text string) (string, error) {
	return ip.expand(text, nil)
}

func (ip *Interpolator) expand(text string, chain []string) (string, error) {
	if strings.IndexByte(text, '$') < 0 {
		return text, nil
	}

	var sb strings.Builder
	sb.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '$' || i+1 == len(text) {
			sb.WriteByte(text[i])
			i++
			continue
		}

		switch next := text[i+1]; {
		case next == '$':
			sb.WriteByte('$')
			i += 2

		case next == '(':
			end := matchParen(text, i+1)
			if end < 0 {
				return "", wireerrors.Syntax(wireerrors.ModuleInterpx, "Interpolate",
					wireerror.CodeInterpSyntax, text, i, "unterminated $(")
			}
			name, err := ip.expand(text[i+2:end], chain)
			if err != nil {
				return "", err
			}
			value, err := ip.resolve(name, chain)
			if err != nil {
				return "", err
			}
			sb.WriteString(value)
			i = end + 1

		case isNameStart(next):
			end := scanName(text, i+1)
			value, err := ip.resolve(text[i+1:end], chain)
			if err != nil {
				return "", err
			}
			sb.WriteString(value)
			i = end

		default:
			sb.WriteByte('$')
			i++
		}
	}

	return sb.String(), nil
}

func (ip *Interpolator) resolve(name string, chain []string) (string, error) {
	if slices.Contains(chain, name) {
		return "", wireerrors.CyclicReference(append(slices.Clip(chain), name))
	}
	if len(chain) >= MaxDepth {
		return "", wireerrors.InvalidInput(wireerrors.ModuleInterpx, "Interpolate",
			strings.Join(chain, " -> "), "at most 64 nested resolutions")
	}

	value, ok := ip.Resolver.Lookup(name)
	if !ok {
		if ip.Policy == MissingEmpty {
			ip.trace("symbol missing, substituting empty", name, chain)
			return "", nil
		}
		return "", wireerrors.Lookup(name).WithDetail("depth", len(chain))
	}

	ip.trace("symbol resolved", name, chain)
	return ip.expand(value, append(slices.Clip(chain), name))
}

func (ip *Interpolator) trace(message, name string, chain []string) {
	if ip.Logger == nil {
		return
	}
	ip.Logger.Trace(message, wirelog.Fields{
		"name":  name,
		"depth": len(chain),
	})
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

// scanName returns the end of the name starting at start. A "." or "->"
// belongs to the name only when another identifier follows it.
func scanName(text string, start int) int {
	j := start + 1
	for j < len(text) {
		switch c := text[j]; {
		case isNameByte(c):
			j++
		case c == '.' && j+1 < len(text) && isNameStart(text[j+1]):
			j += 2
		case c == '-' && j+2 < len(text) && text[j+1] == '>' && isNameStart(text[j+2]):
			j += 3
		default:
			return j
		}
	}
	return j
}

// matchParen returns the index of the ')' matching the '(' at open, or -1
func matchParen(text string, open int) int {
	depth := 0
	for j := open; j < len(text); j++ {
		switch text[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}
