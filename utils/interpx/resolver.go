// File: resolver.go
// Title: Symbol Resolvers
// Description: The Resolver interface the interpolator consults for symbol
//              values, with adapters for plain maps and functions.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Resolver, MapResolver and ResolverFunc

package interpx

// Resolver looks up the value of a symbol by name
type Resolver interface {
	Lookup(name string) (string, bool)
}

// MapResolver resolves names from a fixed map
type MapResolver map[string]string

// Lookup implements Resolver
func (m MapResolver) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(name string) (string, bool)

// Lookup implements Resolver
func (f ResolverFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// Chain resolves a name from the first resolver that knows it
func Chain(resolvers ...Resolver) Resolver {
	return ResolverFunc(func(name string) (string, bool) {
		for _, r := range resolvers {
			if v, ok := r.Lookup(name); ok {
				return v, true
			}
		}
		return "", false
	})
}
