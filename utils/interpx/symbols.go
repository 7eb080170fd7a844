// File: symbols.go
// Title: Symbol Table
// Description: A concurrency-safe name to value table that satisfies
//              Resolver, with line assignment ("$(name) = value") and typed
//              getters.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package interpx

import (
	"strings"
	"sync"

	wireerrors "github.com/msto63/wire/core/errors"
	"github.com/msto63/wire/utils/mapx"
	"github.com/msto63/wire/utils/stringx"
)

// Symbols is a symbol table safe for concurrent use
type Symbols struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewSymbols creates an empty table
func NewSymbols() *Symbols {
	return &Symbols{values: make(map[string]string)}
}

// Set stores value under name
func (s *Symbols) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

// Get returns the value of name, or "" if it is not defined
func (s *Symbols) Get(name string) string {
	v, _ := s.Lookup(name)
	return v
}

// Lookup implements Resolver
func (s *Symbols) Lookup(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Locate returns the value of name, defining it as "" first if needed
func (s *Symbols) Locate(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[name]
	if !ok {
		s.values[name] = ""
	}
	return v
}

// Delete removes name
func (s *Symbols) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, name)
}

// Names returns the defined names in ascending order
func (s *Symbols) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return mapx.SortedKeys(s.values)
}

// Len returns the number of defined names
func (s *Symbols) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Load copies every entry of values into the table
func (s *Symbols) Load(values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.values[k] = v
	}
}

// Snapshot returns a copy of the table
func (s *Symbols) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return mapx.Merge(s.values)
}

// Expand interpolates text against the table
func (s *Symbols) Expand(text string, opts ...Option) (string, error) {
	return New(s, opts...).Interpolate(text)
}

// Assign parses and applies one assignment line. Accepted forms are
//
//	$(name) = value
//	$name = value
//	name = value
//
// The name inside $( ) and the value are interpolated against the table
// before the value is stored.
func (s *Symbols) Assign(line string, opts ...Option) error {
	left, right, found := strings.Cut(line, "=")
	if !found {
		return wireerrors.InvalidFormat(wireerrors.ModuleInterpx, "Assign", line, "name = value")
	}

	name := stringx.Strip(left, "")
	switch {
	case strings.HasPrefix(name, "$(") && strings.HasSuffix(name, ")"):
		expanded, err := s.Expand(name[2:len(name)-1], opts...)
		if err != nil {
			return err
		}
		name = stringx.Strip(expanded, "")
	case strings.HasPrefix(name, "$"):
		name = name[1:]
	}
	if name == "" {
		return wireerrors.InvalidFormat(wireerrors.ModuleInterpx, "Assign", line, "non-empty name")
	}

	value, err := s.Expand(stringx.Strip(right, ""), opts...)
	if err != nil {
		return err
	}

	s.Set(name, value)
	return nil
}

// GetAs returns the value of name converted with stringx.As
func GetAs[T stringx.Scalar](s *Symbols, name string) T {
	return stringx.As[T](s.Get(name))
}
