// File: getopt.go
// Title: Minimal Argument Parser
// Description: Indexes a command line both by position and by key: every
//              argument is stored under its decimal position, key=value
//              arguments under their key, and bare words as switches set to
//              "true".
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package getoptx

import (
	"strconv"
	"strings"

	"github.com/msto63/wire/utils/mapx"
	"github.com/msto63/wire/utils/stringx"
)

// Getopt holds a parsed command line
type Getopt struct {
	values map[string]string
}

// Parse indexes argv. For "./app --user=me --pass=123 -h" the result holds
//
//	"0"="./app" "1"="--user=me" "2"="--pass=123" "3"="-h"
//	"--user"="me" "--pass"="123" "-h"="true"
//
// "key=" stores "true". Arguments with more than one '=' are only stored by
// position. argv[0] is never treated as a switch.
func Parse(argv []string) *Getopt {
	g := &Getopt{values: make(map[string]string, len(argv)*2)}

	for _, arg := range argv {
		tokens := stringx.Split(arg, "=")
		switch {
		case len(tokens) == 3 && tokens[1] == "=":
			g.values[tokens[0]] = tokens[2]
		case len(tokens) == 2 && tokens[1] == "=":
			g.values[tokens[0]] = "true"
		case len(tokens) == 1 && tokens[0] != argv[0]:
			g.values[tokens[0]] = "true"
		}
	}

	for i, arg := range argv {
		g.values[strconv.Itoa(i)] = arg
	}

	return g
}

// Has reports whether key is present
func (g *Getopt) Has(key string) bool {
	_, ok := g.values[key]
	return ok
}

// Get returns the value of key, or "" if it is absent
func (g *Getopt) Get(key string) string {
	return g.values[key]
}

// Lookup returns the value of key and whether it is present
func (g *Getopt) Lookup(key string) (string, bool) {
	v, ok := g.values[key]
	return v, ok
}

// Arg returns the positional argument at i, or "" if there is none
func (g *Getopt) Arg(i int) string {
	return g.values[strconv.Itoa(i)]
}

// Size returns the number of positional arguments
func (g *Getopt) Size() int {
	i := 0
	for g.Has(strconv.Itoa(i)) {
		i++
	}
	return i
}

// Args returns the positional arguments in order
func (g *Getopt) Args() []string {
	args := make([]string, g.Size())
	for i := range args {
		args[i] = g.Arg(i)
	}
	return args
}

// Keys returns every key in ascending string order
func (g *Getopt) Keys() []string {
	return mapx.SortedKeys(g.values)
}

// String renders every entry as "key=value," in key order
func (g *Getopt) String() string {
	var sb strings.Builder
	for _, e := range mapx.SortedEntries(g.values) {
		sb.WriteString(e.Key)
		sb.WriteByte('=')
		sb.WriteString(e.Value)
		sb.WriteByte(',')
	}
	return sb.String()
}

// Cmdline joins the positional arguments with single spaces
func (g *Getopt) Cmdline() string {
	return strings.Join(g.Args(), " ")
}

// GetAs returns the value of key converted with stringx.As
func GetAs[T stringx.Scalar](g *Getopt, key string) T {
	return stringx.As[T](g.Get(key))
}
