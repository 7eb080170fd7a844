// Package getoptx parses command lines into a key/value index.
//
// Package: getoptx
// Title: Minimal Argument Parser
// Description: No declarations, no help text: every argument is reachable
//              by position, key=value pairs by key and bare words as
//              switches. Suited to small tools and tests that need a
//              command line without a flag set.
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
//	opts := getoptx.Parse(os.Args)
//	if opts.Has("--verbose") {
//		...
//	}
//	port := getoptx.GetAs[int](opts, "--port")
package getoptx
