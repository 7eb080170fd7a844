// File: extract.go
// Title: Reference Extraction
// Description: Lists the symbol names a text refers to without resolving
//              them.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package interpx

// Extract returns the names referenced by $name and $(name) in order of
// appearance. A parenthesized reference is returned as its raw enclosed
// text. $$ escapes are skipped; an unterminated $( ends the scan.
func Extract(text string) []string {
	var names []string

	for i := 0; i < len(text)-1; {
		if text[i] != '$' {
			i++
			continue
		}

		switch next := text[i+1]; {
		case next == '$':
			i += 2
		case next == '(':
			end := matchParen(text, i+1)
			if end < 0 {
				return names
			}
			names = append(names, text[i+2:end])
			i = end + 1
		case isNameStart(next):
			end := scanName(text, i+1)
			names = append(names, text[i+1:end])
			i = end
		default:
			i++
		}
	}

	return names
}
