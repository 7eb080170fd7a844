// File: lexer.go
// Title: Expression Lexer
// Description: Splits an arithmetic expression into number, operator and
//              parenthesis tokens, recording the byte offset of each.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package evalx

// tokenType represents the type of a lexical token
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIllegal
	tokenNumber
	tokenPlus       // +
	tokenMinus      // -
	tokenStar       // *
	tokenSlash      // /
	tokenLeftParen  // (
	tokenRightParen // )
)

// token is a lexical token with its offset in the input
type token struct {
	typ      tokenType
	value    string
	position int
}

// lexer produces tokens from an expression
type lexer struct {
	input    string
	position int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// next returns the next token, or tokenEOF at the end of input
func (l *lexer) next() token {
	l.skipWhitespace()

	pos := l.position
	if pos >= len(l.input) {
		return token{typ: tokenEOF, position: pos}
	}

	ch := l.input[pos]
	switch ch {
	case '+':
		return l.single(tokenPlus)
	case '-':
		return l.single(tokenMinus)
	case '*':
		return l.single(tokenStar)
	case '/':
		return l.single(tokenSlash)
	case '(':
		return l.single(tokenLeftParen)
	case ')':
		return l.single(tokenRightParen)
	}

	if isDigit(ch) || (ch == '.' && pos+1 < len(l.input) && isDigit(l.input[pos+1])) {
		return token{typ: tokenNumber, value: l.readNumber(), position: pos}
	}

	return l.single(tokenIllegal)
}

func (l *lexer) single(typ tokenType) token {
	tok := token{typ: typ, value: l.input[l.position : l.position+1], position: l.position}
	l.position++
	return tok
}

// readNumber reads digits, an optional fraction and an optional exponent.
// An exponent marker without digits is left for the next token.
func (l *lexer) readNumber() string {
	start := l.position

	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		l.position++
	}
	if l.position < len(l.input) && l.input[l.position] == '.' {
		l.position++
		for l.position < len(l.input) && isDigit(l.input[l.position]) {
			l.position++
		}
	}
	if l.position < len(l.input) && (l.input[l.position] == 'e' || l.input[l.position] == 'E') {
		j := l.position + 1
		if j < len(l.input) && (l.input[j] == '+' || l.input[j] == '-') {
			j++
		}
		if j < len(l.input) && isDigit(l.input[j]) {
			for j < len(l.input) && isDigit(l.input[j]) {
				j++
			}
			l.position = j
		}
	}

	return l.input[start:l.position]
}

func (l *lexer) skipWhitespace() {
	for l.position < len(l.input) {
		switch l.input[l.position] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			l.position++
		default:
			return
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
