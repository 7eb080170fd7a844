// File: eval.go
// Title: Arithmetic Expression Evaluator
// Description: Recursive descent evaluation of arithmetic expressions with
//              + - * /, unary signs and parentheses over float64 values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package evalx

import (
	"fmt"
	"strconv"

	wireerror "github.com/msto63/wire/core/error"
	wireerrors "github.com/msto63/wire/core/errors"
)

// Eval evaluates expr. Grammar, lowest precedence first:
//
//	expression = term { ("+" | "-") term }
//	term       = unary { ("*" | "/") unary }
//	unary      = ("+" | "-") unary | primary
//	primary    = number | "(" expression ")"
//
// Binary operators associate to the left.
func Eval(expr string) (float64, error) {
	p := newParser(expr)

	if p.current.typ == tokenEOF {
		return 0, p.syntaxError("empty expression")
	}

	value, err := p.parseExpression()
	if err != nil {
		return 0, err
	}

	switch p.current.typ {
	case tokenEOF:
		return value, nil
	case tokenRightParen:
		return 0, p.syntaxError("unbalanced parentheses")
	default:
		return 0, p.syntaxError(fmt.Sprintf("unexpected trailing input %q", p.current.value))
	}
}

// MustEval is like Eval but panics on error
func MustEval(expr string) float64 {
	value, err := Eval(expr)
	if err != nil {
		panic(err)
	}
	return value
}

// parser evaluates while it parses; no tree is built
type parser struct {
	input   string
	lexer   *lexer
	current token
}

func newParser(input string) *parser {
	p := &parser{input: input, lexer: newLexer(input)}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.current = p.lexer.next()
}

func (p *parser) parseExpression() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for p.current.typ == tokenPlus || p.current.typ == tokenMinus {
		op := p.current.typ
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}

		if op == tokenPlus {
			left += right
		} else {
			left -= right
		}
	}

	return left, nil
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for p.current.typ == tokenStar || p.current.typ == tokenSlash {
		op := p.current
		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}

		if op.typ == tokenStar {
			left *= right
			continue
		}
		if right == 0 {
			return 0, wireerrors.DivisionByZero(p.input, op.position)
		}
		left /= right
	}

	return left, nil
}

func (p *parser) parseUnary() (float64, error) {
	switch p.current.typ {
	case tokenPlus:
		p.advance()
		return p.parseUnary()
	case tokenMinus:
		p.advance()
		value, err := p.parseUnary()
		return -value, err
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (float64, error) {
	switch p.current.typ {
	case tokenNumber:
		value, err := strconv.ParseFloat(p.current.value, 64)
		if err != nil {
			return 0, p.syntaxError(fmt.Sprintf("invalid number %q", p.current.value))
		}
		p.advance()
		return value, nil

	case tokenLeftParen:
		p.advance()

		value, err := p.parseExpression()
		if err != nil {
			return 0, err
		}

		if p.current.typ != tokenRightParen {
			return 0, p.syntaxError("unbalanced parentheses")
		}
		p.advance()
		return value, nil

	case tokenEOF:
		return 0, p.syntaxError("unexpected end of expression")

	default:
		return 0, p.syntaxError(fmt.Sprintf("unexpected token %q", p.current.value))
	}
}

func (p *parser) syntaxError(reason string) *wireerror.Error {
	return wireerrors.Syntax(wireerrors.ModuleEvalx, "eval", wireerror.CodeEvalSyntax,
		p.input, p.current.position, reason)
}
