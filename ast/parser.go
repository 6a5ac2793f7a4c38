// ==============================================================================================
// FILE: ast/parser.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: The recursive-descent Parser: one token of lookahead, recursion on the two
//          delimiter pairs, EOS terminating a sub-parse. A struct holds the token source plus
//          the current/peeked token, advanced explicitly between productions.
// ==============================================================================================

package ast

import (
	"fmt"
	"iter"

	"splisp/errors"
	"splisp/token"
)

// TokenSource is anything that yields tokens in order, ending with an unbounded run of EOS.
// lexer.Lexer satisfies this.
type TokenSource interface {
	Next() (token.Token, error)
}

// Parser converts a TokenSource into Expressions by balanced-delimiter recursion. It holds
// exactly one token of lookahead, mirroring the one-character pushback of the tokenizer one
// layer up.
type Parser struct {
	source  TokenSource
	current token.Token
	primed  bool
	err     error
}

// New builds a Parser over the given token source.
func New(source TokenSource) *Parser {
	return &Parser{source: source}
}

func (p *Parser) advance() (token.Token, error) {
	if p.err != nil {
		return token.Token{}, p.err
	}
	t, err := p.source.Next()
	if err != nil {
		p.err = err
		return token.Token{}, err
	}
	p.current = t
	p.primed = true
	return t, nil
}

func (p *Parser) peek() (token.Token, error) {
	if !p.primed {
		return p.advance()
	}
	return p.current, p.err
}

// Next returns the next top-level Expression. ok is false (with a nil error) once the stream is
// exhausted; it is false with a non-nil error on a syntax failure.
func (p *Parser) Next() (expr Expression, ok bool, err error) {
	t, err := p.peek()
	if err != nil {
		return nil, false, err
	}
	if t.Type == token.EOS {
		return nil, false, nil
	}
	expr, err = p.parseExpression()
	if err != nil {
		return nil, false, err
	}
	return expr, true, nil
}

// All returns a range-over-func iterator over every top-level expression. Iteration stops
// early, without a reported error, if the yield function returns false; a syntax error
// surfaces as the iterator's second yielded value on the iteration it occurs in, after which
// the sequence ends.
func (p *Parser) All() iter.Seq2[Expression, error] {
	return func(yield func(Expression, error) bool) {
		for {
			expr, ok, err := p.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				return
			}
			if !yield(expr, nil) {
				return
			}
		}
	}
}

// ParseAll drains the parser into a slice, the common case when laziness isn't needed (e.g. the
// `run` and `ast` CLI subcommands, and most tests).
func (p *Parser) ParseAll() ([]Expression, error) {
	var exprs []Expression
	for {
		expr, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return exprs, nil
		}
		exprs = append(exprs, expr)
	}
}

// parseExpression consumes the current (already-peeked) token and builds one Expression,
// recursing into parseList/parseSymbolic for the bracketed forms.
func (p *Parser) parseExpression() (Expression, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch t.Type {
	case token.Literal:
		p.primed = false
		return &Literal{Pos: t.Position, Value: t.Value}, nil
	case token.Ident:
		p.primed = false
		return &Identifier{Pos: t.Position, Name: t.Name}, nil
	case token.Attr:
		p.primed = false
		return &AttributeAccess{Pos: t.Position, Head: t.Name, Tail: t.Tail}, nil
	case token.LBrack:
		return p.parseList(t)
	case token.LParen:
		return p.parseSymbolic(t)
	case token.RParen, token.RBrack:
		return nil, &errors.SyntaxError{Position: t.Position, Description: fmt.Sprintf("unexpected %q where an expression was expected", t.Type)}
	default:
		return nil, &errors.SyntaxError{Position: t.Position, Description: "unexpected end of stream where an expression was expected"}
	}
}

func (p *Parser) parseList(open token.Token) (Expression, error) {
	p.primed = false // consume '['

	var items []Expression
	var last token.Token = open
	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		if t.Type == token.RBrack {
			p.primed = false
			return &List{Pos: open.Position, Items: items}, nil
		}
		if t.Type == token.EOS {
			return nil, &errors.SyntaxError{Position: t.Position, Description: fmt.Sprintf("unexpected end of stream, expected %q to close %q opened after %s", "]", "[", describe(last))}
		}
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		last = t
	}
}

func (p *Parser) parseSymbolic(open token.Token) (Expression, error) {
	p.primed = false // consume '('

	t, err := p.peek()
	if err != nil {
		return nil, err
	}
	if t.Type == token.RParen {
		return nil, &errors.SyntaxError{Position: t.Position, Description: "empty symbolic application, expected an operation"}
	}
	if t.Type == token.EOS {
		return nil, &errors.SyntaxError{Position: t.Position, Description: fmt.Sprintf("unexpected end of stream, expected %q to close %q opened after %s", ")", "(", describe(open))}
	}

	operation, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var args []Expression
	last := t
	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		if t.Type == token.RParen {
			p.primed = false
			return &Symbolic{Pos: open.Position, Operation: operation, Arguments: args}, nil
		}
		if t.Type == token.EOS {
			return nil, &errors.SyntaxError{Position: t.Position, Description: fmt.Sprintf("unexpected end of stream, expected %q to close %q opened after %s", ")", "(", describe(last))}
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		last = t
	}
}

// describe renders a short, human-readable reference to the last successfully consumed token,
// for the "awaiting a specific closer" error message.
func describe(t token.Token) string {
	switch t.Type {
	case token.Ident:
		return fmt.Sprintf("identifier %q", t.Name)
	case token.Attr:
		return fmt.Sprintf("attribute %q", t.Name)
	case token.Literal:
		return "literal " + t.Value.Inspect()
	default:
		return fmt.Sprintf("%q at position %d", t.Type.String(), t.Position)
	}
}
