// ==============================================================================================
// FILE: ast/ast.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: The Expression tagged sum: one small struct per variant implementing a shared
//          interface, each carrying a source position and a Code() source-reconstruction
//          method, rather than a single struct with a discriminant field.
// ==============================================================================================

package ast

import (
	"strings"

	"splisp/value"
)

// Expression is the closed set of AST node kinds the Parser produces and the Evaluator walks.
// Dispatch on Expression is by Go type switch, not by a discriminant field.
type Expression interface {
	// Position is the 0-based offset of the expression's first character in the original
	// source stream.
	Position() int

	// Code reconstructs a source form equivalent to the one the expression was parsed from.
	// Used by quotation (`expr!`) debugging output and by the REPL's `ast` dump.
	Code() string
}

// Literal carries a host value read directly off a LITERAL token.
type Literal struct {
	Pos   int
	Value value.Value
}

func (l *Literal) Position() int { return l.Pos }
func (l *Literal) Code() string  { return l.Value.Inspect() }

// Identifier is a bare name resolved against a Scope.
type Identifier struct {
	Pos  int
	Name string
}

func (i *Identifier) Position() int { return i.Pos }
func (i *Identifier) Code() string  { return i.Name }

// AttributeAccess is a head name followed by one or more qualifier-separated attribute steps.
type AttributeAccess struct {
	Pos  int
	Head string
	Tail []string
}

func (a *AttributeAccess) Position() int { return a.Pos }

func (a *AttributeAccess) Code() string {
	return strings.Join(append([]string{a.Head}, a.Tail...), "::")
}

// List is a bracketed, ordered sequence of subexpressions.
type List struct {
	Pos   int
	Items []Expression
}

func (l *List) Position() int { return l.Pos }

func (l *List) Code() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.Code()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Symbolic is a parenthesized application: a head subexpression (the operation) applied to zero
// or more argument subexpressions.
type Symbolic struct {
	Pos       int
	Operation Expression
	Arguments []Expression
}

func (s *Symbolic) Position() int { return s.Pos }

func (s *Symbolic) Code() string {
	parts := make([]string, 0, len(s.Arguments)+1)
	parts = append(parts, s.Operation.Code())
	for _, arg := range s.Arguments {
		parts = append(parts, arg.Code())
	}
	return "(" + strings.Join(parts, " ") + ")"
}
