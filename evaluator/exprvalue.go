// ==============================================================================================
// FILE: evaluator/exprvalue.go
// ==============================================================================================
// PURPOSE: The bridge between ast.Expression and value.Value. Macro parameters are bound to
//          raw, unevaluated argument expressions, and `expr!` produces an expression as an
//          ordinary value; both need expressions to behave like host values so they can flow
//          through Scope bindings and attribute access (`it::name` in quoted code reads the
//          wrapped Identifier's name).
// ==============================================================================================

package evaluator

import (
	"splisp/ast"
	"splisp/errors"
	"splisp/spspvalue"
	"splisp/value"
)

// ExprValue wraps an ast.Expression so it can be carried as an ordinary host value: bound to a
// macro parameter, stored in a scope, passed to `eval!`/`symbolic!`, or inspected via attribute
// access from quoted code.
type ExprValue struct {
	Expr ast.Expression
}

func (e *ExprValue) Inspect() string { return e.Expr.Code() }

func (e *ExprValue) Truthy() bool { return true }

func (e *ExprValue) Equal(o value.Value) bool {
	other, ok := o.(*ExprValue)
	return ok && other.Expr.Code() == e.Expr.Code()
}

// GetAttr exposes the fields a quoted expression's variant carries: every variant has
// "position"; Identifier and AttributeAccess additionally have "name" (AttributeAccess's name
// is its head, for convenient chaining); AttributeAccess also has "head" and "tail"; Symbolic
// has "operation" and "arguments"; List has "items".
func (e *ExprValue) GetAttr(name string) (value.Value, error) {
	switch expr := e.Expr.(type) {
	case *ast.Identifier:
		switch name {
		case "name":
			return spspvalue.String{Value: expr.Name}, nil
		case "position":
			return spspvalue.Integer{Value: int64(expr.Pos)}, nil
		}
	case *ast.AttributeAccess:
		switch name {
		case "name", "head":
			return spspvalue.String{Value: expr.Head}, nil
		case "tail":
			tail := make([]value.Value, len(expr.Tail))
			for i, t := range expr.Tail {
				tail[i] = spspvalue.String{Value: t}
			}
			return spspvalue.NewList(tail...), nil
		case "position":
			return spspvalue.Integer{Value: int64(expr.Pos)}, nil
		}
	case *ast.Literal:
		switch name {
		case "value":
			return expr.Value, nil
		case "position":
			return spspvalue.Integer{Value: int64(expr.Pos)}, nil
		}
	case *ast.List:
		switch name {
		case "items":
			items := make([]value.Value, len(expr.Items))
			for i, it := range expr.Items {
				items[i] = &ExprValue{Expr: it}
			}
			return spspvalue.NewList(items...), nil
		case "position":
			return spspvalue.Integer{Value: int64(expr.Pos)}, nil
		}
	case *ast.Symbolic:
		switch name {
		case "operation":
			return &ExprValue{Expr: expr.Operation}, nil
		case "arguments":
			args := make([]value.Value, len(expr.Arguments))
			for i, a := range expr.Arguments {
				args[i] = &ExprValue{Expr: a}
			}
			return spspvalue.NewList(args...), nil
		case "position":
			return spspvalue.Integer{Value: int64(expr.Pos)}, nil
		}
	}
	return nil, &errors.AttributeError{Object: e, Attribute: name}
}
