// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: The tree-walking evaluator: a type-switch Eval function over the Expression
//          variants, errors surfaced as Go error returns and tagged with the position of the
//          expression they arose in. Symbolic applications rewrite inner error positions to
//          the call site.
// ==============================================================================================

package evaluator

import (
	"fmt"

	"splisp/ast"
	"splisp/errors"
	"splisp/scope"
	"splisp/value"
)

// Eval evaluates expr in sc. Every non-EvaluationError failure is wrapped as an EvaluationError
// positioned at expr.Position(); an already-tagged EvaluationError bubbles unchanged. When
// forceLazy is true, a Lazy result is forced before returning.
func Eval(expr ast.Expression, sc *scope.Scope, forceLazy bool) (value.Value, error) {
	result, err := dispatch(expr, sc)
	if err != nil {
		if evalErr, ok := err.(*errors.EvaluationError); ok {
			return nil, evalErr
		}
		return nil, &errors.EvaluationError{Cause: err, Position: expr.Position()}
	}

	if forceLazy {
		forced, err := value.Force(result)
		if err != nil {
			if evalErr, ok := err.(*errors.EvaluationError); ok {
				return nil, evalErr
			}
			return nil, &errors.EvaluationError{Cause: err, Position: expr.Position()}
		}
		return forced, nil
	}

	return result, nil
}

func dispatch(expr ast.Expression, sc *scope.Scope) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Identifier:
		return sc.Value(e.Name)

	case *ast.AttributeAccess:
		head, err := sc.Value(e.Head)
		if err != nil {
			return nil, err
		}
		return getAttributeChain(head, e.Tail)

	case *ast.List:
		elements := make([]value.Value, len(e.Items))
		for i, item := range e.Items {
			v, err := Eval(item, sc, false)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return newTuple(elements), nil

	case *ast.Symbolic:
		return evalSymbolic(e, sc)

	default:
		return nil, fmt.Errorf("unsupported expression type %T", expr)
	}
}

// evalSymbolic dispatches a parenthesized application: special forms first, then Macro
// expansion, then Function application, then a generic host-callable fallback.
func evalSymbolic(expr *ast.Symbolic, sc *scope.Scope) (value.Value, error) {
	if ident, ok := expr.Operation.(*ast.Identifier); ok {
		if form, ok := specialForms[ident.Name]; ok {
			return form(expr.Arguments, sc)
		}
	}

	operation, err := Eval(expr.Operation, sc, true)
	if err != nil {
		return nil, rewrapAtCallSite(err, expr.Pos)
	}

	if macro, ok := operation.(*Macro); ok {
		generated, err := macro.Expand(expr.Arguments)
		if err != nil {
			return nil, rewrapAtCallSite(err, expr.Pos)
		}
		result, err := Eval(generated, sc, false)
		if err != nil {
			return nil, rewrapAtCallSite(err, expr.Pos)
		}
		return result, nil
	}

	if fn, ok := operation.(*Function); ok {
		args := make([]value.Value, len(expr.Arguments))
		for i, a := range expr.Arguments {
			v, err := Eval(a, sc, false)
			if err != nil {
				return nil, rewrapAtCallSite(err, expr.Pos)
			}
			args[i] = v
		}
		result, err := fn.Call(args)
		if err != nil {
			return nil, rewrapAtCallSite(err, expr.Pos)
		}
		return result, nil
	}

	callable, ok := operation.(value.Callable)
	if !ok {
		return nil, &errors.ValueError{Why: fmt.Sprintf("%s is not callable", operation.Inspect())}
	}

	args := make([]value.Value, len(expr.Arguments))
	for i, a := range expr.Arguments {
		v, err := Eval(a, sc, true)
		if err != nil {
			return nil, rewrapAtCallSite(err, expr.Pos)
		}
		args[i] = v
	}
	result, err := callable.Call(args)
	if err != nil {
		return nil, rewrapAtCallSite(err, expr.Pos)
	}
	return result, nil
}

// rewrapAtCallSite overwrites an already-tagged EvaluationError's position with the calling
// Symbolic expression's position, so a failure inside a Function/Macro body is reported at the
// call site rather than the body's inner location.
// Errors that aren't yet EvaluationErrors are returned unchanged; Eval's own wrapping (at the
// caller one level up) will tag them with the correct position.
func rewrapAtCallSite(err error, pos int) error {
	if evalErr, ok := err.(*errors.EvaluationError); ok {
		return &errors.EvaluationError{Cause: evalErr.Cause, Position: pos}
	}
	return err
}
