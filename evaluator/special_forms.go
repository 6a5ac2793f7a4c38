// ==============================================================================================
// FILE: evaluator/special_forms.go
// ==============================================================================================
// PURPOSE: The special form registry and definitions: a name→rule map with the arity check
//          baked into registration, so each rule body only sees an argument list of the
//          declared length.
// ==============================================================================================

package evaluator

import (
	"fmt"

	"splisp/ast"
	"splisp/errors"
	"splisp/scope"
	"splisp/spspvalue"
	"splisp/value"
)

// SpecialForm evaluates a Symbolic application's arguments without them being pre-evaluated.
type SpecialForm func(args []ast.Expression, sc *scope.Scope) (value.Value, error)

var specialForms = map[string]SpecialForm{}

func registerFixed(name string, n int, fn SpecialForm) {
	specialForms[name] = func(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
		if len(args) != n {
			return nil, errors.NewArityError(name, n, len(args))
		}
		return fn(args, sc)
	}
}

func registerVariadic(name string, fn SpecialForm) {
	specialForms[name] = fn
}

// init populates the special form table explicitly at startup, rather than relying on
// declaration order.
func init() {
	registerFixed("if", 3, evalIf)
	registerFixed("let", 2, evalLet)
	registerFixed("rebind", 2, evalRebind)
	registerFixed("del", 1, evalDel)
	registerVariadic("lambda", evalLambda)
	registerVariadic("macro", evalMacro)
	registerVariadic("do", evalDo)
	registerFixed("expr!", 1, evalQuote)
	registerFixed("eval!", 1, evalEval)
	registerFixed("symbolic!", 1, evalSymbolicForm)
}

func evalIf(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
	condition, whenTrue, whenFalse := args[0], args[1], args[2]

	cond, err := Eval(condition, sc, true)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return Eval(whenTrue, sc, false)
	}
	return Eval(whenFalse, sc, false)
}

func evalLet(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
	target, valueExpr := args[0], args[1]

	switch t := target.(type) {
	case *ast.Identifier:
		v, err := Eval(valueExpr, sc, false)
		if err != nil {
			return nil, err
		}
		if err := sc.Let(t.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.AttributeAccess:
		v, err := Eval(valueExpr, sc, false)
		if err != nil {
			return nil, err
		}
		head, err := sc.Value(t.Head)
		if err != nil {
			return nil, err
		}
		obj, err := getAttributeChain(head, t.Tail[:len(t.Tail)-1])
		if err != nil {
			return nil, err
		}
		if err := setAttributeValue(obj, t.Tail[len(t.Tail)-1], v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.List:
		v, err := Eval(valueExpr, sc, false)
		if err != nil {
			return nil, err
		}
		bindTarget, err := parseStructuralTarget(t, true, true)
		if err != nil {
			return nil, err
		}
		elements, err := sequenceElements(v)
		if err != nil {
			return nil, err
		}
		if err := bindStructural(bindTarget, elements, true, sc); err != nil {
			return nil, err
		}
		return v, nil

	default:
		return nil, &errors.InvalidBindingTargetError{Target: target}
	}
}

func evalRebind(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
	target, valueExpr := args[0], args[1]

	switch t := target.(type) {
	case *ast.Identifier:
		v, err := Eval(valueExpr, sc, false)
		if err != nil {
			return nil, err
		}
		if err := sc.Rebind(t.Name, v, true); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.AttributeAccess:
		return nil, &errors.InvalidBindingTargetError{Target: target, Why: `use "let" to change attribute values`}

	case *ast.List:
		v, err := Eval(valueExpr, sc, false)
		if err != nil {
			return nil, err
		}
		bindTarget, err := parseStructuralTarget(t, true, false)
		if err != nil {
			return nil, err
		}
		elements, err := sequenceElements(v)
		if err != nil {
			return nil, err
		}
		if err := rebindStructural(bindTarget, elements, true, sc); err != nil {
			return nil, err
		}
		return v, nil

	default:
		return nil, &errors.InvalidBindingTargetError{Target: target}
	}
}

func evalDel(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
	target := args[0]

	switch t := target.(type) {
	case *ast.Identifier:
		if err := sc.Delete(t.Name); err != nil {
			return nil, err
		}
		return spspvalue.Nil, nil

	case *ast.AttributeAccess:
		head, err := sc.Value(t.Head)
		if err != nil {
			return nil, err
		}
		obj, err := getAttributeChain(head, t.Tail[:len(t.Tail)-1])
		if err != nil {
			return nil, err
		}
		if err := deleteAttributeValue(obj, t.Tail[len(t.Tail)-1]); err != nil {
			return nil, err
		}
		return spspvalue.Nil, nil

	default:
		return nil, &errors.InvalidBindingTargetError{Target: target}
	}
}

// parseOverloads handles both `(lambda <args> <body>)` and `(lambda (<args1> <body1>) ...)`,
// for lambda and macro alike.
func parseOverloads(args []ast.Expression, allowNested, allowAttributes bool, keyword string) ([]Overload, error) {
	usage := &errors.ValueError{Why: fmt.Sprintf(
		`"%s": usage: (%s <args-list> <body>) or (%s (<args-list> <body>) +)`, keyword, keyword, keyword)}

	if len(args) == 0 {
		return nil, usage
	}

	if len(args) == 2 {
		if argsList, ok := args[0].(*ast.List); ok {
			target, err := parseStructuralTarget(argsList, allowNested, allowAttributes)
			if err != nil {
				return nil, err
			}
			return []Overload{{Target: target, Body: args[1]}}, nil
		}
	}

	overloads := make([]Overload, 0, len(args))
	for _, a := range args {
		sym, ok := a.(*ast.Symbolic)
		if !ok {
			return nil, usage
		}
		argsList, ok := sym.Operation.(*ast.List)
		if !ok || len(sym.Arguments) != 1 {
			return nil, usage
		}
		target, err := parseStructuralTarget(argsList, allowNested, allowAttributes)
		if err != nil {
			return nil, err
		}
		overloads = append(overloads, Overload{Target: target, Body: sym.Arguments[0]})
	}
	return overloads, nil
}

func evalLambda(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
	overloads, err := parseOverloads(args, true, false, "lambda")
	if err != nil {
		return nil, err
	}
	return &Function{Overloads: overloads, Closure: sc}, nil
}

func evalMacro(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
	overloads, err := parseOverloads(args, false, false, "macro")
	if err != nil {
		return nil, err
	}
	return &Macro{Overloads: overloads, Closure: sc}, nil
}

func evalDo(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
	local := sc.Derive()

	var result value.Value = spspvalue.Nil
	for _, a := range args {
		v, err := Eval(a, local, false)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalQuote implements `expr!`: recursively rewrite the argument expression, splicing in
// `(inline! E)` as the evaluated expression itself and `(inline-value! E)` as a Literal wrapping
// the evaluated value; everything else is preserved structurally.
func evalQuote(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
	rewritten, err := quotePreprocess(args[0], sc)
	if err != nil {
		return nil, err
	}
	return &ExprValue{Expr: rewritten}, nil
}

func quotePreprocess(expr ast.Expression, sc *scope.Scope) (ast.Expression, error) {
	switch e := expr.(type) {
	case *ast.Symbolic:
		if ident, ok := e.Operation.(*ast.Identifier); ok && (ident.Name == "inline!" || ident.Name == "inline-value!") {
			if len(e.Arguments) != 1 {
				return nil, errors.NewArityError(ident.Name, 1, len(e.Arguments))
			}

			v, err := Eval(e.Arguments[0], sc, false)
			if err != nil {
				return nil, err
			}

			if ident.Name == "inline!" {
				ev, ok := v.(*ExprValue)
				if !ok {
					return nil, &errors.ValueError{Why: `"inline!" requires an expression value`}
				}
				return ev.Expr, nil
			}
			return &ast.Literal{Pos: e.Pos, Value: v}, nil
		}

		operation, err := quotePreprocess(e.Operation, sc)
		if err != nil {
			return nil, err
		}
		newArgs := make([]ast.Expression, len(e.Arguments))
		for i, a := range e.Arguments {
			na, err := quotePreprocess(a, sc)
			if err != nil {
				return nil, err
			}
			newArgs[i] = na
		}
		return &ast.Symbolic{Pos: e.Pos, Operation: operation, Arguments: newArgs}, nil

	case *ast.List:
		items := make([]ast.Expression, len(e.Items))
		for i, it := range e.Items {
			ni, err := quotePreprocess(it, sc)
			if err != nil {
				return nil, err
			}
			items[i] = ni
		}
		return &ast.List{Pos: e.Pos, Items: items}, nil

	default:
		return expr, nil
	}
}

// evalEval implements `eval!`: evaluate(evaluate(arg)): the argument evaluates to an
// expression value, which is then evaluated again.
func evalEval(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
	v, err := Eval(args[0], sc, false)
	if err != nil {
		return nil, err
	}
	ev, ok := v.(*ExprValue)
	if !ok {
		return nil, &errors.ValueError{Why: `"eval!" requires an expression value`}
	}
	return Eval(ev.Expr, sc, false)
}

// evalSymbolicForm implements `symbolic!`: evaluate the argument to a sequence of expression
// values and reassemble a Symbolic expression from its head and rest.
func evalSymbolicForm(args []ast.Expression, sc *scope.Scope) (value.Value, error) {
	v, err := Eval(args[0], sc, false)
	if err != nil {
		return nil, err
	}
	elements, err := sequenceElements(v)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, &errors.ValueError{Why: `"symbolic!" requires a non-empty sequence`}
	}

	opExpr, err := asExpression(elements[0])
	if err != nil {
		return nil, err
	}
	argExprs := make([]ast.Expression, len(elements)-1)
	for i, el := range elements[1:] {
		ae, err := asExpression(el)
		if err != nil {
			return nil, err
		}
		argExprs[i] = ae
	}

	return &ExprValue{Expr: &ast.Symbolic{Pos: args[0].Position(), Operation: opExpr, Arguments: argExprs}}, nil
}

func asExpression(v value.Value) (ast.Expression, error) {
	ev, ok := v.(*ExprValue)
	if !ok {
		return nil, &errors.ValueError{Why: `"symbolic!" requires a sequence of expression values`}
	}
	return ev.Expr, nil
}
