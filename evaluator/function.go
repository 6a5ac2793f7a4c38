// ==============================================================================================
// FILE: evaluator/function.go
// ==============================================================================================
// PURPOSE: Function and Macro: closure values holding an ordered sequence of
//          (parameter-target, body) overloads plus the scope they were defined in. Arguments
//          are bound into a scope derived from the closure scope before the selected body
//          runs. Both types live in this package rather than a separate one so they can call
//          Eval without an import cycle.
// ==============================================================================================

package evaluator

import (
	"fmt"

	"splisp/ast"
	"splisp/errors"
	"splisp/scope"
	"splisp/value"
)

// Overload pairs one structural parameter target with one body expression.
type Overload struct {
	Target BindingTarget
	Body   ast.Expression
}

func selectOverload(overloads []Overload, n int) (Overload, error) {
	for _, ov := range overloads {
		if accepts(ov.Target, n) {
			return ov, nil
		}
	}
	return Overload{}, &errors.InvalidBindingError{Why: fmt.Sprintf("no suitable overload for %d argument(s)", n)}
}

// Function is a closure value: an ordered, non-empty sequence of overloads plus the scope it
// was defined in.
type Function struct {
	Overloads []Overload
	Closure   *scope.Scope
}

func (f *Function) Inspect() string { return "<function>" }

func (f *Function) Truthy() bool { return true }

func (f *Function) Equal(o value.Value) bool {
	other, ok := o.(*Function)
	return ok && other == f
}

// Call invokes the function: select the overload whose target
// accepts len(args), bind it into a scope derived from the closure scope (mutable=false), then
// evaluate its body in that scope.
func (f *Function) Call(args []value.Value) (value.Value, error) {
	overload, err := selectOverload(f.Overloads, len(args))
	if err != nil {
		return nil, err
	}

	local := f.Closure.Derive()
	if err := bindStructural(overload.Target, args, false, local); err != nil {
		return nil, err
	}

	return Eval(overload.Body, local, false)
}

// Macro is a closure value whose overload parameter targets may not be nested or
// attribute-typed, and whose invocation receives unevaluated argument expressions rather than
// values.
type Macro struct {
	Overloads []Overload
	Closure   *scope.Scope
}

func (m *Macro) Inspect() string { return "<macro>" }

func (m *Macro) Truthy() bool { return true }

func (m *Macro) Equal(o value.Value) bool {
	other, ok := o.(*Macro)
	return ok && other == m
}

// Expand invokes the macro: the raw argument expressions (each
// wrapped as an ExprValue so structural binding can treat them like ordinary values) are bound
// into a scope derived from the closure scope; the body is evaluated there, and must itself
// evaluate to an expression value, which Expand unwraps and returns for the caller to evaluate
// in ITS OWN scope (not the macro's closure scope).
func (m *Macro) Expand(args []ast.Expression) (ast.Expression, error) {
	values := make([]value.Value, len(args))
	for i, a := range args {
		values[i] = &ExprValue{Expr: a}
	}

	overload, err := selectOverload(m.Overloads, len(values))
	if err != nil {
		return nil, err
	}

	local := m.Closure.Derive()
	if err := bindStructural(overload.Target, values, false, local); err != nil {
		return nil, err
	}

	result, err := Eval(overload.Body, local, false)
	if err != nil {
		return nil, err
	}

	ev, ok := result.(*ExprValue)
	if !ok {
		return nil, &errors.ValueError{Why: "macro body must evaluate to an expression"}
	}
	return ev.Expr, nil
}
