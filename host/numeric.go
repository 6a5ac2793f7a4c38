// ==============================================================================================
// FILE: host/numeric.go
// ==============================================================================================
// PACKAGE: host
// PURPOSE: Arithmetic and comparison predefined builtins ("+ - * / % = != < > <= >="): each a
//          Builtin wrapping a Go closure with explicit argument-count/type checks, returning
//          (value.Value, error) the way spspvalue.Builtin expects.
// ==============================================================================================

package host

import (
	"splisp/errors"
	"splisp/spspvalue"
	"splisp/value"
)

func numberOf(v value.Value) (float64, bool, error) {
	switch n := v.(type) {
	case spspvalue.Integer:
		return float64(n.Value), false, nil
	case spspvalue.Float:
		return n.Value, true, nil
	default:
		return 0, false, &errors.ValueError{Why: "expected a number"}
	}
}

// numeric folds args through op as floats, presenting the result as Integer when every
// argument was an Integer. The Integer/Float split is a presentation distinction, not a
// separate numeric tower.
func numeric(name string, identity float64, op func(a, b float64) float64) *spspvalue.Builtin {
	return &spspvalue.Builtin{Name: name, Fn: func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return spspvalue.Integer{Value: int64(identity)}, nil
		}

		allInt := true
		acc, isFloat, err := numberOf(args[0])
		if err != nil {
			return nil, err
		}
		if isFloat {
			allInt = false
		}

		for _, a := range args[1:] {
			n, f, err := numberOf(a)
			if err != nil {
				return nil, err
			}
			if f {
				allInt = false
			}
			acc = op(acc, n)
		}

		if allInt {
			return spspvalue.Integer{Value: int64(acc)}, nil
		}
		return spspvalue.Float{Value: acc}, nil
	}}
}

func unaryOrFold(name string, unary func(a float64) float64, fold func(a, b float64) float64) *spspvalue.Builtin {
	return &spspvalue.Builtin{Name: name, Fn: func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return nil, errors.NewArityError(name, 1, 0)
		}

		first, isFloat, err := numberOf(args[0])
		if err != nil {
			return nil, err
		}

		if len(args) == 1 {
			result := unary(first)
			if isFloat {
				return spspvalue.Float{Value: result}, nil
			}
			return spspvalue.Integer{Value: int64(result)}, nil
		}

		allInt := !isFloat
		acc := first
		for _, a := range args[1:] {
			n, f, err := numberOf(a)
			if err != nil {
				return nil, err
			}
			if f {
				allInt = false
			}
			acc = fold(acc, n)
		}
		if allInt {
			return spspvalue.Integer{Value: int64(acc)}, nil
		}
		return spspvalue.Float{Value: acc}, nil
	}}
}

func registerArithmetic(table map[string]value.Value) {
	table["+"] = numeric("+", 0, func(a, b float64) float64 { return a + b })
	table["*"] = numeric("*", 1, func(a, b float64) float64 { return a * b })
	table["-"] = unaryOrFold("-", func(a float64) float64 { return -a }, func(a, b float64) float64 { return a - b })
	table["/"] = unaryOrFold("/", func(a float64) float64 { return 1 / a }, func(a, b float64) float64 { return a / b })
	table["%"] = &spspvalue.Builtin{Name: "%", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, errors.NewArityError("%", 2, len(args))
		}
		a, _, err := numberOf(args[0])
		if err != nil {
			return nil, err
		}
		b, _, err := numberOf(args[1])
		if err != nil {
			return nil, err
		}
		return spspvalue.Integer{Value: int64(a) % int64(b)}, nil
	}}
}

func registerComparison(table map[string]value.Value) {
	table["="] = &spspvalue.Builtin{Name: "=", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, errors.NewArityError("=", 2, len(args))
		}
		return spspvalue.NativeBool(args[0].Equal(args[1])), nil
	}}
	table["!="] = &spspvalue.Builtin{Name: "!=", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, errors.NewArityError("!=", 2, len(args))
		}
		return spspvalue.NativeBool(!args[0].Equal(args[1])), nil
	}}

	ordering := func(name string, cmp func(a, b float64) bool) *spspvalue.Builtin {
		return &spspvalue.Builtin{Name: name, Fn: func(args []value.Value) (value.Value, error) {
			if len(args) != 2 {
				return nil, errors.NewArityError(name, 2, len(args))
			}
			a, _, err := numberOf(args[0])
			if err != nil {
				return nil, err
			}
			b, _, err := numberOf(args[1])
			if err != nil {
				return nil, err
			}
			return spspvalue.NativeBool(cmp(a, b)), nil
		}}
	}
	table["<"] = ordering("<", func(a, b float64) bool { return a < b })
	table[">"] = ordering(">", func(a, b float64) bool { return a > b })
	table["<="] = ordering("<=", func(a, b float64) bool { return a <= b })
	table[">="] = ordering(">=", func(a, b float64) bool { return a >= b })
}
