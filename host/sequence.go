// ==============================================================================================
// FILE: host/sequence.go
// ==============================================================================================
// PACKAGE: host
// PURPOSE: Sequence/string predefined builtins: "first rest get set len" plus the string and
//          list helpers "upper lower split join append count str".
// ==============================================================================================

package host

import (
	"sort"
	"strings"

	"splisp/errors"
	"splisp/spspvalue"
	"splisp/value"
)

func asList(v value.Value) (*spspvalue.List, bool) {
	l, ok := v.(*spspvalue.List)
	return l, ok
}

func registerSequence(table map[string]value.Value) {
	table["first"] = &spspvalue.Builtin{Name: "first", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, errors.NewArityError("first", 1, len(args))
		}
		l, ok := asList(args[0])
		if !ok || l.Len() == 0 {
			return nil, &errors.ValueError{Why: "first requires a non-empty sequence"}
		}
		return l.Elements[0], nil
	}}

	table["rest"] = &spspvalue.Builtin{Name: "rest", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, errors.NewArityError("rest", 1, len(args))
		}
		l, ok := asList(args[0])
		if !ok || l.Len() == 0 {
			return nil, &errors.ValueError{Why: "rest requires a non-empty sequence"}
		}
		return spspvalue.NewList(l.Elements[1:]...), nil
	}}

	table["get"] = &spspvalue.Builtin{Name: "get", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, errors.NewArityError("get", 2, len(args))
		}
		l, ok := asList(args[0])
		idx, idxOk := args[1].(spspvalue.Integer)
		if !ok || !idxOk || idx.Value < 0 || int(idx.Value) >= l.Len() {
			return nil, &errors.ValueError{Why: "get requires (sequence, in-range integer index)"}
		}
		return l.Elements[idx.Value], nil
	}}

	table["set"] = &spspvalue.Builtin{Name: "set", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, errors.NewArityError("set", 3, len(args))
		}
		l, ok := asList(args[0])
		idx, idxOk := args[1].(spspvalue.Integer)
		if !ok || !idxOk || idx.Value < 0 || int(idx.Value) >= l.Len() {
			return nil, &errors.ValueError{Why: "set requires (sequence, in-range integer index, value)"}
		}
		updated := append([]value.Value(nil), l.Elements...)
		updated[idx.Value] = args[2]
		return spspvalue.NewList(updated...), nil
	}}

	table["len"] = &spspvalue.Builtin{Name: "len", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, errors.NewArityError("len", 1, len(args))
		}
		switch v := args[0].(type) {
		case *spspvalue.List:
			return spspvalue.Integer{Value: int64(v.Len())}, nil
		case spspvalue.String:
			return spspvalue.Integer{Value: int64(len(v.Value))}, nil
		default:
			return nil, &errors.ValueError{Why: "len requires a sequence or string"}
		}
	}}
	table["count"] = table["len"]

	table["append"] = &spspvalue.Builtin{Name: "append", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, errors.NewArityError("append", 2, len(args))
		}
		l, ok := asList(args[0])
		if !ok {
			return nil, &errors.ValueError{Why: "append requires (sequence, value)"}
		}
		return spspvalue.NewList(append(append([]value.Value(nil), l.Elements...), args[1])...), nil
	}}

	table["list"] = &spspvalue.Builtin{Name: "list", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) == 1 {
			if l, ok := asList(args[0]); ok {
				return spspvalue.NewList(l.Elements...), nil
			}
		}
		return spspvalue.NewList(args...), nil
	}}

	table["map"] = &spspvalue.Builtin{Name: "map", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, errors.NewArityError("map", 2, len(args))
		}
		fn, ok := args[0].(value.Callable)
		if !ok {
			return nil, &errors.ValueError{Why: "map requires (callable, sequence)"}
		}
		l, listOk := asList(args[1])
		if !listOk {
			return nil, &errors.ValueError{Why: "map requires (callable, sequence)"}
		}
		mapped := make([]value.Value, l.Len())
		for i, el := range l.Elements {
			result, err := fn.Call([]value.Value{el})
			if err != nil {
				return nil, err
			}
			mapped[i] = result
		}
		return spspvalue.NewList(mapped...), nil
	}}

	table["str"] = &spspvalue.Builtin{Name: "str", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, errors.NewArityError("str", 1, len(args))
		}
		if s, ok := args[0].(spspvalue.String); ok {
			return s, nil
		}
		return spspvalue.String{Value: args[0].Inspect()}, nil
	}}

	table["upper"] = stringUnary("upper", strings.ToUpper)
	table["lower"] = stringUnary("lower", strings.ToLower)

	table["split"] = &spspvalue.Builtin{Name: "split", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, errors.NewArityError("split", 2, len(args))
		}
		str, ok1 := args[0].(spspvalue.String)
		sep, ok2 := args[1].(spspvalue.String)
		if !ok1 || !ok2 {
			return nil, &errors.ValueError{Why: "split requires (string, separator)"}
		}
		parts := strings.Split(str.Value, sep.Value)
		elements := make([]value.Value, len(parts))
		for i, p := range parts {
			elements[i] = spspvalue.String{Value: p}
		}
		return spspvalue.NewList(elements...), nil
	}}

	table["join"] = &spspvalue.Builtin{Name: "join", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, errors.NewArityError("join", 2, len(args))
		}
		l, ok1 := asList(args[0])
		sep, ok2 := args[1].(spspvalue.String)
		if !ok1 || !ok2 {
			return nil, &errors.ValueError{Why: "join requires (sequence, separator)"}
		}
		parts := make([]string, l.Len())
		for i, el := range l.Elements {
			if s, ok := el.(spspvalue.String); ok {
				parts[i] = s.Value
			} else {
				parts[i] = el.Inspect()
			}
		}
		return spspvalue.String{Value: strings.Join(parts, sep.Value)}, nil
	}}
}

func stringUnary(name string, transform func(string) string) *spspvalue.Builtin {
	return &spspvalue.Builtin{Name: name, Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, errors.NewArityError(name, 1, len(args))
		}
		s, ok := args[0].(spspvalue.String)
		if !ok {
			return nil, &errors.ValueError{Why: name + " requires a string"}
		}
		return spspvalue.String{Value: transform(s.Value)}, nil
	}}
}

// sortedNames is a small helper shared by the `predefined` builtin.
func sortedNames(table map[string]value.Value) []value.Value {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]value.Value, len(names))
	for i, n := range names {
		out[i] = spspvalue.String{Value: n}
	}
	return out
}
