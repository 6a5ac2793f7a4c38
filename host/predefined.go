// ==============================================================================================
// FILE: host/predefined.go
// ==============================================================================================
// PACKAGE: host
// PURPOSE: The predefined names every root scope carries beyond the special forms table:
//          import-module, raise, run-catching, make-lazy, call, doc, predefined. Each wraps
//          the mechanism it fronts: import-module wraps Scope.ImportModule, make-lazy wraps
//          value.NewLazy, run-catching wraps the EvaluationError/RaisedError unwrap chain.
// ==============================================================================================

package host

import (
	"splisp/errors"
	"splisp/scope"
	"splisp/spspvalue"
	"splisp/value"
)

// ModuleRegistry is a simple name -> value map backing the root scope's module importer: the
// host's concrete scope.ModuleImporter.
type ModuleRegistry struct {
	modules map[string]value.Value
}

func NewModuleRegistry() *ModuleRegistry {
	return &ModuleRegistry{modules: map[string]value.Value{}}
}

// Register makes a module available to `import-module` under name.
func (r *ModuleRegistry) Register(name string, module value.Value) {
	r.modules[name] = module
}

func (r *ModuleRegistry) ImportModule(name string) (value.Value, error) {
	if m, ok := r.modules[name]; ok {
		return m, nil
	}
	return nil, &errors.NameError{Name: name}
}

// asCallable requires a Callable argument, producing the same shaped error every call-taking
// builtin (call/run-catching/make-lazy) needs.
func asCallable(v value.Value, who string) (value.Callable, error) {
	c, ok := v.(value.Callable)
	if !ok {
		return nil, &errors.ValueError{Why: who + " requires a callable argument"}
	}
	return c, nil
}

func registerCore(table map[string]value.Value, root *scope.Scope) {
	table["import-module"] = &spspvalue.Builtin{Name: "import-module", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, errors.NewArityError("import-module", 1, len(args))
		}
		name, ok := args[0].(spspvalue.String)
		if !ok {
			return nil, &errors.ValueError{Why: "import-module requires a string module name"}
		}
		return root.ImportModule(name.Value)
	}}

	table["raise"] = &spspvalue.Builtin{Name: "raise", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, errors.NewArityError("raise", 1, len(args))
		}
		return nil, &errors.RaisedError{Value: args[0]}
	}}

	// run-catching takes (body, handler, finalizer): body is called with no arguments; if it
	// raises, handler is called with the unwrapped raised/evaluation value instead; finalizer
	// (if not None) always runs afterward with no arguments and its result is discarded.
	table["run-catching"] = &spspvalue.Builtin{Name: "run-catching", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, errors.NewArityError("run-catching", 3, len(args))
		}
		body, err := asCallable(args[0], "run-catching")
		if err != nil {
			return nil, err
		}
		handler, err := asCallable(args[1], "run-catching")
		if err != nil {
			return nil, err
		}

		result, callErr := body.Call(nil)
		if callErr != nil {
			result, callErr = handler.Call([]value.Value{caughtValue(callErr)})
		}

		if finalizer, ok := args[2].(value.Callable); ok {
			if _, ferr := finalizer.Call(nil); ferr != nil {
				return nil, ferr
			}
		}

		if callErr != nil {
			return nil, callErr
		}
		return result, nil
	}}

	table["make-lazy"] = &spspvalue.Builtin{Name: "make-lazy", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, errors.NewArityError("make-lazy", 1, len(args))
		}
		thunk, err := asCallable(args[0], "make-lazy")
		if err != nil {
			return nil, err
		}
		return value.NewLazy(func() (value.Value, error) { return thunk.Call(nil) }), nil
	}}

	table["call"] = &spspvalue.Builtin{Name: "call", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, errors.NewArityError("call", 2, len(args))
		}
		fn, err := asCallable(args[0], "call")
		if err != nil {
			return nil, err
		}
		seq, err := sequenceArgument(args[1])
		if err != nil {
			return nil, err
		}
		return fn.Call(seq)
	}}

	// make-record builds an empty open attribute bag; fields are populated afterward with
	// `(let r::field v)`. The language has no struct-definition special form, so this is the
	// one way splisp code conjures an attributed object.
	table["make-record"] = &spspvalue.Builtin{Name: "make-record", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, errors.NewArityError("make-record", 0, len(args))
		}
		return spspvalue.NewRecord(), nil
	}}

	table["doc"] = &spspvalue.Builtin{Name: "doc", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, errors.NewArityError("doc", 1, len(args))
		}
		getter, ok := args[0].(value.AttributeGetter)
		if !ok {
			return spspvalue.Nil, nil
		}
		doc, err := getter.GetAttr("__doc__")
		if err != nil {
			return spspvalue.Nil, nil
		}
		return doc, nil
	}}

	table["predefined"] = &spspvalue.Builtin{Name: "predefined", Fn: func(args []value.Value) (value.Value, error) {
		return spspvalue.NewList(sortedNames(table)...), nil
	}}
}

// caughtValue unwraps the evaluator's position-tagged EvaluationError and the host's RaisedError
// down to the value a `run-catching` handler should see; any other error surfaces as a string
// describing it, since it didn't originate from a `raise` call.
func caughtValue(err error) value.Value {
	for {
		if evalErr, ok := err.(*errors.EvaluationError); ok {
			err = evalErr.Cause
			continue
		}
		break
	}
	if raised, ok := err.(*errors.RaisedError); ok {
		return raised.Value
	}
	return spspvalue.String{Value: err.Error()}
}

func sequenceArgument(v value.Value) ([]value.Value, error) {
	seq, ok := v.(interface{ SequenceElements() []value.Value })
	if !ok {
		return nil, &errors.ValueError{Why: "expected a sequence of call arguments"}
	}
	return seq.SequenceElements(), nil
}
