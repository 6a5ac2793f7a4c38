// ==============================================================================================
// FILE: value/value.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: Defines the narrow contract between the splisp core (tokenizer, parser, scope,
//          evaluator) and whatever host runtime supplies concrete values: reading attributes,
//          writing attributes, calling callables, and testing truthiness/equality. Concrete
//          value kinds (integers, strings, records, ...) live in the spspvalue package; the
//          tokenizer and evaluator construct spspvalue literals, null and lists directly, and
//          otherwise operate on values only through these interfaces.
// ==============================================================================================

package value

// Value is any host-native value the core can hold, pass around, and operate on.
type Value interface {
	// Inspect renders the value for display (REPL echo, error messages, debug dumps).
	Inspect() string

	// Truthy reports whether the value is considered true in an `if` condition.
	Truthy() bool

	// Equal reports host-level equality, used by `=`/`!=`-style predefined operators.
	Equal(other Value) bool
}

// AttributeGetter is implemented by values that expose named attributes (records, modules,
// quoted expressions). AttributeAccess expressions call GetAttr; a missing attribute is
// reported as an *errors.AttributeError.
type AttributeGetter interface {
	GetAttr(name string) (Value, error)
}

// AttributeSetter is implemented by values whose attributes can be assigned, e.g. by
// `(let x::field v)` or structural binding against an AttributeAccess target.
type AttributeSetter interface {
	SetAttr(name string, v Value) error
}

// AttributeDeleter is implemented by values whose attributes can be removed, e.g. by
// `(del x::field)`.
type AttributeDeleter interface {
	DeleteAttr(name string) error
}

// Callable is implemented by any value that can appear as the operation of a Symbolic
// expression and be invoked with a positional argument list.
type Callable interface {
	Call(args []Value) (Value, error)
}

// Forceable is implemented by Lazy values: a one-shot memoized thunk that the evaluator
// transparently dereferences at "force" call sites.
type Forceable interface {
	Force() (Value, error)
}

// Force dereferences v if it is Forceable, recursing until a non-Forceable value is reached
// (a Lazy may itself contain a Lazy).
func Force(v Value) (Value, error) {
	for {
		f, ok := v.(Forceable)
		if !ok {
			return v, nil
		}
		forced, err := f.Force()
		if err != nil {
			return nil, err
		}
		if forced == v {
			return forced, nil
		}
		v = forced
	}
}
