// ==============================================================================================
// FILE: errors/errors.go
// ==============================================================================================
// PACKAGE: errors
// PURPOSE: The splisp error taxonomy. Each distinguishable failure kind is its own Go struct
//          implementing the standard `error` interface, with Unwrap() where a cause exists so
//          callers can use errors.As/errors.Is instead of a type switch.
// ==============================================================================================

package errors

import (
	"fmt"

	"splisp/value"
)

// SyntaxError is produced by the tokenizer or parser.
type SyntaxError struct {
	Position    int
	Description string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d", e.Description, e.Position)
}

// NameError is raised by Scope.Value when a name cannot be resolved.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name not found: %q", e.Name)
}

// AttributeError is raised when an attribute lookup fails on a host value.
type AttributeError struct {
	Object    interface{}
	Attribute string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%T has no attribute %q", e.Object, e.Attribute)
}

// InvalidBindingTargetError covers keyword binding/unbinding, constant rebinding, disallowed
// attribute/nested targets, and unsuitable variadic capture slots.
type InvalidBindingTargetError struct {
	Target interface{}
	Why    string
}

func (e *InvalidBindingTargetError) Error() string {
	prefix := e.Why
	if prefix == "" {
		prefix = "cannot bind to"
	}
	if prefix[len(prefix)-1] != ' ' {
		prefix += " "
	}
	if s, ok := e.Target.(string); ok {
		return fmt.Sprintf("%s%q", prefix, s)
	}
	return fmt.Sprintf("%s%T", prefix, e.Target)
}

// InvalidBindingError covers structural mismatches: too many/too few values, no suitable
// overload, variadic rebinding attempted.
type InvalidBindingError struct {
	Why string
}

func (e *InvalidBindingError) Error() string { return e.Why }

// ValueError covers misused markers, malformed lambda/macro argument lists, and similar
// "this value is not shaped the way this operation requires" failures.
type ValueError struct {
	Why string
}

func (e *ValueError) Error() string { return e.Why }

// ArityError covers a special form invoked with the wrong number of arguments.
type ArityError struct {
	What     string
	Expected *int
	Actual   *int
}

func (e *ArityError) Error() string {
	switch {
	case e.Expected != nil && e.Actual != nil:
		return fmt.Sprintf("%s: expected %d arguments, got %d", e.What, *e.Expected, *e.Actual)
	case e.Expected != nil:
		return fmt.Sprintf("%s: expected %d arguments", e.What, *e.Expected)
	case e.Actual != nil:
		return fmt.Sprintf("%s: got %d arguments", e.What, *e.Actual)
	default:
		return e.What
	}
}

// NewArityError is a convenience constructor taking plain ints (both required).
func NewArityError(what string, expected, actual int) *ArityError {
	return &ArityError{What: what, Expected: &expected, Actual: &actual}
}

// InvalidKeywordUsageError is reserved for context-specific keyword misuse outside of the
// binding lattice (e.g. `&` appearing outside a structural binding target).
type InvalidKeywordUsageError struct {
	Why string
}

func (e *InvalidKeywordUsageError) Error() string { return e.Why }

// EvaluationError wraps any error raised while evaluating an expression with the position of
// the expression at which it surfaced. Symbolic application call sites
// rewrite Position to the call site rather than an inner body location.
type EvaluationError struct {
	Cause    error
	Position int
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s at %d", e.Cause.Error(), e.Position)
}

func (e *EvaluationError) Unwrap() error { return e.Cause }

// RaisedError carries a host value thrown by the `raise` predefined function so
// `run-catching` can hand the original value back to its handler instead of a stringified error.
type RaisedError struct {
	Value value.Value
}

func (e *RaisedError) Error() string { return "raised: " + e.Value.Inspect() }
