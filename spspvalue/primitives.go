// ==============================================================================================
// FILE: spspvalue/primitives.go
// ==============================================================================================
// PACKAGE: spspvalue
// PURPOSE: The concrete host value system splisp ships and tests against. These types are the
//          ones the tokenizer constructs for literals, the evaluator passes around, and the
//          predefined table operates on: Integer/Float/Bool/String/Null as flat structs
//          implementing the value.Value contract.
// ==============================================================================================

package spspvalue

import (
	"fmt"
	"strings"

	"splisp/value"
)

// Integer is a 64-bit signed host integer.
type Integer struct{ Value int64 }

func (i Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }
func (i Integer) Truthy() bool    { return i.Value != 0 }
func (i Integer) Equal(o value.Value) bool {
	other, ok := o.(Integer)
	return ok && other.Value == i.Value
}

// Float is a 64-bit host floating point number.
type Float struct{ Value float64 }

func (f Float) Inspect() string {
	s := fmt.Sprintf("%g", f.Value)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
func (f Float) Truthy() bool { return f.Value != 0 }
func (f Float) Equal(o value.Value) bool {
	other, ok := o.(Float)
	return ok && other.Value == f.Value
}

// Bool is a host boolean.
type Bool struct{ Value bool }

func (b Bool) Inspect() string {
	if b.Value {
		return "True"
	}
	return "False"
}
func (b Bool) Truthy() bool { return b.Value }
func (b Bool) Equal(o value.Value) bool {
	other, ok := o.(Bool)
	return ok && other.Value == b.Value
}

// True and False are the two shared Bool values (avoids reallocating a Bool for every
// comparison).
var (
	True  = Bool{Value: true}
	False = Bool{Value: false}
)

// NativeBool returns the shared True/False singleton for a native bool.
func NativeBool(b bool) Bool {
	if b {
		return True
	}
	return False
}

// String is a host string.
type String struct{ Value string }

func (s String) Inspect() string { return fmt.Sprintf("%q", s.Value) }
func (s String) Truthy() bool    { return s.Value != "" }
func (s String) Equal(o value.Value) bool {
	other, ok := o.(String)
	return ok && other.Value == s.Value
}

// Null is the singleton host null value.
type Null struct{}

func (Null) Inspect() string          { return "None" }
func (Null) Truthy() bool             { return false }
func (Null) Equal(o value.Value) bool { _, ok := o.(Null); return ok }

// Nil is the shared Null singleton.
var Nil = Null{}
