// ==============================================================================================
// FILE: spspvalue/builtin.go
// ==============================================================================================
package spspvalue

import "splisp/value"

// Builtin wraps a native Go function as a host callable for the predefined table.
type Builtin struct {
	Name string
	Fn   func(args []value.Value) (value.Value, error)
}

func (b *Builtin) Call(args []value.Value) (value.Value, error) { return b.Fn(args) }

func (b *Builtin) Inspect() string { return "<builtin " + b.Name + ">" }

func (b *Builtin) Truthy() bool { return true }

func (b *Builtin) Equal(o value.Value) bool {
	other, ok := o.(*Builtin)
	return ok && other == b
}
