// ==============================================================================================
// FILE: spspvalue/list.go
// ==============================================================================================
package spspvalue

import (
	"strings"

	"splisp/value"
)

// List is the host sequence value produced by evaluating a bracketed List expression, and the
// value variadic rest-captures and `[a b c]` structural binding targets operate over.
type List struct {
	Elements []value.Value
}

func NewList(elements ...value.Value) *List {
	return &List{Elements: elements}
}

func (l *List) Inspect() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, el := range l.Elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(el.Inspect())
	}
	b.WriteByte(']')
	return b.String()
}

func (l *List) Truthy() bool { return len(l.Elements) > 0 }

func (l *List) Equal(o value.Value) bool {
	other, ok := o.(*List)
	if !ok || len(other.Elements) != len(l.Elements) {
		return false
	}
	for i, el := range l.Elements {
		if !el.Equal(other.Elements[i]) {
			return false
		}
	}
	return true
}

// Len reports the number of elements, used by the `len`/`count` predefined functions.
func (l *List) Len() int { return len(l.Elements) }

// SequenceElements exposes the ordered elements for structural binding and the
// `symbolic!` special form, which both need to pull a host value apart into positional values
// without the core depending on *List directly.
func (l *List) SequenceElements() []value.Value { return l.Elements }
