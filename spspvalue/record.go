// ==============================================================================================
// FILE: spspvalue/record.go
// ==============================================================================================
package spspvalue

import (
	"sort"
	"strings"

	"splisp/errors"
	"splisp/value"
)

// Record is a plain attributed host object: the value AttributeAccess expressions,
// `(let x::field v)`, and `(del x::field)` read, write, and delete against when the target
// isn't backed by anything richer. An open attribute bag rather than a fixed struct
// definition, since the language has no struct-definition special form of its own (records
// are built and populated by predefined host functions, e.g. `make-record`).
type Record struct {
	Fields map[string]value.Value
}

func NewRecord() *Record {
	return &Record{Fields: map[string]value.Value{}}
}

func (r *Record) GetAttr(name string) (value.Value, error) {
	v, ok := r.Fields[name]
	if !ok {
		return nil, &errors.AttributeError{Object: r, Attribute: name}
	}
	return v, nil
}

func (r *Record) SetAttr(name string, v value.Value) error {
	r.Fields[name] = v
	return nil
}

func (r *Record) DeleteAttr(name string) error {
	if _, ok := r.Fields[name]; !ok {
		return &errors.AttributeError{Object: r, Attribute: name}
	}
	delete(r.Fields, name)
	return nil
}

func (r *Record) Inspect() string {
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(r.Fields[name].Inspect())
	}
	b.WriteByte('}')
	return b.String()
}

func (r *Record) Truthy() bool { return true }

func (r *Record) Equal(o value.Value) bool {
	other, ok := o.(*Record)
	return ok && other == r
}
