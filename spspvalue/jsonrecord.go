// ==============================================================================================
// FILE: spspvalue/jsonrecord.go
// ==============================================================================================
package spspvalue

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"splisp/errors"
	"splisp/value"
)

// JSONRecord is a Record-shaped host value backed by a JSON document instead of a Go map:
// attribute reads go through gjson and writes/deletes through sjson, the way a host embedding
// splisp to wrap an existing JSON-configured system would. host.NewRootScope uses one as the
// root scope's host-builtins module.
type JSONRecord struct {
	raw string
}

// NewJSONRecord builds a JSONRecord from a raw JSON document. An empty document is treated as
// an empty object.
func NewJSONRecord(raw string) *JSONRecord {
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}
	return &JSONRecord{raw: raw}
}

func (j *JSONRecord) Raw() string { return j.raw }

func (j *JSONRecord) GetAttr(name string) (value.Value, error) {
	result := gjson.Get(j.raw, name)
	if !result.Exists() {
		return nil, &errors.AttributeError{Object: j, Attribute: name}
	}
	return jsonToValue(result), nil
}

func (j *JSONRecord) SetAttr(name string, v value.Value) error {
	updated, err := sjson.Set(j.raw, name, valueToJSON(v))
	if err != nil {
		return err
	}
	j.raw = updated
	return nil
}

func (j *JSONRecord) DeleteAttr(name string) error {
	updated, err := sjson.Delete(j.raw, name)
	if err != nil {
		return err
	}
	j.raw = updated
	return nil
}

func (j *JSONRecord) Inspect() string { return j.raw }

func (j *JSONRecord) Truthy() bool { return j.raw != "" && j.raw != "{}" }

func (j *JSONRecord) Equal(o value.Value) bool {
	other, ok := o.(*JSONRecord)
	return ok && other.raw == j.raw
}

// jsonToValue converts a gjson.Result to a host Value for attribute reads.
func jsonToValue(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.Number:
		if r.Num == float64(int64(r.Num)) {
			return Integer{Value: int64(r.Num)}
		}
		return Float{Value: r.Num}
	case gjson.True:
		return True
	case gjson.False:
		return False
	case gjson.Null:
		return Nil
	case gjson.String:
		return String{Value: r.Str}
	default:
		return String{Value: r.Raw}
	}
}

// valueToJSON converts a host Value to a plain Go value sjson.Set can marshal.
func valueToJSON(v value.Value) interface{} {
	switch t := v.(type) {
	case Integer:
		return t.Value
	case Float:
		return t.Value
	case Bool:
		return t.Value
	case String:
		return t.Value
	case Null:
		return nil
	case *List:
		out := make([]interface{}, len(t.Elements))
		for i, el := range t.Elements {
			out[i] = valueToJSON(el)
		}
		return out
	default:
		return v.Inspect()
	}
}
