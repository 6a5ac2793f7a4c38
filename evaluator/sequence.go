// ==============================================================================================
// FILE: evaluator/sequence.go
// ==============================================================================================
package evaluator

import (
	"splisp/errors"
	"splisp/spspvalue"
	"splisp/value"
)

// Sequencer is the narrow, optional capability a host value can implement to be destructured
// by structural binding or rebuilt by `symbolic!`. Not every host value can be iterated, so
// the core only reaches for it where the language semantics themselves require pulling a value
// apart into positions.
type Sequencer interface {
	SequenceElements() []value.Value
}

func sequenceElements(v value.Value) ([]value.Value, error) {
	if s, ok := v.(Sequencer); ok {
		return s.SequenceElements(), nil
	}
	return nil, &errors.ValueError{Why: "value is not a sequence"}
}

// newTuple builds the host sequence value used for variadic rest-captures and the result of a
// `List` expression.
func newTuple(elements []value.Value) value.Value {
	return spspvalue.NewList(elements...)
}
