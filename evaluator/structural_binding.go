// ==============================================================================================
// FILE: evaluator/structural_binding.go
// ==============================================================================================
// PURPOSE: Structural binding targets: parsing a List expression into a nestable, optionally
//          variadic target shape, and destructuring a sequence value against it. The
//          allowNested/allowAttributes restrictions set by `let`/`rebind`/`lambda`/`macro`
//          apply only at the top level of that one target, not to targets nested inside it.
// ==============================================================================================

package evaluator

import (
	"fmt"

	"splisp/ast"
	"splisp/errors"
	"splisp/scope"
	"splisp/value"
)

const variadicMarker = "&"

// Slot is one element of a BindingTarget: an Identifier, an AttributeAccess, or a nested
// BindingTarget.
type Slot interface{ isSlot() }

type identifierSlot struct{ name string }

func (identifierSlot) isSlot() {}

type attributeSlot struct {
	head string
	tail []string
}

func (attributeSlot) isSlot() {}

type nestedSlot struct{ target BindingTarget }

func (nestedSlot) isSlot() {}

// BindingTarget is the parsed, ordered shape `let`, `rebind`, and parameter lists destructure a
// value against.
type BindingTarget []Slot

// parseStructuralTarget converts a parsed List expression into a BindingTarget. allowNested and
// allowAttributes gate only the slots of THIS target; a nested list slot is reparsed with both
// re-enabled.
func parseStructuralTarget(target *ast.List, allowNested, allowAttributes bool) (BindingTarget, error) {
	result := make(BindingTarget, 0, len(target.Items))
	for _, item := range target.Items {
		switch t := item.(type) {
		case *ast.Identifier:
			result = append(result, identifierSlot{name: t.Name})
		case *ast.List:
			if !allowNested {
				return nil, &errors.ValueError{Why: "structural binding not allowed here"}
			}
			nested, err := parseStructuralTarget(t, true, true)
			if err != nil {
				return nil, err
			}
			result = append(result, nestedSlot{target: nested})
		case *ast.AttributeAccess:
			if !allowAttributes {
				return nil, &errors.ValueError{Why: "attributes cannot be binding targets in this context"}
			}
			result = append(result, attributeSlot{head: t.Head, tail: t.Tail})
		default:
			return nil, &errors.InvalidBindingTargetError{Target: item}
		}
	}
	return result, nil
}

func isVariadicMarkerSlot(s Slot) bool {
	id, ok := s.(identifierSlot)
	return ok && id.name == variadicMarker
}

// isVariadic reports whether target ends in "& rest" and validates that the marker appears
// nowhere else.
func isVariadic(target BindingTarget) (bool, error) {
	if len(target) <= 1 {
		return false, nil
	}

	for _, s := range target[:len(target)-2] {
		if isVariadicMarkerSlot(s) {
			return false, &errors.ValueError{Why: fmt.Sprintf("invalid %q usage", variadicMarker)}
		}
	}
	if isVariadicMarkerSlot(target[len(target)-1]) {
		return false, &errors.ValueError{Why: fmt.Sprintf("invalid %q usage", variadicMarker)}
	}

	if !isVariadicMarkerSlot(target[len(target)-2]) {
		return false, nil
	}

	rest := target[len(target)-1]
	if _, ok := rest.(identifierSlot); !ok {
		return false, &errors.InvalidBindingTargetError{Target: rest, Why: "cannot bind varargs to"}
	}
	return true, nil
}

// arity reports the number of fixed slots and whether target is variadic, WITHOUT validating
// marker placement. Used for overload selection, which must not fail on a structurally invalid
// overload that simply isn't the one being called.
func arity(target BindingTarget) (fixed int, variadic bool) {
	if len(target) >= 2 && isVariadicMarkerSlot(target[len(target)-2]) {
		return len(target) - 2, true
	}
	return len(target), false
}

func accepts(target BindingTarget, n int) bool {
	fixed, variadic := arity(target)
	if variadic {
		return fixed <= n
	}
	return fixed == n
}

// bindStructural destructures values against target for `let` and parameter binding: detect
// the variadic tail, check the value counts, bind each fixed slot in order, then bind the
// rest-identifier to the leftover values.
func bindStructural(target BindingTarget, values []value.Value, mutable bool, sc *scope.Scope) error {
	variadic, err := isVariadic(target)
	if err != nil {
		return err
	}

	prefix := target
	var restName string
	if variadic {
		prefix = target[:len(target)-2]
		restName = target[len(target)-1].(identifierSlot).name
	}

	if len(prefix) > len(values) {
		return &errors.InvalidBindingError{Why: fmt.Sprintf("not enough values to unpack (expected %d, got %d)", len(prefix), len(values))}
	}
	if len(prefix) < len(values) && !variadic {
		return &errors.InvalidBindingError{Why: fmt.Sprintf("too many values to unpack (expected %d, got %d)", len(prefix), len(values))}
	}

	for i, slot := range prefix {
		if err := bindSlot(slot, values[i], mutable, sc); err != nil {
			return err
		}
	}

	if variadic {
		if err := sc.Bind(restName, newTuple(values[len(prefix):]), mutable); err != nil {
			return err
		}
	}

	return nil
}

func bindSlot(slot Slot, v value.Value, mutable bool, sc *scope.Scope) error {
	switch s := slot.(type) {
	case identifierSlot:
		return sc.Bind(s.name, v, mutable)
	case attributeSlot:
		head, err := sc.Value(s.head)
		if err != nil {
			return err
		}
		obj, err := getAttributeChain(head, s.tail[:len(s.tail)-1])
		if err != nil {
			return err
		}
		return setAttributeValue(obj, s.tail[len(s.tail)-1], v)
	case nestedSlot:
		elements, err := sequenceElements(v)
		if err != nil {
			return err
		}
		return bindStructural(s.target, elements, mutable, sc)
	default:
		return &errors.InvalidBindingTargetError{Target: slot}
	}
}

// rebindStructural implements `rebind`'s structural path: variadic targets are rejected
// outright, lengths must match exactly, and identifier slots resolve via Scope.Rebind (nearest
// enclosing scope) instead of Scope.Bind.
func rebindStructural(target BindingTarget, values []value.Value, mutable bool, sc *scope.Scope) error {
	if variadic, err := isVariadic(target); err != nil {
		return err
	} else if variadic {
		return &errors.InvalidBindingError{Why: "variadic rebinding not allowed"}
	}

	if len(target) > len(values) {
		return &errors.InvalidBindingError{Why: fmt.Sprintf("not enough values to unpack (expected %d, got %d)", len(target), len(values))}
	}
	if len(target) < len(values) {
		return &errors.InvalidBindingError{Why: fmt.Sprintf("too many values to unpack (expected %d, got %d)", len(target), len(values))}
	}

	for i, slot := range target {
		if err := rebindSlot(slot, values[i], mutable, sc); err != nil {
			return err
		}
	}
	return nil
}

func rebindSlot(slot Slot, v value.Value, mutable bool, sc *scope.Scope) error {
	switch s := slot.(type) {
	case identifierSlot:
		return sc.Rebind(s.name, v, mutable)
	case attributeSlot:
		head, err := sc.Value(s.head)
		if err != nil {
			return err
		}
		obj, err := getAttributeChain(head, s.tail[:len(s.tail)-1])
		if err != nil {
			return err
		}
		return setAttributeValue(obj, s.tail[len(s.tail)-1], v)
	case nestedSlot:
		elements, err := sequenceElements(v)
		if err != nil {
			return err
		}
		return rebindStructural(s.target, elements, mutable, sc)
	default:
		return &errors.InvalidBindingTargetError{Target: slot}
	}
}
