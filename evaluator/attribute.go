// ==============================================================================================
// FILE: evaluator/attribute.go
// ==============================================================================================
// Chain-walking helpers layered over the value system's attribute Get/Set/Delete operations.
// ==============================================================================================

package evaluator

import (
	"splisp/errors"
	"splisp/value"
)

// getAttributeChain reads obj::tail[0]::tail[1]::... in order, failing on the first missing
// attribute or non-gettable intermediate value.
func getAttributeChain(obj value.Value, tail []string) (value.Value, error) {
	current := obj
	for _, name := range tail {
		getter, ok := current.(value.AttributeGetter)
		if !ok {
			return nil, &errors.AttributeError{Object: current, Attribute: name}
		}
		next, err := getter.GetAttr(name)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// setAttributeValue writes obj.attribute = v.
func setAttributeValue(obj value.Value, attribute string, v value.Value) error {
	setter, ok := obj.(value.AttributeSetter)
	if !ok {
		return &errors.AttributeError{Object: obj, Attribute: attribute}
	}
	return setter.SetAttr(attribute, v)
}

// deleteAttributeValue removes obj.attribute.
func deleteAttributeValue(obj value.Value, attribute string) error {
	deleter, ok := obj.(value.AttributeDeleter)
	if !ok {
		return &errors.AttributeError{Object: obj, Attribute: attribute}
	}
	return deleter.DeleteAttr(attribute)
}
