// ==============================================================================================
// FILE: scope/scope.go
// ==============================================================================================
// PACKAGE: scope
// PURPOSE: The lexically nested environment: a binding map with Variable/Constant discipline,
//          keyword protection, a predefined-table fallback, a host-builtins fallback, and a
//          per-chain module cache. Lookups walk outward through the chain of store maps;
//          Rebind finds the nearest enclosing scope that already owns the name.
// ==============================================================================================

package scope

import (
	"splisp/errors"
	"splisp/value"
)

// Kind distinguishes a Variable binding (freely overwritable) from a Constant one (fixed once
// written, in the scope level it was written at).
type Kind int

const (
	Variable Kind = iota
	Constant
)

type binding struct {
	value value.Value
	kind  Kind
}

// ModuleImporter resolves a module name to a host value. Only the root Scope ever calls it;
// every other Scope forwards outward.
type ModuleImporter interface {
	ImportModule(name string) (value.Value, error)
}

// HostBuiltinsModule is the fixed name under which the root Scope's module cache pre-contains
// the host-builtins module.
const HostBuiltinsModule = "builtins"

// Scope is one level of the lexical environment chain.
type Scope struct {
	bindings    map[string]binding
	moduleCache map[string]value.Value
	outer       *Scope

	importer     ModuleImporter
	predefined   map[string]value.Value
	hostBuiltins value.Value
}

// NewRoot constructs the root Scope. predefined is installed as a Constant-valued fallback
// layer consulted on lookup (not copied into the ordinary bindings map, so that shadowing a
// predefined name with `let` and then deleting the shadow restores the original).
// hostBuiltins is pre-cached under HostBuiltinsModule.
func NewRoot(predefined map[string]value.Value, hostBuiltins value.Value, importer ModuleImporter) *Scope {
	s := &Scope{
		bindings:     map[string]binding{},
		moduleCache:  map[string]value.Value{},
		importer:     importer,
		predefined:   predefined,
		hostBuiltins: hostBuiltins,
	}
	s.moduleCache[HostBuiltinsModule] = hostBuiltins
	return s
}

// Derive constructs a fresh Scope whose outer link is s. The child shares no bindings or module
// cache entries with its parent but delegates lookups upward.
func (s *Scope) Derive() *Scope {
	return &Scope{
		bindings:     map[string]binding{},
		moduleCache:  map[string]value.Value{},
		outer:        s,
		importer:     s.importer,
		predefined:   s.predefined,
		hostBuiltins: s.hostBuiltins,
	}
}

func (s *Scope) isRoot() bool { return s.outer == nil }

// Value resolves a name: the current scope, then outward; at the root, the predefined table,
// then the host-builtins module as an attribute namespace; otherwise a NameError.
func (s *Scope) Value(name string) (value.Value, error) {
	for scope := s; scope != nil; scope = scope.outer {
		if b, ok := scope.bindings[name]; ok {
			return b.value, nil
		}
	}

	root := s.rootScope()
	if v, ok := root.predefined[name]; ok {
		return v, nil
	}
	if getter, ok := root.hostBuiltins.(value.AttributeGetter); ok {
		if v, err := getter.GetAttr(name); err == nil {
			return v, nil
		}
	}

	return nil, &errors.NameError{Name: name}
}

func (s *Scope) rootScope() *Scope {
	scope := s
	for scope.outer != nil {
		scope = scope.outer
	}
	return scope
}

// Let writes to the current scope unconditionally, shadowing any outer binding. It is a
// Variable binding.
func (s *Scope) Let(name string, v value.Value) error {
	return s.writeLocal(name, v, Variable)
}

// Const writes a Constant binding to the current scope.
func (s *Scope) Const(name string, v value.Value) error {
	return s.writeLocal(name, v, Constant)
}

// Bind writes to the current scope with the binding kind selected by mutable (used by
// structural binding).
func (s *Scope) Bind(name string, v value.Value, mutable bool) error {
	kind := Constant
	if mutable {
		kind = Variable
	}
	return s.writeLocal(name, v, kind)
}

func (s *Scope) writeLocal(name string, v value.Value, kind Kind) error {
	if IsKeyword(name) {
		return &errors.InvalidBindingTargetError{Target: name, Why: "cannot bind to keyword"}
	}
	if existing, ok := s.bindings[name]; ok && existing.kind == Constant {
		return &errors.InvalidBindingTargetError{Target: name, Why: "cannot rebind constant"}
	}
	s.bindings[name] = binding{value: v, kind: kind}
	return nil
}

// Rebind writes to the nearest enclosing scope in which name is already locally bound
// (traversing outward from the current scope), subject to the same Constant protection as
// Let/Bind. If no enclosing binding exists, it raises a NameError.
func (s *Scope) Rebind(name string, v value.Value, mutable bool) error {
	if IsKeyword(name) {
		return &errors.InvalidBindingTargetError{Target: name, Why: "cannot bind to keyword"}
	}

	kind := Constant
	if mutable {
		kind = Variable
	}

	for scope := s; scope != nil; scope = scope.outer {
		if existing, ok := scope.bindings[name]; ok {
			if existing.kind == Constant {
				return &errors.InvalidBindingTargetError{Target: name, Why: "cannot rebind constant"}
			}
			scope.bindings[name] = binding{value: v, kind: kind}
			return nil
		}
	}

	return &errors.NameError{Name: name}
}

// Delete removes name from the current scope only. Deleting a name that exists
// only in an outer scope, or that doesn't exist at all, is a no-op at this level. At the root
// scope, deleting a name that resolves only through the predefined fallback (i.e. never locally
// bound) is forbidden; from a derived scope it is a no-op like any other outer name.
func (s *Scope) Delete(name string) error {
	if IsKeyword(name) {
		return &errors.InvalidBindingTargetError{Target: name, Why: "cannot unbind keyword"}
	}

	if _, ok := s.bindings[name]; ok {
		delete(s.bindings, name)
		return nil
	}

	if s.isRoot() {
		if _, ok := s.predefined[name]; ok {
			return &errors.InvalidBindingTargetError{Target: name, Why: "cannot unbind predefined"}
		}
	}

	return nil
}

// ImportModule resolves a module name through the per-chain cache, forwarding outward on a
// miss; only the root Scope actually invokes the ModuleImporter, and only the root memoizes the
// result.
func (s *Scope) ImportModule(name string) (value.Value, error) {
	if v, ok := s.moduleCache[name]; ok {
		return v, nil
	}
	if s.outer != nil {
		return s.outer.ImportModule(name)
	}
	if s.importer == nil {
		return nil, &errors.NameError{Name: name}
	}
	v, err := s.importer.ImportModule(name)
	if err != nil {
		return nil, err
	}
	s.moduleCache[name] = v
	return v, nil
}
