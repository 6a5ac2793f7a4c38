// ==============================================================================================
// FILE: host/root.go
// ==============================================================================================
// PACKAGE: host
// PURPOSE: Assembles the predefined table and host-builtins module into a root Scope. This is
//          the wiring point NewRootScope's callers (the REPL, `splisp run`, tests) use instead
//          of constructing a Scope by hand.
// ==============================================================================================

package host

import (
	"splisp/scope"
	"splisp/spspvalue"
	"splisp/value"
)

// NewRootScope builds the predefined table (arithmetic, comparison, sequence/string helpers,
// I/O, and the seven required names) plus a host-builtins module record, and returns the root
// Scope wired to a fresh, empty ModuleRegistry. Callers add their own modules to the returned
// registry via Register before importing them from splisp code.
func NewRootScope() (*scope.Scope, *ModuleRegistry) {
	table := map[string]value.Value{}
	registerArithmetic(table)
	registerComparison(table)
	registerSequence(table)
	registerIO(table)

	// hostBuiltins is a JSONRecord rather than a plain Record so the "builtins" attribute
	// namespace is backed by gjson/sjson, the same libraries `splisp ast --json` writes its
	// debug dump with.
	hostBuiltins := spspvalue.NewJSONRecord(`{"version":"1.0","language":"splisp"}`)

	registry := NewModuleRegistry()

	root := scope.NewRoot(table, hostBuiltins, registry)

	// registerCore needs the fully constructed root Scope (import-module closes over it); the
	// table it mutates is the same map instance scope.NewRoot already captured by reference, so
	// these additions remain visible through root's predefined fallback.
	registerCore(table, root)

	return root, registry
}
