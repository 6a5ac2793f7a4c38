// ==============================================================================================
// FILE: scope/keywords.go
// ==============================================================================================
package scope

// keywords is the protected-name set: none of these may ever be bound, rebound, or deleted
// through the binding lattice. The set is part of the language surface, not an implementation
// detail.
var keywords = map[string]struct{}{
	"None":          {},
	"True":          {},
	"False":         {},
	"const":         {},
	"let":           {},
	"rebind":        {},
	"if":            {},
	"import-module": {},
	"del":           {},
	"lambda":        {},
	"macro":         {},
	"do":            {},
	"expr!":         {},
	"eval!":         {},
	"inline!":       {},
	"inline-value!": {},
	"symbolic!":     {},
	"&":             {},
	"raise":         {},
	"run-catching":  {},
	"make-lazy":     {},
}

// IsKeyword reports whether name is one of the protected keyword names.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}
