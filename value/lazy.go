// ==============================================================================================
// FILE: value/lazy.go
// ==============================================================================================
package value

// Lazy is a one-shot memoized thunk: it holds either an unevaluated thunk or a computed
// value. Force is idempotent: forcing the same Lazy twice evaluates the thunk at
// most once and returns equal values. If the computed value is
// itself Lazy, forcing transparently recurses (package-level Force handles that; Lazy.Force
// only does one step so a Lazy holding a Lazy is still observable to a caller that wants to
// peek at the immediate result).
type Lazy struct {
	thunk    func() (Value, error)
	computed bool
	value    Value
	err      error
}

// NewLazy wraps a thunk. The thunk is not invoked until Force is called.
func NewLazy(thunk func() (Value, error)) *Lazy {
	return &Lazy{thunk: thunk}
}

// Force evaluates the thunk on first call and caches the result (or error) for every
// subsequent call; it never re-invokes the thunk.
func (l *Lazy) Force() (Value, error) {
	if !l.computed {
		l.value, l.err = l.thunk()
		l.computed = true
		l.thunk = nil
	}
	return l.value, l.err
}

func (l *Lazy) Inspect() string {
	if !l.computed {
		return "<lazy>"
	}
	return l.value.Inspect()
}

func (l *Lazy) Truthy() bool {
	forced, err := Force(l)
	if err != nil {
		return false
	}
	return forced.Truthy()
}

func (l *Lazy) Equal(other Value) bool {
	forced, err := Force(l)
	if err != nil {
		return false
	}
	return forced.Equal(other)
}
