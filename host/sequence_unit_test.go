// ==============================================================================================
// FILE: host/sequence_unit_test.go
// ==============================================================================================
// PURPOSE: Exercises the sequence/string predefined builtins: first/rest/get/set/len/append and
//          the upper/lower/split/join string helpers.
// ==============================================================================================

package host

import (
	"testing"

	"splisp/spspvalue"
	"splisp/value"
)

func newSequenceTable(t *testing.T) map[string]value.Value {
	t.Helper()
	table := map[string]value.Value{}
	registerSequence(table)
	return table
}

func TestFirstAndRest(t *testing.T) {
	table := newSequenceTable(t)
	list := spspvalue.NewList(spspvalue.Integer{Value: 1}, spspvalue.Integer{Value: 2}, spspvalue.Integer{Value: 3})

	first, err := call(t, table, "first", list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != (spspvalue.Integer{Value: 1}) {
		t.Fatalf("first = %v, want Integer(1)", first)
	}

	rest, err := call(t, table, "rest", list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	restList, ok := rest.(*spspvalue.List)
	if !ok || restList.Len() != 2 {
		t.Fatalf("rest = %v, want a 2-element list", rest)
	}
}

func TestFirstOnEmptyListErrors(t *testing.T) {
	table := newSequenceTable(t)
	if _, err := call(t, table, "first", spspvalue.NewList()); err == nil {
		t.Fatal("expected an error for first of an empty sequence")
	}
}

func TestGetAndSet(t *testing.T) {
	table := newSequenceTable(t)
	list := spspvalue.NewList(spspvalue.Integer{Value: 10}, spspvalue.Integer{Value: 20})

	got, err := call(t, table, "get", list, spspvalue.Integer{Value: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (spspvalue.Integer{Value: 20}) {
		t.Fatalf("get = %v, want Integer(20)", got)
	}

	updated, err := call(t, table, "set", list, spspvalue.Integer{Value: 0}, spspvalue.Integer{Value: 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	updatedList, ok := updated.(*spspvalue.List)
	if !ok || updatedList.Elements[0] != (spspvalue.Integer{Value: 99}) {
		t.Fatalf("set = %v, want a list whose first element is Integer(99)", updated)
	}
	if list.Elements[0] != (spspvalue.Integer{Value: 10}) {
		t.Fatal("set must not mutate the original list")
	}
}

func TestGetOutOfRangeErrors(t *testing.T) {
	table := newSequenceTable(t)
	list := spspvalue.NewList(spspvalue.Integer{Value: 1})
	if _, err := call(t, table, "get", list, spspvalue.Integer{Value: 5}); err == nil {
		t.Fatal("expected an out-of-range error")
	}
}

func TestLenAndCountAlias(t *testing.T) {
	table := newSequenceTable(t)
	list := spspvalue.NewList(spspvalue.Integer{Value: 1}, spspvalue.Integer{Value: 2})

	n, err := call(t, table, "len", list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != (spspvalue.Integer{Value: 2}) {
		t.Fatalf("len = %v, want Integer(2)", n)
	}

	n2, err := call(t, table, "count", list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n2 != n {
		t.Fatalf("count = %v, want same result as len %v", n2, n)
	}

	strLen, err := call(t, table, "len", spspvalue.String{Value: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strLen != (spspvalue.Integer{Value: 5}) {
		t.Fatalf("len(string) = %v, want Integer(5)", strLen)
	}
}

func TestAppendDoesNotMutate(t *testing.T) {
	table := newSequenceTable(t)
	list := spspvalue.NewList(spspvalue.Integer{Value: 1})

	appended, err := call(t, table, "append", list, spspvalue.Integer{Value: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	appendedList, ok := appended.(*spspvalue.List)
	if !ok || appendedList.Len() != 2 {
		t.Fatalf("append = %v, want a 2-element list", appended)
	}
	if list.Len() != 1 {
		t.Fatal("append must not mutate the original list")
	}
}

func TestUpperLowerSplitJoin(t *testing.T) {
	table := newSequenceTable(t)

	upper, err := call(t, table, "upper", spspvalue.String{Value: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upper != (spspvalue.String{Value: "ABC"}) {
		t.Fatalf("upper = %v, want String(ABC)", upper)
	}

	lower, err := call(t, table, "lower", spspvalue.String{Value: "ABC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lower != (spspvalue.String{Value: "abc"}) {
		t.Fatalf("lower = %v, want String(abc)", lower)
	}

	parts, err := call(t, table, "split", spspvalue.String{Value: "a,b,c"}, spspvalue.String{Value: ","})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	partsList, ok := parts.(*spspvalue.List)
	if !ok || partsList.Len() != 3 {
		t.Fatalf("split = %v, want a 3-element list", parts)
	}

	joined, err := call(t, table, "join", partsList, spspvalue.String{Value: "-"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if joined != (spspvalue.String{Value: "a-b-c"}) {
		t.Fatalf("join = %v, want String(a-b-c)", joined)
	}
}

func TestListCollectsArguments(t *testing.T) {
	table := newSequenceTable(t)

	collected, err := call(t, table, "list", spspvalue.Integer{Value: 1}, spspvalue.Integer{Value: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	collectedList, ok := collected.(*spspvalue.List)
	if !ok || collectedList.Len() != 2 {
		t.Fatalf("list = %v, want a 2-element list", collected)
	}

	copied, err := call(t, table, "list", collectedList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	copiedList, ok := copied.(*spspvalue.List)
	if !ok || copiedList.Len() != 2 {
		t.Fatalf("list(list) = %v, want a flat 2-element copy", copied)
	}
}

func TestMapAppliesCallableToEachElement(t *testing.T) {
	table := newSequenceTable(t)

	double := &spspvalue.Builtin{Name: "double", Fn: func(args []value.Value) (value.Value, error) {
		n := args[0].(spspvalue.Integer)
		return spspvalue.Integer{Value: n.Value * 2}, nil
	}}
	list := spspvalue.NewList(spspvalue.Integer{Value: 1}, spspvalue.Integer{Value: 2})

	mapped, err := call(t, table, "map", double, list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mappedList, ok := mapped.(*spspvalue.List)
	if !ok || mappedList.Len() != 2 {
		t.Fatalf("map = %v, want a 2-element list", mapped)
	}
	if mappedList.Elements[1] != (spspvalue.Integer{Value: 4}) {
		t.Fatalf("map[1] = %v, want Integer(4)", mappedList.Elements[1])
	}
}

func TestStrConvertsNonStringToInspectForm(t *testing.T) {
	table := newSequenceTable(t)

	s, err := call(t, table, "str", spspvalue.Integer{Value: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != (spspvalue.String{Value: "42"}) {
		t.Fatalf("str(42) = %v, want String(42)", s)
	}

	passthrough, err := call(t, table, "str", spspvalue.String{Value: "already"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if passthrough != (spspvalue.String{Value: "already"}) {
		t.Fatalf("str(string) = %v, want the same string unchanged", passthrough)
	}
}
