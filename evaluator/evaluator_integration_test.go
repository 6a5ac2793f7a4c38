// ==============================================================================================
// FILE: evaluator/evaluator_integration_test.go
// ==============================================================================================
// PURPOSE: Drives the evaluator end-to-end from source text through the host root scope:
//          structural binding (plain, nested, variadic), overloaded
//          lambdas, quoted macros with `inline!`/`inline-value!` splicing, Lazy forcing, and
//          call-site position rewriting on errors raised from inside a function body.
// ==============================================================================================

package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"splisp/ast"
	splisperrors "splisp/errors"
	"splisp/evaluator"
	"splisp/host"
	"splisp/lexer"
	"splisp/scope"
	"splisp/spspvalue"
)

func evalOne(t *testing.T, sc *scope.Scope, source string) (interface {
	Inspect() string
}, error) {
	t.Helper()
	p := ast.New(lexer.New(source))
	exprs, err := p.ParseAll()
	require.NoError(t, err, "source %q failed to parse", source)
	require.Len(t, exprs, 1, "source %q must be exactly one expression", source)
	return evaluator.Eval(exprs[0], sc, true)
}

func TestStructuralBindingPlain(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let [a b] [1 2])`)
	require.NoError(t, err)

	a, err := root.Value("a")
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 1}, a)

	b, err := root.Value("b")
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 2}, b)
}

func TestStructuralBindingNestedAndVariadic(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let [[a b] & rest] [[1 2] 3 4 5])`)
	require.NoError(t, err)

	a, err := root.Value("a")
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 1}, a)

	rest, err := root.Value("rest")
	require.NoError(t, err)
	tuple, ok := rest.(*spspvalue.List)
	require.True(t, ok, "rest = %T, want *spspvalue.List", rest)
	require.Equal(t, 3, tuple.Len())
}

func TestStructuralBindingNestedVariadicInsideVariadic(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let [x [y z & *rest-2] t & *rest-1] [1 [2 3 4 5] 6 7 8])`)
	require.NoError(t, err)

	expect := map[string]int64{"x": 1, "y": 2, "z": 3, "t": 6}
	for name, want := range expect {
		v, err := root.Value(name)
		require.NoError(t, err)
		require.Equal(t, spspvalue.Integer{Value: want}, v, "binding %q", name)
	}

	rest2, err := root.Value("*rest-2")
	require.NoError(t, err)
	require.True(t, rest2.Equal(spspvalue.NewList(spspvalue.Integer{Value: 4}, spspvalue.Integer{Value: 5})))

	rest1, err := root.Value("*rest-1")
	require.NoError(t, err)
	require.True(t, rest1.Equal(spspvalue.NewList(spspvalue.Integer{Value: 7}, spspvalue.Integer{Value: 8})))
}

func TestOverloadedLambdaSelectsByArity(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let greet (lambda ([a] a) ([a b] b)))`)
	require.NoError(t, err)

	one, err := evalOne(t, root, `(greet 1)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 1}, one)

	two, err := evalOne(t, root, `(greet 1 2)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 2}, two)

	_, err = evalOne(t, root, `(greet 1 2 3)`)
	require.Error(t, err, "no overload accepts 3 arguments")
}

func TestVariadicMacroWithQuoteSplicing(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let count-terms (macro [& terms] (expr! (inline-value! (len terms)))))`)
	require.NoError(t, err)

	result, err := evalOne(t, root, `(count-terms 1 2 3)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 3}, result)
}

func TestVariadicMacroReadsQuotedIdentifierNames(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let names (macro [& idents] (expr! (inline-value! (list (map (lambda [it] it::name) idents))))))`)
	require.NoError(t, err)

	result, err := evalOne(t, root, `(names x y z)`)
	require.NoError(t, err)
	want := spspvalue.NewList(
		spspvalue.String{Value: "x"},
		spspvalue.String{Value: "y"},
		spspvalue.String{Value: "z"},
	)
	list, ok := result.(*spspvalue.List)
	require.True(t, ok, "result = %T, want *spspvalue.List", result)
	require.True(t, list.Equal(want), "result = %s, want %s", list.Inspect(), want.Inspect())
}

func TestQuotedMacroInlinesEvaluatedOperand(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let double (macro [a] (expr! (+ (inline! a) (inline! a)))))`)
	require.NoError(t, err)

	result, err := evalOne(t, root, `(double 21)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 42}, result)
}

func TestInlineValueSplicesEvaluatedLiteral(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let x 5)`)
	require.NoError(t, err)

	_, err = evalOne(t, root, `(let echo (macro [] (expr! (inline-value! x))))`)
	require.NoError(t, err)

	result, err := evalOne(t, root, `(echo)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 5}, result)
}

func TestAttributeRebindIsForbidden(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let obj::field 1)`)
	require.Error(t, err, "attribute access requires a bound object; this exercises the rebind-forbidden path below")

	_, err = evalOne(t, root, `(rebind obj::field 1)`)
	require.Error(t, err)
	var target *splisperrors.InvalidBindingTargetError
	require.ErrorAs(t, err, &target)
}

func TestVariadicRebindIsForbidden(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let [a & rest] [1 2 3])`)
	require.NoError(t, err)

	_, err = evalOne(t, root, `(rebind [a & rest] [4 5 6])`)
	require.Error(t, err)
}

func TestOverloadedLambdaVariadicTail(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let f (lambda ([x] (+ x 1)) ([x y] (+ (+ x y) 1)) ([x y & *rest] *rest)))`)
	require.NoError(t, err)

	one, err := evalOne(t, root, `(f 1)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 2}, one)

	two, err := evalOne(t, root, `(f 5 6)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 12}, two)

	rest, err := evalOne(t, root, `(f 5 6 7 8)`)
	require.NoError(t, err)
	want := spspvalue.NewList(spspvalue.Integer{Value: 7}, spspvalue.Integer{Value: 8})
	list, ok := rest.(*spspvalue.List)
	require.True(t, ok, "rest = %T, want *spspvalue.List", rest)
	require.True(t, list.Equal(want), "rest = %s, want %s", list.Inspect(), want.Inspect())
}

func TestAttributeRebindOnRecordSuggestsLet(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let x (make-record))`)
	require.NoError(t, err)
	_, err = evalOne(t, root, `(let x::a 1)`)
	require.NoError(t, err)

	_, err = evalOne(t, root, `(rebind x::a 3)`)
	require.Error(t, err)
	var target *splisperrors.InvalidBindingTargetError
	require.ErrorAs(t, err, &target)
	require.Contains(t, target.Why, "let")
}

func TestVariadicRebindErrorMentionsVariadic(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let [x y z t *rest-1 *rest-2] [1 2 3 4 5 6])`)
	require.NoError(t, err)

	_, err = evalOne(t, root, `(rebind [x [y z & *rest-2] t & *rest-1] [1 [2 3 4 5] 6 7 8])`)
	require.Error(t, err)
	var evalErr *splisperrors.EvaluationError
	require.ErrorAs(t, err, &evalErr)
	require.Contains(t, evalErr.Cause.Error(), "variadic")
}

func TestEvalEvaluatesQuotedExpression(t *testing.T) {
	root, _ := host.NewRootScope()
	result, err := evalOne(t, root, `(eval! (expr! (+ 1 2)))`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 3}, result)
}

func TestSymbolicReassemblesApplication(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let flip (macro [a b f] (symbolic! [f b a])))`)
	require.NoError(t, err)

	result, err := evalOne(t, root, `(flip 1 2 -)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 1}, result)
}

func TestDoEvaluatesInFreshDerivedScope(t *testing.T) {
	root, _ := host.NewRootScope()
	result, err := evalOne(t, root, `(do (let tmp 5) tmp)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 5}, result)

	_, err = root.Value("tmp")
	require.Error(t, err, "do bindings must not leak into the enclosing scope")

	empty, err := evalOne(t, root, `(do)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Nil, empty)
}

func TestIfEvaluatesExactlyOneBranch(t *testing.T) {
	root, _ := host.NewRootScope()
	result, err := evalOne(t, root, `(if True 1 (raise "untaken branch"))`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 1}, result)

	result, err = evalOne(t, root, `(if False (raise "untaken branch") 2)`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 2}, result)
}

func TestLazyIsForcedAtTopLevel(t *testing.T) {
	root, _ := host.NewRootScope()
	result, err := evalOne(t, root, `(make-lazy (lambda [] 42))`)
	require.NoError(t, err)
	require.Equal(t, spspvalue.Integer{Value: 42}, result)
}

func TestCallSiteErrorPositionIsRewritten(t *testing.T) {
	root, _ := host.NewRootScope()
	_, err := evalOne(t, root, `(let boom (lambda [] (+ 1 "x")))`)
	require.NoError(t, err)

	source := `(boom)`
	p := ast.New(lexer.New(source))
	exprs, parseErr := p.ParseAll()
	require.NoError(t, parseErr)

	_, callErr := evaluator.Eval(exprs[0], root, true)
	require.Error(t, callErr)

	evalErr, ok := callErr.(*splisperrors.EvaluationError)
	require.True(t, ok, "err = %T, want *errors.EvaluationError", callErr)
	require.Equal(t, exprs[0].Position(), evalErr.Position, "error must be re-tagged at the call site, not the body's inner position")
}
