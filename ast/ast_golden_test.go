// ==============================================================================================
// FILE: ast/ast_golden_test.go
// ==============================================================================================
// PURPOSE: Golden-snapshots Code()'s source reconstruction across representative expressions
//          via go-snaps instead of hand-maintained expected-string constants.
// ==============================================================================================

package ast_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"splisp/ast"
	"splisp/lexer"
)

func TestCodeGolden(t *testing.T) {
	sources := []string{
		`(let x 10)`,
		`(lambda [a b] (+ a b))`,
		`(macro [& terms] (expr! (inline-value! (len terms))))`,
		`[1 2.5 "three" True None]`,
		`obj::field::nested`,
		`(if (> a b) a b)`,
	}

	for _, source := range sources {
		p := ast.New(lexer.New(source))
		exprs, err := p.ParseAll()
		if err != nil {
			t.Fatalf("%q: unexpected parse error: %v", source, err)
		}
		for _, expr := range exprs {
			snaps.MatchSnapshot(t, source, expr.Code())
		}
	}
}
