// ==============================================================================================
// FILE: internal/replsupport/render_unit_test.go
// ==============================================================================================

package replsupport

import (
	"strings"
	"testing"

	"splisp/errors"
)

func TestFindLineLocatesSecondLine(t *testing.T) {
	source := "(let x 1)\n(+ x \"y\")\n"
	line, lineNumber, column := findLine(source, 13)
	if lineNumber != 2 {
		t.Fatalf("lineNumber = %d, want 2", lineNumber)
	}
	if line != `(+ x "y")` {
		t.Fatalf("line = %q, want %q", line, `(+ x "y")`)
	}
	if column != 3 {
		t.Fatalf("column = %d, want 3", column)
	}
}

func TestRenderErrorUnwrapsEvaluationError(t *testing.T) {
	source := "(+ 1 \"x\")"
	err := &errors.EvaluationError{Cause: &errors.ValueError{Why: "expected a number"}, Position: 0}

	rendered := RenderError(source, "<stdin>", err)
	if !strings.Contains(rendered, `File "<stdin>", line 1`) {
		t.Fatalf("rendered = %q, missing file header", rendered)
	}
	if !strings.Contains(rendered, source) {
		t.Fatalf("rendered = %q, missing source line", rendered)
	}
	if !strings.Contains(rendered, "expected a number") {
		t.Fatalf("rendered = %q, missing the unwrapped cause message", rendered)
	}
	if strings.Contains(rendered, "at 0") {
		t.Fatalf("rendered = %q, must not print the EvaluationError's own wrapper message", rendered)
	}
}

func TestRenderErrorOnSyntaxErrorUsesItsOwnPosition(t *testing.T) {
	source := "(f a b"
	err := &errors.SyntaxError{Position: 6, Description: "unexpected end of input"}

	rendered := RenderError(source, "<stdin>", err)
	if !strings.Contains(rendered, "unexpected end of input") {
		t.Fatalf("rendered = %q, missing the syntax error description", rendered)
	}
}
