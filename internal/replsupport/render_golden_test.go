// ==============================================================================================
// FILE: internal/replsupport/render_golden_test.go
// ==============================================================================================
// PURPOSE: Golden-snapshots RenderError's full formatted output via go-snaps, so a change to
//          the header/caret layout shows up as a reviewable snapshot diff.
// ==============================================================================================

package replsupport_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"splisp/errors"
	"splisp/internal/replsupport"
)

func TestRenderErrorGolden(t *testing.T) {
	cases := []struct {
		name   string
		source string
		err    error
	}{
		{
			name:   "evaluation error on second line",
			source: "(let x 1)\n(+ x \"y\")\n",
			err:    &errors.EvaluationError{Cause: &errors.ValueError{Why: "expected a number"}, Position: 13},
		},
		{
			name:   "syntax error on unclosed paren",
			source: "(f a b",
			err:    &errors.SyntaxError{Position: 6, Description: "unexpected end of input"},
		},
	}

	for _, c := range cases {
		rendered := replsupport.RenderError(c.source, "<stdin>", c.err)
		snaps.MatchSnapshot(t, c.name, rendered)
	}
}
