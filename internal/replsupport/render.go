// ==============================================================================================
// FILE: internal/replsupport/render.go
// ==============================================================================================
// PACKAGE: replsupport
// PURPOSE: Source-line error rendering: map an error's Position back to (line, column) in the
//          source text, print the offending line with a caret under the column, and unwrap
//          EvaluationError to its Cause first.
// ==============================================================================================

package replsupport

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"splisp/errors"
)

// findLine locates which line of source contains the rune offset position, returning the line's
// text (tabs normalized to spaces, trailing newline stripped), its 1-based line number, and the
// 0-based column within that line.
func findLine(source string, position int) (line string, lineNumber, column int) {
	lines := strings.Split(source, "\n")

	read := 0
	for i, l := range lines {
		lineLen := utf8.RuneCountInString(l) + 1 // +1 for the stripped "\n"
		if read+lineLen > position || i == len(lines)-1 {
			return strings.ReplaceAll(l, "\t", " "), i + 1, position - read
		}
		read += lineLen
	}
	return "", 1, 0
}

// RenderError formats err (a *errors.SyntaxError or *errors.EvaluationError): a
// "File ..., line N" header, the source line, a caret under the offending column, and the
// underlying error's description.
func RenderError(source, fileName string, err error) string {
	position, cause := positionAndCause(err)
	line, lineNumber, column := findLine(source, position)

	var b strings.Builder
	fmt.Fprintf(&b, "File %q, line %d\n", fileName, lineNumber)
	b.WriteString(line)
	b.WriteByte('\n')
	if column > 0 {
		b.WriteString(strings.Repeat(" ", column))
	}
	b.WriteString("^\n")
	fmt.Fprintf(&b, "%s\n", cause.Error())
	return b.String()
}

// positionAndCause unwraps an EvaluationError to its Cause, or returns the error itself with
// its own position for a plain SyntaxError.
func positionAndCause(err error) (position int, cause error) {
	switch e := err.(type) {
	case *errors.EvaluationError:
		return e.Position, e.Cause
	case *errors.SyntaxError:
		return e.Position, e
	default:
		return 0, err
	}
}
