// ==============================================================================================
// FILE: internal/replsupport/pending.go
// ==============================================================================================
// PACKAGE: replsupport
// PURPOSE: Balanced-delimiter multi-line input continuation: strip a trailing ";"-comment from
//          each physical line, accumulate, and keep reading while parens or brackets are
//          unbalanced.
// ==============================================================================================

package replsupport

import "strings"

// PendingInput accumulates physical lines until they form a balanced, submittable input: every
// "(" has a matching ")" and every "[" has a matching "]" across the accumulated text so far.
// It does not understand string literals, so a semicolon or an unbalanced delimiter inside a
// string literal is counted naively, line by line.
type PendingInput struct {
	buf strings.Builder
}

// AddLine appends one physical line (its trailing ";"-comment stripped) and reports whether the
// accumulated input is now balanced and ready to be parsed.
func (p *PendingInput) AddLine(line string) (ready bool, accumulated string) {
	if idx := strings.IndexByte(line, ';'); idx >= 0 {
		line = line[:idx]
	}
	p.buf.WriteString(line)
	p.buf.WriteByte('\n')

	text := p.buf.String()
	if balanced(text, '(', ')') && balanced(text, '[', ']') {
		p.buf.Reset()
		return true, text
	}
	return false, ""
}

func balanced(s string, open, close byte) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
		}
	}
	return depth <= 0
}

// Prompt returns the prompt the caller should display for the next physical line: the primary
// prompt while nothing has been accumulated yet, the continuation prompt otherwise.
func (p *PendingInput) Prompt(primary, continuation string) string {
	if p.buf.Len() == 0 {
		return primary
	}
	return continuation
}
