// ==============================================================================================
// FILE: internal/replsupport/pending_unit_test.go
// ==============================================================================================

package replsupport

import "testing"

func TestAddLineBalancedSingleLine(t *testing.T) {
	var p PendingInput
	ready, text := p.AddLine("(+ 1 2)")
	if !ready {
		t.Fatal("expected a balanced single line to be ready")
	}
	if text != "(+ 1 2)\n" {
		t.Fatalf("text = %q, want %q", text, "(+ 1 2)\n")
	}
}

func TestAddLineAccumulatesUntilBalanced(t *testing.T) {
	var p PendingInput
	ready, _ := p.AddLine("(let x")
	if ready {
		t.Fatal("expected an unbalanced line to not be ready")
	}
	ready, text := p.AddLine("  10)")
	if !ready {
		t.Fatal("expected the input to be ready once balanced")
	}
	if text != "(let x\n  10)\n" {
		t.Fatalf("text = %q, want the full accumulated source", text)
	}
}

func TestAddLineStripsTrailingComment(t *testing.T) {
	var p PendingInput
	_, text := p.AddLine("(+ 1 2) ; add two numbers")
	if text != "(+ 1 2) \n" {
		t.Fatalf("text = %q, want the comment stripped", text)
	}
}

func TestAddLineBracketsAlsoTracked(t *testing.T) {
	var p PendingInput
	ready, _ := p.AddLine("[1 2")
	if ready {
		t.Fatal("expected an unbalanced bracket line to not be ready")
	}
	ready, _ = p.AddLine("3]")
	if !ready {
		t.Fatal("expected the input to be ready once the bracket closes")
	}
}

func TestPromptSwitchesToContinuation(t *testing.T) {
	var p PendingInput
	if got := p.Prompt(">>> ", "... "); got != ">>> " {
		t.Fatalf("Prompt() = %q, want the primary prompt before any input", got)
	}
	p.AddLine("(f a")
	if got := p.Prompt(">>> ", "... "); got != "... " {
		t.Fatalf("Prompt() = %q, want the continuation prompt mid-accumulation", got)
	}
}
