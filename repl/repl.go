// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop. Connects the input stream to the
//          Lexer->Parser->Evaluator pipeline and keeps a persistent root Scope across the
//          session: a bufio.Scanner loop with ANSI color constants, a dot-command prefix,
//          per-type result coloring, balanced-delimiter multi-line continuation, and
//          source-line error rendering via internal/replsupport.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"splisp/ast"
	"splisp/evaluator"
	"splisp/host"
	"splisp/internal/replsupport"
	"splisp/lexer"
	"splisp/scope"
	"splisp/spspvalue"
	"splisp/value"
)

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	Gray   = "\033[37m"
)

// Start launches the loop, reading from in and writing prompts/results to out, until in is
// exhausted or a ".exit" command is entered.
func Start(in io.Reader, out io.Writer, cfg Config) {
	root, _ := host.NewRootScope()
	for _, name := range cfg.Preimport {
		if _, err := root.ImportModule(name); err != nil {
			fmt.Fprintf(out, colorize(cfg, Red, "could not preimport %q: %s\n"), name, err)
		}
	}

	scanner := bufio.NewScanner(in)
	var pending replsupport.PendingInput

	fmt.Fprintln(out, colorize(cfg, Cyan, "splisp - a small Lisp-like expression language"))
	fmt.Fprintln(out, colorize(cfg, Gray, "  .exit to quit"))

	for {
		fmt.Fprint(out, colorize(cfg, Cyan, pending.Prompt(cfg.Prompt, cfg.Continuation)))
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == ".exit" {
			fmt.Fprintln(out, colorize(cfg, Yellow, "Goodbye!"))
			return
		}

		ready, source := pending.AddLine(line)
		if !ready {
			continue
		}

		evalSource(out, root, source, cfg)
	}
}

func evalSource(out io.Writer, root *scope.Scope, source string, cfg Config) {
	parser := ast.New(lexer.New(source))
	exprs, err := parser.ParseAll()
	if err != nil {
		fmt.Fprint(out, colorize(cfg, Red, replsupport.RenderError(source, "<stdin>", err)))
		return
	}

	for _, expr := range exprs {
		result, err := evaluator.Eval(expr, root, true)
		if err != nil {
			fmt.Fprint(out, colorize(cfg, Red, replsupport.RenderError(source, "<stdin>", err)))
			continue
		}
		printResult(out, result, cfg)
	}
}

func printResult(out io.Writer, v value.Value, cfg Config) {
	switch r := v.(type) {
	case spspvalue.Null:
		return
	case spspvalue.Integer, spspvalue.Float:
		fmt.Fprintln(out, colorize(cfg, Yellow, r.Inspect()))
	case spspvalue.Bool:
		color := Green
		if !r.Value {
			color = Red
		}
		fmt.Fprintln(out, colorize(cfg, color, r.Inspect()))
	case spspvalue.String:
		fmt.Fprintln(out, colorize(cfg, Green, r.Inspect()))
	case *spspvalue.List:
		fmt.Fprintln(out, colorize(cfg, Blue, r.Inspect()))
	case *spspvalue.Record, *spspvalue.JSONRecord:
		fmt.Fprintln(out, colorize(cfg, Blue, r.Inspect()))
	default:
		fmt.Fprintln(out, colorize(cfg, Purple, v.Inspect()))
	}
}

func colorize(cfg Config, color, text string) string {
	if !cfg.Color {
		return text
	}
	return color + text + Reset
}
