// ==============================================================================================
// FILE: cmd/splisp/cmd/run.go
// ==============================================================================================
package cmd

import (
	"fmt"
	"os"

	"splisp/ast"
	"splisp/evaluator"
	"splisp/host"
	"splisp/internal/replsupport"
	"splisp/lexer"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Tokenize, parse, and evaluate a script file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	parser := ast.New(lexer.New(source))
	exprs, err := parser.ParseAll()
	if err != nil {
		fmt.Fprint(os.Stderr, replsupport.RenderError(source, filename, err))
		os.Exit(1)
	}

	root, _ := host.NewRootScope()
	for _, expr := range exprs {
		if _, err := evaluator.Eval(expr, root, true); err != nil {
			fmt.Fprint(os.Stderr, replsupport.RenderError(source, filename, err))
			os.Exit(1)
		}
	}
	return nil
}
