// ==============================================================================================
// FILE: cmd/splisp/cmd/root.go
// ==============================================================================================
// PACKAGE: cmd
// PURPOSE: The cobra command tree: a package-level rootCmd plus an Execute() entry point,
//          subcommands registering themselves via init().
// ==============================================================================================

package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "splisp",
	Short: "splisp is a small Lisp-like expression language core",
	Long: `splisp is a tree-walking interpreter for a small Lisp-like expression
language: a tokenizer, a recursive-descent parser, and an evaluator
with special forms, macros, structural binding, and lexically scoped
functions.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
