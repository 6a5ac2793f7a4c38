// ==============================================================================================
// FILE: cmd/splisp/cmd/repl.go
// ==============================================================================================
package cmd

import (
	"fmt"
	"os"

	"splisp/repl"

	"github.com/spf13/cobra"
)

var rcPath string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().StringVar(&rcPath, "rc", "", "path to a YAML file of REPL preferences (prompt, color, preimport)")
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := repl.LoadConfig(rcPath)
	if err != nil {
		return fmt.Errorf("failed to load --rc file %s: %w", rcPath, err)
	}
	repl.Start(os.Stdin, os.Stdout, cfg)
	return nil
}
