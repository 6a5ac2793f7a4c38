// ==============================================================================================
// FILE: cmd/splisp/cmd/tokens.go
// ==============================================================================================
package cmd

import (
	"fmt"
	"os"

	"splisp/lexer"
	"splisp/token"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream for a script file",
	Args:  cobra.ExactArgs(1),
	RunE:  dumpTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func dumpTokens(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	l := lexer.New(string(content))
	for {
		t, err := l.Next()
		if err != nil {
			return err
		}
		printToken(t)
		if t.Type == token.EOS {
			return nil
		}
	}
}

func printToken(t token.Token) {
	switch t.Type {
	case token.Literal:
		fmt.Printf("[%-6s] @%d %s\n", t.Type, t.Position, t.Value.Inspect())
	case token.Ident:
		fmt.Printf("[%-6s] @%d %s\n", t.Type, t.Position, t.Name)
	case token.Attr:
		fmt.Printf("[%-6s] @%d %s::%v\n", t.Type, t.Position, t.Name, t.Tail)
	default:
		fmt.Printf("[%-6s] @%d\n", t.Type, t.Position)
	}
}
