// ==============================================================================================
// FILE: cmd/splisp/cmd/ast.go
// ==============================================================================================
// PURPOSE: `splisp ast` debug dump: the re-serialized source form via Expression.Code() by
//          default, or a JSON document per expression with --json, built with
//          github.com/tidwall/sjson.
// ==============================================================================================

package cmd

import (
	"fmt"
	"os"

	"splisp/ast"
	"splisp/lexer"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

var astJSON bool

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Dump the parsed expression sequence for a script file",
	Args:  cobra.ExactArgs(1),
	RunE:  dumpAST,
}

func init() {
	astCmd.Flags().BoolVar(&astJSON, "json", false, "emit each top-level expression as a JSON document instead of source form")
	rootCmd.AddCommand(astCmd)
}

func dumpAST(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	parser := ast.New(lexer.New(string(content)))
	exprs, err := parser.ParseAll()
	if err != nil {
		return err
	}

	for _, expr := range exprs {
		if !astJSON {
			fmt.Println(expr.Code())
			continue
		}
		doc, err := exprToJSON(expr)
		if err != nil {
			return err
		}
		fmt.Println(doc)
	}
	return nil
}

// exprToJSON builds a JSON document describing expr's variant and fields, entirely through
// sjson.SetRaw/sjson.Set so the debug path exercises the same library the host's JSONRecord does.
func exprToJSON(expr ast.Expression) (string, error) {
	doc := "{}"
	var err error

	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}
	setRaw := func(path, raw string) {
		if err != nil {
			return
		}
		doc, err = sjson.SetRaw(doc, path, raw)
	}

	set("position", expr.Position())

	switch e := expr.(type) {
	case *ast.Literal:
		set("kind", "literal")
		set("value", e.Value.Inspect())
	case *ast.Identifier:
		set("kind", "identifier")
		set("name", e.Name)
	case *ast.AttributeAccess:
		set("kind", "attribute")
		set("head", e.Head)
		set("tail", e.Tail)
	case *ast.List:
		set("kind", "list")
		items := "[]"
		for _, item := range e.Items {
			itemDoc, ierr := exprToJSON(item)
			if ierr != nil {
				return "", ierr
			}
			items, err = sjson.SetRaw(items, "-1", itemDoc)
			if err != nil {
				return "", err
			}
		}
		setRaw("items", items)
	case *ast.Symbolic:
		set("kind", "symbolic")
		opDoc, operr := exprToJSON(e.Operation)
		if operr != nil {
			return "", operr
		}
		setRaw("operation", opDoc)
		args := "[]"
		for _, a := range e.Arguments {
			argDoc, aerr := exprToJSON(a)
			if aerr != nil {
				return "", aerr
			}
			args, err = sjson.SetRaw(args, "-1", argDoc)
			if err != nil {
				return "", err
			}
		}
		setRaw("arguments", args)
	default:
		set("kind", "unknown")
	}

	if err != nil {
		return "", err
	}
	return doc, nil
}
