// ==============================================================================================
// FILE: host/io.go
// ==============================================================================================
// PACKAGE: host
// PURPOSE: print/read-line predefined builtins: fmt.Println over space-joined display strings
//          (a String's raw text, Inspect() for anything else), and bufio over os.Stdin with
//          surrounding whitespace trimmed.
// ==============================================================================================

package host

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"splisp/spspvalue"
	"splisp/value"
)

func registerIO(table map[string]value.Value) {
	table["print"] = &spspvalue.Builtin{Name: "print", Fn: func(args []value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			if s, ok := a.(spspvalue.String); ok {
				parts[i] = s.Value
			} else {
				parts[i] = a.Inspect()
			}
		}
		fmt.Println(strings.Join(parts, " "))
		return spspvalue.Nil, nil
	}}

	reader := bufio.NewReader(os.Stdin)
	table["read-line"] = &spspvalue.Builtin{Name: "read-line", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) > 0 {
			if s, ok := args[0].(spspvalue.String); ok {
				fmt.Print(s.Value + " ")
			} else {
				fmt.Print(args[0].Inspect() + " ")
			}
		}
		text, err := reader.ReadString('\n')
		if err != nil {
			return spspvalue.Nil, nil
		}
		return spspvalue.String{Value: strings.TrimSpace(text)}, nil
	}}
}
