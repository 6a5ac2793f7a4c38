// ==============================================================================================
// FILE: cmd/splisp/main.go
// ==============================================================================================
package main

import (
	"fmt"
	"os"

	"splisp/cmd/splisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
