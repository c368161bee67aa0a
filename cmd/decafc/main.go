// Command decafc is the compiler-front-end driver: lex, parse, analyze,
// and emit a TAC file for one source-language program.
package main

import (
	"fmt"
	"os"

	"github.com/csssaz/decafc/cmd/decafc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
