package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/csssaz/decafc/internal/lexer"
	"github.com/csssaz/decafc/internal/parser"
	"github.com/csssaz/decafc/internal/regexengine"
	"github.com/csssaz/decafc/internal/semantic"
	"github.com/spf13/cobra"
)

const defaultInputName = "test.decaf"

// runCompile is the root command's default action: lex, parse, analyze
// and emit a `.tac` file for one source file, per spec §6.
func runCompile(cmd *cobra.Command, args []string) error {
	filename := defaultInputName
	if len(args) == 1 {
		filename = args[0]
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cannot open %q: %v\n", filename, err)
		os.Exit(-1)
	}

	fmt.Printf("====> PARSING FILE %s\n", filename)

	rules, err := loadRules(cmd)
	if err != nil {
		return err
	}

	l := lexer.New(src, rules)
	prog, err := parser.Parse(l)
	if err != nil {
		fmt.Println("ERROR:", err)
		os.Exit(1)
	}

	dumpAST, _ := cmd.Flags().GetBool("ast")
	if dumpAST {
		fmt.Println("====> AST")
		fmt.Println(prog.Dump())
	}

	result := semantic.Analyze(prog)

	dumpSymtab, _ := cmd.Flags().GetBool("symtab")
	if dumpSymtab {
		fmt.Println("====> SYMBOL-TABLE")
		for _, e := range result.Symbols.Entries() {
			fmt.Println(e.Dump())
		}
	}

	result.Diagnostics.Print(os.Stdout)
	if result.Diagnostics.HasErrors() {
		os.Exit(1)
	}

	tacPath := tacFileName(filename)
	fmt.Printf("====> TAC --> %s\n", tacPath)
	out, err := os.Create(tacPath)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", tacPath, err)
	}
	defer out.Close()
	return result.TAC.WriteTo(out)
}

// tacFileName replaces filename's extension with ".tac".
func tacFileName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + ".tac"
}

// loadRules returns the merged lexer rule set: the embedded default,
// or the file named by --rules if given.
func loadRules(cmd *cobra.Command) (*regexengine.Merged, error) {
	path, _ := cmd.Flags().GetString("rules")
	if path == "" {
		return lexer.LoadMerged(lexer.DefaultRules())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read rule file %q: %w", path, err)
	}
	return lexer.LoadMerged(string(data))
}
