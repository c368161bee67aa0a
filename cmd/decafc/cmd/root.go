package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "decafc [flags] [filename]",
	Short: "A compiler front end for the decaf teaching language",
	Long: `decafc lexes, parses, and semantically analyzes a single-file
class-scoped imperative program, emitting a three-address code listing
and (on request) a symbol table or AST dump.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runCompile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolP("symtab", "s", false, "dump the symbol table")
	rootCmd.Flags().BoolP("ast", "a", false, "dump the AST")
	rootCmd.Flags().String("rules", "", "path to a lexer rule file (default: embedded rule set)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("decafc version %s\n", Version))
}
