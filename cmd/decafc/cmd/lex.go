package cmd

import (
	"fmt"
	"os"

	"github.com/csssaz/decafc/internal/lexer"
	"github.com/csssaz/decafc/internal/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `Tokenize a decaf source file and print the resulting token stream,
one token per line. Useful for debugging the regex engine and the rule
file independently of the parser.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	filename := defaultInputName
	if len(args) == 1 {
		filename = args[0]
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("cannot open %q: %w", filename, err)
	}

	rules, err := loadRules(cmd)
	if err != nil {
		return err
	}

	for _, t := range lexer.Tokenize(src, rules) {
		fmt.Println(t.String())
		if t.Kind == token.EOI {
			break
		}
	}
	return nil
}
