package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ucum-go/ucum/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex [expression]",
	Short: "Tokenize a UCUM expression and print the resulting tokens",
	Long: `Tokenize (lex) a UCUM unit expression and print its token stream.

Useful for debugging the lexer and understanding how an expression like
"kg.m/s2" or "mm[Hg]" is broken into tokens.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := lexer.New(args[0])
		for _, tok := range l.Tokens() {
			if tok.Type == lexer.EOF {
				fmt.Printf("[%-10s] @%d\n", tok.Type, tok.Offset)
				continue
			}
			fmt.Printf("[%-10s] %q @%d\n", tok.Type, tok.Literal, tok.Offset)
		}
		if errs := l.Errors(); len(errs) > 0 {
			for _, e := range errs {
				fmt.Println(e.Format())
			}
			return fmt.Errorf("%d lexical error(s)", len(errs))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
