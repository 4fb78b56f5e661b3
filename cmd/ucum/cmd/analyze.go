package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [expression]",
	Short: "Describe a UCUM unit expression's canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		a, err := e.Analyze(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("expression:     %s\n", a.Expression)
		fmt.Printf("canonical text: %s\n", a.CanonicalText)
		fmt.Printf("dimensions:     %v\n", a.Dims)
		fmt.Printf("factor:         %g\n", a.Factor)
		fmt.Printf("special:        %t\n", a.IsSpecial)
		fmt.Printf("arbitrary:      %t\n", a.IsArbitrary)
		if a.IsSpecial {
			fmt.Printf("offset:         %g\n", a.Offset)
		}
		if a.IsArbitrary {
			fmt.Printf("arbitrary tag:  %s\n", a.ArbitraryTag)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
