package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ucum-go/ucum/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [expression]",
	Short: "Parse a UCUM expression and print its expression tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(node.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
