package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validatePropertyCmd = &cobra.Command{
	Use:   "validate-property [expression] [property]",
	Short: "Check an expression's table property label against an exact name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		ok, err := e.ValidateProperty(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validatePropertyCmd)
}
