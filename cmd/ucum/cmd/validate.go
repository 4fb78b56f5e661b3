package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [expression]",
	Short: "Validate a UCUM unit expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		if err := e.Validate(args[0]); err != nil {
			fmt.Printf("invalid: %v\n", err)
			return err
		}
		fmt.Println("valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
