package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var multiplyCmd = &cobra.Command{
	Use:   "multiply [a] [b]",
	Short: "Fold two UCUM units together as if joined by '.'",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		text, err := e.Multiply(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var divideCmd = &cobra.Command{
	Use:   "divide [a] [b]",
	Short: "Fold two UCUM units together as if joined by '/'",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		text, err := e.Divide(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(multiplyCmd)
	rootCmd.AddCommand(divideCmd)
}
