package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [value] [from] [to]",
	Short: "Convert a value between two commensurable UCUM units",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q: %w", args[0], err)
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		result, err := e.Convert(value, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("%g %s = %g %s\n", value, args[1], result, args[2])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
