package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var commensurableCmd = &cobra.Command{
	Use:   "commensurable [a] [b]",
	Short: "Check whether two UCUM units are commensurable",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		ok, err := e.Commensurable(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commensurableCmd)
}
