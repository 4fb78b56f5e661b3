package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enumerateProperty string

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "List every unit atom known to the engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine()
		if err != nil {
			return err
		}
		entries := e.Enumerate()
		if enumerateProperty != "" {
			entries = e.EnumerateByProperty(enumerateProperty)
		}
		for _, entry := range entries {
			fmt.Printf("%-12s metric=%-5t property=%-24s kind=%v\n", entry.Symbol, entry.Metric, entry.Property, entry.Kind)
		}
		return nil
	},
}

func init() {
	enumerateCmd.Flags().StringVar(&enumerateProperty, "property", "", "restrict to atoms with this exact property label")
	rootCmd.AddCommand(enumerateCmd)
}
