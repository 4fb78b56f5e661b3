// Command ucum is a CLI front end for the UCUM parsing, validation and
// conversion engine.
package main

import (
	"fmt"
	"os"

	"github.com/ucum-go/ucum/cmd/ucum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
