package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ucum-go/ucum/pkg/ucum"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var caseInsensitive bool

var rootCmd = &cobra.Command{
	Use:   "ucum",
	Short: "UCUM unit expression engine",
	Long: `ucum validates, analyzes and converts Unified Code for Units of
Measure (UCUM) expressions.

UCUM defines a grammar of unit atoms, prefixes, exponents and products for
unambiguously expressing units of measure in scientific and clinical data.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&caseInsensitive, "case-insensitive", false, "match unit symbols case-insensitively")
}

func newEngine() (*ucum.Engine, error) {
	if caseInsensitive {
		return ucum.New(ucum.WithCaseMode(ucum.CaseInsensitive))
	}
	return ucum.New()
}
