package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "styleeval",
	Short: "Parse and evaluate style expressions",
	Long: `styleeval parses and evaluates the style-expression language used to
describe data-driven map styling: boolean, number, string, color, number
array, and size values built from feature properties, style variables, and
view state (zoom, resolution, geometry type, feature id).

It has two subcommands:

  styleeval eval       evaluate one expression against a feature/context
  styleeval describe   list the accessors ("get"/"var") an expression reads
`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))
}
