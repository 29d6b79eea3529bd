package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tschaub/openlayers/pkg/styleexpr"
)

var describeType string

var describeCmd = &cobra.Command{
	Use:   "describe <expression>",
	Short: `List the accessors ("get"/"var") an expression reads`,
	Long: `Describe parses a JSON-encoded style expression and prints every
"get"/"var" accessor it collected, along with whether it reads the
feature id or geometry type, without evaluating anything.

Example:

  styleeval describe --type color \
    '["case", ["==", ["get", "kind"], 1], ["var", "highlight"], "gray"]'
`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringVar(&describeType, "type", "number", "declared result type: boolean, number, string, color, number-array, size")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	t, err := parseType(describeType)
	if err != nil {
		return err
	}

	encoded, err := decodeExpression(args[0])
	if err != nil {
		return err
	}

	parsingCtx := styleexpr.NewParsingContext()
	if _, err := styleexpr.Parse(encoded, t, parsingCtx); err != nil {
		return fmt.Errorf("parsing expression: %w", err)
	}

	printAccessors(cmd, "properties", parsingCtx.Properties())
	printAccessors(cmd, "variables", parsingCtx.Variables())

	fmt.Fprintf(cmd.OutOrStdout(), "feature id used:    %v\n", parsingCtx.UsesFeatureID())
	fmt.Fprintf(cmd.OutOrStdout(), "geometry type used: %v\n", parsingCtx.UsesGeometryType())

	return nil
}

func printAccessors(cmd *cobra.Command, label string, accessors []styleexpr.Accessor) {
	out := cmd.OutOrStdout()
	if len(accessors) == 0 {
		fmt.Fprintf(out, "%s: none\n", label)
		return
	}
	fmt.Fprintf(out, "%s:\n", label)
	for _, acc := range accessors {
		def := ""
		if acc.HasDefault {
			def = fmt.Sprintf(" default=%v", acc.Default)
		}
		fmt.Fprintf(out, "  %s path=%v type=%s%s\n", acc.Slug, acc.Path, acc.Type, def)
	}
}
