package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/tschaub/openlayers/pkg/styleexpr"
)

var (
	evalType         string
	evalContextFile  string
	evalSets         []string
	evalFeatureID    string
	evalGeometryType string
	evalResolution   float64
	evalZoom         float64
	evalTime         float64
	evalLineMetric   float64
	evalOutput       string
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a style expression",
	Long: `Evaluate parses a JSON-encoded style expression, builds an evaluation
context from feature properties and view state, and prints the result.

Example:

  styleeval eval --type number --set population=4200 \
    '["interpolate",["linear"],["get","population"],0,4,10000,20]'
`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&evalType, "type", "number", "declared result type: boolean, number, string, color, number-array, size")
	evalCmd.Flags().StringVar(&evalContextFile, "context-file", "", "JSON or YAML file of feature properties/variables")
	evalCmd.Flags().StringArrayVar(&evalSets, "set", nil, "set a property/variable value, key=value (repeatable)")
	evalCmd.Flags().StringVar(&evalFeatureID, "feature-id", "", `value "id" reads`)
	evalCmd.Flags().StringVar(&evalGeometryType, "geometry-type", "", `value "geometry-type" reads`)
	evalCmd.Flags().Float64Var(&evalResolution, "resolution", 0, `value "resolution" reads`)
	evalCmd.Flags().Float64Var(&evalZoom, "zoom", 0, `value "zoom" reads`)
	evalCmd.Flags().Float64Var(&evalTime, "time", 0, `value "time" reads`)
	evalCmd.Flags().Float64Var(&evalLineMetric, "line-metric", 0, `value "line-metric" reads`)
	evalCmd.Flags().StringVarP(&evalOutput, "output", "o", "text", "output format: text or json")
}

func runEval(cmd *cobra.Command, args []string) error {
	t, err := parseType(evalType)
	if err != nil {
		return err
	}

	encoded, err := decodeExpression(args[0])
	if err != nil {
		return err
	}

	parsingCtx := styleexpr.NewParsingContext()
	compiled, err := styleexpr.BuildExpression(encoded, t, parsingCtx)
	if err != nil {
		return fmt.Errorf("parsing expression: %w", err)
	}

	doc, err := loadContextDocument(evalContextFile, evalSets)
	if err != nil {
		return err
	}

	evalCtx, err := styleexpr.ProcessAccessorValues(doc, parsingCtx)
	if err != nil {
		return fmt.Errorf("processing feature properties: %w", err)
	}

	if evalFeatureID != "" {
		evalCtx.SetFeatureID(evalFeatureID)
	}
	evalCtx.SetGeometryType(evalGeometryType)
	evalCtx.SetResolution(evalResolution)
	evalCtx.SetZoom(evalZoom)
	evalCtx.SetTime(evalTime)
	evalCtx.SetLineMetric(evalLineMetric)

	result, err := compiled.Eval(evalCtx)
	if err != nil {
		return fmt.Errorf("evaluating expression: %w", err)
	}

	return printResult(result)
}

func printResult(result any) error {
	switch evalOutput {
	case "text":
		fmt.Println(formatResult(result))
	case "json":
		encoded, err := jsonMarshal(result)
		if err != nil {
			return err
		}
		fmt.Println(string(pretty.Pretty(encoded)))
	default:
		return fmt.Errorf("unknown --output %q (want text or json)", evalOutput)
	}
	return nil
}

func formatResult(result any) string {
	return gjson.Parse(mustJSON(result)).String()
}
