// Command styleeval parses and evaluates style expressions from the
// command line, for authoring and debugging style rules outside of a full
// map renderer.
package main

import (
	"fmt"
	"os"

	"github.com/tschaub/openlayers/cmd/styleeval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
