// Command render is a small Cobra CLI exercising the timeline composition
// core end to end: rendering a frame, round-tripping an SRT file, and
// validating/substituting an animation schema.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "render",
	Short: "Timeline composition core CLI",
	Long:  "render exercises the timeline composition core: frame rendering, SRT round-tripping, and animation-schema validation/substitution.",
}

func main() {
	rootCmd.AddCommand(renderFrameCmd)
	rootCmd.AddCommand(srtRoundtripCmd)
	rootCmd.AddCommand(schemaValidateCmd)
	rootCmd.AddCommand(schemaSubstituteCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
