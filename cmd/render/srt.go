package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"videocore/subtitle"
)

var srtRoundtripCmd = &cobra.Command{
	Use:   "srt-roundtrip <input.srt>",
	Short: "Parse an SRT file and re-emit it, reporting any parse errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		result := subtitle.Parse(string(data))
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "parse warning: %s\n", e.Error())
		}
		if !result.Success {
			fmt.Fprintln(os.Stderr, "SRT parsed with errors; emitting the subtitles that did parse")
		}

		fmt.Print(subtitle.Emit(result.Subtitles))
		return nil
	},
}
