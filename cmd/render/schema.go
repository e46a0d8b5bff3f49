package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"videocore/schema"
)

var schemaValidateCmd = &cobra.Command{
	Use:   "schema-validate <schema.json>",
	Short: "Validate an animation schema document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema(args[0])
		if err != nil {
			return err
		}
		report := schema.Validate(s)
		fmt.Println(report.String())
		if !report.Success {
			os.Exit(1)
		}
		return nil
	},
}

var schemaSubstituteCmd = &cobra.Command{
	Use:   "schema-substitute <schema.json>",
	Short: "Substitute {{variable}} placeholders in an animation schema and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema(args[0])
		if err != nil {
			return err
		}

		vars, _ := cmd.Flags().GetStringToString("var")
		out, err := schema.SubstituteVariables(s, vars)
		if err != nil {
			return fmt.Errorf("substituting variables: %w", err)
		}

		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	},
}

func init() {
	schemaSubstituteCmd.Flags().StringToString("var", nil, "variable override, may be repeated (name=value)")
}

func loadSchema(path string) (schema.AnimationSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.AnimationSchema{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var s schema.AnimationSchema
	if err := json.Unmarshal(data, &s); err != nil {
		return schema.AnimationSchema{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}
