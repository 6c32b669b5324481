package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"simgaji/internal/excel"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Generate the xlsx import template",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		payload, err := excel.BuildTemplate()
		if err != nil {
			return fmt.Errorf("build template: %w", err)
		}
		if err := os.WriteFile(output, payload, 0o644); err != nil {
			return err
		}
		fmt.Printf("template written to %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().StringP("output", "o", "Template_Data_Gaji.xlsx", "Output file path")
}
