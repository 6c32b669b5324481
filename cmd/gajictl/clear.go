package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"simgaji/internal/domain/payroll"
	"simgaji/internal/platform/kv"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every payroll record from the data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to clear without --yes")
		}

		kvs, err := kv.Open(dataPath)
		if err != nil {
			return err
		}
		defer kvs.Close()

		store := payroll.NewStore(kvs)
		count := len(store.ListAll())
		if err := store.ClearAll(); err != nil {
			return err
		}
		fmt.Printf("cleared %d records from %s\n", count, dataPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().Bool("yes", false, "Confirm clearing all records")
}
