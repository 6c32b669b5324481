package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"simgaji/internal/domain/payroll"
	"simgaji/internal/excel"
	"simgaji/internal/platform/kv"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export payroll records to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := payroll.Filter{}
		filter.Year, _ = cmd.Flags().GetInt("tahun")
		filter.Month, _ = cmd.Flags().GetString("bulan")
		filter.DateFrom, _ = cmd.Flags().GetString("from")
		filter.DateTo, _ = cmd.Flags().GetString("to")
		filter.Search, _ = cmd.Flags().GetString("query")
		if category, _ := cmd.Flags().GetString("golongan"); category != "" && category != payroll.CategoryAll {
			filter.Category = payroll.ParseCategoryLabel(category)
		}

		kvs, err := kv.Open(dataPath)
		if err != nil {
			return err
		}
		defer kvs.Close()

		store := payroll.NewStore(kvs)
		records := payroll.ApplyFilter(store.ListAll(), filter)

		payload, err := excel.ExportRows(records)
		if err != nil {
			return fmt.Errorf("build workbook: %w", err)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = excel.ExportFilename(filter.Year, filter.Month, filter.Category)
		}
		if err := os.WriteFile(output, payload, 0o644); err != nil {
			return err
		}
		fmt.Printf("exported %d records to %s\n", len(records), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default: derived from scope)")
	exportCmd.Flags().Int("tahun", 0, "Filter by year")
	exportCmd.Flags().String("bulan", "", "Filter by month name")
	exportCmd.Flags().String("from", "", "Date range start (YYYY-MM-DD, needs --to)")
	exportCmd.Flags().String("to", "", "Date range end (YYYY-MM-DD, needs --from)")
	exportCmd.Flags().String("golongan", "", "Filter by category (PNS or Non-PNS)")
	exportCmd.Flags().StringP("query", "q", "", "Free-text search")
}
