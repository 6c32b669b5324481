package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"simgaji/internal/domain/payroll"
	"simgaji/internal/excel"
	"simgaji/internal/platform/kv"
)

// errorPreviewLimit bounds how many per-row messages are printed; the
// rest collapse into a count.
const errorPreviewLimit = 5

var importCmd = &cobra.Command{
	Use:   "import [workbook.xlsx]",
	Short: "Bulk-import payroll rows from an xlsx workbook",
	Long: `Parses the first sheet of the workbook and appends every valid row to
the data file. When any row fails validation nothing is committed unless
--confirm is given, in which case the valid rows are committed anyway.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")

		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		accepted, report, err := excel.ImportRows(file)
		if err != nil {
			return err
		}

		fmt.Printf("parsed: %d valid, %d failed\n", report.Success, report.Failed)
		for i, rowErr := range report.Errors {
			if i == errorPreviewLimit {
				fmt.Printf("  ... and %d more errors\n", len(report.Errors)-errorPreviewLimit)
				break
			}
			fmt.Printf("  row %d: %s\n", rowErr.Row, rowErr.Message)
		}

		if len(accepted) == 0 {
			return fmt.Errorf("no valid rows to import")
		}
		if report.Failed > 0 && !confirm {
			return fmt.Errorf("%d rows failed validation; re-run with --confirm to import the %d valid rows", report.Failed, report.Success)
		}

		kvs, err := kv.Open(dataPath)
		if err != nil {
			return err
		}
		defer kvs.Close()

		store := payroll.NewStore(kvs)
		if err := store.Initialize(); err != nil {
			return err
		}
		created, err := store.CreateBulk(accepted)
		if err != nil {
			return err
		}
		fmt.Printf("imported %d records into %s\n", len(created), dataPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().Bool("confirm", false, "Commit valid rows even when some rows failed validation")
}
