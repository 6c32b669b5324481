package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"simgaji/internal/domain/payroll"
)

// ExportRows serializes the records into a workbook with a "Data Gaji"
// sheet (every field except id and timestamps, derived fields included)
// and a "Summary" sheet with the aggregate block.
func ExportRows(records []payroll.Record) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", DataSheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportColumns))
	for i, name := range exportColumns {
		header[i] = name
	}
	if err := file.SetSheetRow(DataSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			record.WorkUnitCode,
			record.Month,
			record.Year,
			record.Date,
			record.PayrollNumber,
			record.EmployeeID,
			record.EmployeeName,
			record.GradeCode,
			record.TaxID,
			record.BankCode,
			record.BankName,
			record.AccountNumber,
			record.BankBranchName,
			record.WorkDays,
			record.DailyRate,
			record.TaxPercent,
			record.GrossPay,
			record.Deduction,
			record.NetPay,
			payroll.CategoryLabel(record.EmployeeCategory),
		}
		if err := file.SetSheetRow(DataSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := writeSummary(file, records); err != nil {
		return nil, err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummary(file *excelize.File, records []payroll.Record) error {
	if _, err := file.NewSheet(SummarySheet); err != nil {
		return err
	}
	stats := payroll.CalculateStats(records)
	lines := [][]interface{}{
		{"Ringkasan Export"},
		{""},
		{"Total Data", stats.TotalRecords},
		{"Total PNS", stats.CivilCount},
		{"Total Non-PNS", stats.NonCivilCount},
		{"Total Kotor", stats.TotalGross},
		{"Total Bersih", stats.TotalNet},
		{""},
		{"Export Date", time.Now().Format("02/01/2006 15.04.05")},
	}
	for i := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(SummarySheet, cell, &lines[i]); err != nil {
			return err
		}
	}
	return nil
}

// ExportFilename builds the deterministic download name for an export
// scope plus a date stamp, e.g. "Gaji_2025_Januari_PNS_20250115.xlsx".
// Zero-valued scope parts are omitted.
func ExportFilename(year int, month, category string) string {
	parts := []string{"Gaji"}
	if year != 0 {
		parts = append(parts, fmt.Sprintf("%d", year))
	}
	if month != "" {
		parts = append(parts, month)
	}
	if category != "" && category != payroll.CategoryAll {
		parts = append(parts, payroll.CategoryLabel(category))
	}
	parts = append(parts, time.Now().Format("20060102"))
	return strings.Join(parts, "_") + ".xlsx"
}
