package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"simgaji/internal/domain/payroll"
)

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportReport struct {
	Success int        `json:"success"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors"`
}

// ImportRows parses the first sheet of an xlsx workbook into record inputs.
// The first row must be the header; each data row is validated on its own,
// and a failing row is reported without aborting the rest. Row numbers in
// the report are 1-based including the header, so the first data row is 2.
func ImportRows(r io.Reader) ([]payroll.RecordInput, ImportReport, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ImportReport{}, fmt.Errorf("parse workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ImportReport{}, fmt.Errorf("workbook has no sheets")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, ImportReport{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ImportReport{}, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	header := map[string]int{}
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}

	var accepted []payroll.RecordInput
	report := ImportReport{Errors: []RowError{}}
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rowNumber := i + 2

		in := mapRow(header, row)
		if err := payroll.CheckIdentity(in); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, RowError{Row: rowNumber, Message: err.Error()})
			continue
		}
		report.Success++
		accepted = append(accepted, in)
	}
	return accepted, report, nil
}

func mapRow(header map[string]int, row []string) payroll.RecordInput {
	cell := func(column string) string {
		idx, ok := header[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	return payroll.RecordInput{
		WorkUnitCode:     cell(colWorkUnit),
		Month:            cell(colMonth),
		Year:             intCell(cell(colYear), time.Now().Year()),
		Date:             cell(colDate),
		PayrollNumber:    cell(colPayrollNo),
		EmployeeID:       cell(colEmployeeID),
		EmployeeName:     cell(colName),
		GradeCode:        cell(colGrade),
		TaxID:            cell(colTaxID),
		BankCode:         cell(colBankCode),
		BankName:         cell(colBankName),
		AccountNumber:    cell(colAccount),
		BankBranchName:   cell(colBranch),
		WorkDays:         intCell(cell(colWorkDays), 0),
		DailyRate:        floatCell(cell(colDailyRate)),
		TaxPercent:       floatCell(cell(colTaxPercent)),
		EmployeeCategory: payroll.ParseCategoryLabel(cell(colCategory)),
	}
}

// intCell parses a numeric cell, treating missing, unparseable and zero
// values as the fallback.
func intCell(value string, fallback int) int {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed == 0 {
		return fallback
	}
	return int(parsed)
}

func floatCell(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
