package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// BuildPayslipPDF renders a one-page payslip for the record.
func BuildPayslipPDF(record Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Slip Gaji")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Pegawai: %s (%s)", record.EmployeeName, record.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Golongan: %s", CategoryLabel(record.EmployeeCategory)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Satker: %s", record.WorkUnitCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Periode: %s %d (%s)", record.Month, record.Year, record.Date))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("No Gaji: %s", record.PayrollNumber))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Jumlah Hari: %d x Tarif %.0f", record.WorkDays, record.DailyRate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Kotor: %.2f", record.GrossPay))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Potongan (PPH %.2f%%): %.2f", record.TaxPercent, record.Deduction))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Bersih: %.2f", record.NetPay))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Bank: %s (%s), Rek %s, %s",
		record.BankName, record.BankCode, record.AccountNumber, record.BankBranchName))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
