// Package excel bridges payroll records and xlsx workbooks. It never
// touches the record store; callers decide what to do with parsed rows.
package excel

const (
	DataSheet         = "Data Gaji"
	SummarySheet      = "Summary"
	InstructionsSheet = "Petunjuk"
)

// Column headers of the data sheet, in the fixed order used by both the
// import template and exports.
const (
	colWorkUnit   = "Kode Satker"
	colMonth      = "Bulan"
	colYear       = "Tahun"
	colDate       = "Tanggal"
	colPayrollNo  = "No Gaji"
	colEmployeeID = "NIP"
	colName       = "Nama Pegawai"
	colGrade      = "Kode Gol"
	colTaxID      = "NPWP"
	colBankCode   = "Kode Bank SPAN"
	colBankName   = "Nama Bank SPAN"
	colAccount    = "No Rek"
	colBranch     = "Nama Cabang Bank"
	colWorkDays   = "Jumlah Hari"
	colDailyRate  = "Tarif"
	colTaxPercent = "PPH"
	colGross      = "Kotor"
	colDeduction  = "Potongan"
	colNet        = "Bersih"
	colCategory   = "Golongan"
)

// importColumns is the header set expected on import (derived fields are
// computed by the store, never read back).
var importColumns = []string{
	colWorkUnit, colMonth, colYear, colDate, colPayrollNo,
	colEmployeeID, colName, colGrade, colTaxID,
	colBankCode, colBankName, colAccount, colBranch,
	colWorkDays, colDailyRate, colTaxPercent, colCategory,
}

// exportColumns is the full header set written on export.
var exportColumns = []string{
	colWorkUnit, colMonth, colYear, colDate, colPayrollNo,
	colEmployeeID, colName, colGrade, colTaxID,
	colBankCode, colBankName, colAccount, colBranch,
	colWorkDays, colDailyRate, colTaxPercent,
	colGross, colDeduction, colNet, colCategory,
}
