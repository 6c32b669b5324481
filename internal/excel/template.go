package excel

import (
	"github.com/xuri/excelize/v2"
)

// sample rows shipped with the import template.
var templateRows = [][]interface{}{
	{"123456", "Januari", 2025, "2025-01-15", "GP001", "199001012020121001", "Ahmad Sudirman", "III/a", "123456789012345", "002", "BRI", "1234567890", "Cabang Jakarta", 22, 500000, 5, "PNS"},
	{"123457", "Januari", 2025, "2025-01-15", "GP002", "199002012020121002", "Siti Rahmawati", "II/b", "123456789012346", "008", "Mandiri", "0987654321", "Cabang Bandung", 20, 450000, 5, "PNS"},
	{"123458", "Januari", 2025, "2025-01-15", "GP003", "199003012020121003", "Budi Santoso", "", "123456789012347", "002", "BRI", "5555666677", "Cabang Surabaya", 25, 300000, 10, "Non-PNS"},
}

var templateInstructions = [][]interface{}{
	{"TEMPLATE EXCEL DATA GAJI"},
	{"DITJEN PEMBANGUNAN DAERAH"},
	{""},
	{"PETUNJUK PENGGUNAAN:"},
	{"1. Gunakan sheet \"Data Gaji\" untuk mengisi data"},
	{"2. Jangan mengubah nama kolom di baris header"},
	{"3. Pastikan format data sesuai dengan ketentuan"},
	{""},
	{"FORMAT KOLOM:"},
	{"Kolom", "Format", "Keterangan"},
	{colWorkUnit, "Text", "Kode satuan kerja"},
	{colMonth, "Text", "Nama bulan (Januari-Desember)"},
	{colYear, "Number", "Tahun (2020-2100)"},
	{colDate, "Text", "Format: YYYY-MM-DD"},
	{colPayrollNo, "Text", "Nomor gaji"},
	{colEmployeeID, "Text", "18 digit NIP (wajib)"},
	{colName, "Text", "Nama lengkap pegawai (wajib)"},
	{colGrade, "Text", "Kode golongan (untuk Non-PNS boleh kosong)"},
	{colTaxID, "Text", "15 digit NPWP (wajib)"},
	{colBankCode, "Text", "Kode bank SPAN"},
	{colBankName, "Text", "Nama bank"},
	{colAccount, "Text", "Nomor rekening"},
	{colBranch, "Text", "Nama cabang bank"},
	{colWorkDays, "Number", "Jumlah hari kerja (1-31)"},
	{colDailyRate, "Number", "Tarif gaji PER HARI dalam Rupiah (contoh: 500000)"},
	{colTaxPercent, "Number", "PPH dalam PERSEN (contoh: 5 untuk PPH 5%)"},
	{colCategory, "Text", "PNS atau Non-PNS"},
	{""},
	{"KALKULASI OTOMATIS OLEH SISTEM:"},
	{"Field ini TIDAK PERLU diisi, akan dihitung otomatis:"},
	{"- Kotor = Jumlah Hari x Tarif"},
	{"- Potongan = Kotor x (PPH / 100)"},
	{"- Bersih = Kotor - Potongan"},
	{""},
	{"VALIDASI:"},
	{"- NIP harus tepat 18 digit"},
	{"- NPWP harus tepat 15 digit"},
	{"- Nama Pegawai wajib diisi"},
	{"- Golongan harus \"PNS\" atau \"Non-PNS\""},
}

// BuildTemplate produces the downloadable import template: sample data on
// the "Data Gaji" sheet and an instruction sheet.
func BuildTemplate() ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", DataSheet); err != nil {
		return nil, err
	}
	header := make([]interface{}, len(importColumns))
	for i, name := range importColumns {
		header[i] = name
	}
	if err := file.SetSheetRow(DataSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i := range templateRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := file.SetSheetRow(DataSheet, cell, &templateRows[i]); err != nil {
			return nil, err
		}
	}

	if _, err := file.NewSheet(InstructionsSheet); err != nil {
		return nil, err
	}
	for i := range templateInstructions {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := file.SetSheetRow(InstructionsSheet, cell, &templateInstructions[i]); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
