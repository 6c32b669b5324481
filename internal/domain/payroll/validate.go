package payroll

import "time"

type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validate runs the full field validation applied at the form boundary.
// It returns nil when the input is acceptable.
func Validate(in RecordInput) []Issue {
	var issues []Issue
	add := func(field, reason string) {
		issues = append(issues, Issue{Field: field, Reason: reason})
	}

	if in.WorkUnitCode == "" {
		add("workUnitCode", "Kode Satker wajib diisi")
	}
	if in.Month == "" {
		add("month", "Bulan wajib diisi")
	} else if !ValidMonth(in.Month) {
		add("month", "Bulan harus salah satu dari Januari-Desember")
	}
	if in.Year < MinYear {
		add("year", "Tahun minimal 2020")
	}
	if in.Year > MaxYear {
		add("year", "Tahun maksimal 2100")
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		add("date", "Format tanggal harus YYYY-MM-DD")
	}
	if in.PayrollNumber == "" {
		add("payrollNumber", "No. Gaji wajib diisi")
	}
	if len(in.EmployeeID) != EmployeeIDLength {
		add("employeeId", ErrEmployeeIDLength.Error())
	}
	if in.EmployeeName == "" {
		add("employeeName", ErrNameRequired.Error())
	}
	if in.GradeCode == "" {
		add("gradeCode", "Kode Golongan wajib diisi")
	}
	if len(in.TaxID) != TaxIDLength {
		add("taxId", ErrTaxIDLength.Error())
	}
	if in.BankCode == "" {
		add("bankCode", "Kode Bank SPAN wajib diisi")
	}
	if in.BankName == "" {
		add("bankName", "Nama Bank SPAN wajib diisi")
	}
	if in.AccountNumber == "" {
		add("accountNumber", "No. Rekening wajib diisi")
	}
	if in.BankBranchName == "" {
		add("bankBranchName", "Nama Cabang Bank wajib diisi")
	}
	if in.WorkDays < MinWorkDays {
		add("workDays", "Jumlah Hari minimal 1")
	}
	if in.WorkDays > MaxWorkDays {
		add("workDays", "Jumlah Hari maksimal 31")
	}
	if in.DailyRate < 0 {
		add("dailyRate", "Tarif harus lebih dari atau sama dengan 0")
	}
	if in.TaxPercent < 0 {
		add("taxPercent", "PPH (dalam persen) harus lebih dari atau sama dengan 0")
	}
	if !ValidCategory(in.EmployeeCategory) {
		add("employeeCategory", "Golongan harus PNS atau Non-PNS")
	}
	return issues
}
