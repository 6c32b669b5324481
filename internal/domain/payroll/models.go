package payroll

import "time"

// Record is a single payroll entry. GrossPay, Deduction and NetPay are
// derived from WorkDays, DailyRate and TaxPercent on every write and are
// never accepted from callers.
type Record struct {
	ID               string    `json:"id"`
	WorkUnitCode     string    `json:"workUnitCode"`
	Month            string    `json:"month"`
	Year             int       `json:"year"`
	Date             string    `json:"date"`
	PayrollNumber    string    `json:"payrollNumber"`
	EmployeeID       string    `json:"employeeId"`
	EmployeeName     string    `json:"employeeName"`
	GradeCode        string    `json:"gradeCode"`
	TaxID            string    `json:"taxId"`
	BankCode         string    `json:"bankCode"`
	BankName         string    `json:"bankName"`
	AccountNumber    string    `json:"accountNumber"`
	BankBranchName   string    `json:"bankBranchName"`
	WorkDays         int       `json:"workDays"`
	DailyRate        float64   `json:"dailyRate"`
	TaxPercent       float64   `json:"taxPercent"`
	GrossPay         float64   `json:"grossPay"`
	Deduction        float64   `json:"deduction"`
	NetPay           float64   `json:"netPay"`
	EmployeeCategory string    `json:"employeeCategory"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// RecordInput is the caller-supplied part of a record.
type RecordInput struct {
	WorkUnitCode     string  `json:"workUnitCode"`
	Month            string  `json:"month"`
	Year             int     `json:"year"`
	Date             string  `json:"date"`
	PayrollNumber    string  `json:"payrollNumber"`
	EmployeeID       string  `json:"employeeId"`
	EmployeeName     string  `json:"employeeName"`
	GradeCode        string  `json:"gradeCode"`
	TaxID            string  `json:"taxId"`
	BankCode         string  `json:"bankCode"`
	BankName         string  `json:"bankName"`
	AccountNumber    string  `json:"accountNumber"`
	BankBranchName   string  `json:"bankBranchName"`
	WorkDays         int     `json:"workDays"`
	DailyRate        float64 `json:"dailyRate"`
	TaxPercent       float64 `json:"taxPercent"`
	EmployeeCategory string  `json:"employeeCategory"`
}

// RecordUpdate is a partial update. Nil fields keep the stored value.
// ID and CreatedAt are never updatable.
type RecordUpdate struct {
	WorkUnitCode     *string  `json:"workUnitCode"`
	Month            *string  `json:"month"`
	Year             *int     `json:"year"`
	Date             *string  `json:"date"`
	PayrollNumber    *string  `json:"payrollNumber"`
	EmployeeID       *string  `json:"employeeId"`
	EmployeeName     *string  `json:"employeeName"`
	GradeCode        *string  `json:"gradeCode"`
	TaxID            *string  `json:"taxId"`
	BankCode         *string  `json:"bankCode"`
	BankName         *string  `json:"bankName"`
	AccountNumber    *string  `json:"accountNumber"`
	BankBranchName   *string  `json:"bankBranchName"`
	WorkDays         *int     `json:"workDays"`
	DailyRate        *float64 `json:"dailyRate"`
	TaxPercent       *float64 `json:"taxPercent"`
	EmployeeCategory *string  `json:"employeeCategory"`
}

// Input returns the record's caller-supplied fields.
func (r Record) Input() RecordInput {
	return RecordInput{
		WorkUnitCode:     r.WorkUnitCode,
		Month:            r.Month,
		Year:             r.Year,
		Date:             r.Date,
		PayrollNumber:    r.PayrollNumber,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		GradeCode:        r.GradeCode,
		TaxID:            r.TaxID,
		BankCode:         r.BankCode,
		BankName:         r.BankName,
		AccountNumber:    r.AccountNumber,
		BankBranchName:   r.BankBranchName,
		WorkDays:         r.WorkDays,
		DailyRate:        r.DailyRate,
		TaxPercent:       r.TaxPercent,
		EmployeeCategory: r.EmployeeCategory,
	}
}

// Merge applies the update's non-nil fields onto in.
func (u RecordUpdate) Merge(in RecordInput) RecordInput {
	if u.WorkUnitCode != nil {
		in.WorkUnitCode = *u.WorkUnitCode
	}
	if u.Month != nil {
		in.Month = *u.Month
	}
	if u.Year != nil {
		in.Year = *u.Year
	}
	if u.Date != nil {
		in.Date = *u.Date
	}
	if u.PayrollNumber != nil {
		in.PayrollNumber = *u.PayrollNumber
	}
	if u.EmployeeID != nil {
		in.EmployeeID = *u.EmployeeID
	}
	if u.EmployeeName != nil {
		in.EmployeeName = *u.EmployeeName
	}
	if u.GradeCode != nil {
		in.GradeCode = *u.GradeCode
	}
	if u.TaxID != nil {
		in.TaxID = *u.TaxID
	}
	if u.BankCode != nil {
		in.BankCode = *u.BankCode
	}
	if u.BankName != nil {
		in.BankName = *u.BankName
	}
	if u.AccountNumber != nil {
		in.AccountNumber = *u.AccountNumber
	}
	if u.BankBranchName != nil {
		in.BankBranchName = *u.BankBranchName
	}
	if u.WorkDays != nil {
		in.WorkDays = *u.WorkDays
	}
	if u.DailyRate != nil {
		in.DailyRate = *u.DailyRate
	}
	if u.TaxPercent != nil {
		in.TaxPercent = *u.TaxPercent
	}
	if u.EmployeeCategory != nil {
		in.EmployeeCategory = *u.EmployeeCategory
	}
	return in
}

// Stats are the dashboard aggregates over a record set.
type Stats struct {
	TotalRecords  int     `json:"totalRecords"`
	CivilCount    int     `json:"civilCount"`
	NonCivilCount int     `json:"nonCivilCount"`
	TotalGross    float64 `json:"totalGross"`
	TotalNet      float64 `json:"totalNet"`
}
