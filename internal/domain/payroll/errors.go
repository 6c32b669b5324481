package payroll

import "errors"

// Identity constraints checked before a record enters the store. The
// messages match the import template's validation notes.
var (
	ErrEmployeeIDLength = errors.New("NIP harus 18 digit")
	ErrTaxIDLength      = errors.New("NPWP harus 15 digit")
	ErrNameRequired     = errors.New("Nama Pegawai wajib diisi")
)

// CheckIdentity enforces the constraints every stored record must satisfy:
// an 18-character NIP, a 15-character NPWP and a non-empty employee name.
func CheckIdentity(in RecordInput) error {
	if len(in.EmployeeID) != EmployeeIDLength {
		return ErrEmployeeIDLength
	}
	if len(in.TaxID) != TaxIDLength {
		return ErrTaxIDLength
	}
	if in.EmployeeName == "" {
		return ErrNameRequired
	}
	return nil
}
