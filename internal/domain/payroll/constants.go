package payroll

import "strings"

const (
	CategoryCivil    = "civil"
	CategoryNonCivil = "non-civil"

	// CategoryAll is the filter sentinel meaning "no category filtering".
	CategoryAll = "ALL"

	EmployeeIDLength = 18
	TaxIDLength      = 15

	MinYear = 2020
	MaxYear = 2100

	MinWorkDays = 1
	MaxWorkDays = 31

	DateLayout = "2006-01-02"
)

// Months lists the permitted month names, January through December.
var Months = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func ValidMonth(name string) bool {
	for _, month := range Months {
		if month == name {
			return true
		}
	}
	return false
}

func ValidCategory(category string) bool {
	return category == CategoryCivil || category == CategoryNonCivil
}

// CategoryLabel maps a stored category to its display label.
func CategoryLabel(category string) string {
	if category == CategoryCivil {
		return "PNS"
	}
	return "Non-PNS"
}

// ParseCategoryLabel maps a display label back to a stored category.
// Unrecognized values fall back to non-civil.
func ParseCategoryLabel(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "pns", CategoryCivil:
		return CategoryCivil
	default:
		return CategoryNonCivil
	}
}
