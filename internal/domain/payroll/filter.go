package payroll

import (
	"strings"
	"time"
)

// Filter holds the optional view criteria. Zero values match everything;
// the date range applies only when both bounds are set.
type Filter struct {
	Year     int
	Month    string
	DateFrom string
	DateTo   string
	Category string
	Search   string
}

// searchable lists the fields the free-text query matches against.
func searchable(r Record) []string {
	return []string{
		r.WorkUnitCode,
		r.EmployeeID,
		r.EmployeeName,
		r.PayrollNumber,
		r.TaxID,
		r.BankName,
		r.AccountNumber,
	}
}

// ApplyFilter returns the subset of records matching every set criterion,
// preserving the input order. The input is never mutated.
func ApplyFilter(records []Record, f Filter) []Record {
	query := strings.ToLower(f.Search)
	out := make([]Record, 0, len(records))
	for _, record := range records {
		if f.Year != 0 && record.Year != f.Year {
			continue
		}
		if f.Month != "" && record.Month != f.Month {
			continue
		}
		if f.DateFrom != "" && f.DateTo != "" && !inDateRange(record.Date, f.DateFrom, f.DateTo) {
			continue
		}
		if f.Category != "" && f.Category != CategoryAll && record.EmployeeCategory != f.Category {
			continue
		}
		if query != "" && !matchesQuery(record, query) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchesQuery(r Record, query string) bool {
	for _, field := range searchable(r) {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// inDateRange reports whether date falls inside [from, to], inclusive.
// Unparseable dates do not exclude the record, matching the historical
// behavior of the range filter.
func inDateRange(date, from, to string) bool {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return true
	}
	start, err := time.Parse(DateLayout, from)
	if err != nil {
		return true
	}
	end, err := time.Parse(DateLayout, to)
	if err != nil {
		return true
	}
	return !day.Before(start) && !day.After(end)
}
