package payroll

// CalculateStats aggregates the dashboard figures over a record set.
func CalculateStats(records []Record) Stats {
	stats := Stats{TotalRecords: len(records)}
	for _, record := range records {
		switch record.EmployeeCategory {
		case CategoryCivil:
			stats.CivilCount++
		case CategoryNonCivil:
			stats.NonCivilCount++
		}
		stats.TotalGross += record.GrossPay
		stats.TotalNet += record.NetPay
	}
	return stats
}
