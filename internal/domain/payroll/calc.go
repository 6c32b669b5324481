package payroll

// ComputeGross returns workDays × dailyRate.
func ComputeGross(workDays int, dailyRate float64) float64 {
	return float64(workDays) * dailyRate
}

// ComputeDeduction returns gross × taxPercent/100. taxPercent is a
// percentage value (5 means 5%), not a fraction.
func ComputeDeduction(gross, taxPercent float64) float64 {
	return gross * (taxPercent / 100)
}

// ComputeNet returns gross − deduction.
func ComputeNet(gross, deduction float64) float64 {
	return gross - deduction
}

// DeriveAll computes the three derived pay fields in order. NaN inputs
// propagate; callers validate domain ranges before calling.
func DeriveAll(workDays int, dailyRate, taxPercent float64) (gross, deduction, net float64) {
	gross = ComputeGross(workDays, dailyRate)
	deduction = ComputeDeduction(gross, taxPercent)
	net = ComputeNet(gross, deduction)
	return gross, deduction, net
}
