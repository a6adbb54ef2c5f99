package rental

import "github.com/iwvelando/rental-analyzer/pkg/constants"

// ExpenseMonthlyAmount derives a single expense line's monthly cost. The
// monthlyRevenue argument is the unit's revenue figure shared by every
// percent-revenue line in one aggregation pass; propertyValue is the
// purchase price for percent-property lines. The unit itself is consulted
// only for per-booking frequency, which requires a short-term turnover
// model.
func ExpenseMonthlyAmount(expense Expense, monthlyRevenue, propertyValue float64, unit Unit) float64 {
	switch expense.CalculationType {
	case CalcFixedMonthly:
		return expense.Value

	case CalcPercentRevenue:
		return monthlyRevenue * (expense.Value / constants.PercentageMultiplier)

	case CalcPerOccurrence:
		if expense.Frequency == nil {
			return 0
		}
		return expense.Value * monthlyOccurrences(*expense.Frequency, unit)

	case CalcPercentProperty:
		return propertyValue * (expense.Value / constants.PercentageMultiplier) / constants.MonthsPerYear

	case CalcAnnualFixed:
		return expense.Value / constants.MonthsPerYear

	default:
		return 0
	}
}

// monthlyOccurrences converts a frequency into occurrences per month.
// Per-booking frequency only resolves for STR units; for any other unit
// the configured count is used as-is.
func monthlyOccurrences(frequency Frequency, unit Unit) float64 {
	count := frequency.Count
	switch frequency.Type {
	case FreqDaily:
		return count * constants.DaysPerMonth
	case FreqWeekly:
		return count * constants.WeeksPerMonth
	case FreqMonthly:
		return count
	case FreqQuarterly:
		return count / constants.MonthsPerQuarter
	case FreqAnnual:
		return count / constants.MonthsPerYear
	case FreqPerBooking:
		if revenue, ok := unit.Revenue.(STRRevenue); ok {
			return STRMonthlyTurnovers(revenue) * count
		}
		return count
	default:
		return count
	}
}

// UnitMonthlyExpenses sums every expense line of a unit. The unit's
// revenue is computed once and shared across all percent-revenue lines.
func UnitMonthlyExpenses(unit Unit, propertyValue float64) float64 {
	monthlyRevenue := UnitMonthlyRevenue(unit)

	total := 0.0
	for _, expense := range unit.Expenses {
		total += ExpenseMonthlyAmount(expense, monthlyRevenue, propertyValue, unit)
	}
	return total
}

// UnitNOI is the unit's net operating income: revenue minus operating
// expenses, before the mortgage.
func UnitNOI(unit Unit, propertyValue float64) float64 {
	return UnitMonthlyRevenue(unit) - UnitMonthlyExpenses(unit, propertyValue)
}

// SweatEquitySavings is the monthly amount saved by doing an expense
// yourself rather than outsourcing it: the outsourced cost minus the
// calculated amount. It is a display value and does not feed cash flow.
// Returns 0 for expenses not marked DIY.
func SweatEquitySavings(expense Expense, monthlyRevenue, propertyValue float64, unit Unit) float64 {
	if !expense.IsDIY {
		return 0
	}
	return expense.OutsourcedCost - ExpenseMonthlyAmount(expense, monthlyRevenue, propertyValue, unit)
}
