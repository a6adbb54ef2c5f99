package rental

import "github.com/iwvelando/rental-analyzer/pkg/constants"

// UnitMonthlyRevenue derives the unit's effective monthly gross revenue
// from its rental-type-specific configuration. A unit with no revenue
// configuration yields 0.
func UnitMonthlyRevenue(unit Unit) float64 {
	switch revenue := unit.Revenue.(type) {
	case STRRevenue:
		return revenue.NightlyRate * constants.DaysPerMonth * (revenue.OccupancyPercent / constants.PercentageMultiplier)
	case MTRRevenue:
		occupancy := revenue.OccupancyPercent / constants.PercentageMultiplier
		if revenue.RateType == RateMonthly && revenue.MonthlyRate != 0 {
			return revenue.MonthlyRate * occupancy
		}
		if revenue.DailyRate != 0 {
			return revenue.DailyRate * constants.DaysPerMonth * occupancy
		}
		return 0
	case LTRRevenue:
		effectiveOccupancy := 1 - revenue.AnnualVacancyPercent/constants.PercentageMultiplier
		return revenue.MonthlyRent * effectiveOccupancy
	case GenericRevenue:
		return revenue.MonthlyRevenue
	default:
		return 0
	}
}

// STRMonthlyTurnovers computes the number of booking cycles per month for
// a short-term unit: occupied days in a 30-day month divided by the
// average stay length. An AvgStayLength of 0 propagates to the caller as
// +Inf; validation warns about it upstream.
func STRMonthlyTurnovers(revenue STRRevenue) float64 {
	daysOccupied := constants.DaysPerMonth * (revenue.OccupancyPercent / constants.PercentageMultiplier)
	return daysOccupied / revenue.AvgStayLength
}
