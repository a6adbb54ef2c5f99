package validation

import (
	"fmt"

	"github.com/iwvelando/rental-analyzer/pkg/constants"
	"github.com/iwvelando/rental-analyzer/pkg/rental"
)

// ValidateProject inspects a project's domain records and returns
// human-readable warnings for degenerate or suspicious inputs. The
// calculation engine does not guard these itself; warnings let the
// operator know when results may contain NaN or infinities.
func ValidateProject(property rental.Property, units []rental.Unit, projectionYears int) []string {
	var warnings []string

	if property.PurchasePrice < 0 {
		warnings = append(warnings, fmt.Sprintf("purchase price %.2f is negative", property.PurchasePrice))
	}
	if property.DownPaymentPercent < 0 || property.DownPaymentPercent > 100 {
		warnings = append(warnings, fmt.Sprintf("down payment percent %.2f is outside 0-100", property.DownPaymentPercent))
	}
	if property.LoanTermYears < 1 {
		warnings = append(warnings, fmt.Sprintf("loan term of %d years will produce undefined mortgage figures", property.LoanTermYears))
	}
	if property.MonthlyMortgageOverride < 0 {
		warnings = append(warnings, "negative mortgage payment override is ignored; computed payment will be used")
	}

	for _, unit := range units {
		warnings = append(warnings, validateUnit(unit)...)
	}

	if projectionYears > 0 && !supportedHorizon(projectionYears) {
		warnings = append(warnings, fmt.Sprintf("projection horizon of %d years is outside the standard set %v", projectionYears, constants.ProjectionHorizons))
	}

	return warnings
}

func validateUnit(unit rental.Unit) []string {
	var warnings []string

	switch revenue := unit.Revenue.(type) {
	case rental.STRRevenue:
		if revenue.AvgStayLength <= 0 {
			warnings = append(warnings, fmt.Sprintf("unit %q: average stay length %.2f will produce undefined turnover figures", unit.Label, revenue.AvgStayLength))
		}
		if revenue.OccupancyPercent < 0 || revenue.OccupancyPercent > 100 {
			warnings = append(warnings, fmt.Sprintf("unit %q: occupancy %.2f is outside 0-100", unit.Label, revenue.OccupancyPercent))
		}
	case rental.MTRRevenue:
		if revenue.OccupancyPercent < 0 || revenue.OccupancyPercent > 100 {
			warnings = append(warnings, fmt.Sprintf("unit %q: occupancy %.2f is outside 0-100", unit.Label, revenue.OccupancyPercent))
		}
		if revenue.RateType == rental.RateMonthly && revenue.MonthlyRate == 0 && revenue.DailyRate != 0 {
			warnings = append(warnings, fmt.Sprintf("unit %q: monthly rate type with no monthly rate; daily rate will be used", unit.Label))
		}
	case rental.LTRRevenue:
		if revenue.AnnualVacancyPercent < 0 || revenue.AnnualVacancyPercent > 100 {
			warnings = append(warnings, fmt.Sprintf("unit %q: vacancy %.2f is outside 0-100", unit.Label, revenue.AnnualVacancyPercent))
		}
	}

	for _, expense := range unit.Expenses {
		if expense.CalculationType != rental.CalcPerOccurrence {
			continue
		}
		if expense.Frequency == nil {
			warnings = append(warnings, fmt.Sprintf("unit %q: per-occurrence expense %q has no frequency and will cost 0", unit.Label, expense.Name))
			continue
		}
		if expense.Frequency.Type == rental.FreqPerBooking && unit.Type != rental.UnitSTR {
			warnings = append(warnings, fmt.Sprintf("unit %q: per-booking expense %q on a non-STR unit uses its raw count", unit.Label, expense.Name))
		}
	}

	return warnings
}

func supportedHorizon(years int) bool {
	for _, horizon := range constants.ProjectionHorizons {
		if years == horizon {
			return true
		}
	}
	return false
}
