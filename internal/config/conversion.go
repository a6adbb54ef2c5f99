package config

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iwvelando/rental-analyzer/pkg/constants"
	"github.com/iwvelando/rental-analyzer/pkg/rental"
)

// floatOrDefault is the parse-with-default helper for optional numeric
// fields: absent values take the default, explicit values (including
// zero) pass through.
func floatOrDefault(value *float64, def float64) float64 {
	if value == nil {
		return def
	}
	return *value
}

func intOrDefault(value *int, def int) int {
	if value == nil {
		return def
	}
	return *value
}

// ConvertProperty applies the standard defaults and produces the domain
// property record.
func ConvertProperty(raw PropertyConfig) rental.Property {
	label := raw.OtherUpfrontCostsLabel
	if label == "" {
		label = "Other Costs"
	}

	return rental.Property{
		PurchasePrice:           raw.PurchasePrice,
		DownPaymentPercent:      floatOrDefault(raw.DownPaymentPercent, constants.DefaultDownPaymentPercent),
		InterestRate:            floatOrDefault(raw.InterestRate, constants.DefaultInterestRate),
		LoanTermYears:           intOrDefault(raw.LoanTermYears, constants.DefaultLoanTermYears),
		PropertyAddress:         raw.PropertyAddress,
		MonthlyMortgageOverride: raw.MonthlyMortgageOverride,
		ClosingCostsPercent:     floatOrDefault(raw.ClosingCostsPercent, constants.DefaultClosingCostsPercent),
		RenovationBudget:        raw.RenovationBudget,
		FurnishingBudget:        raw.FurnishingBudget,
		OtherUpfrontCosts:       raw.OtherUpfrontCosts,
		OtherUpfrontCostsLabel:  label,
		PropertyTaxRate:         floatOrDefault(raw.PropertyTaxRate, constants.DefaultPropertyTaxRate),
		BaseInsurance:           floatOrDefault(raw.BaseInsurance, constants.DefaultBaseInsurance),
		HOAFees:                 raw.HOAFees,
	}
}

// ConvertComparison applies the standard defaults to the comparison rates.
func ConvertComparison(raw ComparisonConfig) rental.ComparisonRates {
	return rental.ComparisonRates{
		HYSARate:           floatOrDefault(raw.HYSARate, constants.DefaultHYSARate),
		IndexFundTotalRate: floatOrDefault(raw.IndexFundTotalRate, constants.DefaultIndexFundTotalRate),
		IndexDividendRate:  floatOrDefault(raw.IndexDividendRate, constants.DefaultIndexDividendRate),
	}
}

// ConvertUnit builds the domain unit from its raw config, constructing
// the revenue variant that matches the declared unit type and rejecting
// unknown type tags. Units and expenses without IDs are assigned fresh ones.
func ConvertUnit(raw UnitConfig) (rental.Unit, error) {
	unitType, err := rental.ParseUnitType(raw.Type)
	if err != nil {
		return rental.Unit{}, fmt.Errorf("unit %q: %w", raw.Label, err)
	}

	revenue, err := convertRevenue(unitType, raw.Revenue)
	if err != nil {
		return rental.Unit{}, fmt.Errorf("unit %q: %w", raw.Label, err)
	}

	unit := rental.Unit{
		ID:      raw.ID,
		Label:   raw.Label,
		Type:    unitType,
		Revenue: revenue,
	}
	if unit.ID == "" {
		unit.ID = uuid.New().String()
	}

	if len(raw.Expenses) == 0 && raw.UseTemplateExpenses {
		unit.Expenses = DefaultExpenses(unitType)
		return unit, nil
	}

	for _, rawExpense := range raw.Expenses {
		expense, err := convertExpense(rawExpense)
		if err != nil {
			return rental.Unit{}, fmt.Errorf("unit %q: %w", raw.Label, err)
		}
		unit.Expenses = append(unit.Expenses, expense)
	}

	return unit, nil
}

func convertRevenue(unitType rental.UnitType, raw RevenueConfig) (rental.Revenue, error) {
	switch unitType {
	case rental.UnitSTR:
		return rental.STRRevenue{
			NightlyRate:      raw.NightlyRate,
			OccupancyPercent: floatOrDefault(raw.OccupancyPercent, constants.DefaultSTROccupancyPercent),
			AvgStayLength:    floatOrDefault(raw.AvgStayLength, constants.DefaultSTRAvgStayLength),
		}, nil

	case rental.UnitMTR:
		rateTypeRaw := raw.RateType
		if rateTypeRaw == "" {
			rateTypeRaw = string(rental.RateDaily)
		}
		rateType, err := rental.ParseRateType(rateTypeRaw)
		if err != nil {
			return nil, err
		}
		return rental.MTRRevenue{
			RateType:         rateType,
			DailyRate:        raw.DailyRate,
			MonthlyRate:      raw.MonthlyRate,
			OccupancyPercent: floatOrDefault(raw.OccupancyPercent, constants.DefaultMTROccupancyPercent),
			AvgBookingLength: floatOrDefault(raw.AvgBookingLength, constants.DefaultMTRAvgBookingLength),
		}, nil

	case rental.UnitLTR:
		return rental.LTRRevenue{
			MonthlyRent:          raw.MonthlyRent,
			AnnualVacancyPercent: floatOrDefault(raw.AnnualVacancyPercent, constants.DefaultLTRVacancyPercent),
		}, nil

	case rental.UnitGeneric:
		return rental.GenericRevenue{
			MonthlyRevenue: raw.MonthlyRevenue,
		}, nil

	default:
		return nil, fmt.Errorf("unknown unit type %q", unitType)
	}
}

func convertExpense(raw ExpenseConfig) (rental.Expense, error) {
	calcType, err := rental.ParseCalculationType(raw.CalculationType)
	if err != nil {
		return rental.Expense{}, fmt.Errorf("expense %q: %w", raw.Name, err)
	}

	expense := rental.Expense{
		ID:              raw.ID,
		Name:            raw.Name,
		CalculationType: calcType,
		Value:           raw.Value,
		IsDIY:           raw.IsDIY,
		DIYHours:        raw.DIYHours,
		OutsourcedCost:  raw.OutsourcedCost,
		Notes:           raw.Notes,
	}
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	if raw.Frequency != nil {
		freqType, err := rental.ParseFrequencyType(raw.Frequency.Type)
		if err != nil {
			return rental.Expense{}, fmt.Errorf("expense %q: %w", raw.Name, err)
		}
		expense.Frequency = &rental.Frequency{
			Type:  freqType,
			Count: raw.Frequency.Count,
		}
	}

	return expense, nil
}

// Convert produces the domain records for a raw project: the property,
// the unit list, and the comparison rates. Unknown enum values fail fast
// here so the calculation engine never sees them.
func (p Project) Convert() (rental.Property, []rental.Unit, rental.ComparisonRates, error) {
	property := ConvertProperty(p.Property)
	comparison := ConvertComparison(p.Comparison)

	units := make([]rental.Unit, 0, len(p.Units))
	for _, rawUnit := range p.Units {
		unit, err := ConvertUnit(rawUnit)
		if err != nil {
			return rental.Property{}, nil, rental.ComparisonRates{}, err
		}
		units = append(units, unit)
	}

	return property, units, comparison, nil
}

// ProjectionYearsOrDefault returns the configured appreciation horizon,
// falling back to the default when unset.
func (p Project) ProjectionYearsOrDefault() int {
	if p.ProjectionYears == 0 {
		return constants.DefaultProjectionYears
	}
	return p.ProjectionYears
}
