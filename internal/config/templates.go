package config

import (
	"github.com/google/uuid"
	"github.com/iwvelando/rental-analyzer/pkg/rental"
)

// Default expense templates attached to newly configured units, keyed by
// unit type.

var strTemplateExpenses = []rental.Expense{
	{Name: "Platform Fees (Airbnb)", CalculationType: rental.CalcPercentRevenue, Value: 3},
	{Name: "Cleaning", CalculationType: rental.CalcPerOccurrence, Value: 70,
		Frequency: &rental.Frequency{Type: rental.FreqPerBooking, Count: 1}},
	{Name: "Utilities - Electric", CalculationType: rental.CalcFixedMonthly, Value: 90},
	{Name: "Utilities - Water", CalculationType: rental.CalcFixedMonthly, Value: 45},
	{Name: "Utilities - Gas", CalculationType: rental.CalcFixedMonthly, Value: 25},
	{Name: "Supplies (toiletries, etc)", CalculationType: rental.CalcFixedMonthly, Value: 100},
	{Name: "Laundry Service", CalculationType: rental.CalcPerOccurrence, Value: 15,
		Frequency: &rental.Frequency{Type: rental.FreqPerBooking, Count: 1}},
	{Name: "Maintenance Reserve", CalculationType: rental.CalcPercentRevenue, Value: 5},
	{Name: "STR Insurance Add-on", CalculationType: rental.CalcFixedMonthly, Value: 50},
	{Name: "Internet/Cable", CalculationType: rental.CalcFixedMonthly, Value: 100},
	{Name: "Smart Lock Maintenance", CalculationType: rental.CalcFixedMonthly, Value: 10},
	{Name: "Pricing Software", CalculationType: rental.CalcFixedMonthly, Value: 20},
}

var mtrTemplateExpenses = []rental.Expense{
	{Name: "Utilities (if owner-paid)", CalculationType: rental.CalcFixedMonthly, Value: 150},
	{Name: "Maintenance Reserve", CalculationType: rental.CalcPercentRevenue, Value: 8},
	{Name: "Cleaning (turnover)", CalculationType: rental.CalcPerOccurrence, Value: 150,
		Frequency: &rental.Frequency{Type: rental.FreqQuarterly, Count: 4}},
}

var ltrTemplateExpenses = []rental.Expense{
	{Name: "Maintenance Reserve", CalculationType: rental.CalcPercentRevenue, Value: 10},
	{Name: "Property Management", CalculationType: rental.CalcPercentRevenue, Value: 10,
		Notes: "0% if self-managed"},
	{Name: "Leasing Fee", CalculationType: rental.CalcPerOccurrence, Value: 500,
		Frequency: &rental.Frequency{Type: rental.FreqAnnual, Count: 1}},
}

var genericTemplateExpenses = []rental.Expense{
	{Name: "Maintenance Reserve", CalculationType: rental.CalcPercentRevenue, Value: 5},
}

// DefaultExpenses returns a fresh copy of the default expense template for
// a unit type, with newly minted IDs. Frequencies are copied so callers
// can never alias the template records.
func DefaultExpenses(unitType rental.UnitType) []rental.Expense {
	var template []rental.Expense
	switch unitType {
	case rental.UnitSTR:
		template = strTemplateExpenses
	case rental.UnitMTR:
		template = mtrTemplateExpenses
	case rental.UnitLTR:
		template = ltrTemplateExpenses
	case rental.UnitGeneric:
		template = genericTemplateExpenses
	default:
		return nil
	}

	expenses := make([]rental.Expense, len(template))
	for i, expense := range template {
		expense.ID = uuid.New().String()
		if expense.Frequency != nil {
			frequency := *expense.Frequency
			expense.Frequency = &frequency
		}
		expenses[i] = expense
	}
	return expenses
}
