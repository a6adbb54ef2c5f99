package rental

import (
	"math"
	"testing"
)

func TestExpenseMonthlyAmount(t *testing.T) {
	strUnit := Unit{Type: UnitSTR, Revenue: STRRevenue{
		NightlyRate:      150,
		OccupancyPercent: 80,
		AvgStayLength:    2.5,
	}}
	ltrUnit := Unit{Type: UnitLTR, Revenue: LTRRevenue{MonthlyRent: 1400, AnnualVacancyPercent: 5}}

	tests := []struct {
		name           string
		expense        Expense
		monthlyRevenue float64
		propertyValue  float64
		unit           Unit
		expected       float64
	}{
		{
			name:     "fixed monthly",
			expense:  Expense{CalculationType: CalcFixedMonthly, Value: 120},
			expected: 120,
		},
		{
			name:           "percent of revenue",
			expense:        Expense{CalculationType: CalcPercentRevenue, Value: 10},
			monthlyRevenue: 3150,
			expected:       315,
		},
		{
			name:          "percent of property value",
			expense:       Expense{CalculationType: CalcPercentProperty, Value: 1},
			propertyValue: 300000,
			expected:      250, // 300000 * 1% / 12
		},
		{
			name:     "annual fixed",
			expense:  Expense{CalculationType: CalcAnnualFixed, Value: 1200},
			expected: 100,
		},
		{
			name: "per-occurrence weekly",
			expense: Expense{CalculationType: CalcPerOccurrence, Value: 50,
				Frequency: &Frequency{Type: FreqWeekly, Count: 1}},
			expected: 216.5, // 50 * 4.33
		},
		{
			name: "per-occurrence daily",
			expense: Expense{CalculationType: CalcPerOccurrence, Value: 5,
				Frequency: &Frequency{Type: FreqDaily, Count: 1}},
			expected: 150,
		},
		{
			name: "per-occurrence monthly",
			expense: Expense{CalculationType: CalcPerOccurrence, Value: 80,
				Frequency: &Frequency{Type: FreqMonthly, Count: 2}},
			expected: 160,
		},
		{
			name: "per-occurrence quarterly",
			expense: Expense{CalculationType: CalcPerOccurrence, Value: 90,
				Frequency: &Frequency{Type: FreqQuarterly, Count: 1}},
			expected: 30,
		},
		{
			name: "per-occurrence annual",
			expense: Expense{CalculationType: CalcPerOccurrence, Value: 500,
				Frequency: &Frequency{Type: FreqAnnual, Count: 1}},
			expected: 41.6666667,
		},
		{
			name: "per-booking on short-term unit",
			expense: Expense{CalculationType: CalcPerOccurrence, Value: 70,
				Frequency: &Frequency{Type: FreqPerBooking, Count: 1}},
			unit:     strUnit,
			expected: 672, // 9.6 turnovers * 70
		},
		{
			name: "per-booking on long-term unit uses raw count",
			expense: Expense{CalculationType: CalcPerOccurrence, Value: 70,
				Frequency: &Frequency{Type: FreqPerBooking, Count: 1}},
			unit:     ltrUnit,
			expected: 70,
		},
		{
			name:     "per-occurrence without frequency",
			expense:  Expense{CalculationType: CalcPerOccurrence, Value: 70},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpenseMonthlyAmount(tt.expense, tt.monthlyRevenue, tt.propertyValue, tt.unit)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("ExpenseMonthlyAmount() = %.4f, expected %.4f", result, tt.expected)
			}
		})
	}
}

func TestUnitMonthlyExpenses(t *testing.T) {
	unit := Unit{
		Type:    UnitSTR,
		Revenue: STRRevenue{NightlyRate: 150, OccupancyPercent: 70, AvgStayLength: 3},
		Expenses: []Expense{
			{Name: "Management", CalculationType: CalcPercentRevenue, Value: 10},
			{Name: "Utilities", CalculationType: CalcFixedMonthly, Value: 200},
		},
	}

	// Revenue is 3150; 10% of that plus the fixed line.
	expected := 315.0 + 200.0
	if got := UnitMonthlyExpenses(unit, 300000); math.Abs(got-expected) > 0.01 {
		t.Errorf("UnitMonthlyExpenses() = %.2f, expected %.2f", got, expected)
	}
}

func TestUnitMonthlyExpensesEmpty(t *testing.T) {
	unit := Unit{Type: UnitLTR, Revenue: LTRRevenue{MonthlyRent: 1400}}
	if got := UnitMonthlyExpenses(unit, 300000); got != 0 {
		t.Errorf("expected 0 for a unit with no expenses, got %.2f", got)
	}
}

func TestUnitNOI(t *testing.T) {
	unit := Unit{
		Type:    UnitLTR,
		Revenue: LTRRevenue{MonthlyRent: 1400, AnnualVacancyPercent: 5},
		Expenses: []Expense{
			{CalculationType: CalcFixedMonthly, Value: 100},
		},
	}

	expected := 1330.0 - 100.0
	if got := UnitNOI(unit, 300000); math.Abs(got-expected) > 0.01 {
		t.Errorf("UnitNOI() = %.2f, expected %.2f", got, expected)
	}
}

func TestSweatEquitySavings(t *testing.T) {
	unit := Unit{Type: UnitSTR, Revenue: STRRevenue{NightlyRate: 150, OccupancyPercent: 80, AvgStayLength: 2.5}}

	tests := []struct {
		name     string
		expense  Expense
		expected float64
	}{
		{
			name: "DIY cleaning saves outsourced cost minus own cost",
			expense: Expense{
				CalculationType: CalcFixedMonthly,
				Value:           50,
				IsDIY:           true,
				OutsourcedCost:  200,
			},
			expected: 150,
		},
		{
			name: "not DIY",
			expense: Expense{
				CalculationType: CalcFixedMonthly,
				Value:           50,
				OutsourcedCost:  200,
			},
			expected: 0,
		},
		{
			name: "DIY can cost more than outsourcing",
			expense: Expense{
				CalculationType: CalcFixedMonthly,
				Value:           250,
				IsDIY:           true,
				OutsourcedCost:  200,
			},
			expected: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SweatEquitySavings(tt.expense, 0, 0, unit)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("SweatEquitySavings() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}
