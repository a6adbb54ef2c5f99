package analysis

import (
	"math"
	"testing"

	"github.com/iwvelando/rental-analyzer/internal/config"
)

func float64Ptr(v float64) *float64 { return &v }

func sampleProject() config.Project {
	return config.Project{
		Name:            "Lakeview Duplex",
		ProjectionYears: 10,
		Property: config.PropertyConfig{
			PurchasePrice:   300000,
			InterestRate:    float64Ptr(6.0),
			PropertyTaxRate: float64Ptr(1.0),
			BaseInsurance:   float64Ptr(150),
			HOAFees:         50,
		},
		Units: []config.UnitConfig{
			{
				Label: "Upper Unit",
				Type:  "STR",
				Revenue: config.RevenueConfig{
					NightlyRate:      150,
					OccupancyPercent: float64Ptr(70),
					AvgStayLength:    float64Ptr(3),
				},
				Expenses: []config.ExpenseConfig{
					{Name: "Management", CalculationType: "percent-revenue", Value: 10},
					{Name: "Cleaning", CalculationType: "fixed-monthly", Value: 50,
						IsDIY: true, OutsourcedCost: 200},
				},
			},
		},
	}
}

func TestAnalyze(t *testing.T) {
	result, err := Analyze(nil, sampleProject())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if result.ProjectName != "Lakeview Duplex" {
		t.Errorf("ProjectName = %q, expected Lakeview Duplex", result.ProjectName)
	}
	if result.ProjectionYears != 10 {
		t.Errorf("ProjectionYears = %d, expected 10", result.ProjectionYears)
	}

	property := result.Property
	if math.Abs(property.TotalMonthlyRevenue-3150) > 0.01 {
		t.Errorf("TotalMonthlyRevenue = %.2f, expected 3150", property.TotalMonthlyRevenue)
	}
	if math.Abs(property.TotalUnitExpenses-365) > 0.01 {
		t.Errorf("TotalUnitExpenses = %.2f, expected 365", property.TotalUnitExpenses)
	}
	if math.Abs(property.PropertyExpenses-450) > 0.01 {
		t.Errorf("PropertyExpenses = %.2f, expected 450", property.PropertyExpenses)
	}
	if property.MonthlyMortgage < 1438.90 || property.MonthlyMortgage > 1438.95 {
		t.Errorf("MonthlyMortgage = %.4f, expected about 1438.92", property.MonthlyMortgage)
	}
	if property.MortgageOverridden {
		t.Error("MortgageOverridden = true for a computed payment")
	}
	expectedCashFlow := 3150 - 365 - 450 - property.MonthlyMortgage
	if math.Abs(property.MonthlyCashFlow-expectedCashFlow) > 0.0001 {
		t.Errorf("MonthlyCashFlow = %.4f, expected %.4f", property.MonthlyCashFlow, expectedCashFlow)
	}

	if len(result.Units) != 1 {
		t.Fatalf("got %d unit breakdowns, expected 1", len(result.Units))
	}
	unit := result.Units[0]
	if unit.Label != "Upper Unit" || unit.Type != "STR" {
		t.Errorf("unit = %q/%q, expected Upper Unit/STR", unit.Label, unit.Type)
	}
	if math.Abs(unit.NOI-(3150-365)) > 0.01 {
		t.Errorf("NOI = %.2f, expected 2785", unit.NOI)
	}
	if len(unit.Expenses) != 2 {
		t.Fatalf("got %d expense lines, expected 2", len(unit.Expenses))
	}
	if math.Abs(unit.Expenses[0].MonthlyAmount-315) > 0.01 {
		t.Errorf("management line = %.2f, expected 315", unit.Expenses[0].MonthlyAmount)
	}
	cleaning := unit.Expenses[1]
	if !cleaning.IsDIY || math.Abs(cleaning.SweatEquitySavings-150) > 0.01 {
		t.Errorf("cleaning line = %+v, expected DIY with 150 savings", cleaning)
	}

	if len(result.Appreciation) != 4 {
		t.Errorf("got %d appreciation scenarios, expected 4", len(result.Appreciation))
	}
	if len(result.Sensitivity.Occupancy) != 5 || len(result.Sensitivity.NightlyRate) != 5 {
		t.Errorf("sensitivity sweeps = %d/%d points, expected 5/5",
			len(result.Sensitivity.Occupancy), len(result.Sensitivity.NightlyRate))
	}
	if result.Comparison.Property.Name != "This Property" {
		t.Errorf("comparison property leg = %q", result.Comparison.Property.Name)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestAnalyzeCollectsWarnings(t *testing.T) {
	project := sampleProject()
	project.Units[0].Revenue.AvgStayLength = float64Ptr(0)

	result, err := Analyze(nil, project)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the zero stay length")
	}
}

func TestAnalyzeRejectsUnknownUnitType(t *testing.T) {
	project := sampleProject()
	project.Units[0].Type = "hotel"

	if _, err := Analyze(nil, project); err == nil {
		t.Fatal("expected an error for the unknown unit type")
	}
}

func TestAnalyzeDefaultProjectionYears(t *testing.T) {
	project := sampleProject()
	project.ProjectionYears = 0

	result, err := Analyze(nil, project)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if result.ProjectionYears != 5 {
		t.Errorf("ProjectionYears = %d, expected default 5", result.ProjectionYears)
	}
}
