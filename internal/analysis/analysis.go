// Package analysis assembles the full investment report for a project:
// unit breakdowns, property cash flow and returns, appreciation
// projections, sensitivity sweeps, and the alternative-investment
// comparison.
package analysis

import (
	"fmt"

	"github.com/iwvelando/rental-analyzer/internal/config"
	"github.com/iwvelando/rental-analyzer/pkg/cashflow"
	"github.com/iwvelando/rental-analyzer/pkg/rental"
	"github.com/iwvelando/rental-analyzer/pkg/scenarios"
	"github.com/iwvelando/rental-analyzer/pkg/validation"
	"go.uber.org/zap"
)

// Analysis is the complete report for one project.
type Analysis struct {
	ProjectName     string                           `json:"projectName"`
	ProjectionYears int                              `json:"projectionYears"`
	Property        PropertySummary                  `json:"property"`
	Units           []UnitBreakdown                  `json:"units"`
	Appreciation    []scenarios.AppreciationScenario `json:"appreciation"`
	Sensitivity     scenarios.SensitivityReport      `json:"sensitivity"`
	Comparison      scenarios.InvestmentComparison   `json:"comparison"`
	Warnings        []string                         `json:"warnings,omitempty"`
}

// PropertySummary holds the property-level figures of the report.
type PropertySummary struct {
	PurchasePrice        float64 `json:"purchasePrice"`
	TotalMonthlyRevenue  float64 `json:"totalMonthlyRevenue"`
	TotalUnitExpenses    float64 `json:"totalUnitExpenses"`
	PropertyExpenses     float64 `json:"propertyExpenses"`
	MonthlyMortgage      float64 `json:"monthlyMortgage"`
	MortgageOverridden   bool    `json:"mortgageOverridden"`
	TotalLoanAmount      float64 `json:"totalLoanAmount"`
	MonthlyCashFlow      float64 `json:"monthlyCashFlow"`
	AnnualCashFlow       float64 `json:"annualCashFlow"`
	TotalInvestment      float64 `json:"totalInvestment"`
	FirstYearPrincipal   float64 `json:"firstYearPrincipal"`
	CashOnCashReturn     float64 `json:"cashOnCashReturn"`
	TotalFirstYearReturn float64 `json:"totalFirstYearReturn"`
}

// UnitBreakdown holds the per-unit figures of the report.
type UnitBreakdown struct {
	ID              string             `json:"id"`
	Label           string             `json:"label"`
	Type            string             `json:"type"`
	MonthlyRevenue  float64            `json:"monthlyRevenue"`
	MonthlyExpenses float64            `json:"monthlyExpenses"`
	NOI             float64            `json:"noi"`
	Expenses        []ExpenseBreakdown `json:"expenses"`
}

// ExpenseBreakdown is one expense line with its derived monthly amount.
type ExpenseBreakdown struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	CalculationType    string  `json:"calculationType"`
	MonthlyAmount      float64 `json:"monthlyAmount"`
	IsDIY              bool    `json:"isDIY,omitempty"`
	SweatEquitySavings float64 `json:"sweatEquitySavings,omitempty"`
}

// Analyze converts a raw project into domain records and computes the
// full report.
func Analyze(logger *zap.Logger, project config.Project) (*Analysis, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	property, units, comparison, err := project.Convert()
	if err != nil {
		return nil, fmt.Errorf("failed to convert project: %w", err)
	}

	years := project.ProjectionYearsOrDefault()
	warnings := validation.ValidateProject(property, units, years)
	for _, warning := range warnings {
		logger.Warn("project warning: "+warning,
			zap.String("op", "analysis.Analyze"),
		)
	}

	engine := cashflow.NewEngine(logger)
	metrics := engine.Compute(property, units)

	result := &Analysis{
		ProjectName:     project.Name,
		ProjectionYears: years,
		Property: PropertySummary{
			PurchasePrice:        property.PurchasePrice,
			TotalMonthlyRevenue:  metrics.TotalMonthlyRevenue,
			TotalUnitExpenses:    metrics.TotalUnitExpenses,
			PropertyExpenses:     metrics.PropertyExpenses,
			MonthlyMortgage:      metrics.Mortgage.MonthlyPayment,
			MortgageOverridden:   metrics.Mortgage.IsOverridden,
			TotalLoanAmount:      metrics.Mortgage.TotalLoanAmount,
			MonthlyCashFlow:      metrics.MonthlyCashFlow,
			AnnualCashFlow:       metrics.AnnualCashFlow,
			TotalInvestment:      metrics.TotalInvestment,
			FirstYearPrincipal:   metrics.FirstYearPrincipal,
			CashOnCashReturn:     metrics.CashOnCashReturn,
			TotalFirstYearReturn: metrics.TotalFirstYearReturn,
		},
		Appreciation: scenarios.AppreciationScenarios(property, units, years),
		Sensitivity:  scenarios.Sensitivity(logger, property, units),
		Comparison:   scenarios.Compare(metrics, comparison),
		Warnings:     warnings,
	}

	for _, unit := range units {
		result.Units = append(result.Units, breakdownUnit(unit, property.PurchasePrice))
	}

	logger.Debug("analysis complete",
		zap.String("op", "analysis.Analyze"),
		zap.String("project", project.Name),
		zap.Int("units", len(units)),
	)

	return result, nil
}

func breakdownUnit(unit rental.Unit, propertyValue float64) UnitBreakdown {
	monthlyRevenue := rental.UnitMonthlyRevenue(unit)

	breakdown := UnitBreakdown{
		ID:              unit.ID,
		Label:           unit.Label,
		Type:            string(unit.Type),
		MonthlyRevenue:  monthlyRevenue,
		MonthlyExpenses: rental.UnitMonthlyExpenses(unit, propertyValue),
		NOI:             rental.UnitNOI(unit, propertyValue),
	}

	for _, expense := range unit.Expenses {
		line := ExpenseBreakdown{
			ID:              expense.ID,
			Name:            expense.Name,
			CalculationType: string(expense.CalculationType),
			MonthlyAmount:   rental.ExpenseMonthlyAmount(expense, monthlyRevenue, propertyValue, unit),
			IsDIY:           expense.IsDIY,
		}
		if expense.IsDIY {
			line.SweatEquitySavings = rental.SweatEquitySavings(expense, monthlyRevenue, propertyValue, unit)
		}
		breakdown.Expenses = append(breakdown.Expenses, line)
	}

	return breakdown
}
