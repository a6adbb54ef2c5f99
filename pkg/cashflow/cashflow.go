// Package cashflow combines unit-level and property-level figures into the
// property's cash flow and investment-return metrics. The pipeline here is
// the single definition every presentation surface reproduces.
package cashflow

import (
	"github.com/iwvelando/rental-analyzer/pkg/constants"
	"github.com/iwvelando/rental-analyzer/pkg/loans"
	"github.com/iwvelando/rental-analyzer/pkg/rental"
	"go.uber.org/zap"
)

// Metrics holds the composite cash-flow and return figures for a property.
type Metrics struct {
	TotalMonthlyRevenue  float64
	TotalUnitExpenses    float64
	PropertyExpenses     float64
	Mortgage             loans.MortgagePayment
	MonthlyCashFlow      float64
	AnnualCashFlow       float64
	TotalInvestment      float64
	FirstYearPrincipal   float64
	CashOnCashReturn     float64
	TotalFirstYearReturn float64
}

// MonthlyCashFlow computes the property's monthly cash flow: total unit
// revenue minus unit expenses, property-level expenses, and the mortgage
// payment.
func MonthlyCashFlow(property rental.Property, units []rental.Unit) float64 {
	totalRevenue := 0.0
	totalUnitExpenses := 0.0
	for _, unit := range units {
		totalRevenue += rental.UnitMonthlyRevenue(unit)
		totalUnitExpenses += rental.UnitMonthlyExpenses(unit, property.PurchasePrice)
	}

	mortgage := loans.PropertyMortgagePayment(property)

	return totalRevenue - totalUnitExpenses - rental.PropertyMonthlyExpenses(property) - mortgage.MonthlyPayment
}

// CashOnCashReturn is the annual cash flow as a percentage of the total
// cash invested. Returns 0 unless the investment is positive.
func CashOnCashReturn(annualCashFlow, totalInvestment float64) float64 {
	if totalInvestment <= 0 {
		return 0
	}
	return annualCashFlow / totalInvestment * constants.PercentageMultiplier
}

// TotalFirstYearReturn is the first year's cash flow plus principal
// paydown as a percentage of the total cash invested. Returns 0 unless
// the investment is positive.
func TotalFirstYearReturn(annualCashFlow, firstYearPrincipal, totalInvestment float64) float64 {
	if totalInvestment <= 0 {
		return 0
	}
	return (annualCashFlow + firstYearPrincipal) / totalInvestment * constants.PercentageMultiplier
}

// Engine computes composite metrics with logging.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new cash-flow engine. A nil logger is replaced with
// a no-op logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Compute derives the full set of cash-flow and return metrics for a
// property and its units.
func (e *Engine) Compute(property rental.Property, units []rental.Unit) Metrics {
	var m Metrics

	for _, unit := range units {
		m.TotalMonthlyRevenue += rental.UnitMonthlyRevenue(unit)
		m.TotalUnitExpenses += rental.UnitMonthlyExpenses(unit, property.PurchasePrice)
	}

	m.PropertyExpenses = rental.PropertyMonthlyExpenses(property)
	m.Mortgage = loans.PropertyMortgagePayment(property)
	if m.Mortgage.IsOverridden {
		e.logger.Debug("using manual mortgage payment override",
			zap.String("op", "cashflow.Compute"),
			zap.Float64("payment", m.Mortgage.MonthlyPayment),
		)
	}

	m.MonthlyCashFlow = m.TotalMonthlyRevenue - m.TotalUnitExpenses - m.PropertyExpenses - m.Mortgage.MonthlyPayment
	m.AnnualCashFlow = m.MonthlyCashFlow * constants.MonthsPerYear
	m.TotalInvestment = rental.TotalInvestment(property)
	m.FirstYearPrincipal = loans.FirstYearPrincipal(property.PurchasePrice, property.DownPaymentPercent, property.InterestRate, property.LoanTermYears)
	m.CashOnCashReturn = CashOnCashReturn(m.AnnualCashFlow, m.TotalInvestment)
	m.TotalFirstYearReturn = TotalFirstYearReturn(m.AnnualCashFlow, m.FirstYearPrincipal, m.TotalInvestment)

	e.logger.Debug("computed cash flow metrics",
		zap.String("op", "cashflow.Compute"),
		zap.Float64("monthlyCashFlow", m.MonthlyCashFlow),
		zap.Float64("totalInvestment", m.TotalInvestment),
	)

	return m
}
