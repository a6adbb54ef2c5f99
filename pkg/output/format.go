// Package output provides utilities for formatting and displaying
// analysis results.
package output

import (
	"fmt"

	"github.com/iwvelando/rental-analyzer/internal/analysis"
	"github.com/iwvelando/rental-analyzer/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(result *analysis.Analysis) {
	fmt.Printf("--- Analysis for project %s ---\n", result.ProjectName)

	fmt.Printf("\nProperty Summary\n")
	fmt.Printf("  Monthly Revenue      | %s\n", format.Currency(result.Property.TotalMonthlyRevenue))
	fmt.Printf("  Unit Expenses        | %s\n", format.Currency(result.Property.TotalUnitExpenses))
	fmt.Printf("  Property Expenses    | %s\n", format.Currency(result.Property.PropertyExpenses))
	mortgageNote := ""
	if result.Property.MortgageOverridden {
		mortgageNote = " (manual override)"
	}
	fmt.Printf("  Mortgage Payment     | %s%s\n", format.Currency(result.Property.MonthlyMortgage), mortgageNote)
	fmt.Printf("  Monthly Cash Flow    | %s\n", format.Currency(result.Property.MonthlyCashFlow))
	fmt.Printf("  Annual Cash Flow     | %s\n", format.Currency(result.Property.AnnualCashFlow))
	fmt.Printf("  Total Investment     | %s\n", format.Currency(result.Property.TotalInvestment))
	fmt.Printf("  Cash-on-Cash Return  | %s\n", format.Percent(result.Property.CashOnCashReturn))
	fmt.Printf("  Total Year-1 Return  | %s\n", format.Percent(result.Property.TotalFirstYearReturn))

	for _, unit := range result.Units {
		fmt.Printf("\nUnit %s (%s)\n", unit.Label, unit.Type)
		fmt.Printf("  Revenue  | %s/month\n", format.ExactCurrency(unit.MonthlyRevenue))
		fmt.Printf("  Expenses | %s/month\n", format.ExactCurrency(unit.MonthlyExpenses))
		fmt.Printf("  NOI      | %s/month\n", format.ExactCurrency(unit.NOI))
		for _, expense := range unit.Expenses {
			line := fmt.Sprintf("    %s | %s/month", expense.Name, format.ExactCurrency(expense.MonthlyAmount))
			if expense.IsDIY {
				line += fmt.Sprintf(" | DIY saves %s/month", format.ExactCurrency(expense.SweatEquitySavings))
			}
			fmt.Println(line)
		}
	}

	fmt.Printf("\nAppreciation Scenarios (%d years)\n", result.ProjectionYears)
	fmt.Printf("  Rate | Future Value  | Appreciation  | Cash Flow     | Total ROI\n")
	for _, scenario := range result.Appreciation {
		fmt.Printf("  %3.0f%% | %13s | %13s | %13s | %s\n",
			scenario.Rate,
			format.Currency(scenario.FutureValue),
			format.Currency(scenario.Appreciation),
			format.Currency(scenario.TotalCashFlow),
			format.Percent(scenario.ROI),
		)
	}

	fmt.Printf("\nOccupancy Sensitivity\n")
	for _, point := range result.Sensitivity.Occupancy {
		fmt.Printf("  %5s | %s cash flow | %s change\n",
			point.Label, format.Currency(point.CashFlow), format.Currency(point.Change))
	}
	if len(result.Sensitivity.NightlyRate) > 0 {
		fmt.Printf("\nNightly Rate Sensitivity (STR)\n")
		for _, point := range result.Sensitivity.NightlyRate {
			fmt.Printf("  %5s | %s cash flow | %s change\n",
				point.Label, format.Currency(point.CashFlow), format.Currency(point.Change))
		}
	}

	fmt.Printf("\nInvestment Comparison\n")
	fmt.Printf("  Investment    | Annual Cash   | Annual Total  | Rate   | Year 5 Wealth\n")
	printComparisonLeg(result.Comparison.Property.Name, result.Comparison.Property.AnnualCashReturn,
		result.Comparison.Property.AnnualTotalReturn, result.Comparison.Property.ReturnRatePercent,
		result.Comparison.Property.FiveYearWealth)
	printComparisonLeg(result.Comparison.HYSA.Name, result.Comparison.HYSA.AnnualCashReturn,
		result.Comparison.HYSA.AnnualTotalReturn, result.Comparison.HYSA.ReturnRatePercent,
		result.Comparison.HYSA.FiveYearWealth)
	printComparisonLeg(result.Comparison.IndexFund.Name, result.Comparison.IndexFund.AnnualCashReturn,
		result.Comparison.IndexFund.AnnualTotalReturn, result.Comparison.IndexFund.ReturnRatePercent,
		result.Comparison.IndexFund.FiveYearWealth)

	fmt.Printf("\n* Wealth projection assumes consistent cash flow, no appreciation, and\n")
	fmt.Printf("  compound growth for alternative investments only.\n")
}

func printComparisonLeg(name string, cash, total, rate, wealth float64) {
	fmt.Printf("  %-13s | %13s | %13s | %6s | %s\n",
		name, format.Currency(cash), format.Currency(total), format.Percent(rate), format.Currency(wealth))
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *analysis.Analysis) {
	fmt.Printf("\"section\",\"metric\",\"value\"\n")

	row := func(section, metric string, value float64) {
		fmt.Printf("\"%s\",\"%s\",\"%.2f\"\n", section, metric, value)
	}

	row("property", "monthlyRevenue", result.Property.TotalMonthlyRevenue)
	row("property", "unitExpenses", result.Property.TotalUnitExpenses)
	row("property", "propertyExpenses", result.Property.PropertyExpenses)
	row("property", "monthlyMortgage", result.Property.MonthlyMortgage)
	row("property", "monthlyCashFlow", result.Property.MonthlyCashFlow)
	row("property", "annualCashFlow", result.Property.AnnualCashFlow)
	row("property", "totalInvestment", result.Property.TotalInvestment)
	row("property", "firstYearPrincipal", result.Property.FirstYearPrincipal)
	row("property", "cashOnCashReturn", result.Property.CashOnCashReturn)
	row("property", "totalFirstYearReturn", result.Property.TotalFirstYearReturn)

	for _, unit := range result.Units {
		section := fmt.Sprintf("unit:%s", unit.Label)
		row(section, "monthlyRevenue", unit.MonthlyRevenue)
		row(section, "monthlyExpenses", unit.MonthlyExpenses)
		row(section, "noi", unit.NOI)
		for _, expense := range unit.Expenses {
			row(section, "expense:"+expense.Name, expense.MonthlyAmount)
		}
	}

	for _, scenario := range result.Appreciation {
		section := fmt.Sprintf("appreciation:%.0f%%", scenario.Rate)
		row(section, "futureValue", scenario.FutureValue)
		row(section, "appreciation", scenario.Appreciation)
		row(section, "totalCashFlow", scenario.TotalCashFlow)
		row(section, "totalReturn", scenario.TotalReturn)
		row(section, "roi", scenario.ROI)
	}

	for _, point := range result.Sensitivity.Occupancy {
		row("sensitivity:occupancy", point.Label, point.CashFlow)
	}
	for _, point := range result.Sensitivity.NightlyRate {
		row("sensitivity:nightlyRate", point.Label, point.CashFlow)
	}

	for _, leg := range []struct {
		name              string
		cash, total, rate float64
		wealth            float64
	}{
		{result.Comparison.Property.Name, result.Comparison.Property.AnnualCashReturn, result.Comparison.Property.AnnualTotalReturn, result.Comparison.Property.ReturnRatePercent, result.Comparison.Property.FiveYearWealth},
		{result.Comparison.HYSA.Name, result.Comparison.HYSA.AnnualCashReturn, result.Comparison.HYSA.AnnualTotalReturn, result.Comparison.HYSA.ReturnRatePercent, result.Comparison.HYSA.FiveYearWealth},
		{result.Comparison.IndexFund.Name, result.Comparison.IndexFund.AnnualCashReturn, result.Comparison.IndexFund.AnnualTotalReturn, result.Comparison.IndexFund.ReturnRatePercent, result.Comparison.IndexFund.FiveYearWealth},
	} {
		section := "comparison:" + leg.name
		row(section, "annualCashReturn", leg.cash)
		row(section, "annualTotalReturn", leg.total)
		row(section, "returnRate", leg.rate)
		row(section, "fiveYearWealth", leg.wealth)
	}
}
