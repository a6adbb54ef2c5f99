package rental

import "github.com/iwvelando/rental-analyzer/pkg/constants"

// PropertyMonthlyExpenses sums the property-level fixed monthly costs:
// prorated annual property tax, insurance, and HOA fees.
func PropertyMonthlyExpenses(property Property) float64 {
	monthlyTax := property.PurchasePrice * (property.PropertyTaxRate / constants.PercentageMultiplier) / constants.MonthsPerYear
	return monthlyTax + property.BaseInsurance + property.HOAFees
}

// TotalInvestment is the total upfront cash required: down payment,
// closing costs, renovation, furnishing, and any other upfront costs.
func TotalInvestment(property Property) float64 {
	downPayment := property.PurchasePrice * (property.DownPaymentPercent / constants.PercentageMultiplier)
	closingCosts := property.PurchasePrice * (property.ClosingCostsPercent / constants.PercentageMultiplier)

	return downPayment + closingCosts + property.RenovationBudget + property.FurnishingBudget + property.OtherUpfrontCosts
}
