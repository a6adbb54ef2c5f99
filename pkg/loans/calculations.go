// Package loans provides fixed-rate mortgage calculation utilities.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/rental-analyzer/pkg/constants"
	"github.com/iwvelando/rental-analyzer/pkg/rental"
	"go.uber.org/zap"
)

// MortgagePayment holds the derived payment figures for a loan. It is
// recomputed on every call and never cached.
type MortgagePayment struct {
	MonthlyPayment       float64
	PrincipalAndInterest float64
	TotalLoanAmount      float64
	IsOverridden         bool
}

// AmortizationEntry is one month of an amortization schedule.
type AmortizationEntry struct {
	Month     int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// CalculateMonthlyPayment computes the fixed monthly payment for a loan
// using the standard amortization formula. A zero interest rate divides
// the principal evenly over the term instead.
func CalculateMonthlyPayment(purchasePrice, downPaymentPercent, interestRate float64, loanTermYears int) MortgagePayment {
	downPayment := purchasePrice * (downPaymentPercent / constants.PercentageMultiplier)
	loanAmount := purchasePrice - downPayment
	monthlyRate := interestRate / constants.PercentageMultiplier / constants.MonthsPerYear
	numPayments := float64(loanTermYears * constants.MonthsPerYear)

	if monthlyRate == 0 {
		payment := loanAmount / numPayments
		return MortgagePayment{
			MonthlyPayment:       payment,
			PrincipalAndInterest: payment,
			TotalLoanAmount:      loanAmount,
		}
	}

	power := math.Pow(1+monthlyRate, numPayments)
	payment := loanAmount * monthlyRate * power / (power - 1)

	return MortgagePayment{
		MonthlyPayment:       payment,
		PrincipalAndInterest: payment,
		TotalLoanAmount:      loanAmount,
	}
}

// GenerateAmortizationSchedule produces the full month-by-month schedule
// for a loan. The stored balance is clamped at zero; the running balance
// is carried forward unclamped into the next month's interest computation.
func GenerateAmortizationSchedule(purchasePrice, downPaymentPercent, interestRate float64, loanTermYears int) []AmortizationEntry {
	payment := CalculateMonthlyPayment(purchasePrice, downPaymentPercent, interestRate, loanTermYears)

	monthlyRate := interestRate / constants.PercentageMultiplier / constants.MonthsPerYear
	numPayments := loanTermYears * constants.MonthsPerYear
	schedule := make([]AmortizationEntry, 0, numPayments)

	balance := payment.TotalLoanAmount

	for month := 1; month <= numPayments; month++ {
		interest := balance * monthlyRate
		principal := payment.MonthlyPayment - interest
		balance -= principal

		schedule = append(schedule, AmortizationEntry{
			Month:     month,
			Payment:   payment.MonthlyPayment,
			Principal: principal,
			Interest:  interest,
			Balance:   math.Max(0, balance),
		})
	}

	return schedule
}

// FirstYearPrincipal sums the principal paid over the first twelve months
// of the schedule, or fewer if the term is shorter.
func FirstYearPrincipal(purchasePrice, downPaymentPercent, interestRate float64, loanTermYears int) float64 {
	schedule := GenerateAmortizationSchedule(purchasePrice, downPaymentPercent, interestRate, loanTermYears)

	months := len(schedule)
	if months > constants.MonthsPerYear {
		months = constants.MonthsPerYear
	}

	sum := 0.0
	for _, entry := range schedule[:months] {
		sum += entry.Principal
	}
	return sum
}

// PropertyMortgagePayment resolves the mortgage payment for a property,
// honoring a manual payment override when one is set. The override
// replaces only the payment figures; the loan amount is still derived
// from the purchase price and down payment.
func PropertyMortgagePayment(property rental.Property) MortgagePayment {
	if property.MonthlyMortgageOverride > 0 {
		downPayment := property.PurchasePrice * (property.DownPaymentPercent / constants.PercentageMultiplier)
		loanAmount := property.PurchasePrice - downPayment

		return MortgagePayment{
			MonthlyPayment:       property.MonthlyMortgageOverride,
			PrincipalAndInterest: property.MonthlyMortgageOverride,
			TotalLoanAmount:      loanAmount,
			IsOverridden:         true,
		}
	}

	return CalculateMonthlyPayment(property.PurchasePrice, property.DownPaymentPercent, property.InterestRate, property.LoanTermYears)
}

// ScheduleGenerator wraps schedule generation with logging for callers
// that want visibility into the loan parameters being amortized.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance. A nil logger is
// replaced with a no-op logger.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// GenerateSchedule creates a complete amortization schedule for a property's loan.
func (g *ScheduleGenerator) GenerateSchedule(property rental.Property) []AmortizationEntry {
	g.logger.Debug(fmt.Sprintf("amortizing %.2f at %.3f%% over %d years",
		property.PurchasePrice, property.InterestRate, property.LoanTermYears),
		zap.String("op", "loans.GenerateSchedule"),
	)
	return GenerateAmortizationSchedule(property.PurchasePrice, property.DownPaymentPercent, property.InterestRate, property.LoanTermYears)
}
