// Package scenarios derives multi-year appreciation projections,
// sensitivity sweeps, and alternative-investment comparisons from a
// property's baseline cash flow.
package scenarios

import (
	"fmt"
	"math"

	"github.com/iwvelando/rental-analyzer/pkg/cashflow"
	"github.com/iwvelando/rental-analyzer/pkg/constants"
	"github.com/iwvelando/rental-analyzer/pkg/mathutil"
	"github.com/iwvelando/rental-analyzer/pkg/rental"
	"go.uber.org/zap"
)

// AppreciationScenario is one column of the appreciation projection table.
type AppreciationScenario struct {
	Rate          float64
	FutureValue   float64
	Appreciation  float64
	TotalCashFlow float64
	TotalReturn   float64
	ROI           float64
}

// SensitivityPoint is one step of a sensitivity sweep.
type SensitivityPoint struct {
	Label    string
	Delta    float64
	CashFlow float64
	Change   float64
}

// SensitivityReport holds the occupancy and nightly-rate sweeps. The
// nightly-rate sweep is empty when the property has no short-term unit.
type SensitivityReport struct {
	BaselineCashFlow float64
	Occupancy        []SensitivityPoint
	NightlyRate      []SensitivityPoint
}

// ComparisonLeg is one investment column of the comparison table.
type ComparisonLeg struct {
	Name              string
	InitialInvestment float64
	AnnualCashReturn  float64
	AnnualTotalReturn float64
	ReturnRatePercent float64
	FiveYearWealth    float64
}

// InvestmentComparison compares the property against the alternative
// investments. The property leg accumulates simple (uncompounded) returns
// while the alternatives compound; this asymmetry is an intentional
// simplification surfaced to the user in the rendered output.
type InvestmentComparison struct {
	Property  ComparisonLeg
	HYSA      ComparisonLeg
	IndexFund ComparisonLeg
}

// AppreciationScenarios evaluates the fixed set of appreciation rates over
// the given horizon in years.
func AppreciationScenarios(property rental.Property, units []rental.Unit, years int) []AppreciationScenario {
	engine := cashflow.NewEngine(nil)
	metrics := engine.Compute(property, units)

	results := make([]AppreciationScenario, 0, len(constants.AppreciationRates))
	for _, rate := range constants.AppreciationRates {
		results = append(results, appreciationScenario(property, metrics, rate, years))
	}
	return results
}

func appreciationScenario(property rental.Property, metrics cashflow.Metrics, rate float64, years int) AppreciationScenario {
	futureValue := property.PurchasePrice * math.Pow(1+rate/constants.PercentageMultiplier, float64(years))
	appreciation := futureValue - property.PurchasePrice
	totalCashFlow := metrics.AnnualCashFlow * float64(years)
	totalReturn := totalCashFlow + appreciation - metrics.Mortgage.TotalLoanAmount

	roi := 0.0
	if metrics.TotalInvestment > 0 {
		roi = totalReturn / metrics.TotalInvestment * constants.PercentageMultiplier
	}

	return AppreciationScenario{
		Rate:          rate,
		FutureValue:   futureValue,
		Appreciation:  appreciation,
		TotalCashFlow: totalCashFlow,
		TotalReturn:   totalReturn,
		ROI:           roi,
	}
}

// CalculateScenario recomputes the monthly cash flow after perturbing
// every short-term unit by the given occupancy points and nightly-rate
// dollars. Occupancy is clamped to [0, 100]. Units are rebuilt as new
// records; the caller's slice is never modified.
func CalculateScenario(property rental.Property, units []rental.Unit, occupancyDelta, rateDelta float64) float64 {
	modified := perturbUnits(units, occupancyDelta, rateDelta)
	return cashflow.MonthlyCashFlow(property, modified)
}

func perturbUnits(units []rental.Unit, occupancyDelta, rateDelta float64) []rental.Unit {
	modified := make([]rental.Unit, len(units))
	for i, unit := range units {
		if revenue, ok := unit.Revenue.(rental.STRRevenue); ok {
			unit.Revenue = rental.STRRevenue{
				NightlyRate:      revenue.NightlyRate + rateDelta,
				OccupancyPercent: mathutil.Clamp(revenue.OccupancyPercent+occupancyDelta, 0, constants.PercentageMultiplier),
				AvgStayLength:    revenue.AvgStayLength,
			}
		}
		modified[i] = unit
	}
	return modified
}

// Sensitivity produces the occupancy and nightly-rate sweeps around the
// baseline cash flow. The nightly-rate sweep is produced only when at
// least one short-term unit exists.
func Sensitivity(logger *zap.Logger, property rental.Property, units []rental.Unit) SensitivityReport {
	if logger == nil {
		logger = zap.NewNop()
	}

	baseline := CalculateScenario(property, units, 0, 0)
	report := SensitivityReport{BaselineCashFlow: baseline}

	for _, delta := range constants.OccupancySensitivitySteps {
		point := SensitivityPoint{
			Label: deltaLabel(delta, "%"),
			Delta: delta,
		}
		if delta == 0 {
			point.CashFlow = baseline
		} else {
			point.CashFlow = CalculateScenario(property, units, delta, 0)
		}
		point.Change = point.CashFlow - baseline
		report.Occupancy = append(report.Occupancy, point)
	}

	if !hasSTRUnit(units) {
		logger.Debug("skipping nightly-rate sweep: no short-term unit",
			zap.String("op", "scenarios.Sensitivity"),
		)
		return report
	}

	for _, delta := range constants.RateSensitivitySteps {
		point := SensitivityPoint{
			Label: dollarDeltaLabel(delta),
			Delta: delta,
		}
		if delta == 0 {
			point.CashFlow = baseline
		} else {
			point.CashFlow = CalculateScenario(property, units, 0, delta)
		}
		point.Change = point.CashFlow - baseline
		report.NightlyRate = append(report.NightlyRate, point)
	}

	return report
}

func hasSTRUnit(units []rental.Unit) bool {
	for _, unit := range units {
		if _, ok := unit.Revenue.(rental.STRRevenue); ok {
			return true
		}
	}
	return false
}

func deltaLabel(delta float64, suffix string) string {
	if delta == 0 {
		return "Base"
	}
	if delta > 0 {
		return fmt.Sprintf("+%.0f%s", delta, suffix)
	}
	return fmt.Sprintf("%.0f%s", delta, suffix)
}

func dollarDeltaLabel(delta float64) string {
	if delta == 0 {
		return "Base"
	}
	if delta > 0 {
		return fmt.Sprintf("+$%.0f", delta)
	}
	return fmt.Sprintf("-$%.0f", -delta)
}

// Compare builds the investment comparison table from the property's
// metrics and the reference rates.
func Compare(metrics cashflow.Metrics, rates rental.ComparisonRates) InvestmentComparison {
	investment := metrics.TotalInvestment
	totalReturn := metrics.AnnualCashFlow + metrics.FirstYearPrincipal

	propertyRate := 0.0
	if investment > 0 {
		propertyRate = totalReturn / investment * constants.PercentageMultiplier
	}

	return InvestmentComparison{
		Property: ComparisonLeg{
			Name:              "This Property",
			InitialInvestment: investment,
			AnnualCashReturn:  metrics.AnnualCashFlow,
			AnnualTotalReturn: totalReturn,
			ReturnRatePercent: propertyRate,
			FiveYearWealth:    totalReturn*constants.ComparisonHorizonYears + investment,
		},
		HYSA: ComparisonLeg{
			Name:              "HYSA",
			InitialInvestment: investment,
			AnnualCashReturn:  mathutil.ApplyPercentage(investment, rates.HYSARate),
			AnnualTotalReturn: mathutil.ApplyPercentage(investment, rates.HYSARate),
			ReturnRatePercent: rates.HYSARate,
			FiveYearWealth:    investment * math.Pow(1+rates.HYSARate/constants.PercentageMultiplier, constants.ComparisonHorizonYears),
		},
		IndexFund: ComparisonLeg{
			Name:              "Index Funds",
			InitialInvestment: investment,
			AnnualCashReturn:  mathutil.ApplyPercentage(investment, rates.IndexDividendRate),
			AnnualTotalReturn: mathutil.ApplyPercentage(investment, rates.IndexFundTotalRate),
			ReturnRatePercent: rates.IndexFundTotalRate,
			FiveYearWealth:    investment * math.Pow(1+rates.IndexFundTotalRate/constants.PercentageMultiplier, constants.ComparisonHorizonYears),
		},
	}
}
