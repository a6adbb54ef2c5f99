// Package rental defines the core data model for rental property analysis
// and provides the unit-level revenue and expense calculators.
package rental

import "fmt"

// UnitType identifies the rental model of a unit.
type UnitType string

// Supported unit types.
const (
	UnitSTR     UnitType = "STR"
	UnitMTR     UnitType = "MTR"
	UnitLTR     UnitType = "LTR"
	UnitGeneric UnitType = "Generic"
)

// ParseUnitType converts a raw string into a UnitType, rejecting unknown values.
func ParseUnitType(s string) (UnitType, error) {
	switch UnitType(s) {
	case UnitSTR, UnitMTR, UnitLTR, UnitGeneric:
		return UnitType(s), nil
	default:
		return "", fmt.Errorf("unknown unit type %q", s)
	}
}

// RateType selects which rate field drives mid-term revenue.
type RateType string

// Supported mid-term rate types.
const (
	RateDaily   RateType = "daily"
	RateMonthly RateType = "monthly"
)

// ParseRateType converts a raw string into a RateType, rejecting unknown values.
func ParseRateType(s string) (RateType, error) {
	switch RateType(s) {
	case RateDaily, RateMonthly:
		return RateType(s), nil
	default:
		return "", fmt.Errorf("unknown rate type %q", s)
	}
}

// Revenue is the per-unit revenue configuration. It is a closed sum type;
// every consumer type-switches over the concrete variants so that adding a
// new unit type is a compile-visible change.
type Revenue interface {
	isRevenue()
}

// STRRevenue models short-term rental revenue.
type STRRevenue struct {
	NightlyRate      float64
	OccupancyPercent float64
	AvgStayLength    float64 // nights
}

// MTRRevenue models mid-term rental revenue. Exactly one of DailyRate or
// MonthlyRate applies, selected by RateType.
type MTRRevenue struct {
	RateType         RateType
	DailyRate        float64
	MonthlyRate      float64
	OccupancyPercent float64
	AvgBookingLength float64 // days
}

// LTRRevenue models long-term rental revenue.
type LTRRevenue struct {
	MonthlyRent          float64
	AnnualVacancyPercent float64
}

// GenericRevenue is a direct monthly revenue input with no derivation.
type GenericRevenue struct {
	MonthlyRevenue float64
}

func (STRRevenue) isRevenue()     {}
func (MTRRevenue) isRevenue()     {}
func (LTRRevenue) isRevenue()     {}
func (GenericRevenue) isRevenue() {}

// CalculationType selects how an expense line's monthly amount is derived.
type CalculationType string

// Supported expense calculation types.
const (
	CalcFixedMonthly    CalculationType = "fixed-monthly"
	CalcPercentRevenue  CalculationType = "percent-revenue"
	CalcPerOccurrence   CalculationType = "per-occurrence"
	CalcPercentProperty CalculationType = "percent-property"
	CalcAnnualFixed     CalculationType = "annual-fixed"
)

// ParseCalculationType converts a raw string into a CalculationType,
// rejecting unknown values.
func ParseCalculationType(s string) (CalculationType, error) {
	switch CalculationType(s) {
	case CalcFixedMonthly, CalcPercentRevenue, CalcPerOccurrence, CalcPercentProperty, CalcAnnualFixed:
		return CalculationType(s), nil
	default:
		return "", fmt.Errorf("unknown calculation type %q", s)
	}
}

// FrequencyType describes how often a per-occurrence expense recurs.
type FrequencyType string

// Supported frequency types.
const (
	FreqDaily      FrequencyType = "daily"
	FreqWeekly     FrequencyType = "weekly"
	FreqMonthly    FrequencyType = "monthly"
	FreqQuarterly  FrequencyType = "quarterly"
	FreqAnnual     FrequencyType = "annual"
	FreqPerBooking FrequencyType = "per-booking"
)

// ParseFrequencyType converts a raw string into a FrequencyType, rejecting
// unknown values.
func ParseFrequencyType(s string) (FrequencyType, error) {
	switch FrequencyType(s) {
	case FreqDaily, FreqWeekly, FreqMonthly, FreqQuarterly, FreqAnnual, FreqPerBooking:
		return FrequencyType(s), nil
	default:
		return "", fmt.Errorf("unknown frequency type %q", s)
	}
}

// Frequency describes the recurrence of a per-occurrence expense.
type Frequency struct {
	Type  FrequencyType
	Count float64
}

// Expense is one cost line attached to a unit. Frequency is only
// meaningful for per-occurrence expenses; nil means no frequency was
// configured and the per-occurrence amount is zero.
type Expense struct {
	ID              string
	Name            string
	CalculationType CalculationType
	Value           float64
	Frequency       *Frequency
	IsDIY           bool
	DIYHours        float64
	OutsourcedCost  float64
	Notes           string
}

// Unit is one rentable space with its revenue configuration and expenses.
type Unit struct {
	ID       string
	Label    string
	Type     UnitType
	Revenue  Revenue
	Expenses []Expense
}

// Property holds the acquisition and financing terms for the whole building.
type Property struct {
	PurchasePrice      float64
	DownPaymentPercent float64
	InterestRate       float64 // annual percent
	LoanTermYears      int
	PropertyAddress    string

	// MonthlyMortgageOverride replaces the computed payment when > 0.
	MonthlyMortgageOverride float64

	ClosingCostsPercent    float64
	RenovationBudget       float64
	FurnishingBudget       float64
	OtherUpfrontCosts      float64
	OtherUpfrontCostsLabel string

	PropertyTaxRate float64 // annual percent of value
	BaseInsurance   float64 // monthly dollars
	HOAFees         float64 // monthly dollars
}

// ComparisonRates holds the user-editable reference rates for the
// alternative-investment comparison.
type ComparisonRates struct {
	HYSARate           float64
	IndexFundTotalRate float64
	IndexDividendRate  float64
}
