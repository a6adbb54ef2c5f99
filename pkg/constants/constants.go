// Package constants provides shared constants for the rental-analyzer application.
package constants

// Financial modeling constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerMonth is the fixed 30-day month used for short-term and
	// mid-term occupancy math. This is a modeling convention, not a
	// calendar value.
	DaysPerMonth = 30.0

	// WeeksPerMonth is the average number of weeks in a month
	WeeksPerMonth = 4.33

	// MonthsPerQuarter is the number of months in a quarter
	MonthsPerQuarter = 3.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Property defaults applied to fields left unset in a project config.
const (
	DefaultDownPaymentPercent  = 20.0
	DefaultInterestRate        = 7.0
	DefaultLoanTermYears       = 30
	DefaultClosingCostsPercent = 3.5
	DefaultPropertyTaxRate     = 1.0
	DefaultBaseInsurance       = 250.0
)

// Comparison rate defaults
const (
	DefaultHYSARate           = 3.0
	DefaultIndexFundTotalRate = 10.0
	DefaultIndexDividendRate  = 2.0
)

// Unit defaults per rental type
const (
	DefaultSTROccupancyPercent = 80.0
	DefaultSTRAvgStayLength    = 2.5
	DefaultMTROccupancyPercent = 50.0
	DefaultMTRAvgBookingLength = 15.0
	DefaultLTRVacancyPercent   = 5.0
)

// Scenario constants
const (
	// DefaultProjectionYears is the default appreciation horizon
	DefaultProjectionYears = 5

	// ComparisonHorizonYears is the horizon for the alternative-investment
	// wealth projection
	ComparisonHorizonYears = 5
)

// AppreciationRates are the annual appreciation percentages evaluated for
// every projection horizon.
var AppreciationRates = []float64{0, 2, 3, 5}

// ProjectionHorizons are the selectable appreciation horizons in years.
var ProjectionHorizons = []int{5, 10, 15, 20}

// OccupancySensitivitySteps are the occupancy-point deltas swept in
// sensitivity analysis.
var OccupancySensitivitySteps = []float64{-20, -10, 0, 10, 20}

// RateSensitivitySteps are the nightly-rate dollar deltas swept in
// sensitivity analysis.
var RateSensitivitySteps = []float64{-20, -10, 0, 10, 20}

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default project configuration file name
	DefaultConfigFile = "project.yaml"

	// ExampleConfigFile is the example project configuration file name
	ExampleConfigFile = "project.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
