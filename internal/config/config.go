// Package config defines the data structures related to project
// configuration and includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for rental-analyzer.
type Configuration struct {
	Project Project
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Project is the raw YAML shape of a saved project: a property, its
// units, and the comparison rates. Pointer fields distinguish "absent"
// from an explicit zero so defaults can be applied without clobbering
// intentional values.
type Project struct {
	Name            string
	Description     string
	ProjectionYears int
	Property        PropertyConfig
	Units           []UnitConfig
	Comparison      ComparisonConfig
}

// PropertyConfig is the raw YAML shape of the acquisition and financing terms.
type PropertyConfig struct {
	PurchasePrice           float64
	DownPaymentPercent      *float64
	InterestRate            *float64
	LoanTermYears           *int
	PropertyAddress         string
	MonthlyMortgageOverride float64
	ClosingCostsPercent     *float64
	RenovationBudget        float64
	FurnishingBudget        float64
	OtherUpfrontCosts       float64
	OtherUpfrontCostsLabel  string
	PropertyTaxRate         *float64
	BaseInsurance           *float64
	HOAFees                 float64
}

// UnitConfig is the raw YAML shape of one rentable unit. When
// UseTemplateExpenses is set and no expenses are listed, the default
// expense template for the unit type is attached during conversion.
type UnitConfig struct {
	ID                  string
	Label               string
	Type                string
	Revenue             RevenueConfig
	Expenses            []ExpenseConfig
	UseTemplateExpenses bool
}

// RevenueConfig is the raw YAML shape of a unit's revenue assumptions.
// Which fields apply depends on the unit type.
type RevenueConfig struct {
	NightlyRate          float64
	OccupancyPercent     *float64
	AvgStayLength        *float64
	RateType             string
	DailyRate            float64
	MonthlyRate          float64
	AvgBookingLength     *float64
	MonthlyRent          float64
	AnnualVacancyPercent *float64
	MonthlyRevenue       float64
}

// ExpenseConfig is the raw YAML shape of one expense line.
type ExpenseConfig struct {
	ID              string
	Name            string
	CalculationType string
	Value           float64
	Frequency       *FrequencyConfig
	IsDIY           bool
	DIYHours        float64
	OutsourcedCost  float64
	Notes           string
}

// FrequencyConfig is the raw YAML shape of a per-occurrence frequency.
type FrequencyConfig struct {
	Type  string
	Count float64
}

// ComparisonConfig is the raw YAML shape of the alternative-investment
// reference rates.
type ComparisonConfig struct {
	HYSARate           *float64
	IndexFundTotalRate *float64
	IndexDividendRate  *float64
}

// LoadConfiguration takes a file path as input and loads the
// YAML-formatted configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader, e.g. an uploaded file.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}
