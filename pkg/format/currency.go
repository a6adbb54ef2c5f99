// Package format renders currency and percentage values for display.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a whole-dollar currency string with a dollar sign and
// thousands separators (e.g., "-$1,234").
func Currency(amount float64) string {
	formatted := printer.Sprintf("%.0f", math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// ExactCurrency returns a currency string with cents and thousands
// separators (e.g., "$1,234.56"). Used for per-line expense amounts.
func ExactCurrency(amount float64) string {
	formatted := printer.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent returns a percentage string with one decimal place and a
// literal percent suffix (e.g., "12.3%").
func Percent(value float64) string {
	return PercentN(value, 1)
}

// PercentN returns a percentage string with the given number of decimal places.
func PercentN(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value)
}
