// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/rental-analyzer/pkg/constants"
)

// supportedOutputFormats lists the formats the output renderers implement.
var supportedOutputFormats = []string{
	constants.OutputFormatPretty,
	constants.OutputFormatCSV,
}

// ValidateOutputFormat checks that the requested output format has a renderer.
func ValidateOutputFormat(format string) error {
	for _, supported := range supportedOutputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, got %s",
		strings.Join(supportedOutputFormats, " or "), format)
}
