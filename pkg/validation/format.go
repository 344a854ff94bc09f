// Package validation checks worksheet inputs and options at the boundary
// before they reach the pure calculators.
package validation

import (
	"fmt"
	"strings"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
)

// OutputFormats lists the console renderings the summary command supports.
var OutputFormats = []string{constants.OutputFormatPretty, constants.OutputFormatCSV}

// ValidateOutputFormat checks if the output format is one of the supported formats.
// Matching is exact.
func ValidateOutputFormat(format string) error {
	for _, supported := range OutputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, got %q", strings.Join(OutputFormats, " or "), format)
}
