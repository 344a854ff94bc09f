// Package constants provides shared constants for the budget worksheet application.
package constants

// Budget periods
const (
	// PeriodMonthly labels a worksheet whose income and expenses cover one month
	PeriodMonthly = "Monthly"

	// PeriodYearly labels a worksheet whose income and expenses cover one year
	PeriodYearly = "Yearly"
)

// Financial constants
const (
	// DecimalPlaces is the precision used for displayed percentages
	DecimalPlaces = 2

	// CurrencySymbol prefixes every displayed amount
	CurrencySymbol = "₹"

	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// ReflectionQuestionCount is the number of free-text reflection answers
	ReflectionQuestionCount = 5

	// MinConfidence is the lowest confidence rating
	MinConfidence = 0

	// MaxConfidence is the highest confidence rating
	MaxConfidence = 10

	// DefaultConfidence is the confidence rating used when none is given
	DefaultConfidence = 5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Export constants
const (
	// SpreadsheetContentType is the MIME type of an OOXML workbook
	SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// SubmissionFileSuffix is appended to the student name to form the export filename
	SubmissionFileSuffix = "_Budget_Submission.xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default worksheet file name
	DefaultConfigFile = "worksheet.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum JSON request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)
