package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Configuration errors (100-199)
	ErrCodeConfigNotFound       ErrorCode = 100
	ErrCodeConfigMalformed      ErrorCode = 101
	ErrCodeConfigIncomplete     ErrorCode = 102
	ErrCodeInvalidConfiguration ErrorCode = 103
	ErrCodeInvalidDateFormat    ErrorCode = 104

	// Series errors (300-399)
	ErrCodeInvalidPeriod ErrorCode = 300

	// Market data errors (700-799)
	ErrCodeMarketDataFetchFailed ErrorCode = 700
	ErrCodeMarketDataParseFailed ErrorCode = 701
	ErrCodeNoDataFound           ErrorCode = 702
	ErrCodeInvalidProvider       ErrorCode = 703
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:               "unknown",
	ErrCodeConfigNotFound:        "config_not_found",
	ErrCodeConfigMalformed:       "config_malformed",
	ErrCodeConfigIncomplete:      "config_incomplete",
	ErrCodeInvalidConfiguration:  "invalid_configuration",
	ErrCodeInvalidDateFormat:     "invalid_date_format",
	ErrCodeInvalidPeriod:         "invalid_period",
	ErrCodeMarketDataFetchFailed: "market_data_fetch_failed",
	ErrCodeMarketDataParseFailed: "market_data_parse_failed",
	ErrCodeNoDataFound:           "no_data_found",
	ErrCodeInvalidProvider:       "invalid_provider",
}

// String returns the snake_case name of the code, used as a log field.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}

	return "unknown"
}
