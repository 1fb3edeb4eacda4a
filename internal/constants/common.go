package constants

// Common string constants used throughout the codebase
const (
	// Log levels accepted in LOG_LEVEL
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	ErrorLevel      = "error"
	LogLevelFatal   = "fatal"

	// Stages
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"

	// Provider modes accepted in TAX_PROVIDER
	ProviderModeTaxUpdate   = "taxupdate"
	ProviderModePlaceholder = "placeholder"

	// Provider sources reported to callers
	ProviderExternal = "external"
	ProviderFallback = "fallback"

	// ProviderHeader names the response header carrying the provider source
	ProviderHeader = "X-Tax-Provider"

	// Currency precision for per-period amounts
	CurrencyPlaces = 2
)

// Error messages used throughout the API handlers
const (
	InvalidRequestBody    = "invalid request body"
	InvalidQueryParameter = "invalid query parameter"
	NegativeAmount        = "amount must not be negative"
	TaxCalculationFailed  = "tax calculation failed"
	UnsupportedTaxYear    = "unsupported tax year"

	// AdditionalMedicareNote flags the surtax gap in engine-backed responses
	AdditionalMedicareNote = "additional_medicare is not computed by the tax engine and is always reported as 0.00"
)

// IsValidLogLevel reports whether level is accepted in LOG_LEVEL
func IsValidLogLevel(level string) bool {
	switch level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelWarning, ErrorLevel, LogLevelFatal:
		return true
	default:
		return false
	}
}

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}
