package catalog

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil       = "config is nil"
	ErrMsgNoItemsDefined  = "no items defined"
	ErrMsgEmptyID         = "has empty id"
	ErrMsgInvalidTier     = "has tier below 1"
	ErrMsgNegativeQuality = "has negative quality"
)
