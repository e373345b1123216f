package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidPeriod        ErrorCode = 102
	ErrCodeInvalidMultiplier    ErrorCode = 103
	ErrCodeInvalidMethod        ErrorCode = 104
	ErrCodeInvalidArity         ErrorCode = 105
	ErrCodeMissingParameter     ErrorCode = 106
	ErrCodeInvalidVersion       ErrorCode = 107

	// Graph errors (200-299)
	ErrCodeIndexOutOfRange ErrorCode = 200
	ErrCodeEmptySeries     ErrorCode = 201

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301

	// Configuration errors (400-499)
	ErrCodeConfigReadFailed      ErrorCode = 400
	ErrCodeConfigParseFailed     ErrorCode = 401
	ErrCodeConfigVersionMismatch ErrorCode = 402

	// Market data errors (700-799)
	ErrCodeFeedOpenFailed  ErrorCode = 700
	ErrCodeFeedReadFailed  ErrorCode = 701
	ErrCodeFeedParseFailed ErrorCode = 702
)
