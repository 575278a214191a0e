package protocol

// Error codes for collaborator-boundary failures.
const (
	ErrCodeUnknown      = 1000
	ErrCodeInvalidMsg   = 1001
	ErrCodeNotLoggedIn  = 2001
	ErrCodeBadToken     = 2002
	ErrCodeStoreFailed  = 3001
	ErrCodeNoSavedState = 3002
)

// ErrorMessages map error codes to their default texts.
var ErrorMessages = map[int]string{
	ErrCodeUnknown:      "unknown error",
	ErrCodeInvalidMsg:   "invalid message format",
	ErrCodeNotLoggedIn:  "not logged in; playing as guest",
	ErrCodeBadToken:     "invalid or expired token",
	ErrCodeStoreFailed:  "storage operation failed",
	ErrCodeNoSavedState: "no saved game found",
}
