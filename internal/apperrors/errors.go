// Package apperrors defines coded errors for collaborator-boundary
// failures. Engine rule violations are never errors; only storage and
// identity failures propagate outward.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/Reinaldo-Kn/pifatro/internal/protocol"
)

// GameError pairs a protocol error code with a human-readable message
// and an optional underlying cause.
type GameError struct {
	Code    int
	Message string
	cause   error
}

func (e *GameError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *GameError) Unwrap() error {
	return e.cause
}

// Is matches by code, so errors.Is works against the sentinel values
// even for wrapped copies.
func (e *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of the sentinel carrying the cause.
func (e *GameError) Wrap(cause error) *GameError {
	return &GameError{Code: e.Code, Message: e.Message, cause: cause}
}

// Predefined errors.
var (
	ErrNotLoggedIn  = &GameError{Code: protocol.ErrCodeNotLoggedIn, Message: "not logged in; playing as guest"}
	ErrBadToken     = &GameError{Code: protocol.ErrCodeBadToken, Message: "invalid or expired token"}
	ErrStoreFailed  = &GameError{Code: protocol.ErrCodeStoreFailed, Message: "storage operation failed"}
	ErrNoSavedState = &GameError{Code: protocol.ErrCodeNoSavedState, Message: "no saved game found"}
)

// CodeOf extracts the protocol error code from err, falling back when
// the chain carries no GameError.
func CodeOf(err error, fallback int) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return fallback
}
