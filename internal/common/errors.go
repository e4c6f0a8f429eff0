package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Session errors.
	ErrSessionClosed = errors.New("voice session closed")
	ErrSessionBusy   = errors.New("a command is already executing")
	ErrNothingToRun  = errors.New("no transcript to execute")

	// Data errors.
	ErrUnknownQueryKey = errors.New("unknown query key")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
