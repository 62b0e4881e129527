package actions

import (
	"errors"
	"fmt"
)

// Common errors for action handling.
var (
	ErrCancelled       = errors.New("cancelled")
	ErrSettingLocked   = errors.New("setting is locked")
	ErrInvalidServer   = errors.New("invalid server")
	ErrNoProxyDetected = errors.New("no tor proxy detected")
)

// ActionError represents a structured error with a hint.
type ActionError struct {
	Message string
	Hint    string
	Err     error
}

func (e *ActionError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s\n%s", e.Message, e.Hint)
	}
	return e.Message
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// NewActionError creates a new ActionError.
func NewActionError(message, hint string) *ActionError {
	return &ActionError{Message: message, Hint: hint}
}

// WrapError wraps an error with a message and hint.
func WrapError(err error, message, hint string) *ActionError {
	return &ActionError{Message: message, Hint: hint, Err: err}
}

// SettingLockedError creates an error for a setting locked in the config.
func SettingLockedError(name string) *ActionError {
	return &ActionError{
		Message: fmt.Sprintf("setting '%s' is locked", name),
		Hint:    "Remove it from \"locked\" with 'walletnet config edit' to change it",
		Err:     ErrSettingLocked,
	}
}

// InvalidServerError wraps a server validation failure.
func InvalidServerError(err error) *ActionError {
	return &ActionError{
		Message: err.Error(),
		Hint:    "Use 'walletnet network servers' to see known servers",
		Err:     errors.Join(ErrInvalidServer, err),
	}
}

// NoProxyDetectedError returns an error indicating no Tor proxy answered.
func NoProxyDetectedError() *ActionError {
	return &ActionError{
		Message: "no tor proxy detected",
		Hint:    "Start Tor or Tor Browser and try again",
		Err:     ErrNoProxyDetected,
	}
}
