package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Deck errors
	ErrInvalidDeck   ErrorCode = "INVALID_DECK"
	ErrDeckCorrupted ErrorCode = "DECK_CORRUPTED"

	// Input errors
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrInvalidCommand  ErrorCode = "INVALID_COMMAND"

	// System errors
	ErrConfigError   ErrorCode = "CONFIG_ERROR"
	ErrIOError       ErrorCode = "IO_ERROR"
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// CipherError represents a deck or cipher related error
type CipherError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *CipherError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CipherError) Unwrap() error {
	return e.Err
}

// NewCipherError creates a new CipherError
func NewCipherError(code ErrorCode, message string) *CipherError {
	return &CipherError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a CipherError
func WrapError(code ErrorCode, message string, err error) *CipherError {
	return &CipherError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCipherError checks if an error is a CipherError and has a specific code
func IsCipherError(err error, code ErrorCode) bool {
	var cipherErr *CipherError
	if err == nil {
		return false
	}
	if ok := As(err, &cipherErr); !ok {
		return false
	}
	return cipherErr.Code == code
}

// As finds the first CipherError in err's chain and stores it in target
func As(err error, target **CipherError) bool {
	if target == nil || err == nil {
		return false
	}
	return errors.As(err, target)
}
