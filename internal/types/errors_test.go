package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewCipherError() {
	// Setup
	code := ErrInvalidDeck
	message := "deck has 27 cards"

	// Execute
	err := NewCipherError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestWrapError() {
	// Setup
	code := ErrIOError
	message := "reading deck file"
	underlying := errors.New("permission denied")

	// Execute
	err := WrapError(code, message, underlying)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Equal(underlying, err.Err, "Underlying error should match")
	s.ErrorIs(err, underlying, "Wrapped error should be reachable through Unwrap")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *CipherError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewCipherError(ErrInvalidDeck, "card 29 out of range"),
			expected: "INVALID_DECK: card 29 out of range",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrDeckCorrupted, "keystream retry ceiling reached", errors.New("deck corrupted")),
			expected: "DECK_CORRUPTED: keystream retry ceiling reached (deck corrupted)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error(), "Error string should match expected format")
		})
	}
}

func (s *ErrorTestSuite) TestIsCipherError() {
	// Setup
	cipherErr := NewCipherError(ErrInvalidDeck, "duplicate card 5")
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{
			name:     "Matching cipher error",
			err:      cipherErr,
			code:     ErrInvalidDeck,
			expected: true,
		},
		{
			name:     "Non-matching cipher error",
			err:      cipherErr,
			code:     ErrDeckCorrupted,
			expected: false,
		},
		{
			name:     "Cipher error wrapped with fmt",
			err:      fmt.Errorf("loading deck: %w", cipherErr),
			code:     ErrInvalidDeck,
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			code:     ErrInvalidDeck,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			code:     ErrInvalidDeck,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := IsCipherError(tc.err, tc.code)
			s.Equal(tc.expected, result, "IsCipherError result should match expected value")
		})
	}
}

func (s *ErrorTestSuite) TestAs() {
	// Setup
	cipherErr := NewCipherError(ErrDeckCorrupted, "deck lost a card")
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Cipher error",
			err:      cipherErr,
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var target *CipherError
			result := As(tc.err, &target)
			s.Equal(tc.expected, result, "As result should match expected value")
			if tc.expected {
				s.Equal(cipherErr, target, "Target should be set to the cipher error")
			}
		})
	}
}
