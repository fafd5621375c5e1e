package solitaire

import (
	"errors"
	"fmt"

	"github.com/fadedpez/solitaire/internal/types"
)

var (
	ErrInvalidDeck   = errors.New("invalid deck")
	ErrDeckCorrupted = errors.New("deck corrupted")
)

func invalidDeck(format string, args ...interface{}) error {
	return types.WrapError(types.ErrInvalidDeck, fmt.Sprintf(format, args...), ErrInvalidDeck)
}

func deckCorrupted(format string, args ...interface{}) error {
	return types.WrapError(types.ErrDeckCorrupted, fmt.Sprintf(format, args...), ErrDeckCorrupted)
}
