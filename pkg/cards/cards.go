package cards

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fadedpez/solitaire/internal/types"
	"github.com/fadedpez/solitaire/pkg/entities"
	"github.com/fadedpez/solitaire/pkg/solitaire"
)

// Read parses card values separated by whitespace or commas.
// It does not check that the values form a deck; see ReadDeck.
func Read(r io.Reader) ([]entities.Card, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanCards)

	var cards []entities.Card
	for scanner.Scan() {
		token := scanner.Text()
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, types.WrapError(types.ErrInvalidDeck, fmt.Sprintf("card %q is not a number", token), solitaire.ErrInvalidDeck)
		}
		cards = append(cards, entities.Card(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, types.WrapError(types.ErrIOError, "reading cards", err)
	}

	return cards, nil
}

// scanCards is a bufio.SplitFunc yielding tokens between separators
func scanCards(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSeparator(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func isSeparator(b byte) bool {
	switch b {
	case ',', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// ReadDeck parses a deck from r, front card first
func ReadDeck(r io.Reader) (*solitaire.Deck, error) {
	cards, err := Read(r)
	if err != nil {
		return nil, err
	}
	return solitaire.NewDeck(cards)
}

// ReadDeckFile parses a deck from the file at path
func ReadDeckFile(path string) (*solitaire.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.WrapError(types.ErrIOError, "opening deck file "+path, err)
	}
	defer f.Close()

	return ReadDeck(f)
}

// Format renders cards as a comma separated list
func Format(cards []entities.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}
