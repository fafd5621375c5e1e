package entities

import "strconv"

// Card represents one card of a solitaire deck

type Card int

const (
	JokerA Card = 27
	JokerB Card = 28
)

// DeckSize is the number of cards in a solitaire deck
const DeckSize = 28

// IsJoker reports whether the card is one of the two jokers

func (c Card) IsJoker() bool {
	return c == JokerA || c == JokerB
}

// Valid reports whether the card value lies in 1..28

func (c Card) Valid() bool {
	return c >= 1 && c <= DeckSize
}

// Count returns the value used when counting cards, where both jokers count as 27

func (c Card) Count() int {
	if c == JokerB {
		return int(JokerA)
	}
	return int(c)
}

// String returns the string representation of the card

func (c Card) String() string {
	return strconv.Itoa(int(c))
}
