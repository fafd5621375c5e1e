package entities

import (
	"math/rand"
)

// OrderedCards returns the cards 1..28 in ascending order
func OrderedCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for v := 1; v <= DeckSize; v++ {
		cards = append(cards, Card(v))
	}
	return cards
}

// ShuffledCards returns the cards 1..28 in a random order drawn from r
func ShuffledCards(r *rand.Rand) []Card {
	cards := OrderedCards()

	// Use Go's built-in shuffle algorithm
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return cards
}
