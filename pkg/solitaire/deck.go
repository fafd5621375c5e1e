// Package solitaire implements the deck state machine of a simplified
// Solitaire cipher and the letter codec driven by its keystream.
package solitaire

import (
	"math/rand"
	"strings"

	"github.com/fadedpez/solitaire/pkg/entities"
)

const size = entities.DeckSize

// maxJokerDraws bounds how many consecutive joker draws NextKeyValue accepts
// before it reports the deck as corrupted.
var maxJokerDraws = 1000

// Deck is a circular arrangement of the 28 solitaire cards.
//
// Cards live in a fixed ring of slots. The rear slot holds the last card of
// the sequence and the slot after it holds the first. Position p of the
// sequence (0 is the front) is therefore slot (rear+1+p) mod 28.
type Deck struct {
	cards [size]entities.Card
	slots [size + 1]int // card value -> slot in cards
	rear  int
}

// NewDeck creates a deck from an explicit sequence, front first and rear last
func NewDeck(cards []entities.Card) (*Deck, error) {
	if len(cards) != size {
		return nil, invalidDeck("deck must have %d cards, got %d", size, len(cards))
	}

	var seen [size + 1]bool
	for _, c := range cards {
		if !c.Valid() {
			return nil, invalidDeck("card %d is outside 1..%d", int(c), size)
		}
		if seen[c] {
			return nil, invalidDeck("card %d appears more than once", int(c))
		}
		seen[c] = true
	}

	var seq [size]entities.Card
	copy(seq[:], cards)

	d := &Deck{}
	d.reset(seq)
	return d, nil
}

// NewRandomDeck creates a uniformly shuffled deck using r
func NewRandomDeck(r *rand.Rand) *Deck {
	var seq [size]entities.Card
	copy(seq[:], entities.ShuffledCards(r))

	d := &Deck{}
	d.reset(seq)
	return d
}

// Clone returns an independent copy of the deck
func (d *Deck) Clone() *Deck {
	c := *d
	return &c
}

// Cards returns the sequence from the front card to the rear card
func (d *Deck) Cards() []entities.Card {
	seq := d.sequence()
	return seq[:]
}

// Front returns the first card of the sequence
func (d *Deck) Front() entities.Card {
	return d.at(0)
}

// Rear returns the anchor, the last card of the sequence
func (d *Deck) Rear() entities.Card {
	return d.cards[d.rear]
}

// String renders the deck from the front card round to the rear card
func (d *Deck) String() string {
	parts := make([]string, 0, size)
	for p := 0; p < size; p++ {
		parts = append(parts, d.at(p).String())
	}
	return strings.Join(parts, ",")
}

// at returns the card at sequence position p
func (d *Deck) at(p int) entities.Card {
	return d.cards[(d.rear+1+p)%size]
}

// position returns the sequence position of card c
func (d *Deck) position(c entities.Card) int {
	return (d.slots[c] - d.rear - 1 + 2*size) % size
}

func (d *Deck) sequence() [size]entities.Card {
	var seq [size]entities.Card
	for p := range seq {
		seq[p] = d.at(p)
	}
	return seq
}

// reset lays seq into the ring with the rear at the last slot
func (d *Deck) reset(seq [size]entities.Card) {
	d.cards = seq
	d.rear = size - 1
	for s, c := range d.cards {
		d.slots[c] = s
	}
}

func (d *Deck) swapSlots(a, b int) {
	d.cards[a], d.cards[b] = d.cards[b], d.cards[a]
	d.slots[d.cards[a]] = a
	d.slots[d.cards[b]] = b
}

// verify checks that the ring still holds each card exactly once and that the
// value index agrees with it
func (d *Deck) verify() error {
	if d.rear < 0 || d.rear >= size {
		return deckCorrupted("rear slot %d out of range", d.rear)
	}
	var seen [size + 1]bool
	for s, c := range d.cards {
		if !c.Valid() {
			return deckCorrupted("slot %d holds card %d", s, int(c))
		}
		if seen[c] {
			return deckCorrupted("card %d appears more than once", int(c))
		}
		seen[c] = true
		if d.slots[c] != s {
			return deckCorrupted("index for card %d points at slot %d, found at %d", int(c), d.slots[c], s)
		}
	}
	return nil
}
