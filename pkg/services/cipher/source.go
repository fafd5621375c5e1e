package cipher

import (
	"math/rand"
	"sync"

	"github.com/fadedpez/solitaire/pkg/solitaire"
)

// DeckSource supplies a fresh deck for every job
type DeckSource interface {
	NewDeck() (*solitaire.Deck, error)
}

// FixedSource hands out copies of one configured deck, so every job starts
// from the same state
type FixedSource struct {
	deck *solitaire.Deck
}

// NewFixedSource creates a source that clones deck for each job
func NewFixedSource(deck *solitaire.Deck) *FixedSource {
	return &FixedSource{deck: deck.Clone()}
}

// NewDeck returns a copy of the configured deck
func (s *FixedSource) NewDeck() (*solitaire.Deck, error) {
	return s.deck.Clone(), nil
}

// RandomSource shuffles a new deck for each job
type RandomSource struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewRandomSource creates a source drawing shuffles from rng
func NewRandomSource(rng *rand.Rand) *RandomSource {
	return &RandomSource{rng: rng}
}

// NewDeck returns a freshly shuffled deck
func (s *RandomSource) NewDeck() (*solitaire.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return solitaire.NewRandomDeck(s.rng), nil
}
