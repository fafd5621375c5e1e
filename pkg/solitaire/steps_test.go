package solitaire

import (
	"math/rand"
	"testing"

	"github.com/fadedpez/solitaire/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type StepsTestSuite struct {
	deckSuite
}

func TestStepsSuite(t *testing.T) {
	suite.Run(t, new(StepsTestSuite))
}

func (s *StepsTestSuite) TestJokerA() {
	testCases := []struct {
		name     string
		deck     []entities.Card
		expected []entities.Card
	}{
		{
			name:     "joker in the middle",
			deck:     entities.OrderedCards(),
			expected: cards(span(1, 26), one(28), one(27)),
		},
		{
			name:     "joker at the rear wraps to the front",
			deck:     cards(span(1, 26), one(28), one(27)),
			expected: cards(one(27), span(2, 26), one(28), one(1)),
		},
		{
			name:     "joker at the front",
			deck:     cards(one(27), span(1, 26), one(28)),
			expected: cards(one(1), one(27), span(2, 26), one(28)),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			d := s.mustDeck(tc.deck)

			d.jokerA()

			s.Equal(tc.expected, d.Cards())
		})
	}
}

func (s *StepsTestSuite) TestJokerB() {
	testCases := []struct {
		name     string
		deck     []entities.Card
		expected []entities.Card
	}{
		{
			name:     "joker in the middle",
			deck:     cards(span(1, 3), one(28), span(4, 27)),
			expected: cards(span(1, 5), one(28), span(6, 27)),
		},
		{
			name:     "joker at the rear",
			deck:     entities.OrderedCards(),
			expected: cards(one(2), one(28), span(3, 27), one(1)),
		},
		{
			name:     "joker next to the rear",
			deck:     cards(span(1, 26), one(28), one(27)),
			expected: cards(one(28), span(2, 27), one(1)),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			d := s.mustDeck(tc.deck)

			d.jokerB()

			s.Equal(tc.expected, d.Cards())
		})
	}
}

func (s *StepsTestSuite) TestTripleCut() {
	testCases := []struct {
		name     string
		deck     []entities.Card
		expected []entities.Card
	}{
		{
			name:     "jokers in the middle",
			deck:     cards(span(1, 5), one(28), span(6, 10), one(27), span(11, 26)),
			expected: cards(span(11, 26), one(28), span(6, 10), one(27), span(1, 5)),
		},
		{
			name:     "first joker at the front",
			deck:     cards(one(27), span(2, 3), one(28), span(4, 26), one(1)),
			expected: cards(span(4, 26), one(1), one(27), span(2, 3), one(28)),
		},
		{
			name:     "second joker at the rear",
			deck:     cards(span(1, 2), one(27), span(3, 26), one(28)),
			expected: cards(one(27), span(3, 26), one(28), span(1, 2)),
		},
		{
			name:     "adjacent jokers",
			deck:     cards(span(1, 13), one(27), one(28), span(14, 26)),
			expected: cards(span(14, 26), one(27), one(28), span(1, 13)),
		},
		{
			name:     "jokers at both ends",
			deck:     cards(one(27), span(1, 26), one(28)),
			expected: cards(one(27), span(1, 26), one(28)),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			d := s.mustDeck(tc.deck)

			d.tripleCut()

			s.Equal(tc.expected, d.Cards())
			s.Equal(tc.expected[size-1], d.Rear(), "Rear should be the new last card")
		})
	}
}

func (s *StepsTestSuite) TestTripleCutJokersAtEndsUnchanged() {
	// Setup
	d := s.mustDeck(cards(one(28), span(1, 26), one(27)))
	before := *d

	// Execute
	d.tripleCut()

	// Assert
	s.Equal(before, *d, "Deck state should be identical")
}

func (s *StepsTestSuite) TestCountCut() {
	testCases := []struct {
		name     string
		deck     []entities.Card
		expected []entities.Card
	}{
		{
			name:     "rear card 5",
			deck:     cards(one(3), one(4), one(28), span(6, 26), one(1), one(2), one(27), one(5)),
			expected: cards(span(8, 26), one(1), one(2), one(27), one(3), one(4), one(28), one(6), one(7), one(5)),
		},
		{
			name:     "rear card 1",
			deck:     cards(span(2, 28), one(1)),
			expected: cards(span(3, 28), one(2), one(1)),
		},
		{
			name:     "rear card 26",
			deck:     cards(span(1, 25), one(27), one(28), one(26)),
			expected: cards(one(28), span(1, 25), one(27), one(26)),
		},
		{
			name:     "rear Joker A is a no-op",
			deck:     cards(span(1, 26), one(28), one(27)),
			expected: cards(span(1, 26), one(28), one(27)),
		},
		{
			name:     "rear Joker B counts as 27",
			deck:     entities.OrderedCards(),
			expected: entities.OrderedCards(),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			d := s.mustDeck(tc.deck)

			d.countCut()

			s.Equal(tc.expected, d.Cards())
		})
	}
}

func (s *StepsTestSuite) TestStepsPreservePermutation() {
	steps := map[string]func(d *Deck){
		"jokerA":    (*Deck).jokerA,
		"jokerB":    (*Deck).jokerB,
		"tripleCut": (*Deck).tripleCut,
		"countCut":  (*Deck).countCut,
		"cycle":     (*Deck).cycle,
	}

	for name, step := range steps {
		s.Run(name, func() {
			r := rand.New(rand.NewSource(42))
			for i := 0; i < 500; i++ {
				d := NewRandomDeck(r)
				step(d)
				s.assertPermutation(d)
			}
		})
	}
}

func (s *StepsTestSuite) TestStepsPreservePermutationAfterRotation() {
	// One-sided triple cuts rotate the rear away from the last slot
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		d := NewRandomDeck(r)
		for j := 0; j < 20; j++ {
			d.jokerA()
			d.jokerB()
			s.assertPermutation(d)
			d.tripleCut()
			s.assertPermutation(d)
			d.countCut()
			s.assertPermutation(d)
		}
	}
}
