package cipher

import (
	"github.com/fadedpez/solitaire/pkg/solitaire"
	"github.com/stretchr/testify/mock"
)

// MockDeckSource is a mock implementation of DeckSource
type MockDeckSource struct {
	mock.Mock
}

// NewMockDeckSource creates a new mock deck source
func NewMockDeckSource(t mock.TestingT) *MockDeckSource {
	mock := &MockDeckSource{}
	mock.Test(t)
	return mock
}

// NewDeck mocks the NewDeck method
func (m *MockDeckSource) NewDeck() (*solitaire.Deck, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*solitaire.Deck), args.Error(1)
}
