package solitaire

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_solitaire

// KeyStream produces one key value in 1..26 per call
type KeyStream interface {
	NextKeyValue() (int, error)
}

// Ensure Deck implements KeyStream
var _ KeyStream = (*Deck)(nil)

// NextKeyValue advances the deck and returns the next key in 1..26.
//
// Each attempt runs the four steps, counts down the front card's value and
// reads the card after it. Joker draws are discarded and the deck advanced
// again.
func (d *Deck) NextKeyValue() (int, error) {
	for draw := 0; draw < maxJokerDraws; draw++ {
		d.cycle()
		if err := d.verify(); err != nil {
			return 0, err
		}

		key := d.at(d.Front().Count())
		if !key.IsJoker() {
			return int(key), nil
		}
	}
	return 0, deckCorrupted("no key after %d consecutive joker draws", maxJokerDraws)
}
