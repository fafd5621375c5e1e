package solitaire

import "github.com/fadedpez/solitaire/pkg/entities"

// moveJoker moves card c forward by steps positions, one swap at a time.
// Swapping across the rear slot wraps the card round to the front.
func (d *Deck) moveJoker(c entities.Card, steps int) {
	for i := 0; i < steps; i++ {
		s := d.slots[c]
		d.swapSlots(s, (s+1)%size)
	}
}

func (d *Deck) jokerA() {
	d.moveJoker(entities.JokerA, 1)
}

func (d *Deck) jokerB() {
	d.moveJoker(entities.JokerB, 2)
}

// tripleCut swaps the cards above the first joker with the cards below the
// second joker. Either block may be empty.
func (d *Deck) tripleCut() {
	first, second := d.position(entities.JokerA), d.position(entities.JokerB)
	if first > second {
		first, second = second, first
	}
	switch {
	case first == 0 && second == size-1:
		return
	case first == 0:
		// Only the bottom block moves, so rotating the rear onto the second
		// joker is enough.
		d.rear = (d.rear + 1 + second) % size
		return
	case second == size-1:
		d.rear = (d.rear + first) % size
		return
	}

	seq := d.sequence()
	var out [size]entities.Card
	n := copy(out[:], seq[second+1:])
	n += copy(out[n:], seq[first:second+1])
	copy(out[n:], seq[:first])
	d.reset(out)
}

// countCut moves the top n cards to just above the rear card, where n is the
// rear card's count. The rear card itself stays in place.
func (d *Deck) countCut() {
	n := d.Rear().Count()
	if n == int(entities.JokerA) {
		return
	}

	seq := d.sequence()
	var out [size]entities.Card
	k := copy(out[:], seq[n:size-1])
	k += copy(out[k:], seq[:n])
	out[k] = seq[size-1]
	d.reset(out)
}

// cycle runs the four steps once
func (d *Deck) cycle() {
	d.jokerA()
	d.jokerB()
	d.tripleCut()
	d.countCut()
}
