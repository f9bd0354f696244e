package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrDeckExhausted is raised when a card is drawn with none left. With at most
// ten cards in play per round this never happens to a correct caller.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck records which of the 52 value/suit combinations are still undealt in
// the current round. It owns no cards; drawing writes straight into a Hand.
type Deck struct {
	available [NumValues][NumSuits]bool
	remaining int
	rng       *rand.Rand // Random source for deterministic draws
}

// NewDeck creates a full deck drawing from the explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset marks every card available again.
func (d *Deck) Reset() {
	for v := range NumValues {
		for s := range NumSuits {
			d.available[v][s] = true
		}
	}
	d.remaining = NumCards
}

// Draw samples uniformly random value/suit pairs until it finds one that is
// still available, marks it dealt and returns it.
func (d *Deck) Draw() Card {
	if d.remaining == 0 {
		panic(ErrDeckExhausted)
	}
	for {
		v := Value(d.rng.IntN(NumValues))
		s := Suit(d.rng.IntN(NumSuits))
		if !d.available[v][s] {
			continue
		}
		d.available[v][s] = false
		d.remaining--
		return NewCard(v, s)
	}
}

// DrawCard replaces the card in the given slot of hand with a fresh card.
// The replaced card is not returned to the deck.
func (d *Deck) DrawCard(hand *Hand, slot int) Card {
	if slot < 0 || slot >= HandSize {
		panic(fmt.Errorf("%w: %d", ErrInvalidSlot, slot))
	}
	c := d.Draw()
	hand.SetCard(slot, c)
	return c
}

// DealHand deals five fresh cards into a new hand.
func (d *Deck) DealHand() *Hand {
	h := &Hand{}
	for slot := range HandSize {
		d.DrawCard(h, slot)
	}
	return h
}

// Remove marks a card as dealt without drawing it. It reports false if the
// card was already gone.
func (d *Deck) Remove(c Card) bool {
	if !d.Available(c) {
		return false
	}
	d.available[c.Value][c.Suit] = false
	d.remaining--
	return true
}

// Available reports whether the card has not been dealt this round.
func (d *Deck) Available(c Card) bool {
	if !c.Value.Valid() || !c.Suit.Valid() {
		return false
	}
	return d.available[c.Value][c.Suit]
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return d.remaining
}
