package game

import "github.com/lox/drawpoker/poker"

// PickerPositions is the number of cursor stops: a value and a suit per card.
const PickerPositions = poker.HandSize * 2

// Picker edits a hand one field at a time. The cursor alternates value, suit,
// value, suit across the five cards and wraps at both ends.
type Picker struct {
	cards  [poker.HandSize]poker.Card
	cursor int
}

// NewPicker starts from five twos of clubs.
func NewPicker() *Picker {
	p := &Picker{}
	for i := range p.cards {
		p.cards[i] = poker.NewCard(poker.Two, poker.Clubs)
	}
	return p
}

// Cursor returns the current cursor position.
func (p *Picker) Cursor() int {
	return p.cursor
}

// Slot returns the card slot under the cursor.
func (p *Picker) Slot() int {
	return p.cursor / 2
}

// OnSuit reports whether the cursor is on a suit rather than a value.
func (p *Picker) OnSuit() bool {
	return p.cursor%2 == 1
}

// Left moves the cursor back one position.
func (p *Picker) Left() {
	p.cursor = (p.cursor + PickerPositions - 1) % PickerPositions
}

// Right moves the cursor forward one position.
func (p *Picker) Right() {
	p.cursor = (p.cursor + 1) % PickerPositions
}

// Up steps the field under the cursor to its next value or suit.
func (p *Picker) Up() {
	c := &p.cards[p.Slot()]
	if p.OnSuit() {
		c.Suit = c.Suit.Next()
	} else {
		c.Value = c.Value.Next()
	}
}

// Down steps the field under the cursor to its previous value or suit.
func (p *Picker) Down() {
	c := &p.cards[p.Slot()]
	if p.OnSuit() {
		c.Suit = c.Suit.Prev()
	} else {
		c.Value = c.Value.Prev()
	}
}

// Cards returns the cards being edited.
func (p *Picker) Cards() []poker.Card {
	return p.cards[:]
}

// Hand returns the picked cards as a hand.
func (p *Picker) Hand() *poker.Hand {
	h, _ := poker.NewHand(p.cards[:]...)
	return h
}
