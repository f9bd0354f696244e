package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/drawpoker/poker"
)

func TestPickerStartsAtTwoOfClubs(t *testing.T) {
	t.Parallel()
	p := NewPicker()
	assert.Equal(t, "2C 2C 2C 2C 2C", p.Hand().String())
	assert.Zero(t, p.Cursor())
	assert.False(t, p.OnSuit())
}

func TestPickerCursorWraps(t *testing.T) {
	t.Parallel()
	p := NewPicker()
	p.Left()
	assert.Equal(t, PickerPositions-1, p.Cursor())
	assert.Equal(t, 4, p.Slot())
	assert.True(t, p.OnSuit())

	p.Right()
	assert.Zero(t, p.Cursor())
}

func TestPickerCyclesFields(t *testing.T) {
	t.Parallel()
	p := NewPicker()

	p.Down() // value of card 0 wraps to Ace
	p.Right()
	p.Down() // suit of card 0 wraps to Spades
	p.Right()
	p.Up() // value of card 1 becomes Three
	p.Right()
	p.Up()
	p.Up() // suit of card 1 becomes Hearts

	cards := p.Cards()
	assert.Equal(t, poker.NewCard(poker.Ace, poker.Spades), cards[0])
	assert.Equal(t, poker.NewCard(poker.Three, poker.Hearts), cards[1])
	assert.Equal(t, "AS 3H 2C 2C 2C", p.Hand().String())
}

func TestPickerBuildsRoyalFlush(t *testing.T) {
	t.Parallel()
	p := NewPicker()
	targets := []poker.Value{poker.Ten, poker.Jack, poker.Queen, poker.King, poker.Ace}
	for _, v := range targets {
		for p.Cards()[p.Slot()].Value != v {
			p.Up()
		}
		p.Right()
		p.Up()
		p.Up() // Hearts
		p.Right()
	}
	assert.Equal(t, poker.RoyalFlush, p.Hand().Rank())
}
