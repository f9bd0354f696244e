package poker

import (
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of cards in a five card draw hand.
const HandSize = 5

// ErrInvalidSlot is raised when a card slot outside 0..HandSize-1 is used.
var ErrInvalidSlot = errors.New("invalid card slot")

// Hand is five cards in deal order. The sorted values and the classification
// are derived lazily and dropped whenever a card changes.
type Hand struct {
	cards [HandSize]Card

	sorted   [HandSize]Value
	isSorted bool

	class  Classification
	ranked bool
}

// NewHand creates a hand from exactly five cards.
func NewHand(cards ...Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("hand needs %d cards, got %d", HandSize, len(cards))
	}
	h := &Hand{}
	copy(h.cards[:], cards)
	return h, nil
}

// ParseHand parses five card codes such as "AS AH AD AC 2S".
func ParseHand(s string) (*Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return nil, err
	}
	return NewHand(cards...)
}

// MustParseHand is ParseHand for literals known to be valid.
func MustParseHand(s string) *Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Card returns the card in the given slot.
func (h *Hand) Card(slot int) Card {
	checkSlot(slot)
	return h.cards[slot]
}

// Cards returns a copy of the cards in deal order.
func (h *Hand) Cards() []Card {
	out := make([]Card, HandSize)
	copy(out, h.cards[:])
	return out
}

// SetCard replaces the card in slot, invalidating any sort or rank.
func (h *Hand) SetCard(slot int, c Card) {
	checkSlot(slot)
	h.cards[slot] = c
	h.isSorted = false
	h.ranked = false
}

// Clone returns an independent copy of the hand.
func (h *Hand) Clone() *Hand {
	c := *h
	return &c
}

// Sort recomputes the card values in descending order by repeated max-scan.
func (h *Hand) Sort() {
	var taken [HandSize]bool
	for i := range HandSize {
		best := -1
		for c := range HandSize {
			if taken[c] {
				continue
			}
			if best < 0 || h.cards[c].Value > h.cards[best].Value {
				best = c
			}
		}
		taken[best] = true
		h.sorted[i] = h.cards[best].Value
	}
	h.isSorted = true
	h.ranked = false
}

// Sorted returns the descending values, sorting first if the hand changed.
func (h *Hand) Sorted() [HandSize]Value {
	if !h.isSorted {
		h.Sort()
	}
	return h.sorted
}

// DetermineRank classifies the hand. It sorts first when needed so a stale
// value order can never feed the classifier.
func (h *Hand) DetermineRank() Classification {
	if h.ranked {
		return h.class
	}
	sorted := h.Sorted()

	var suits [HandSize]Suit
	for i, c := range h.cards {
		suits[i] = c.Suit
	}

	h.class = Classify(sorted, suits)
	h.ranked = true
	return h.class
}

// Classification returns the hand's rank and tie-break values.
func (h *Hand) Classification() Classification {
	return h.DetermineRank()
}

// Rank returns the hand's category
func (h *Hand) Rank() Rank {
	return h.DetermineRank().Rank
}

// Primary returns the value of the hand's dominant grouping
func (h *Hand) Primary() Value {
	return h.DetermineRank().Primary
}

// Secondary returns the value of the hand's second grouping
func (h *Hand) Secondary() Value {
	return h.DetermineRank().Secondary
}

// Contains reports whether the hand holds the card.
func (h *Hand) Contains(c Card) bool {
	for _, hc := range h.cards {
		if hc == c {
			return true
		}
	}
	return false
}

// String returns the card codes separated by spaces, in deal order.
func (h *Hand) String() string {
	codes := make([]string, HandSize)
	for i, c := range h.cards {
		codes[i] = c.String()
	}
	return strings.Join(codes, " ")
}

func checkSlot(slot int) {
	if slot < 0 || slot >= HandSize {
		panic(fmt.Errorf("%w: %d", ErrInvalidSlot, slot))
	}
}
