package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Value is the rank of a single card, Two through Ace. Aces are always high.
type Value uint8

// Suit is one of the four card suits. Suits carry no ordering for play.
type Suit uint8

// Value constants (0-12 for 2-A)
const (
	Two Value = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	NumValues = 13
	NumSuits  = 4
	NumCards  = NumValues * NumSuits
)

const (
	valueLetters = "23456789TJQKA"
	suitLetters  = "CDHS"
)

// ErrInvalidCard is returned when a card code cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Next returns the following value, wrapping from Ace back to Two.
func (v Value) Next() Value {
	return Value((int(v) + 1) % NumValues)
}

// Prev returns the preceding value, wrapping from Two to Ace.
func (v Value) Prev() Value {
	return Value((int(v) + NumValues - 1) % NumValues)
}

// Valid reports whether v is one of the thirteen values.
func (v Value) Valid() bool {
	return v <= Ace
}

// String returns the single letter used in card codes.
func (v Value) String() string {
	if !v.Valid() {
		return "X"
	}
	return string(valueLetters[v])
}

// Name returns the spelled out value, e.g. "King".
func (v Value) Name() string {
	switch v {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// Next returns the following suit, wrapping from Spades back to Clubs.
func (s Suit) Next() Suit {
	return Suit((int(s) + 1) % NumSuits)
}

// Prev returns the preceding suit, wrapping from Clubs to Spades.
func (s Suit) Prev() Suit {
	return Suit((int(s) + NumSuits - 1) % NumSuits)
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// String returns the single letter used in card codes.
func (s Suit) String() string {
	if !s.Valid() {
		return "X"
	}
	return string(suitLetters[s])
}

// Card is an immutable value/suit pair.
type Card struct {
	Value Value
	Suit  Suit
}

// NewCard creates a card from value and suit
func NewCard(value Value, suit Suit) Card {
	return Card{Value: value, Suit: suit}
}

// String returns the two character code, e.g. "AS" or "TC".
func (c Card) String() string {
	return c.Value.String() + c.Suit.String()
}

// IsRed reports whether the card is a heart or a diamond.
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// ParseCard parses a code like "AS" or "tc" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	upper := strings.ToUpper(s)
	v := strings.IndexByte(valueLetters, upper[0])
	if v < 0 {
		return Card{}, fmt.Errorf("%w: bad value %q in %q", ErrInvalidCard, s[0], s)
	}
	st := strings.IndexByte(suitLetters, upper[1])
	if st < 0 {
		return Card{}, fmt.Errorf("%w: bad suit %q in %q", ErrInvalidCard, s[1], s)
	}

	return NewCard(Value(v), Suit(st)), nil
}

// ParseCards parses a list of card codes separated by spaces or commas.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
