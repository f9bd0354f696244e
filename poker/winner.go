package poker

// Winner is the outcome of comparing the player's hand against the dealer's.
type Winner uint8

const (
	PlayerWins Winner = iota
	DealerWins
	Tie
)

// String returns a human-readable outcome
func (w Winner) String() string {
	switch w {
	case PlayerWins:
		return "Player"
	case DealerWins:
		return "Dealer"
	case Tie:
		return "Tie"
	default:
		return "Unknown"
	}
}

// Compare orders two hands: 1 if a beats b, -1 if b beats a, 0 for a tie.
// Rank decides first, then primary, then secondary, then the sorted values
// card by card.
func Compare(a, b *Hand) int {
	ca, cb := a.DetermineRank(), b.DetermineRank()

	if c := cmpOrdered(ca.Rank, cb.Rank); c != 0 {
		return c
	}
	if c := cmpOrdered(ca.Primary, cb.Primary); c != 0 {
		return c
	}
	if c := cmpOrdered(ca.Secondary, cb.Secondary); c != 0 {
		return c
	}

	va, vb := a.Sorted(), b.Sorted()
	for i := range HandSize {
		if c := cmpOrdered(va[i], vb[i]); c != 0 {
			return c
		}
	}
	return 0
}

// DetermineWinner compares the player's hand against the dealer's.
func DetermineWinner(player, dealer *Hand) Winner {
	switch Compare(player, dealer) {
	case 1:
		return PlayerWins
	case -1:
		return DealerWins
	default:
		return Tie
	}
}

func cmpOrdered[T ~uint8](a, b T) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
