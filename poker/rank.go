package poker

// Rank is the category of a five card hand, ordered from weakest to strongest.
type Rank uint8

const (
	HighCard Rank = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable rank name.
func (r Rank) String() string {
	switch r {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Classification is the result of ranking a hand. Primary and Secondary are
// the values of the dominant and secondary groupings; ranks without a
// secondary grouping leave it at Two.
type Classification struct {
	Rank      Rank
	Primary   Value
	Secondary Value
}

// Classify ranks five cards given their values sorted descending and their
// suits in any order. The first matching category, strongest first, wins.
func Classify(sorted [HandSize]Value, suits [HandSize]Suit) Classification {
	straightHigh, straight := isStraight(sorted)
	flush := isFlush(suits)

	if straight && flush {
		if straightHigh == Ace {
			return Classification{Rank: RoyalFlush, Primary: Ace}
		}
		return Classification{Rank: StraightFlush, Primary: straightHigh}
	}
	if v, ok := isFourOfAKind(sorted); ok {
		return Classification{Rank: FourOfAKind, Primary: v}
	}
	if trips, pair, ok := isFullHouse(sorted); ok {
		return Classification{Rank: FullHouse, Primary: trips, Secondary: pair}
	}
	if flush {
		return Classification{Rank: Flush, Primary: sorted[0]}
	}
	if straight {
		return Classification{Rank: Straight, Primary: straightHigh}
	}
	if v, ok := isThreeOfAKind(sorted); ok {
		return Classification{Rank: ThreeOfAKind, Primary: v}
	}
	if high, low, ok := isTwoPair(sorted); ok {
		return Classification{Rank: TwoPair, Primary: high, Secondary: low}
	}
	if v, ok := isPair(sorted); ok {
		return Classification{Rank: Pair, Primary: v}
	}
	return Classification{Rank: HighCard, Primary: sorted[0]}
}

// runAt reports whether n values starting at start are all equal.
func runAt(v [HandSize]Value, start, n int) bool {
	if start+n > HandSize {
		return false
	}
	for i := start + 1; i < start+n; i++ {
		if v[i] != v[start] {
			return false
		}
	}
	return true
}

func isFourOfAKind(v [HandSize]Value) (Value, bool) {
	for start := 0; start <= HandSize-4; start++ {
		if runAt(v, start, 4) {
			return v[start], true
		}
	}
	return 0, false
}

// isFullHouse accepts trips-then-pair or pair-then-trips. The trips value is
// always returned first.
func isFullHouse(v [HandSize]Value) (trips, pair Value, ok bool) {
	if runAt(v, 0, 3) && runAt(v, 3, 2) {
		return v[0], v[3], true
	}
	if runAt(v, 0, 2) && runAt(v, 2, 3) {
		return v[2], v[0], true
	}
	return 0, 0, false
}

func isFlush(suits [HandSize]Suit) bool {
	var counts [NumSuits]int
	for _, s := range suits {
		counts[s%NumSuits]++
		if counts[s%NumSuits] == HandSize {
			return true
		}
	}
	return false
}

// isStraight requires five consecutive descending values. A-2-3-4-5 does not
// count: aces only play high.
func isStraight(v [HandSize]Value) (Value, bool) {
	for i := 0; i < HandSize-1; i++ {
		if v[i] != v[i+1]+1 {
			return 0, false
		}
	}
	return v[0], true
}

func isThreeOfAKind(v [HandSize]Value) (Value, bool) {
	for start := 0; start <= HandSize-3; start++ {
		if runAt(v, start, 3) {
			return v[start], true
		}
	}
	return 0, false
}

func isTwoPair(v [HandSize]Value) (high, low Value, ok bool) {
	for first := 0; first <= HandSize-4; first++ {
		if !runAt(v, first, 2) {
			continue
		}
		for second := first + 2; second <= HandSize-2; second++ {
			if runAt(v, second, 2) {
				return v[first], v[second], true
			}
		}
	}
	return 0, 0, false
}

func isPair(v [HandSize]Value) (Value, bool) {
	for start := 0; start <= HandSize-2; start++ {
		if runAt(v, start, 2) {
			return v[start], true
		}
	}
	return 0, false
}
