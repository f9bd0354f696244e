package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/drawpoker/internal/randutil"
)

func TestDetermineWinner(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		player string
		dealer string
		want   Winner
	}{
		{"full house beats flush", "KS KH KD 2C 2S", "2H 9H JH 4H AH", PlayerWins},
		{"flush loses to full house", "2H 9H JH 4H AH", "KS KH KD 2C 2S", DealerWins},
		{"royal beats straight flush", "TH JH QH KH AH", "9S TS JS QS KS", PlayerWins},
		{"higher pair wins", "QS QH AD 8C 5S", "KS KH 3D 4C 6S", DealerWins},
		{"third kicker decides", "KS KH AD QC 9S", "KD KC AH QH 8S", PlayerWins},
		{"two pair on second pair", "KS KH 9C 9H 2D", "KD KC 8H 8S AS", PlayerWins},
		{"two pair on kicker", "KS KH 9C 9H 3D", "KD KC 9D 9S 2S", PlayerWins},
		{"high card on last kicker", "AS JH 9D 6C 3S", "AD JC 9H 6S 2D", PlayerWins},
		{"straight by high card", "5C 6D 7H 8S 9C", "6H 7C 8D 9H TS", DealerWins},
		{"flush by kickers", "AH QH 9H 5H 3H", "AS QS 9S 5S 2S", PlayerWins},
		{"same values different suits tie", "AS KH 9D 6C 3S", "AD KC 9H 6S 3D", Tie},
		{"equal straights tie", "5C 6D 7H 8S 9C", "5D 6H 7C 8D 9S", Tie},
		{"ace low is beaten by a pair", "AC 2D 3H 4S 5C", "2S 2H 7D 8C 9S", DealerWins},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			player := MustParseHand(tc.player)
			dealer := MustParseHand(tc.dealer)
			assert.Equal(t, tc.want, DetermineWinner(player, dealer))
		})
	}
}

func TestDetermineWinnerSymmetric(t *testing.T) {
	t.Parallel()
	rng := randutil.New(2024)
	for range 2000 {
		d := NewDeck(rng)
		a, b := d.DealHand(), d.DealHand()

		ab := DetermineWinner(a, b)
		ba := DetermineWinner(b, a)
		switch ab {
		case PlayerWins:
			assert.Equal(t, DealerWins, ba, "%s vs %s", a, b)
		case DealerWins:
			assert.Equal(t, PlayerWins, ba, "%s vs %s", a, b)
		case Tie:
			assert.Equal(t, Tie, ba, "%s vs %s", a, b)
		}
		assert.Equal(t, -Compare(b, a), Compare(a, b))
	}
}

func TestDetermineWinnerAgainstItself(t *testing.T) {
	t.Parallel()
	rng := randutil.New(99)
	for range 500 {
		h := NewDeck(rng).DealHand()
		assert.Equal(t, Tie, DetermineWinner(h, h.Clone()), "%s", h)
	}
}

func TestHigherRankAlwaysWins(t *testing.T) {
	t.Parallel()
	rng := randutil.New(11)
	for range 2000 {
		d := NewDeck(rng)
		a, b := d.DealHand(), d.DealHand()
		if a.Rank() > b.Rank() {
			assert.Equal(t, PlayerWins, DetermineWinner(a, b))
		} else if a.Rank() < b.Rank() {
			assert.Equal(t, DealerWins, DetermineWinner(a, b))
		}
	}
}

func TestWinnerString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Player", PlayerWins.String())
	assert.Equal(t, "Dealer", DealerWins.String())
	assert.Equal(t, "Tie", Tie.String())
}
