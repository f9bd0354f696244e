package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

func TestNewRoundDealsTwoDistinctHands(t *testing.T) {
	t.Parallel()
	r := NewRound(randutil.New(1))

	assert.Equal(t, PhasePlayerDiscard, r.Phase)
	assert.False(t, r.Picked())
	assert.Equal(t, poker.NumCards-MaxCardsInPlay, r.CardsRemaining())

	seen := make(map[poker.Card]bool)
	for _, c := range append(r.Player.Cards(), r.Dealer.Cards()...) {
		require.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestRoundFullFlow(t *testing.T) {
	t.Parallel()
	r := NewRound(randutil.New(42))
	before := r.Player.Cards()

	require.NoError(t, r.DiscardPlayer([]int{0, 4}))
	assert.Equal(t, PhaseDealerDiscard, r.Phase)
	after := r.Player.Cards()
	assert.NotEqual(t, before[0], after[0])
	assert.NotEqual(t, before[4], after[4])
	assert.Equal(t, before[1:4], after[1:4])

	slots, err := r.DiscardDealer()
	require.NoError(t, err)
	assert.LessOrEqual(t, len(slots), MaxDiscards)
	assert.Equal(t, PhaseShowdown, r.Phase)

	res, err := r.Showdown()
	require.NoError(t, err)
	assert.Equal(t, PhaseComplete, r.Phase)
	assert.Equal(t, poker.DetermineWinner(r.Player, r.Dealer), res.Winner)
	assert.Equal(t, r.Player.String(), res.PlayerHand)
	assert.Equal(t, 2, res.PlayerDrawn)
	assert.Equal(t, len(slots), res.DealerDrawn)

	got, done := r.Result()
	assert.True(t, done)
	assert.Equal(t, res, got)
}

func TestDiscardPlayerValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		slots []int
		err   error
	}{
		{"four cards", []int{0, 1, 2, 3}, ErrTooManyDiscards},
		{"slot too high", []int{5}, ErrInvalidSlot},
		{"negative slot", []int{-1}, ErrInvalidSlot},
		{"same slot twice", []int{1, 1}, ErrDuplicateSlot},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := NewRound(randutil.New(3))
			before := r.Player.Cards()

			err := r.DiscardPlayer(tc.slots)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, PhasePlayerDiscard, r.Phase, "a rejected discard keeps the phase")
			assert.Equal(t, before, r.Player.Cards())
		})
	}
}

func TestDiscardNothing(t *testing.T) {
	t.Parallel()
	r := NewRound(randutil.New(8))
	before := r.Player.Cards()
	require.NoError(t, r.DiscardPlayer(nil))
	assert.Equal(t, before, r.Player.Cards())
	assert.Equal(t, poker.NumCards-MaxCardsInPlay, r.CardsRemaining())
}

func TestPhaseOrderEnforced(t *testing.T) {
	t.Parallel()
	r := NewRound(randutil.New(4))

	_, err := r.DiscardDealer()
	assert.ErrorIs(t, err, ErrPhase)
	_, err = r.Showdown()
	assert.ErrorIs(t, err, ErrPhase)

	require.NoError(t, r.DiscardPlayer([]int{2}))
	assert.ErrorIs(t, r.DiscardPlayer([]int{2}), ErrPhase)

	_, err = r.DiscardDealer()
	require.NoError(t, err)
	_, err = r.Showdown()
	require.NoError(t, err)
	_, err = r.Showdown()
	assert.ErrorIs(t, err, ErrPhase)
}

func TestCardsInPlayCeiling(t *testing.T) {
	t.Parallel()
	// Both sides discarding the maximum leaves far more cards than the deck
	// ever needs to supply.
	for seed := range int64(300) {
		r := NewRound(randutil.New(seed))
		require.NoError(t, r.DiscardPlayer([]int{0, 1, 2}))
		slots, err := r.DiscardDealer()
		require.NoError(t, err)

		drawn := MaxCardsInPlay + MaxDiscards + len(slots)
		assert.Equal(t, poker.NumCards-drawn, r.CardsRemaining())
		assert.GreaterOrEqual(t, r.CardsRemaining(), poker.NumCards-MaxCardsInPlay-2*MaxDiscards)

		seen := make(map[poker.Card]bool)
		for _, c := range append(r.Player.Cards(), r.Dealer.Cards()...) {
			require.False(t, seen[c], "seed %d: duplicate %s", seed, c)
			seen[c] = true
		}
	}
}

func TestRandomDiscards(t *testing.T) {
	t.Parallel()
	rng := randutil.New(77)
	var counts [MaxDiscards + 1]int
	for range 4000 {
		slots := RandomDiscards(rng)
		require.NoError(t, ValidateDiscards(slots))
		counts[len(slots)]++
		for i := 1; i < len(slots); i++ {
			assert.Less(t, slots[i-1], slots[i])
		}
	}
	for n, c := range counts {
		assert.Greater(t, c, 800, "count %d drawn %d times", n, c)
	}
}

func TestPickedRound(t *testing.T) {
	t.Parallel()
	player := poker.MustParseHand("AS AH AD AC 2S")
	dealer := poker.MustParseHand("AS AH AD AC 2S")
	r := NewRound(randutil.New(1), WithHands(player, dealer))

	assert.True(t, r.Picked())
	assert.Equal(t, PhaseShowdown, r.Phase)
	assert.Zero(t, r.CardsRemaining())

	res, err := r.Showdown()
	require.NoError(t, err)
	assert.Equal(t, poker.Tie, res.Winner)
	assert.Equal(t, poker.FourOfAKind, res.Player.Rank)
	assert.Equal(t, poker.Ace, res.Player.Primary)
}

func TestRoundWithDeck(t *testing.T) {
	t.Parallel()
	deck := poker.NewDeck(randutil.New(5))
	r := NewRound(randutil.New(6), WithDeck(deck))
	assert.Equal(t, poker.NumCards-MaxCardsInPlay, deck.Remaining())
	assert.False(t, deck.Available(r.Player.Card(0)))
}

func TestNewRoundRequiresRNG(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewRound(nil) })
}
