package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

func TestRunDeterministicAcrossWorkers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	one, err := New(Config{Rounds: 3000, Workers: 1, Seed: 17}).Run(ctx)
	require.NoError(t, err)
	four, err := New(Config{Rounds: 3000, Workers: 4, Seed: 17}).Run(ctx)
	require.NoError(t, err)
	odd, err := New(Config{Rounds: 3000, Workers: 7, Seed: 17}).Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, one, four)
	assert.Equal(t, one, odd)
	assert.Equal(t, 3000, one.Rounds)
	require.NoError(t, one.Validate())
}

func TestRunFrequenciesArePlausible(t *testing.T) {
	t.Parallel()
	stats, err := New(Config{Rounds: 20000, Workers: 4, Seed: 1}).Run(context.Background())
	require.NoError(t, err)

	// Roughly half of five card hands are high card and four in ten a pair;
	// random draws shift that a little.
	assert.InDelta(t, 0.45, stats.RankFrequency(poker.HighCard), 0.1)
	assert.InDelta(t, 0.42, stats.RankFrequency(poker.Pair), 0.1)
	assert.Less(t, stats.RankFrequency(poker.FourOfAKind), 0.01)

	// Both sides play the same random strategy.
	assert.InDelta(t, stats.PlayerWinRate(), stats.DealerWinRate(), 0.03)
	assert.Less(t, stats.TieRate(), 0.01)
}

func TestRunMoreWorkersThanRounds(t *testing.T) {
	t.Parallel()
	stats, err := New(Config{Rounds: 3, Workers: 16, Seed: 2}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rounds)
}

func TestRunRejectsZeroRounds(t *testing.T) {
	t.Parallel()
	_, err := New(Config{}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(Config{Rounds: 10000, Workers: 2}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayRoundReplays(t *testing.T) {
	t.Parallel()
	a, err := PlayRound(99)
	require.NoError(t, err)
	b, err := PlayRound(99)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.LessOrEqual(t, a.PlayerDrawn, game.MaxDiscards)
	assert.LessOrEqual(t, a.DealerDrawn, game.MaxDiscards)
}

func TestStatsAddAndValidate(t *testing.T) {
	t.Parallel()
	var s Stats
	s.Add(game.Result{
		Player: poker.Classification{Rank: poker.Flush},
		Dealer: poker.Classification{Rank: poker.Pair},
		Winner: poker.PlayerWins,
	})
	s.Add(game.Result{
		Player: poker.Classification{Rank: poker.HighCard},
		Dealer: poker.Classification{Rank: poker.HighCard},
		Winner: poker.Tie,
	})
	require.NoError(t, s.Validate())
	assert.Equal(t, 1, s.WinningRanks[poker.Flush])
	assert.InDelta(t, 0.5, s.PlayerWinRate(), 1e-9)
	assert.InDelta(t, 0.5, s.RankFrequency(poker.HighCard), 1e-9)

	s.Ties++
	assert.Error(t, s.Validate())
}

func TestStatsReport(t *testing.T) {
	t.Parallel()
	stats, err := New(Config{Rounds: 100, Workers: 2, Seed: 5}).Run(context.Background())
	require.NoError(t, err)

	report := stats.Report()
	assert.Contains(t, report, "Royal Flush")
	assert.Contains(t, report, "High Card")
	assert.Contains(t, report, "Rounds: 100")
	assert.Contains(t, report, "Player wins:")
}
