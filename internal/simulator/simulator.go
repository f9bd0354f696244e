package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Workers int
	Seed    int64
	Logger  *log.Logger
}

// Simulator plays many rounds of five card draw where both sides discard at
// random, and tallies the outcomes.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays every round and returns the merged statistics. Round i is always
// dealt from seed Seed+i, so results do not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*Stats, error) {
	if s.config.Rounds <= 0 {
		return nil, errors.New("rounds must be positive")
	}

	workers := min(s.config.Workers, s.config.Rounds)
	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers

	partials := make([]Stats, workers)
	g, ctx := errgroup.WithContext(ctx)

	start := 0
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++ // Distribute remainder rounds
		}
		first := start
		start += n

		g.Go(func() error {
			return s.runRange(ctx, first, n, &partials[w])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Stats{}
	for i := range partials {
		total.Merge(&partials[i])
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete",
		"rounds", total.Rounds,
		"workers", workers,
		"player_win_rate", fmt.Sprintf("%.3f", total.PlayerWinRate()))
	return total, nil
}

func (s *Simulator) runRange(ctx context.Context, first, n int, stats *Stats) error {
	for i := range n {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		res, err := PlayRound(s.config.Seed + int64(first+i))
		if err != nil {
			return fmt.Errorf("round %d: %w", first+i, err)
		}
		stats.Add(res)
	}
	return nil
}

// PlayRound plays one round from the given seed with both sides discarding a
// random 0-3 cards.
func PlayRound(seed int64) (game.Result, error) {
	rng := randutil.New(seed)
	r := game.NewRound(rng)

	if err := r.DiscardPlayer(game.RandomDiscards(rng)); err != nil {
		return game.Result{}, err
	}
	if _, err := r.DiscardDealer(); err != nil {
		return game.Result{}, err
	}
	return r.Showdown()
}
