package game

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

// Session is a run of rounds against the dealer sharing one random source.
// The source is seeded once, when the session starts.
type Session struct {
	Rounds     int
	PlayerWins int
	DealerWins int
	Ties       int

	seed    int64
	rng     *rand.Rand
	clock   quartz.Clock
	started time.Time
	logger  *log.Logger
}

// NewSession starts a session. A zero seed derives one from the clock's wall
// time, so a session can always be replayed from Seed().
func NewSession(clock quartz.Clock, seed int64, logger *log.Logger) *Session {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if seed == 0 {
		seed = randutil.SeedFromClock(clock)
	}

	s := &Session{
		seed:    seed,
		rng:     randutil.New(seed),
		clock:   clock,
		started: clock.Now(),
		logger:  logger,
	}
	logger.WithPrefix("session").Info("Session started", "seed", seed)
	return s
}

// Seed returns the seed the session's random source was built from.
func (s *Session) Seed() int64 {
	return s.seed
}

// NewRound deals a new round from a fresh deck.
func (s *Session) NewRound() *Round {
	return NewRound(s.rng, WithLogger(s.logger))
}

// NewPickedRound starts a round with hand-picked cards.
func (s *Session) NewPickedRound(player, dealer *poker.Hand) *Round {
	return NewRound(s.rng, WithLogger(s.logger), WithHands(player, dealer))
}

// Record adds a finished round to the tally.
func (s *Session) Record(res Result) {
	s.Rounds++
	switch res.Winner {
	case poker.PlayerWins:
		s.PlayerWins++
	case poker.DealerWins:
		s.DealerWins++
	case poker.Tie:
		s.Ties++
	}
	s.logger.WithPrefix("session").Debug("Round recorded",
		"rounds", s.Rounds, "player", s.PlayerWins, "dealer", s.DealerWins, "ties", s.Ties)
}

// Elapsed returns how long the session has been running.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Since(s.started)
}
