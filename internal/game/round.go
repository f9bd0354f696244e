package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/poker"
)

const (
	// MaxDiscards is the most cards either side may exchange in a round.
	MaxDiscards = 3

	// HandsPerRound is the number of hands dealt from one deck.
	HandsPerRound = 2

	// MaxCardsInPlay is the most cards held at once, well under the 52 in a deck.
	MaxCardsInPlay = HandsPerRound * poker.HandSize
)

var (
	ErrTooManyDiscards = errors.New("too many discards")
	ErrInvalidSlot     = errors.New("invalid card slot")
	ErrDuplicateSlot   = errors.New("card discarded twice")
	ErrPhase           = errors.New("action not allowed in this phase")
)

// Phase tracks where a round is between the deal and the showdown.
type Phase uint8

const (
	PhasePlayerDiscard Phase = iota
	PhaseDealerDiscard
	PhaseShowdown
	PhaseComplete
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhasePlayerDiscard:
		return "Player Discard"
	case PhaseDealerDiscard:
		return "Dealer Discard"
	case PhaseShowdown:
		return "Showdown"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a round's showdown.
type Result struct {
	Player      poker.Classification
	Dealer      poker.Classification
	Winner      poker.Winner
	PlayerHand  string
	DealerHand  string
	PlayerDrawn int
	DealerDrawn int
}

// Round is one game of five card draw: deal, discards, showdown. A round is
// driven from a single goroutine.
type Round struct {
	Player *poker.Hand
	Dealer *poker.Hand
	Phase  Phase

	deck   *poker.Deck // nil for hand-picked rounds
	rng    *rand.Rand
	logger *log.Logger
	result Result
}

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

type roundConfig struct {
	logger *log.Logger
	deck   *poker.Deck
	player *poker.Hand
	dealer *poker.Hand
}

// WithLogger sets the logger used for round events.
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) {
		c.logger = logger
	}
}

// WithDeck uses the given deck instead of a fresh one.
func WithDeck(deck *poker.Deck) RoundOption {
	return func(c *roundConfig) {
		c.deck = deck
	}
}

// WithHands skips the deal and both discards, going straight to the
// showdown with hand-picked cards. Duplicates across hands are allowed.
func WithHands(player, dealer *poker.Hand) RoundOption {
	return func(c *roundConfig) {
		c.player = player
		c.dealer = dealer
	}
}

// NewRound creates a round and deals the player then the dealer from a fresh
// deck. The RNG is required so every round can be replayed from its seed.
func NewRound(rng *rand.Rand, opts ...RoundOption) *Round {
	if rng == nil {
		panic("rng is required for round creation")
	}

	cfg := &roundConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	r := &Round{
		rng:    rng,
		logger: cfg.logger.WithPrefix("round"),
	}

	if cfg.player != nil && cfg.dealer != nil {
		r.Player = cfg.player
		r.Dealer = cfg.dealer
		r.Phase = PhaseShowdown
		r.logger.Debug("Using picked hands", "player", r.Player, "dealer", r.Dealer)
		return r
	}

	r.deck = cfg.deck
	if r.deck == nil {
		r.deck = poker.NewDeck(rng)
	}
	r.Player = r.deck.DealHand()
	r.Dealer = r.deck.DealHand()
	r.Phase = PhasePlayerDiscard
	r.logger.Debug("Dealt hands", "player", r.Player, "dealer", r.Dealer, "remaining", r.deck.Remaining())
	return r
}

// Picked reports whether the hands were chosen by hand instead of dealt.
func (r *Round) Picked() bool {
	return r.deck == nil
}

// CardsRemaining returns the number of undealt cards, or zero for a picked round.
func (r *Round) CardsRemaining() int {
	if r.deck == nil {
		return 0
	}
	return r.deck.Remaining()
}

// ValidateDiscards checks a discard selection without applying it.
func ValidateDiscards(slots []int) error {
	if len(slots) > MaxDiscards {
		return fmt.Errorf("%w: %d selected, at most %d", ErrTooManyDiscards, len(slots), MaxDiscards)
	}
	var seen [poker.HandSize]bool
	for _, s := range slots {
		if s < 0 || s >= poker.HandSize {
			return fmt.Errorf("%w: %d", ErrInvalidSlot, s)
		}
		if seen[s] {
			return fmt.Errorf("%w: slot %d", ErrDuplicateSlot, s)
		}
		seen[s] = true
	}
	return nil
}

// DiscardPlayer exchanges the player's cards in the given slots for new ones
// from the deck and hands the turn to the dealer.
func (r *Round) DiscardPlayer(slots []int) error {
	if r.Phase != PhasePlayerDiscard {
		return fmt.Errorf("%w: player discard during %s", ErrPhase, r.Phase)
	}
	if err := ValidateDiscards(slots); err != nil {
		return err
	}

	r.redraw(r.Player, slots)
	r.result.PlayerDrawn = len(slots)
	r.Phase = PhaseDealerDiscard
	r.logger.Debug("Player discarded", "slots", slots, "hand", r.Player)
	return nil
}

// DiscardDealer picks a uniformly random number of cards in [0, MaxDiscards]
// and exchanges that many distinct random slots. It returns the slots chosen.
func (r *Round) DiscardDealer() ([]int, error) {
	if r.Phase != PhaseDealerDiscard {
		return nil, fmt.Errorf("%w: dealer discard during %s", ErrPhase, r.Phase)
	}

	slots := RandomDiscards(r.rng)
	r.redraw(r.Dealer, slots)
	r.result.DealerDrawn = len(slots)
	r.Phase = PhaseShowdown
	r.logger.Debug("Dealer discarded", "count", len(slots), "slots", slots)
	return slots, nil
}

// RandomDiscards chooses the dealer's discards: a count uniform in
// [0, MaxDiscards] then that many distinct slots, in slot order.
func RandomDiscards(rng *rand.Rand) []int {
	n := rng.IntN(MaxDiscards + 1)

	var chosen [poker.HandSize]bool
	for range n {
		for {
			s := rng.IntN(poker.HandSize)
			if !chosen[s] {
				chosen[s] = true
				break
			}
		}
	}

	slots := make([]int, 0, n)
	for s, ok := range chosen {
		if ok {
			slots = append(slots, s)
		}
	}
	return slots
}

// Showdown ranks both hands and decides the winner.
func (r *Round) Showdown() (Result, error) {
	if r.Phase != PhaseShowdown {
		return Result{}, fmt.Errorf("%w: showdown during %s", ErrPhase, r.Phase)
	}

	r.Player.Sort()
	r.Dealer.Sort()
	r.result.Player = r.Player.DetermineRank()
	r.result.Dealer = r.Dealer.DetermineRank()
	r.result.Winner = poker.DetermineWinner(r.Player, r.Dealer)
	r.result.PlayerHand = r.Player.String()
	r.result.DealerHand = r.Dealer.String()
	r.Phase = PhaseComplete

	r.logger.Info("Showdown",
		"player", r.result.PlayerHand,
		"player_rank", r.result.Player.Rank,
		"dealer", r.result.DealerHand,
		"dealer_rank", r.result.Dealer.Rank,
		"winner", r.result.Winner)
	return r.result, nil
}

// Result returns the showdown result once the round is complete.
func (r *Round) Result() (Result, bool) {
	return r.result, r.Phase == PhaseComplete
}

func (r *Round) redraw(hand *poker.Hand, slots []int) {
	for _, s := range slots {
		r.deck.DrawCard(hand, s)
	}
}
