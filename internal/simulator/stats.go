package simulator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

const numRanks = int(poker.RoyalFlush) + 1

// Stats tallies simulated rounds.
type Stats struct {
	Rounds     int
	PlayerWins int
	DealerWins int
	Ties       int

	PlayerRanks [numRanks]int
	DealerRanks [numRanks]int

	// Wins by the winning hand's rank
	WinningRanks [numRanks]int
}

// Add records one round.
func (s *Stats) Add(res game.Result) {
	s.Rounds++
	s.PlayerRanks[res.Player.Rank]++
	s.DealerRanks[res.Dealer.Rank]++

	switch res.Winner {
	case poker.PlayerWins:
		s.PlayerWins++
		s.WinningRanks[res.Player.Rank]++
	case poker.DealerWins:
		s.DealerWins++
		s.WinningRanks[res.Dealer.Rank]++
	case poker.Tie:
		s.Ties++
	}
}

// Merge adds other into s.
func (s *Stats) Merge(other *Stats) {
	s.Rounds += other.Rounds
	s.PlayerWins += other.PlayerWins
	s.DealerWins += other.DealerWins
	s.Ties += other.Ties
	for r := range numRanks {
		s.PlayerRanks[r] += other.PlayerRanks[r]
		s.DealerRanks[r] += other.DealerRanks[r]
		s.WinningRanks[r] += other.WinningRanks[r]
	}
}

// Validate checks the tallies agree with each other.
func (s *Stats) Validate() error {
	if s.PlayerWins+s.DealerWins+s.Ties != s.Rounds {
		return fmt.Errorf("outcomes %d+%d+%d do not sum to %d rounds",
			s.PlayerWins, s.DealerWins, s.Ties, s.Rounds)
	}
	var player, dealer, winning int
	for r := range numRanks {
		player += s.PlayerRanks[r]
		dealer += s.DealerRanks[r]
		winning += s.WinningRanks[r]
	}
	if player != s.Rounds || dealer != s.Rounds {
		return fmt.Errorf("rank counts %d/%d do not match %d rounds", player, dealer, s.Rounds)
	}
	if winning != s.Rounds-s.Ties {
		return fmt.Errorf("winning rank count %d does not match %d decided rounds", winning, s.Rounds-s.Ties)
	}
	return nil
}

func (s *Stats) rate(n int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(n) / float64(s.Rounds)
}

// PlayerWinRate returns the fraction of rounds the player won.
func (s *Stats) PlayerWinRate() float64 { return s.rate(s.PlayerWins) }

// DealerWinRate returns the fraction of rounds the dealer won.
func (s *Stats) DealerWinRate() float64 { return s.rate(s.DealerWins) }

// TieRate returns the fraction of rounds that tied.
func (s *Stats) TieRate() float64 { return s.rate(s.Ties) }

// RankFrequency returns how often hands of rank r occurred, across both sides.
func (s *Stats) RankFrequency(r poker.Rank) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.PlayerRanks[r]+s.DealerRanks[r]) / float64(2*s.Rounds)
}

// Report renders the rank table and outcome summary.
func (s *Stats) Report() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Player", "Dealer", "Frequency", "Wins")

	for r := poker.RoyalFlush; ; r-- {
		t.Row(
			r.String(),
			fmt.Sprintf("%d", s.PlayerRanks[r]),
			fmt.Sprintf("%d", s.DealerRanks[r]),
			fmt.Sprintf("%.4f%%", 100*s.RankFrequency(r)),
			fmt.Sprintf("%d", s.WinningRanks[r]),
		)
		if r == poker.HighCard {
			break
		}
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Rounds: %d\n", s.Rounds)
	fmt.Fprintf(&b, "Player wins: %d (%.2f%%)\n", s.PlayerWins, 100*s.PlayerWinRate())
	fmt.Fprintf(&b, "Dealer wins: %d (%.2f%%)\n", s.DealerWins, 100*s.DealerWinRate())
	fmt.Fprintf(&b, "Ties: %d (%.2f%%)\n", s.Ties, 100*s.TieRate())
	return b.String()
}
