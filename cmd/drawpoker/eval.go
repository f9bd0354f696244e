package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/drawpoker/poker"
)

// EvalCmd ranks one or two hands given on the command line
type EvalCmd struct {
	Hands []string `arg:"" help:"Hands of five card codes, e.g. \"AS AH AD AC 2S\""`
}

func (c *EvalCmd) Run(g *Globals) error {
	return evaluate(os.Stdout, c.Hands)
}

// evaluate prints each hand's classification and, for two hands, the winner
// with the first hand playing as the player.
func evaluate(w io.Writer, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("give one hand, or two to compare")
	}

	names := []string{"Player", "Dealer"}
	hands := make([]*poker.Hand, len(args))
	for i, arg := range args {
		h, err := poker.ParseHand(arg)
		if err != nil {
			return fmt.Errorf("%s hand %q: %w", strings.ToLower(names[i]), arg, err)
		}
		hands[i] = h

		c := h.DetermineRank()
		fmt.Fprintf(w, "%-6s  %s  %-15s  primary %-5s  secondary %s\n",
			names[i], h, c.Rank, c.Primary.Name(), c.Secondary.Name())
	}

	if len(hands) == 2 {
		fmt.Fprintf(w, "Winner: %s\n", poker.DetermineWinner(hands[0], hands[1]))
	}
	return nil
}
