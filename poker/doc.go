// Package poker implements the card model and hand evaluation for five card
// draw played against a dealer.
//
// A round uses one Deck, seeded from an explicit random source so that games
// can be replayed:
//
//	deck := poker.NewDeck(randutil.New(42))
//	player := deck.DealHand()
//	dealer := deck.DealHand()
//	deck.DrawCard(player, 2) // discard and redraw the third card
//
//	switch poker.DetermineWinner(player, dealer) {
//	case poker.PlayerWins:
//	    fmt.Println("You win with", player.Rank())
//	}
//
// Hands are classified by Classify, which walks the categories from Royal
// Flush down to High Card and stops at the first match. Aces play high only;
// A-2-3-4-5 is not a straight.
package poker
