// Package game runs five card draw against the dealer.
//
// A Round deals two hands from one deck, lets the player exchange up to
// MaxDiscards cards, has the dealer exchange a random 0-3 cards, and ranks
// both hands at the showdown:
//
//	r := game.NewRound(randutil.New(42))
//	_ = r.DiscardPlayer([]int{0, 3})
//	_, _ = r.DiscardDealer()
//	res, _ := r.Showdown()
//	fmt.Println(res.Winner)
//
// # Deterministic Testing
//
// Rounds take an explicit *rand.Rand. A Session owns one generator seeded
// once, either from a fixed seed or from its quartz.Clock, so tests can pass
// quartz.NewMock(t) and a known seed.
//
// # Debug Rounds
//
// WithHands bypasses the deck entirely. The Picker builds such hands by
// cycling each card's value and suit; nothing stops both hands from holding
// the same card.
package game
