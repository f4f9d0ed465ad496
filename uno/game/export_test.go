package game

import "github.com/ratel-online/hotseat/uno/card"

// Rig seats names with fixed hands over openCard and skips dealing.
// deck is stacked so that its last card is drawn first.
func Rig(names []string, hands [][]card.Card, openCard card.Card, deck []card.Card, opts ...Option) *Game {
	opts = append(opts, WithDeck(NewDeckOf(deck, nil)))
	g, err := New(names, opts...)
	if err != nil {
		panic(err)
	}
	for index, player := range g.players.players {
		if index < len(hands) {
			player.AddCards(hands[index])
		}
	}
	g.pile.Add(openCard)
	g.phase = PhaseInProgress
	return g
}
