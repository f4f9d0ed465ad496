package game

import (
	"fmt"

	"github.com/ratel-online/hotseat/uno/card"
)

type Player struct {
	name string
	hand *Hand
}

func NewPlayer(name string) *Player {
	return &Player{
		name: name,
		hand: NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) AddCards(cards []card.Card) {
	p.hand.AddCards(cards)
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) NoCards() bool {
	return p.hand.Empty()
}

func (p *Player) String() string {
	return fmt.Sprintf("%s: %s", p.name, p.hand.Cards())
}
