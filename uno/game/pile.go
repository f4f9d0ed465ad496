package game

import (
	"github.com/ratel-online/hotseat/uno/card"
)

// Pile is the discard pile; its top is the open card.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(card card.Card) {
	if len(p.cards) == 0 {
		p.cards = append(p.cards, card)
		return
	}
	p.cards[len(p.cards)-1] = card
}

// Top returns the open card, or false while the pile is empty.
func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

func (p *Pile) Size() int {
	return len(p.cards)
}
