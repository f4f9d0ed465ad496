package game

import (
	"fmt"

	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/uno/card"
)

// Hand keeps cards in display order.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.HandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Card(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	return h.cards[index], true
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PlayableIndexes lists the positions of cards that may be offered against the open card.
func (h *Hand) PlayableIndexes(openCard card.Card) []int {
	var indexes []int
	for index, candidateCard := range h.cards {
		if Playable(candidateCard, openCard) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}

// RemoveAt takes the card at index out of the hand, keeping the order of the rest.
func (h *Hand) RemoveAt(index int) (card.Card, error) {
	removed, ok := h.Card(index)
	if !ok {
		return card.Card{}, fmt.Errorf("remove card %d of %d: %w", index, len(h.cards), consts.ErrorsCardNotInHand)
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}
