package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
)

// Deck is a stack of cards: draws take from the top (the end of the slice),
// rejected opening cards go under the bottom. It is never refilled.
type Deck struct {
	cards []card.Card
	rand  *rand.Rand
}

// NewDeck returns an unshuffled standard deck.
func NewDeck(r *rand.Rand) *Deck {
	return NewDeckOf(NewStandardCards(), r)
}

// NewDeckOf stacks cards so that the last one is drawn first.
func NewDeckOf(cards []card.Card, r *rand.Rand) *Deck {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	stacked := make([]card.Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked, rand: r}
}

func (d *Deck) Shuffle() {
	d.rand.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) DrawOne() (card.Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return card.Card{}, err
	}
	return cards[0], nil
}

// Draw pops amount cards from the top. The deck is left untouched when it holds fewer.
func (d *Deck) Draw(amount int) ([]card.Card, error) {
	if amount > len(d.cards) {
		return nil, fmt.Errorf("draw %d of %d: %w", amount, len(d.cards), consts.ErrorsDeckExhausted)
	}
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		top := len(d.cards) - 1
		cards = append(cards, d.cards[top])
		d.cards = d.cards[:top]
	}
	return cards, nil
}

func (d *Deck) InsertBottom(c card.Card) {
	d.cards = append([]card.Card{c}, d.cards...)
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// Cards returns a copy, bottom first.
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// NewStandardCards enumerates the 108 card composition in a fixed order.
func NewStandardCards() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, cardColor := range color.Standard {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createWildCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{zeroCard}
	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}
	return append(cards,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	)
}

func createWildCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
