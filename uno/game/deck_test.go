package game_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/game"
	"github.com/stretchr/testify/require"
)

func TestNewStandardCards(t *testing.T) {
	cards := game.NewStandardCards()
	require.Len(t, cards, consts.DeckSize)

	counts := make(map[card.Card]int)
	for _, c := range cards {
		counts[c]++
	}

	expected := map[card.Card]int{
		card.NewWildCard():         4,
		card.NewWildDrawFourCard(): 4,
	}
	for _, cardColor := range color.Standard {
		expected[card.NewNumberCard(cardColor, 0)] = 1
		for number := 1; number <= 9; number++ {
			expected[card.NewNumberCard(cardColor, number)] = 2
		}
		expected[card.NewSkipCard(cardColor)] = 2
		expected[card.NewReverseCard(cardColor)] = 2
		expected[card.NewDrawTwoCard(cardColor)] = 2
	}
	require.Equal(t, expected, counts)
}

func TestShuffle(t *testing.T) {
	deck := game.NewDeck(rand.New(rand.NewSource(42)))
	deck.Shuffle()

	require.Equal(t, consts.DeckSize, deck.Size())
	require.ElementsMatch(t, game.NewStandardCards(), deck.Cards())
}

func TestDeckDraw(t *testing.T) {
	t.Run("draws_from_the_top", func(t *testing.T) {
		deck := game.NewDeckOf([]card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Red, 2),
			card.NewNumberCard(color.Red, 3),
		}, nil)

		cards, err := deck.Draw(2)
		require.NoError(t, err)
		require.Equal(t, []card.Card{
			card.NewNumberCard(color.Red, 3),
			card.NewNumberCard(color.Red, 2),
		}, cards)
		require.Equal(t, 1, deck.Size())
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := game.NewDeck(nil)
		cards, err := deck.Draw(0)
		require.NoError(t, err)
		require.Empty(t, cards)
		require.Equal(t, consts.DeckSize, deck.Size())
	})

	t.Run("fails_without_touching_an_exhausted_deck", func(t *testing.T) {
		deck := game.NewDeckOf([]card.Card{card.NewWildCard()}, nil)

		_, err := deck.Draw(2)
		require.True(t, errors.Is(err, consts.ErrorsDeckExhausted))
		require.True(t, consts.IsFatal(err))
		require.Equal(t, 1, deck.Size())

		_, err = deck.DrawOne()
		require.NoError(t, err)
		_, err = deck.DrawOne()
		require.True(t, errors.Is(err, consts.ErrorsDeckExhausted))
	})

	t.Run("does_not_refill", func(t *testing.T) {
		deck := game.NewDeck(nil)
		cards, err := deck.Draw(consts.DeckSize)
		require.NoError(t, err)
		require.ElementsMatch(t, game.NewStandardCards(), cards)

		_, err = deck.DrawOne()
		require.Error(t, err)
	})
}

func TestInsertBottom(t *testing.T) {
	deck := game.NewDeckOf([]card.Card{card.NewNumberCard(color.Blue, 1)}, nil)
	deck.InsertBottom(card.NewWildCard())

	require.Equal(t, []card.Card{
		card.NewWildCard(),
		card.NewNumberCard(color.Blue, 1),
	}, deck.Cards())

	drawn, err := deck.DrawOne()
	require.NoError(t, err)
	require.Equal(t, card.NewNumberCard(color.Blue, 1), drawn)
}
