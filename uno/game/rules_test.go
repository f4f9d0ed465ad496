package game_test

import (
	"testing"

	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/game"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	scenarios := []struct {
		description      string
		candidateCard    card.Card
		openCard         card.Card
		expectedMatch    bool
		expectedPlayable bool
	}{
		{
			description:      "wild_card_is_always_playable",
			candidateCard:    card.NewWildCard(),
			openCard:         card.NewNumberCard(color.Blue, 7),
			expectedPlayable: true,
		},
		{
			description:      "wild_draw_four_card_is_always_playable",
			candidateCard:    card.NewWildDrawFourCard(),
			openCard:         card.NewNumberCard(color.Blue, 7),
			expectedPlayable: true,
		},
		{
			description:      "number_cards_with_same_color",
			candidateCard:    card.NewNumberCard(color.Blue, 5),
			openCard:         card.NewNumberCard(color.Blue, 7),
			expectedMatch:    true,
			expectedPlayable: true,
		},
		{
			description:      "number_cards_with_same_number",
			candidateCard:    card.NewNumberCard(color.Red, 7),
			openCard:         card.NewNumberCard(color.Blue, 7),
			expectedMatch:    true,
			expectedPlayable: true,
		},
		{
			description:   "number_cards_with_different_color_and_number",
			candidateCard: card.NewNumberCard(color.Red, 5),
			openCard:      card.NewNumberCard(color.Blue, 7),
		},
		{
			description:      "reverse_cards",
			candidateCard:    card.NewReverseCard(color.Red),
			openCard:         card.NewReverseCard(color.Blue),
			expectedMatch:    true,
			expectedPlayable: true,
		},
		{
			description:      "skip_cards",
			candidateCard:    card.NewSkipCard(color.Red),
			openCard:         card.NewSkipCard(color.Blue),
			expectedMatch:    true,
			expectedPlayable: true,
		},
		{
			description:      "draw_two_cards",
			candidateCard:    card.NewDrawTwoCard(color.Red),
			openCard:         card.NewDrawTwoCard(color.Blue),
			expectedMatch:    true,
			expectedPlayable: true,
		},
		{
			description:      "action_cards_with_same_color",
			candidateCard:    card.NewReverseCard(color.Blue),
			openCard:         card.NewDrawTwoCard(color.Blue),
			expectedMatch:    true,
			expectedPlayable: true,
		},
		{
			description:   "action_cards_with_different_color",
			candidateCard: card.NewReverseCard(color.Red),
			openCard:      card.NewDrawTwoCard(color.Blue),
		},
		{
			description:   "skip_on_a_number_card_with_different_color",
			candidateCard: card.NewSkipCard(color.Green),
			openCard:      card.NewNumberCard(color.Red, 7),
		},
		{
			description:      "recolored_wild_card_then_card_with_same_color",
			candidateCard:    card.NewNumberCard(color.Blue, 7),
			openCard:         card.NewWildCard().Recolor(color.Blue),
			expectedMatch:    true,
			expectedPlayable: true,
		},
		{
			description:   "recolored_wild_card_then_card_with_different_color",
			candidateCard: card.NewNumberCard(color.Red, 7),
			openCard:      card.NewWildCard().Recolor(color.Blue),
		},
		{
			description:      "recolored_wild_card_then_wild_card",
			candidateCard:    card.NewWildCard(),
			openCard:         card.NewWildCard().Recolor(color.Blue),
			expectedPlayable: true,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedMatch, game.Matches(scenario.candidateCard, scenario.openCard))
			require.Equal(t, scenario.expectedPlayable, game.Playable(scenario.candidateCard, scenario.openCard))
		})
	}
}

func TestMatchesRejectsEveryUnrelatedPair(t *testing.T) {
	cards := game.NewStandardCards()
	for _, candidateCard := range cards {
		for _, openCard := range cards {
			if candidateCard.IsWild() || openCard.IsWild() {
				continue
			}
			if candidateCard.Color() == openCard.Color() || candidateCard.Face() == openCard.Face() {
				continue
			}
			require.False(t, game.Matches(candidateCard, openCard), "%s on %s", candidateCard, openCard)
		}
	}
}
