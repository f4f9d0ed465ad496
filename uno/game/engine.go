package game

import (
	"fmt"

	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/card/effect"
	"github.com/ratel-online/hotseat/uno/event"
)

// Play attempts to play the current player's card at index. Illegal or
// malformed attempts change nothing and come back as a rejected Result;
// the error is kept for conditions that end the session.
//
// Special cards resolve first, then plain wild cards, then the color-or-face
// match. Skip, reverse, draw two and draw four leave the pile as it was
// (draw four only recolors its top).
func (g *Game) Play(index int, picker ColorPicker) (Result, error) {
	if g.phase != PhaseInProgress {
		return RejectedIllegal, fmt.Errorf("play while %s: %w", g.phase, consts.ErrorsGameNotRunning)
	}
	player := g.players.Current()
	playedCard, ok := player.hand.Card(index)
	if !ok {
		return RejectedMalformed, nil
	}
	openCard := g.OpenCard()

	switch {
	case playedCard.IsSpecial():
		return g.playSpecial(player, index, playedCard, openCard, picker)
	case playedCard.IsWild():
		return g.playWild(player, index, playedCard, picker)
	case Matches(playedCard, openCard):
		if err := g.takeFromHand(player, index, playedCard); err != nil {
			return RejectedIllegal, err
		}
		g.pile.Add(playedCard)
		return g.finishPlay(player)
	default:
		return RejectedIllegal, nil
	}
}

func (g *Game) playSpecial(player *Player, index int, playedCard, openCard card.Card, picker ColorPicker) (Result, error) {
	cardEffect := playedCard.Effect()
	if cardEffect.Guarded() && !Matches(playedCard, openCard) {
		return RejectedIllegal, nil
	}

	var namedColor color.Color
	if cardEffect.PicksColor() {
		var err error
		if namedColor, err = g.pickColor(player, picker); err != nil {
			return RejectedIllegal, err
		}
	}
	var drawnCards []card.Card
	if amount := cardEffect.DrawAmount(); amount > 0 {
		var err error
		if drawnCards, err = g.deck.Draw(amount); err != nil {
			return RejectedIllegal, fmt.Errorf("%s by %s: %w", cardEffect, player.Name(), err)
		}
	}
	if err := g.takeFromHand(player, index, playedCard); err != nil {
		return RejectedIllegal, err
	}

	switch cardEffect {
	case effect.Skip:
		g.skip()
	case effect.Reverse:
		g.players.Reverse()
		g.bus.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
			PlayerSequence: g.players.Names(),
		})
		if g.players.Len() == 2 {
			g.skip()
		}
	case effect.DrawTwo, effect.DrawFour:
		victim := g.players.Next()
		victim.AddCards(drawnCards)
		g.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
			PlayerName: victim.Name(),
			Cards:      drawnCards,
		})
		if cardEffect.PicksColor() {
			g.pile.ReplaceTop(openCard.Recolor(namedColor))
			g.announceColor(player, namedColor)
		}
		g.skip()
	}
	return g.finishPlay(player)
}

func (g *Game) playWild(player *Player, index int, playedCard card.Card, picker ColorPicker) (Result, error) {
	namedColor, err := g.pickColor(player, picker)
	if err != nil {
		return RejectedIllegal, err
	}
	if err := g.takeFromHand(player, index, playedCard); err != nil {
		return RejectedIllegal, err
	}
	g.pile.Add(playedCard.Recolor(namedColor))
	g.announceColor(player, namedColor)
	return g.finishPlay(player)
}

// Draw moves one card from the deck to the current player's hand. The turn
// stays with that player, who may now also pass.
func (g *Game) Draw() (card.Card, error) {
	if g.phase != PhaseInProgress {
		return card.Card{}, fmt.Errorf("draw while %s: %w", g.phase, consts.ErrorsGameNotRunning)
	}
	player := g.players.Current()
	drawnCard, err := g.deck.DrawOne()
	if err != nil {
		return card.Card{}, fmt.Errorf("%s draws: %w", player.Name(), err)
	}
	player.AddCards([]card.Card{drawnCard})
	g.drew = true
	g.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name(),
		Cards:      []card.Card{drawnCard},
	})
	return drawnCard, nil
}

// Pass ends the turn of a player who has already drawn.
func (g *Game) Pass() error {
	if g.phase != PhaseInProgress {
		return fmt.Errorf("pass while %s: %w", g.phase, consts.ErrorsGameNotRunning)
	}
	if !g.drew {
		return consts.ErrorsHaveToDraw
	}
	player := g.players.Current()
	g.bus.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: player.Name(),
	})
	g.advance()
	return nil
}

func (g *Game) pickColor(player *Player, picker ColorPicker) (color.Color, error) {
	if picker == nil {
		return color.Wild, fmt.Errorf("no color picker for %s: %w", player.Name(), consts.ErrorsColorInvalid)
	}
	namedColor, err := picker.WildColor(g.ExtractState(player))
	if err != nil {
		return color.Wild, err
	}
	if !namedColor.Standard() {
		return color.Wild, fmt.Errorf("%s: %w", namedColor.Name(), consts.ErrorsColorInvalid)
	}
	return namedColor, nil
}

func (g *Game) takeFromHand(player *Player, index int, playedCard card.Card) error {
	if _, err := player.hand.RemoveAt(index); err != nil {
		return err
	}
	g.bus.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       playedCard,
	})
	return nil
}

func (g *Game) announceColor(player *Player, namedColor color.Color) {
	g.bus.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: player.Name(),
		Color:      namedColor,
	})
}

func (g *Game) finishPlay(player *Player) (Result, error) {
	if player.NoCards() {
		g.winner = player
		g.phase = PhaseFinished
		g.bus.WinnerFound.Emit(event.WinnerFoundPayload{
			PlayerName: player.Name(),
		})
		return Accepted, nil
	}
	g.advance()
	return Accepted, nil
}

func (g *Game) advance() {
	g.drew = false
	g.players.Advance()
}

func (g *Game) skip() {
	skipped := g.players.Advance()
	g.bus.TurnSkipped.Emit(event.TurnSkippedPayload{
		PlayerName: skipped.Name(),
	})
}
