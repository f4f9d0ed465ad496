package game

import (
	"github.com/ratel-online/hotseat/uno/card"
)

// Matches is the color-or-face rule every non-wild play must pass.
func Matches(candidateCard card.Card, openCard card.Card) bool {
	return candidateCard.Color() == openCard.Color() || candidateCard.Face() == openCard.Face()
}

// Playable reports whether candidateCard can be offered against openCard.
// Wild cards always can.
func Playable(candidateCard card.Card, openCard card.Card) bool {
	return candidateCard.IsWild() || Matches(candidateCard, openCard)
}
