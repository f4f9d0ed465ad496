package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/hotseat/uno/card"
)

// State is what the current player gets to see before choosing an action.
type State struct {
	OpenCard          card.Card
	PlayedCards       []card.Card
	CurrentPlayer     string
	CurrentPlayerHand []card.Card
	PlayableIndexes   []int
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	DeckSize          int
	CanPass           bool
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Open card: %s", s.OpenCard))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
