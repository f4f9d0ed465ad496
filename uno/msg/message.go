package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) TurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

// PlayerDrewOwnCards is shown to the player at the keyboard, who may see what was drawn.
func (m MessageWriter) PlayerDrewOwnCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) PlayRejected(playerName string, reason string) string {
	return Sprintfln("%s, %s", playerName, strings.TrimSpace(reason))
}

func (m MessageWriter) TurnOrderReversed(playerSequence []string) string {
	return Sprintfln("Turn order has been reversed: %s", strings.Join(playerSequence, " -> "))
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func (m MessageWriter) PlayerCountPrompt(minimum, maximum int) string {
	return Sprintfln("How many players? (%d-%d)", minimum, maximum)
}

func (m MessageWriter) PlayerNamePrompt(seat int) string {
	return Sprintfln("Name of player %d:", seat+1)
}

func (m MessageWriter) ActionPrompt(handSize int) string {
	return Sprintfln("Play a card (1-%d), draw (d) or pass (p):", handSize)
}

func (m MessageWriter) ColorPrompt() string {
	return Sprintfln(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}

func (m MessageWriter) InputOutOfRange(minimum, maximum int) string {
	return Sprintfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
}

func (m MessageWriter) InvalidNumber(input string) string {
	return Sprintfln("'%s' is not a number", input)
}

func (m MessageWriter) InvalidName(name string) string {
	return Sprintfln("Name '%s' is blank or already taken", name)
}

func (m MessageWriter) InvalidAction(input string) string {
	return Sprintfln("Unknown action '%s'", input)
}

func (m MessageWriter) UnknownColor(colorName string) string {
	return Sprintfln("Unknown color '%s'", colorName)
}

func (m MessageWriter) Goodbye() string {
	return Sprintfln("Thank you for playing!")
}

// Sprintfln formats one announcement line, newline included.
func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}

func Sprintlns(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
