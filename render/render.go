package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/ratel-online/hotseat/uno/game"
)

// Welcome returns the title banner.
func Welcome() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("U", pterm.FgLightRed.ToStyle()),
		putils.LettersFromStringWithStyle("N", pterm.FgLightYellow.ToStyle()),
		putils.LettersFromStringWithStyle("O", pterm.FgLightCyan.ToStyle()),
	).Srender()
}

// Turn lays out what the current player sees before acting: the open card,
// the seating with hand sizes, and the numbered hand with playable cards marked.
func Turn(state game.State) (string, error) {
	buf := strings.Builder{}
	buf.WriteString(fmt.Sprintf("Open card: %s    Deck: %d\n\n", state.OpenCard, state.DeckSize))

	seating, err := Seating(state)
	if err != nil {
		return "", err
	}
	buf.WriteString(seating)
	buf.WriteString("\n")
	buf.WriteString(Hand(state))

	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow("|" + state.CurrentPlayer + "|")).WithTitleTopCenter().Sprint(buf.String()), nil
}

func Seating(state game.State) (string, error) {
	data := pterm.TableData{{"#", "Player", "Cards"}}
	for index, playerName := range state.PlayerSequence {
		name := playerName
		if playerName == state.CurrentPlayer {
			name = pterm.LightCyan(playerName)
		}
		data = append(data, []string{
			strconv.Itoa(index + 1),
			name,
			strconv.Itoa(state.PlayerHandCounts[playerName]),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// Hand numbers the cards from 1; playable ones carry a star.
func Hand(state game.State) string {
	playable := make(map[int]bool, len(state.PlayableIndexes))
	for _, index := range state.PlayableIndexes {
		playable[index] = true
	}
	buf := strings.Builder{}
	for index, handCard := range state.CurrentPlayerHand {
		marker := " "
		if playable[index] {
			marker = "*"
		}
		buf.WriteString(fmt.Sprintf("%s%2d. %s\n", marker, index+1, handCard))
	}
	if state.CanPass {
		buf.WriteString("You may pass (p).\n")
	}
	return buf.String()
}

func Winner(playerName string) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightGreen("|WINNER|")).WithTitleTopCenter().Sprint(
		pterm.Sprintf("%s wins the game!", pterm.LightCyan(playerName)),
	)
}
