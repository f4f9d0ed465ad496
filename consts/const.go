package consts

import "errors"

const (
	MinPlayers = 2
	// MaxPlayers keeps a full deal plus the open card inside one deck.
	MaxPlayers = 15

	HandSize = 7
	DeckSize = 108
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// IsFatal reports whether err ends the session.
func IsFatal(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Exit
	}
	return err != nil
}

var (
	ErrorsExit            = NewErr(1, true, "Exit. ")
	ErrorsInputInvalid    = NewErr(2, false, "Input invalid. ")
	ErrorsPlayersInvalid  = NewErr(3, true, "Game players invalid. ")
	ErrorsDeckExhausted   = NewErr(4, true, "Deck exhausted. ")
	ErrorsCardNotInHand   = NewErr(5, true, "Card is not in hand. ")
	ErrorsHaveToDraw      = NewErr(6, false, "Draw a card before passing. ")
	ErrorsColorInvalid    = NewErr(7, false, "Color invalid. ")
	ErrorsGameNotRunning  = NewErr(8, true, "Game is not running. ")
	ErrorsOpenCardMissing = NewErr(9, true, "No card can open the pile. ")
	ErrorsConfigInvalid   = NewErr(10, true, "Config invalid. ")
)
