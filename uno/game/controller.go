package game

import (
	"github.com/ratel-online/hotseat/uno/card/color"
)

// ColorPicker names the color of a wild card on behalf of the current player.
type ColorPicker interface {
	WildColor(state State) (color.Color, error)
}

type ColorPickerFunc func(state State) (color.Color, error)

func (f ColorPickerFunc) WildColor(state State) (color.Color, error) {
	return f(state)
}

// Controller is the input side of a session. Announcements go through the
// session's event bus instead.
type Controller interface {
	ColorPicker
	PlayerCount() (int, error)
	PlayerName(seat int) (string, error)
	// Action is asked again after every draw and every rejected play.
	Action(state State) (Action, error)
}
