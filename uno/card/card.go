package card

import (
	"strconv"

	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/card/effect"
)

// Face is the printed value of a card, independent of its color.
type Face string

const (
	// Any is carried only by an open card whose color was named by a wild play.
	Any      Face = ""
	Skip     Face = "SKIP"
	Reverse  Face = "REVERSE"
	DrawTwo  Face = "DRAW_TWO"
	Wild     Face = "WILD"
	DrawFour Face = "DRAW_FOUR"
)

var effects = map[Face]effect.Effect{
	Skip:     effect.Skip,
	Reverse:  effect.Reverse,
	DrawTwo:  effect.DrawTwo,
	DrawFour: effect.DrawFour,
}

func NumberFace(number int) Face {
	return Face(strconv.Itoa(number))
}

func (f Face) Number() (int, bool) {
	if len(f) != 1 || f[0] < '0' || f[0] > '9' {
		return 0, false
	}
	return int(f[0] - '0'), true
}

// Card is a comparable value; two cards with the same color and face are interchangeable.
type Card struct {
	color color.Color
	face  Face
}

func New(color color.Color, face Face) Card {
	return Card{color: color, face: face}
}

func NewNumberCard(color color.Color, number int) Card {
	return New(color, NumberFace(number))
}

func NewSkipCard(color color.Color) Card {
	return New(color, Skip)
}

func NewReverseCard(color color.Color) Card {
	return New(color, Reverse)
}

func NewDrawTwoCard(color color.Color) Card {
	return New(color, DrawTwo)
}

func NewWildCard() Card {
	return New(color.Wild, Wild)
}

func NewWildDrawFourCard() Card {
	return New(color.Wild, DrawFour)
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Face() Face {
	return c.face
}

func (c Card) Effect() effect.Effect {
	return effects[c.face]
}

func (c Card) IsWild() bool {
	return c.color == color.Wild
}

func (c Card) IsSpecial() bool {
	return c.Effect() != effect.None
}

// Recolor returns the open card a wild play leaves behind: the named color and no face.
func (c Card) Recolor(named color.Color) Card {
	return Card{color: named, face: Any}
}

func (c Card) String() string {
	switch c.face {
	case Any, Wild:
		return c.color.Paint("(*)")
	case Skip:
		return c.color.Paint("(/)")
	case Reverse:
		return c.color.Paint("<=>")
	case DrawTwo:
		return c.color.Paint("+2!")
	case DrawFour:
		return c.color.Paint("+4!")
	default:
		return c.color.Paintf("[%s]", string(c.face))
	}
}
