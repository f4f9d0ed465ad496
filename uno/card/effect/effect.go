package effect

// Effect is the turn-altering consequence of a special card.
type Effect int

const (
	None Effect = iota
	Skip
	Reverse
	DrawTwo
	DrawFour
)

// Guarded effects only resolve when the card also matches the open card's color or face.
func (e Effect) Guarded() bool {
	return e == Skip || e == Reverse || e == DrawTwo
}

func (e Effect) DrawAmount() int {
	switch e {
	case DrawTwo:
		return 2
	case DrawFour:
		return 4
	default:
		return 0
	}
}

func (e Effect) PicksColor() bool {
	return e == DrawFour
}

func (e Effect) String() string {
	switch e {
	case None:
		return "none"
	case Skip:
		return "skip"
	case Reverse:
		return "reverse"
	case DrawTwo:
		return "draw two"
	case DrawFour:
		return "draw four"
	default:
		return "unknown"
	}
}
