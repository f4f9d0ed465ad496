package game

import "fmt"

type ActionKind int

const (
	ActionPlay ActionKind = iota
	ActionDraw
	ActionPass
)

// Action is what a player chose to do on their turn. Index is 0-based and
// only meaningful for ActionPlay.
type Action struct {
	Kind  ActionKind
	Index int
}

func PlayCard(index int) Action {
	return Action{Kind: ActionPlay, Index: index}
}

func DrawCard() Action {
	return Action{Kind: ActionDraw}
}

func PassTurn() Action {
	return Action{Kind: ActionPass}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionPlay:
		return fmt.Sprintf("play #%d", a.Index+1)
	case ActionDraw:
		return "draw"
	case ActionPass:
		return "pass"
	default:
		return "unknown"
	}
}
