package game

// Result is the outcome of an attempted play.
type Result int

const (
	Accepted Result = iota
	RejectedIllegal
	RejectedMalformed
)

func (r Result) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectedIllegal:
		return "that card cannot be played on the open card"
	case RejectedMalformed:
		return "there is no such card in your hand"
	default:
		return "unknown result"
	}
}
