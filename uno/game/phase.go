package game

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseDealing
	PhaseOpenCardSeed
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseDealing:
		return "dealing"
	case PhaseOpenCardSeed:
		return "open card seed"
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}
