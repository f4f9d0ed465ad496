package event

// Bus carries the announcements of a single game session.
type Bus struct {
	FirstCardPlayed   *FirstCardPlayedEmitter
	TurnStarted       *TurnStartedEmitter
	CardPlayed        *CardPlayedEmitter
	CardsDrawn        *CardsDrawnEmitter
	ColorPicked       *ColorPickedEmitter
	TurnSkipped       *TurnSkippedEmitter
	TurnOrderReversed *TurnOrderReversedEmitter
	PlayerPassed      *PlayerPassedEmitter
	PlayRejected      *PlayRejectedEmitter
	WinnerFound       *WinnerFoundEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &FirstCardPlayedEmitter{},
		TurnStarted:       &TurnStartedEmitter{},
		CardPlayed:        &CardPlayedEmitter{},
		CardsDrawn:        &CardsDrawnEmitter{},
		ColorPicked:       &ColorPickedEmitter{},
		TurnSkipped:       &TurnSkippedEmitter{},
		TurnOrderReversed: &TurnOrderReversedEmitter{},
		PlayerPassed:      &PlayerPassedEmitter{},
		PlayRejected:      &PlayRejectedEmitter{},
		WinnerFound:       &WinnerFoundEmitter{},
	}
}

// Subscribe adds listener to every emitter whose listener interface it implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(TurnStartedListener); ok {
		b.TurnStarted.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		b.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(PlayRejectedListener); ok {
		b.PlayRejected.AddListener(l)
	}
	if l, ok := listener.(WinnerFoundListener); ok {
		b.WinnerFound.AddListener(l)
	}
}
