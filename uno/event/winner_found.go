package event

type WinnerFoundPayload struct {
	PlayerName string
}

type WinnerFoundListener interface {
	OnWinnerFound(WinnerFoundPayload)
}

type WinnerFoundEmitter struct {
	listeners []WinnerFoundListener
}

func (e *WinnerFoundEmitter) AddListener(listener WinnerFoundListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *WinnerFoundEmitter) Emit(payload WinnerFoundPayload) {
	for _, listener := range e.listeners {
		listener.OnWinnerFound(payload)
	}
}
