package event

type PlayRejectedPayload struct {
	PlayerName string
	Reason     string
}

type PlayRejectedListener interface {
	OnPlayRejected(PlayRejectedPayload)
}

type PlayRejectedEmitter struct {
	listeners []PlayRejectedListener
}

func (e *PlayRejectedEmitter) AddListener(listener PlayRejectedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *PlayRejectedEmitter) Emit(payload PlayRejectedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayRejected(payload)
	}
}
