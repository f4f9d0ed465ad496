package event_test

import (
	"testing"

	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/event"
	"github.com/stretchr/testify/require"
)

type winnerOnlyListener struct {
	winners []string
}

func (l *winnerOnlyListener) OnWinnerFound(payload event.WinnerFoundPayload) {
	l.winners = append(l.winners, payload.PlayerName)
}

func TestSubscribe(t *testing.T) {
	t.Run("registers_a_full_listener_on_every_emitter", func(t *testing.T) {
		bus := event.NewBus()
		listener := event.NewDummyListener()
		bus.Subscribe(listener)

		payloads := []interface{}{
			event.FirstCardPlayedPayload{Card: card.NewNumberCard(color.Red, 3)},
			event.TurnStartedPayload{PlayerName: "Ann"},
			event.CardPlayedPayload{PlayerName: "Ann", Card: card.NewSkipCard(color.Red)},
			event.CardsDrawnPayload{PlayerName: "Bob", Cards: []card.Card{card.NewWildCard()}},
			event.ColorPickedPayload{PlayerName: "Ann", Color: color.Blue},
			event.TurnSkippedPayload{PlayerName: "Bob"},
			event.TurnOrderReversedPayload{PlayerSequence: []string{"Bob", "Ann"}},
			event.PlayerPassedPayload{PlayerName: "Bob"},
			event.PlayRejectedPayload{PlayerName: "Bob", Reason: "illegal play"},
			event.WinnerFoundPayload{PlayerName: "Ann"},
		}

		bus.FirstCardPlayed.Emit(payloads[0].(event.FirstCardPlayedPayload))
		bus.TurnStarted.Emit(payloads[1].(event.TurnStartedPayload))
		bus.CardPlayed.Emit(payloads[2].(event.CardPlayedPayload))
		bus.CardsDrawn.Emit(payloads[3].(event.CardsDrawnPayload))
		bus.ColorPicked.Emit(payloads[4].(event.ColorPickedPayload))
		bus.TurnSkipped.Emit(payloads[5].(event.TurnSkippedPayload))
		bus.TurnOrderReversed.Emit(payloads[6].(event.TurnOrderReversedPayload))
		bus.PlayerPassed.Emit(payloads[7].(event.PlayerPassedPayload))
		bus.PlayRejected.Emit(payloads[8].(event.PlayRejectedPayload))
		bus.WinnerFound.Emit(payloads[9].(event.WinnerFoundPayload))

		require.Equal(t, payloads, listener.ReceivedPayloads())
	})

	t.Run("skips_emitters_the_listener_does_not_handle", func(t *testing.T) {
		bus := event.NewBus()
		listener := &winnerOnlyListener{}
		bus.Subscribe(listener)

		bus.TurnStarted.Emit(event.TurnStartedPayload{PlayerName: "Ann"})
		bus.WinnerFound.Emit(event.WinnerFoundPayload{PlayerName: "Ann"})

		require.Equal(t, []string{"Ann"}, listener.winners)
	})

	t.Run("keeps_sessions_apart", func(t *testing.T) {
		first, second := event.NewBus(), event.NewBus()
		listener := event.NewDummyListener()
		first.Subscribe(listener)

		second.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "Ann"})

		require.Empty(t, listener.ReceivedPayloads())
	})
}
