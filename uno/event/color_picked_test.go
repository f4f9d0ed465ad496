package event_test

import (
	"testing"

	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/event"
	"github.com/stretchr/testify/require"
)

func TestColorPicked(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.ColorPicked.AddListener(listenerOne)
	bus.ColorPicked.AddListener(listenerTwo)

	payloads := []event.ColorPickedPayload{
		{
			PlayerName: "Someone",
			Color:      color.Red,
		},
		{
			PlayerName: "Somebody",
			Color:      color.Yellow,
		},
	}

	for _, payload := range payloads {
		bus.ColorPicked.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
