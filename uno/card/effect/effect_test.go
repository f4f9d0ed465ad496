package effect_test

import (
	"testing"

	"github.com/ratel-online/hotseat/uno/card/effect"
	"github.com/stretchr/testify/require"
)

func TestEffects(t *testing.T) {
	scenarios := []struct {
		description        string
		effect             effect.Effect
		expectedGuarded    bool
		expectedDrawAmount int
		expectedPicksColor bool
	}{
		{description: "none", effect: effect.None},
		{description: "skip", effect: effect.Skip, expectedGuarded: true},
		{description: "reverse", effect: effect.Reverse, expectedGuarded: true},
		{description: "draw_two", effect: effect.DrawTwo, expectedGuarded: true, expectedDrawAmount: 2},
		{description: "draw_four", effect: effect.DrawFour, expectedDrawAmount: 4, expectedPicksColor: true},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedGuarded, scenario.effect.Guarded())
			require.Equal(t, scenario.expectedDrawAmount, scenario.effect.DrawAmount())
			require.Equal(t, scenario.expectedPicksColor, scenario.effect.PicksColor())
		})
	}
}
