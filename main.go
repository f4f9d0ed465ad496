package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/hotseat/config"
	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/event"
	"github.com/ratel-online/hotseat/uno/game"
	"github.com/ratel-online/hotseat/uno/msg"
	"github.com/ratel-online/hotseat/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(); err != nil && !errors.Is(err, consts.ErrorsExit) {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.SetEnabled(false)
		pterm.DisableStyling()
	}

	console := ui.NewConsole(os.Stdin, color.Stdout, ui.WithDelay(cfg.DisplayDelay))
	bus := event.NewBus()
	bus.Subscribe(console)
	if err := console.Welcome(); err != nil {
		return err
	}

	g, err := game.Setup(console, game.WithRand(cfg.Rand()), game.WithBus(bus))
	if err != nil {
		return err
	}
	log.Infof("session %s created with players %v\n", g.ID(), g.ExtractState(g.Current()).PlayerSequence)
	bus.Subscribe(sessionLog{id: g.ID()})

	winner, err := g.Run(console)
	if err != nil {
		log.Infof("session %s stopped: %v\n", g.ID(), err)
		return err
	}
	log.Infof("session %s won by %s\n", g.ID(), winner.Name())
	console.Print(msg.Message.Goodbye())
	return nil
}

// sessionLog records the session lifecycle next to the console output.
type sessionLog struct {
	id string
}

func (l sessionLog) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	log.Infof("session %s dealt, first card %s\n", l.id, payload.Card)
}
