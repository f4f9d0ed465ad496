package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/render"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/event"
	"github.com/ratel-online/hotseat/uno/game"
	"github.com/ratel-online/hotseat/uno/msg"
)

// Console plays every seat from one terminal. It answers the session's
// questions by prompting and prints the session's announcements.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	delay   time.Duration
	names   map[string]bool
	current string
}

type Option func(*Console)

// WithDelay pauses after every line so that announcements can be followed.
func WithDelay(delay time.Duration) Option {
	return func(c *Console) {
		c.delay = delay
	}
}

func NewConsole(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:    bufio.NewScanner(in),
		out:   out,
		names: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) Print(text string) {
	_, _ = io.WriteString(c.out, text)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}

func (c *Console) Welcome() error {
	banner, err := render.Welcome()
	if err != nil {
		return err
	}
	c.Print(banner)
	return nil
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", consts.ErrorsExit
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) promptIntegerInRange(minimum, maximum int, message string) (int, error) {
	for {
		c.Print(message)
		input, err := c.readLine()
		if err != nil {
			return 0, err
		}
		number, err := strconv.Atoi(input)
		if err != nil {
			c.Print(msg.Message.InvalidNumber(input))
			continue
		}
		if number < minimum || number > maximum {
			c.Print(msg.Message.InputOutOfRange(minimum, maximum))
			continue
		}
		return number, nil
	}
}

func (c *Console) PlayerCount() (int, error) {
	return c.promptIntegerInRange(consts.MinPlayers, consts.MaxPlayers, msg.Message.PlayerCountPrompt(consts.MinPlayers, consts.MaxPlayers))
}

// PlayerName keeps asking until the name is neither blank nor taken by an earlier seat.
func (c *Console) PlayerName(seat int) (string, error) {
	for {
		c.Print(msg.Message.PlayerNamePrompt(seat))
		name, err := c.readLine()
		if err != nil {
			return "", err
		}
		if name == "" || c.names[name] {
			c.Print(msg.Message.InvalidName(name))
			continue
		}
		c.names[name] = true
		return name, nil
	}
}

func (c *Console) Action(state game.State) (game.Action, error) {
	turn, err := render.Turn(state)
	if err != nil {
		return game.Action{}, err
	}
	c.Print(turn)
	for {
		c.Print(msg.Message.ActionPrompt(len(state.CurrentPlayerHand)))
		input, err := c.readLine()
		if err != nil {
			return game.Action{}, err
		}
		action, err := ParseAction(input, len(state.CurrentPlayerHand))
		if err != nil {
			c.Print(msg.Message.InvalidAction(input))
			continue
		}
		return action, nil
	}
}

func (c *Console) WildColor(game.State) (color.Color, error) {
	for {
		c.Print(msg.Message.ColorPrompt())
		input, err := c.readLine()
		if err != nil {
			return color.Wild, err
		}
		chosenColor, err := color.ByName(input)
		if err != nil {
			c.Print(msg.Message.UnknownColor(input))
			continue
		}
		return chosenColor, nil
	}
}

// ParseAction reads "draw"/"d", "pass"/"p" or a card number counted from 1.
func ParseAction(input string, handSize int) (game.Action, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "d", "draw":
		return game.DrawCard(), nil
	case "p", "pass":
		return game.PassTurn(), nil
	}
	number, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return game.Action{}, fmt.Errorf("action %q: %w", input, consts.ErrorsInputInvalid)
	}
	if number < 1 || number > handSize {
		return game.Action{}, fmt.Errorf("card %d of %d: %w", number, handSize, consts.ErrorsInputInvalid)
	}
	return game.PlayCard(number - 1), nil
}

func (c *Console) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	c.Print(msg.Message.FirstCardPlayed(payload.Card))
}

func (c *Console) OnTurnStarted(payload event.TurnStartedPayload) {
	c.current = payload.PlayerName
	c.Print(msg.Message.TurnStarted(payload.PlayerName))
}

func (c *Console) OnCardPlayed(payload event.CardPlayedPayload) {
	c.Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (c *Console) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.PlayerName == c.current {
		c.Print(msg.Message.PlayerDrewOwnCards(payload.Cards))
		return
	}
	c.Print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (c *Console) OnColorPicked(payload event.ColorPickedPayload) {
	c.Print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (c *Console) OnTurnSkipped(payload event.TurnSkippedPayload) {
	c.Print(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (c *Console) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	c.Print(msg.Message.TurnOrderReversed(payload.PlayerSequence))
}

func (c *Console) OnPlayerPassed(payload event.PlayerPassedPayload) {
	c.Print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (c *Console) OnPlayRejected(payload event.PlayRejectedPayload) {
	c.Print(msg.Message.PlayRejected(payload.PlayerName, payload.Reason))
}

func (c *Console) OnWinnerFound(payload event.WinnerFoundPayload) {
	c.Print(msg.Message.WinnerFound(payload.PlayerName))
	c.Print(render.Winner(payload.PlayerName))
}
