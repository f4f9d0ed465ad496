package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/event"
)

type Game struct {
	id      string
	phase   Phase
	players *Cycler
	deck    *Deck
	pile    *Pile
	bus     *event.Bus
	rand    *rand.Rand
	winner  *Player
	shuffle bool
	// drew is set once the current player has drawn this turn, which unlocks passing.
	drew bool
}

type Option func(*Game)

// WithRand seeds the shuffle of the standard deck.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rand = r
	}
}

// WithDeck replaces the standard deck. The deck is dealt as stacked, without shuffling.
func WithDeck(deck *Deck) Option {
	return func(g *Game) {
		g.deck = deck
	}
}

func WithBus(bus *event.Bus) Option {
	return func(g *Game) {
		g.bus = bus
	}
}

func WithID(id string) Option {
	return func(g *Game) {
		g.id = id
	}
}

// New seats the named players in the given order.
func New(names []string, opts ...Option) (*Game, error) {
	if len(names) < consts.MinPlayers || len(names) > consts.MaxPlayers {
		return nil, fmt.Errorf("%d players: %w", len(names), consts.ErrorsPlayersInvalid)
	}
	players := make([]*Player, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return nil, fmt.Errorf("player name %q: %w", name, consts.ErrorsPlayersInvalid)
		}
		seen[name] = true
		players = append(players, NewPlayer(name))
	}

	g := &Game{
		id:      uuid.NewString(),
		phase:   PhaseSetup,
		players: NewCycler(players),
		pile:    NewPile(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.bus == nil {
		g.bus = event.NewBus()
	}
	if g.deck == nil {
		g.deck = NewDeck(g.rand)
		g.shuffle = true
	}
	return g, nil
}

// Setup asks ctrl for the seating and builds the session from the answers.
func Setup(ctrl Controller, opts ...Option) (*Game, error) {
	count, err := ctrl.PlayerCount()
	if err != nil {
		return nil, err
	}
	if count < consts.MinPlayers || count > consts.MaxPlayers {
		return nil, fmt.Errorf("%d players: %w", count, consts.ErrorsPlayersInvalid)
	}
	names := make([]string, 0, count)
	for seat := 0; seat < count; seat++ {
		name, err := ctrl.PlayerName(seat)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return New(names, opts...)
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Players() []*Player {
	return g.players.Players()
}

func (g *Game) Current() *Player {
	return g.players.Current()
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) Bus() *event.Bus {
	return g.bus
}

func (g *Game) OpenCard() card.Card {
	openCard, _ := g.pile.Top()
	return openCard
}

// Winner is nil until the session is finished.
func (g *Game) Winner() *Player {
	return g.winner
}

// Start deals the hands and seeds the open card.
func (g *Game) Start() error {
	if err := g.DealStartingCards(); err != nil {
		return err
	}
	return g.PlayFirstCard()
}

func (g *Game) DealStartingCards() error {
	if g.phase != PhaseSetup {
		return fmt.Errorf("deal while %s: %w", g.phase, consts.ErrorsGameNotRunning)
	}
	g.phase = PhaseDealing
	if g.shuffle {
		g.deck.Shuffle()
	}
	var err error
	g.players.ForEach(func(player *Player) {
		if err != nil {
			return
		}
		var hand []card.Card
		if hand, err = g.deck.Draw(consts.HandSize); err == nil {
			player.AddCards(hand)
		}
	})
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	g.phase = PhaseOpenCardSeed
	return nil
}

// PlayFirstCard turns up cards until a plain colored one shows. Wild and
// special cards go back under the deck.
func (g *Game) PlayFirstCard() error {
	if g.phase != PhaseOpenCardSeed {
		return fmt.Errorf("seed open card while %s: %w", g.phase, consts.ErrorsGameNotRunning)
	}
	for attempts := g.deck.Size(); attempts > 0; attempts-- {
		firstCard, err := g.deck.DrawOne()
		if err != nil {
			return err
		}
		if firstCard.IsWild() || firstCard.IsSpecial() {
			g.deck.InsertBottom(firstCard)
			continue
		}
		g.pile.Add(firstCard)
		g.phase = PhaseInProgress
		g.bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
			Card: firstCard,
		})
		return nil
	}
	return consts.ErrorsOpenCardMissing
}

// Step runs one request of the turn loop: show the state, take an action,
// resolve it. Rejections are announced and leave the turn where it is.
func (g *Game) Step(ctrl Controller) error {
	if g.phase != PhaseInProgress {
		return fmt.Errorf("step while %s: %w", g.phase, consts.ErrorsGameNotRunning)
	}
	player := g.players.Current()
	g.bus.TurnStarted.Emit(event.TurnStartedPayload{
		PlayerName: player.Name(),
	})
	action, err := ctrl.Action(g.ExtractState(player))
	if err != nil {
		return err
	}

	switch action.Kind {
	case ActionDraw:
		_, err = g.Draw()
	case ActionPass:
		err = g.Pass()
	case ActionPlay:
		var result Result
		result, err = g.Play(action.Index, ctrl)
		if err == nil && result != Accepted {
			g.reject(player, result.String())
		}
	default:
		g.reject(player, consts.ErrorsInputInvalid.Error())
	}

	if err != nil && !consts.IsFatal(err) {
		g.reject(player, err.Error())
		return nil
	}
	return err
}

// Run plays the session to the end and returns the winner.
func (g *Game) Run(ctrl Controller) (*Player, error) {
	if g.phase == PhaseSetup {
		if err := g.Start(); err != nil {
			return nil, err
		}
	}
	for g.phase != PhaseFinished {
		if err := g.Step(ctrl); err != nil {
			return nil, err
		}
	}
	return g.winner, nil
}

func (g *Game) ExtractState(player *Player) State {
	openCard := g.OpenCard()
	playerSequence := make([]string, 0, g.players.Len())
	playerHandCounts := make(map[string]int, g.players.Len())

	g.players.ForEach(func(seated *Player) {
		playerSequence = append(playerSequence, seated.Name())
		playerHandCounts[seated.Name()] = seated.HandSize()
	})

	return State{
		OpenCard:          openCard,
		PlayedCards:       g.pile.Cards(),
		CurrentPlayer:     player.Name(),
		CurrentPlayerHand: player.Hand(),
		PlayableIndexes:   player.hand.PlayableIndexes(openCard),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		DeckSize:          g.deck.Size(),
		CanPass:           g.drew && player == g.players.Current(),
	}
}

func (g *Game) reject(player *Player, reason string) {
	g.bus.PlayRejected.Emit(event.PlayRejectedPayload{
		PlayerName: player.Name(),
		Reason:     reason,
	})
}
