package game

// Cycler tracks whose turn it is. Reversal flips the seating order itself
// instead of keeping a direction flag.
type Cycler struct {
	players []*Player
	current int
}

func NewCycler(players []*Player) *Cycler {
	return &Cycler{players: players}
}

func (c *Cycler) Current() *Player {
	return c.players[c.current]
}

func (c *Cycler) Index() int {
	return c.current
}

func (c *Cycler) Len() int {
	return len(c.players)
}

func (c *Cycler) NextIndex() int {
	return (c.current + 1) % len(c.players)
}

// Next returns the player after the current one without moving the turn.
func (c *Cycler) Next() *Player {
	return c.players[c.NextIndex()]
}

func (c *Cycler) Advance() *Player {
	c.current = c.NextIndex()
	return c.Current()
}

// Reverse flips the order in place. The active player stays active.
func (c *Cycler) Reverse() {
	active := c.Current()
	for i, j := 0, len(c.players)-1; i < j; i, j = i+1, j-1 {
		c.players[i], c.players[j] = c.players[j], c.players[i]
	}
	for index, player := range c.players {
		if player == active {
			c.current = index
			return
		}
	}
}

func (c *Cycler) ForEach(function func(*Player)) {
	for _, player := range c.players {
		function(player)
	}
}

func (c *Cycler) Players() []*Player {
	players := make([]*Player, len(c.players))
	copy(players, c.players)
	return players
}

func (c *Cycler) Names() []string {
	names := make([]string, 0, len(c.players))
	for _, player := range c.players {
		names = append(names, player.Name())
	}
	return names
}
