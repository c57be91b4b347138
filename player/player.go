package player

import "littlego/game"

// Player associates a participant with the color it plays.
type Player struct {
	Color game.Color
}

// New creates a Player for the given color.
func New(color game.Color) Player {
	return Player{Color: color}
}

func (p Player) Opponent() Player {
	return Player{Color: p.Color.Opponent()}
}

func (p Player) String() string {
	return p.Color.String()
}
