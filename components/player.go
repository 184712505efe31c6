package components

import (
	cfg "github.com/automoto/flapping/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	State cfg.PlayerStateID
	// Facing is DirectionLeft, DirectionRight or DirectionNone.
	Facing float64
	// Sprite direction; keeps the last non-zero facing.
	LookLeft bool

	BtnLeft  bool
	BtnRight bool

	Score     int
	RoundWins int
	Alive     bool

	Name   string
	Avatar string
	// Index is the registration order.
	Index int
}

var Player = donburi.NewComponentType[PlayerData]()

// Reset clears movement state, as at round start or on death.
func (p *PlayerData) Reset() {
	p.State = cfg.Flying
	p.Facing = cfg.DirectionNone
	p.BtnLeft = false
	p.BtnRight = false
}
