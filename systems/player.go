package systems

import (
	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnFlap is bound to a player's flap input.
// Flapping off a surface nudges the player up so the same platform is not
// caught again; flapping in the air adds a push toward the facing direction.
func OnFlap(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if !player.Alive {
		return
	}
	physics := components.Physics.Get(entry)

	switch player.State {
	case cfg.Landed:
		components.Object.Get(entry).Y -= cfg.Physics.LandedNudge
	case cfg.Flying:
		physics.SpeedX += player.Facing * cfg.Player.FlapHorizImpulse
	}
	physics.SpeedY -= cfg.Player.JumpSpeed
}

func OnLeft(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.BtnLeft = true
	face(player, cfg.DirectionLeft)
}

func OnLeftRelease(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.BtnLeft = false
	if player.BtnRight {
		face(player, cfg.DirectionRight)
	} else {
		player.Facing = cfg.DirectionNone
	}
}

func OnRight(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.BtnRight = true
	face(player, cfg.DirectionRight)
}

func OnRightRelease(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.BtnRight = false
	if player.BtnLeft {
		face(player, cfg.DirectionLeft)
	} else {
		player.Facing = cfg.DirectionNone
	}
}

// OnHat steers from a joystick hat; only the horizontal axis matters.
func OnHat(entry *donburi.Entry, hatX int) {
	player := components.Player.Get(entry)
	switch {
	case hatX < 0:
		face(player, cfg.DirectionLeft)
	case hatX > 0:
		face(player, cfg.DirectionRight)
	default:
		player.Facing = cfg.DirectionNone
	}
}

func face(player *components.PlayerData, dir float64) {
	player.Facing = dir
	player.LookLeft = dir == cfg.DirectionLeft
}

// UpdatePlayers integrates motion for every live player, accelerates
// landed players along their held direction, clamps speed and snaps
// positions to whole pixels ahead of the collision passes.
func UpdatePlayers(ecs *ecs.ECS) {
	for _, entry := range Players(ecs) {
		player := components.Player.Get(entry)
		if !player.Alive {
			continue
		}
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY

		if player.State == cfg.Landed {
			physics.SpeedX += player.Facing * cfg.Player.MovementSpeed
		}
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, cfg.Player.MaxHorizSpeed)
		physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY, cfg.Player.MaxVertSpeed)

		// Sub-pixel positions leave seams at tile boundaries.
		obj.X = gamemath.Trunc(obj.X)
		obj.Y = gamemath.Trunc(obj.Y)
		obj.Update()
	}
}

// ResetPlayer clears motion and controls, as on death or at round start.
func ResetPlayer(entry *donburi.Entry) {
	components.Player.Get(entry).Reset()
	physics := components.Physics.Get(entry)
	physics.SpeedX = 0
	physics.SpeedY = 0
}

// MovePlayer places a player's top-left corner and syncs the collision space.
func MovePlayer(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry)
	obj.X = x
	obj.Y = y
	obj.Update()
}
