package systems

import (
	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/shared/gamemath"
	"github.com/automoto/flapping/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions runs the hazard pass and then the wall pass for every
// live player. A player killed by a hazard skips its wall pass.
func UpdateCollisions(ecs *ecs.ECS) {
	for _, entry := range Players(ecs) {
		if !components.Player.Get(entry).Alive {
			continue
		}
		if checkHazards(ecs, entry) {
			continue
		}
		checkWalls(entry)
	}
}

// checkHazards kills a player touching a hazard tile and reports whether it did.
func checkHazards(ecs *ecs.ECS, entry *donburi.Entry) bool {
	obj := components.Object.Get(entry)
	for _, hazard := range candidates(obj.Object, tags.ResolvHazard) {
		if !gamemath.Overlaps(obj.Box(), boxOf(hazard)) {
			continue
		}
		components.Player.Get(entry).Score += cfg.Player.DeathScore
		Die(ecs, entry)
		return true
	}
	return false
}

// checkWalls separates a player from solid tiles. The player is Landed
// exactly when some tile supports it from below this tick.
func checkWalls(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	supported := false
	for _, wall := range candidates(obj.Object, tags.ResolvSolid) {
		hit, ok := gamemath.Intersect(obj.Box(), boxOf(wall))
		if !ok {
			continue
		}
		switch {
		case hit.Normal.X != 0:
			obj.X += hit.Delta.X
			physics.SpeedX = 0
		case hit.Normal.Y < 0:
			// Rest 1px inside the tile so the contact is still there next tick.
			obj.Y = wall.Y + 1 - obj.H
			physics.SpeedY = 0
			supported = true
		case hit.Normal.Y > 0:
			obj.Y += hit.Delta.Y
			physics.SpeedY = cfg.Physics.CeilingBounce
		}
	}
	obj.Update()

	if supported {
		player.State = cfg.Landed
	} else {
		player.State = cfg.Flying
	}
}

// UpdateGravity accelerates live players downward and wraps them across the
// left and right screen edges.
func UpdateGravity(ecs *ecs.ECS) {
	width := float64(cfg.C.Width)
	if level := getMatch(ecs).Level; level != nil {
		width = float64(level.MapWidth)
	}

	for _, entry := range Players(ecs) {
		if !components.Player.Get(entry).Alive {
			continue
		}
		components.Physics.Get(entry).SpeedY += cfg.Physics.Gravity

		obj := components.Object.Get(entry)
		cx := obj.X + obj.W/2
		switch {
		case cx < 0:
			obj.X = width - obj.W/2
		case cx > width:
			obj.X = -obj.W / 2
		default:
			continue
		}
		obj.Update()
	}
}

// UpdatePlayerContacts checks every pair of live players. Players at the
// same height bounce apart; otherwise the higher one scores and the lower
// one dies.
func UpdatePlayerContacts(ecs *ecs.ECS) {
	players := Players(ecs)
	for i, a := range players {
		for _, b := range players[i+1:] {
			pa := components.Player.Get(a)
			pb := components.Player.Get(b)
			if !pa.Alive || !pb.Alive {
				continue
			}
			oa := components.Object.Get(a)
			ob := components.Object.Get(b)
			if !gamemath.Overlaps(oa.Box(), ob.Box()) {
				continue
			}

			ya, yb := gamemath.Trunc(oa.Y), gamemath.Trunc(ob.Y)
			switch {
			case ya == yb:
				if oa.X+oa.W/2 < ob.X+ob.W/2 {
					bump(a, -1)
					bump(b, 1)
				} else {
					bump(a, 1)
					bump(b, -1)
				}
			case ya < yb:
				pa.Score += cfg.Player.KillScore
				Die(ecs, b)
			default:
				pb.Score += cfg.Player.KillScore
				Die(ecs, a)
			}
		}
	}
}

func bump(entry *donburi.Entry, dir float64) {
	obj := components.Object.Get(entry)
	physics := components.Physics.Get(entry)
	obj.X += dir * cfg.Physics.BumpPush
	obj.Update()
	physics.SpeedX = dir * cfg.Physics.BumpSpeed
	physics.SpeedY = 0
}

// candidates returns the objects sharing a broadphase cell with obj.
func candidates(obj *resolv.Object, tag string) []*resolv.Object {
	if c := obj.Check(0, 0, tag); c != nil {
		return c.Objects
	}
	return nil
}

func boxOf(obj *resolv.Object) gamemath.Box {
	return gamemath.BoxFromRect(obj.X, obj.Y, obj.W, obj.H)
}
