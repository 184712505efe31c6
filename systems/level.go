package systems

import (
	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/shared/leveldata"
	"github.com/automoto/flapping/systems/factory"
	"github.com/automoto/flapping/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadLevel replaces the current map: the old walls, hazards and space are
// removed, a new space is built from data and every player is moved into it.
func LoadLevel(ecs *ecs.ECS, data *leveldata.CollisionData) {
	var stale []donburi.Entity
	collect := func(entry *donburi.Entry) { stale = append(stale, entry.Entity()) }
	tags.Wall.Each(ecs.World, collect)
	tags.Hazard.Each(ecs.World, collect)
	components.Space.Each(ecs.World, collect)
	for _, e := range stale {
		ecs.World.Remove(e)
	}

	spaceEntry := factory.CreateSpace(ecs, data.MapWidth, data.MapHeight, data.TileWidth, data.TileHeight)
	for _, r := range data.SolidRects {
		factory.CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range data.HazardRects {
		factory.CreateHazard(ecs, r.X, r.Y, r.W, r.H)
	}

	space := components.Space.Get(spaceEntry)
	for _, entry := range Players(ecs) {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		space.Add(obj.Object)
	}

	getMatch(ecs).Level = data
}

// SetupRound cancels pending scripts, revives every player with a zero
// score and places them left to right over the map's spawn points.
func SetupRound(ecs *ecs.ECS) {
	getSession(ecs).Scripts.Clear()

	level := getMatch(ecs).Level
	for i, entry := range Players(ecs) {
		player := components.Player.Get(entry)
		ResetPlayer(entry)
		player.Score = 0
		player.Alive = true
		x, y := spawnPosition(level, i)
		MovePlayer(entry, x, y)
	}
}

// spawnPosition returns the top-left corner for the i-th player. Map spawn
// points mark the bottom center of a player and are reused in turn when
// there are more players than points.
func spawnPosition(level *leveldata.CollisionData, i int) (float64, float64) {
	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	if level == nil || len(level.SpawnPoints) == 0 {
		return cfg.Player.StartX + float64(i)*cfg.Player.StartSpacing, cfg.Player.StartY
	}
	sp := level.SpawnPoints[i%len(level.SpawnPoints)]
	return sp.X - w/2, sp.Y - h
}
