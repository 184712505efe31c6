package systems

import (
	"github.com/automoto/flapping/actors"
	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/script"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Die starts the death sequence for a live player: the player leaves the
// field at once, and comes back at a random spawn point after the respawn
// delay. Calling Die on a dead player does nothing.
func Die(ecs *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if !player.Alive {
		return
	}
	session := getSession(ecs)

	obj := components.Object.Get(entry)
	if session.Effects != nil && session.Rand != nil {
		session.Effects.Add(actors.NewBurst(obj.X+obj.W/2, obj.Y+obj.H/2, actors.BurstConfig{
			Particles: cfg.Effects.BurstParticles,
			Speed:     cfg.Effects.BurstSpeed,
			Lifetime:  cfg.Effects.BurstLifetime,
			Color:     cfg.UI.HazardColor,
			Radius:    3,
		}, session.Rand))
	}

	log.Debug("player died", "name", player.Name, "score", player.Score)
	// Schedule logs a failed first step; the next round revives the player.
	_ = session.Scripts.Schedule(script.Sequence(
		script.Do(func() { kill(entry) }),
		script.Sleep(session.Clock, cfg.Player.RespawnDelay),
		script.Do(func() { respawn(ecs, entry) }),
	))
}

func kill(entry *donburi.Entry) {
	components.Player.Get(entry).Alive = false
	ResetPlayer(entry)
	MovePlayer(entry, cfg.Physics.OffFieldX, cfg.Physics.OffFieldY)
}

func respawn(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	x, y := randomSpawn(ecs)
	ResetPlayer(entry)
	MovePlayer(entry, x, y)
	components.Player.Get(entry).Alive = true
}

// randomSpawn picks a spawn point of the current map for a respawning player.
func randomSpawn(ecs *ecs.ECS) (float64, float64) {
	level := getMatch(ecs).Level
	if level == nil || len(level.SpawnPoints) == 0 {
		return spawnPosition(level, 0)
	}
	i := 0
	if rng := getSession(ecs).Rand; rng != nil {
		i = rng.IntN(len(level.SpawnPoints))
	}
	return spawnPosition(level, i)
}
