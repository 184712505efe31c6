package systems

import (
	"sort"

	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getSession(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(e.World))
}

func getMatch(e *ecs.ECS) *components.MatchData {
	return components.Match.Get(components.Match.MustFirst(e.World))
}

func getRegistration(e *ecs.ECS) *components.RegistrationData {
	return components.Registration.Get(components.Registration.MustFirst(e.World))
}

// Players returns every player entity in registration order.
func Players(e *ecs.ECS) []*donburi.Entry {
	var players []*donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		players = append(players, entry)
	})
	sort.Slice(players, func(i, j int) bool {
		return components.Player.Get(players[i]).Index < components.Player.Get(players[j]).Index
	})
	return players
}

// WithPlayState wraps a system so it only runs while a round is being
// played. Play freezes once the round's goal is reached.
func WithPlayState(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if match := getMatch(e); match.State != cfg.StatePlay || match.RoundOver {
			return
		}
		system(e)
	}
}
