package factory

import (
	"github.com/automoto/flapping/archetypes"
	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton.
func CreateSession(ecs *ecs.ECS, data components.SessionData) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, data)
	return session
}

// CreateMatch spawns the match singleton in the welcome state.
func CreateMatch(ecs *ecs.ECS) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		State:     cfg.StateWelcome,
		Rounds:    cfg.Game.Rounds,
		GoalScore: cfg.Game.GoalScore,
	})
	return match
}

// CreateRegistration spawns the empty registration singleton.
func CreateRegistration(ecs *ecs.ECS) *donburi.Entry {
	reg := archetypes.Registration.Spawn(ecs)
	components.Registration.SetValue(reg, components.RegistrationData{Msg: "..."})
	return reg
}
