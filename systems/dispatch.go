package systems

import (
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/input"
	"github.com/yohamta/donburi/ecs"
)

// RouteInput hands a raw event to whatever the current game state listens
// with. Events arrive between ticks.
func RouteInput(e *ecs.ECS, evt input.Event) {
	match := getMatch(e)
	switch match.State {
	case cfg.StateRegistration:
		if evt.Kind.IsPress() && !isHatCentered(evt) {
			OnRegistrationEvent(e, evt)
		}
	case cfg.StatePlay:
		getSession(e).Bindings.Dispatch(evt)
	case cfg.StateScoreboard:
		if evt.IsKey(cfg.Input.QuitKey) {
			match.Done = true
			return
		}
		if match.Scoreboard != cfg.ScoreboardReady {
			return
		}
		if evt.Kind != input.KeyPress && evt.Kind != input.JoyButtonPress {
			return
		}
		if getSession(e).Bindings.Has(evt.ID()) {
			match.Scoreboard = cfg.ScoreboardDone
		}
	}
}

func isHatCentered(evt input.Event) bool {
	return evt.Kind == input.JoyHatMotion && evt.HatX == 0 && evt.HatY == 0
}
