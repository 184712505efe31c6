package systems

import (
	"fmt"

	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/script"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

type flowStep int

const (
	flowStart flowStep = iota
	flowRegister
	flowFinalize
	flowNewSet
	flowRoundStart
	flowRoundEnd
	flowScoreboard
	flowReady
	flowNextRound
)

// Flow drives a session: welcome screen, registration, then sets of rounds
// with a scoreboard after each, repeated until quit. It is resumed once per
// tick after the play systems, so a round ends on the tick its goal is hit.
type Flow struct {
	script.Waiter
	e    *ecs.ECS
	step flowStep
}

func NewFlow(e *ecs.ECS) *Flow {
	return &Flow{e: e}
}

func (f *Flow) Resume() (script.Status, error) {
	match := getMatch(f.e)
	for {
		// Quit wins over whatever the flow is waiting on.
		if match.Done {
			return script.Completed, nil
		}
		blocked, err := f.Blocked()
		if err != nil {
			return script.Completed, err
		}
		if blocked {
			return script.Suspended, nil
		}
		if err := f.advance(match); err != nil {
			return script.Completed, err
		}
	}
}

// advance runs one step and sets up the wait that guards the next one.
func (f *Flow) advance(match *components.MatchData) error {
	session := getSession(f.e)

	switch f.step {
	case flowStart:
		if cfg.Debug.QuickStart && f.quickStart() {
			f.step = flowNewSet
			return nil
		}
		match.State = cfg.StateWelcome
		f.Wait(script.Sleep(session.Clock, cfg.Game.WelcomeDuration))
		f.step = flowRegister

	case flowRegister:
		match.State = cfg.StateRegistration
		reg := getRegistration(f.e)
		reg.Entries = loadLastPlayers(session)
		if n := len(reg.Entries); n > 0 {
			log.Info("loaded last players", "players", n)
		}
		if err := session.Scripts.Schedule(NewRegistration(f.e)); err != nil {
			return fmt.Errorf("registration: %w", err)
		}
		f.Wait(script.WaitUntil(func() bool { return reg.Done }))
		f.step = flowFinalize

	case flowFinalize:
		if getRegistration(f.e).Quit {
			log.Info("quit during registration")
			match.Done = true
			return nil
		}
		FinalizeRegistration(f.e)
		f.step = flowNewSet

	case flowNewSet:
		for _, entry := range Players(f.e) {
			components.Player.Get(entry).RoundWins = 0
		}
		match.Round = 0
		match.Winners = nil
		f.step = flowRoundStart

	case flowRoundStart:
		match.Round++
		name := cfg.Game.Maps[(match.Round-1)%len(cfg.Game.Maps)]
		level, err := session.Levels.Load(name)
		if err != nil {
			return fmt.Errorf("round %d: %w", match.Round, err)
		}
		LoadLevel(f.e, level)
		SetupRound(f.e)
		match.RoundOver = false
		match.State = cfg.StatePlay
		log.Info("round started", "round", match.Round, "of", match.Rounds, "map", name)

		f.Wait(script.WaitUntil(func() bool { return topScore(f.e) >= match.GoalScore }))
		f.step = flowRoundEnd

	case flowRoundEnd:
		match.RoundOver = true
		creditRoundWins(f.e)
		match.Winners = winners(f.e)
		f.Wait(script.Sleep(session.Clock, cfg.Game.RoundEndPause))
		f.step = flowScoreboard

	case flowScoreboard:
		if session.Effects != nil {
			session.Effects.Clear()
		}
		session.Scripts.Clear()
		match.State = cfg.StateScoreboard
		match.Scoreboard = cfg.ScoreboardBlackout
		f.Wait(script.Sleep(session.Clock, cfg.Game.BlackoutDuration))
		f.step = flowReady

	case flowReady:
		match.Scoreboard = cfg.ScoreboardReady
		f.Wait(script.WaitUntil(func() bool { return match.Scoreboard == cfg.ScoreboardDone }))
		f.step = flowNextRound

	case flowNextRound:
		if match.IsFinalRound() {
			log.Info("set finished", "winners", match.Winners)
			f.step = flowNewSet
		} else {
			f.step = flowRoundStart
		}
	}
	return nil
}

// quickStart registers the last saved players and plays to a goal of 1.
// It reports false when there is nothing saved to start with.
func (f *Flow) quickStart() bool {
	entries := loadLastPlayers(getSession(f.e))
	if len(entries) == 0 {
		log.Info("quick start has no saved players")
		return false
	}
	reg := getRegistration(f.e)
	reg.Entries = entries
	reg.Done = true
	FinalizeRegistration(f.e)
	getMatch(f.e).GoalScore = 1
	return true
}

func (f *Flow) State() cfg.GameStateID {
	return getMatch(f.e).State
}

func (f *Flow) ScoreboardState() cfg.ScoreboardStateID {
	return getMatch(f.e).Scoreboard
}

func (f *Flow) Round() int {
	return getMatch(f.e).Round
}

func (f *Flow) RoundOver() bool {
	return getMatch(f.e).RoundOver
}

func (f *Flow) Winners() []string {
	return getMatch(f.e).Winners
}

func topScore(e *ecs.ECS) int {
	players := Players(e)
	if len(players) == 0 {
		return 0
	}
	best := components.Player.Get(players[0]).Score
	for _, entry := range players[1:] {
		best = max(best, components.Player.Get(entry).Score)
	}
	return best
}

// creditRoundWins gives a round win to every player on the top score.
func creditRoundWins(e *ecs.ECS) {
	best := topScore(e)
	for _, entry := range Players(e) {
		if p := components.Player.Get(entry); p.Score == best {
			p.RoundWins++
		}
	}
}

// winners returns the names of the players with the most round wins.
func winners(e *ecs.ECS) []string {
	players := Players(e)
	most := 0
	for _, entry := range players {
		most = max(most, components.Player.Get(entry).RoundWins)
	}
	var names []string
	for _, entry := range players {
		if p := components.Player.Get(entry); p.RoundWins == most {
			names = append(names, p.Name)
		}
	}
	return names
}
