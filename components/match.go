package components

import (
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/shared/leveldata"
	"github.com/yohamta/donburi"
)

// MatchData stores the session flow state read by drawing and input routing.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State      cfg.GameStateID
	Scoreboard cfg.ScoreboardStateID
	// Round is 1-based; 0 before the first round.
	Round  int
	Rounds int
	// GoalScore ends a round once any player reaches it.
	GoalScore int
	Level     *leveldata.CollisionData
	// RoundOver is set on the tick a round's goal is reached.
	RoundOver bool
	// Winners holds the names of players with the most round wins.
	Winners []string
	// Done is set when the session ends and the process should exit.
	Done bool
}

var Match = donburi.NewComponentType[MatchData]()

// IsFinalRound reports whether the current round is the last of the set.
func (m *MatchData) IsFinalRound() bool {
	return m.Round == m.Rounds
}
