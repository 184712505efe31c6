package config

// GameStateID is the top-level phase of a session.
type GameStateID int

const (
	StateWelcome GameStateID = iota
	StateRegistration
	StatePlay
	StateScoreboard
)

func (s GameStateID) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateRegistration:
		return "registration"
	case StatePlay:
		return "gameplay"
	case StateScoreboard:
		return "scoreboard"
	}
	return "unknown"
}

// ScoreboardStateID is the sub-state shown while the scoreboard is up.
type ScoreboardStateID int

const (
	// ScoreboardBlackout ignores input so last-second mashing cannot skip it.
	ScoreboardBlackout ScoreboardStateID = iota
	ScoreboardReady
	ScoreboardDone
)

func (s ScoreboardStateID) String() string {
	switch s {
	case ScoreboardBlackout:
		return "blackout"
	case ScoreboardReady:
		return "ready"
	case ScoreboardDone:
		return "done"
	}
	return "unknown"
}

// PlayerStateID is the movement state of a player.
type PlayerStateID int

const (
	Flying PlayerStateID = iota
	Landed
)

func (s PlayerStateID) String() string {
	if s == Landed {
		return "landed"
	}
	return "flying"
}

// Direction constants for player facing
const (
	DirectionNone  = 0.0
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
