package components

import (
	"math/rand/v2"

	"github.com/automoto/flapping/actors"
	"github.com/automoto/flapping/input"
	"github.com/automoto/flapping/script"
	"github.com/automoto/flapping/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ItemStore persists named blobs. *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// LevelSource loads maps by file name.
type LevelSource interface {
	Load(name string) (*leveldata.CollisionData, error)
}

// SessionData is the context shared by input callbacks, scripts and
// systems for one run of the game. It is a singleton component.
type SessionData struct {
	// Bindings is the gameplay dispatch table built at finalize.
	Bindings *input.Bindings
	Scripts  *script.Scheduler
	Clock    script.Clock
	Effects  *actors.List
	Rand     *rand.Rand
	// Store is nil when persistence is unavailable.
	Store  ItemStore
	Levels LevelSource
	// Gamepads lists connected gamepads in connection order.
	Gamepads func() []ebiten.GamepadID
}

var Session = donburi.NewComponentType[SessionData]()

// GamepadIDs returns the connected gamepads, or none if no lister is set.
func (s *SessionData) GamepadIDs() []ebiten.GamepadID {
	if s.Gamepads == nil {
		return nil
	}
	return s.Gamepads()
}
