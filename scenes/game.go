package scenes

import (
	"math/rand/v2"
	"sync"

	"github.com/automoto/flapping/actors"
	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/input"
	"github.com/automoto/flapping/script"
	"github.com/automoto/flapping/systems"
	"github.com/automoto/flapping/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options are the collaborators a game session runs against.
type Options struct {
	Levels components.LevelSource
	// Store may be nil, in which case players are not saved.
	Store components.ItemStore
	// Clock defaults to the system clock.
	Clock script.Clock
	// Rand defaults to a randomly seeded source.
	Rand *rand.Rand
	// Poller is nil when input is fed through OnRawInput only.
	Poller *systems.InputPoller
	// Gamepads lists connected gamepads in connection order. It defaults
	// to the poller's list.
	Gamepads func() []ebiten.GamepadID
}

// GameScene runs one session from the welcome screen until quit.
type GameScene struct {
	opts Options
	ecs  *ecs.ECS
	flow *systems.Flow
	done bool
	once sync.Once
}

func NewGameScene(opts Options) *GameScene {
	if opts.Clock == nil {
		opts.Clock = script.SystemClock{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &GameScene{opts: opts}
}

func (gs *GameScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Play systems, in order: motion, walls and hazards, gravity, players.
	ecs.AddSystem(systems.WithPlayState(systems.UpdatePlayers))
	ecs.AddSystem(systems.WithPlayState(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPlayState(systems.UpdateGravity))
	ecs.AddSystem(systems.WithPlayState(systems.UpdatePlayerContacts))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawWelcome)
	ecs.AddRenderer(cfg.Default, systems.DrawRegistration)
	ecs.AddRenderer(cfg.Default, systems.DrawScoreboard)

	session := components.SessionData{
		Bindings: input.NewBindings(),
		Scripts:  script.NewScheduler(),
		Clock:    gs.opts.Clock,
		Effects:  actors.NewList(),
		Rand:     gs.opts.Rand,
		Store:    gs.opts.Store,
		Levels:   gs.opts.Levels,
	}
	session.Gamepads = gs.opts.Gamepads
	if session.Gamepads == nil && gs.opts.Poller != nil {
		session.Gamepads = gs.opts.Poller.Gamepads
	}
	factory.CreateSession(ecs, session)
	factory.CreateMatch(ecs)
	factory.CreateRegistration(ecs)

	gs.ecs = ecs
	gs.flow = systems.NewFlow(ecs)
}

// OnTick advances the session by one frame of dt seconds: scripts first,
// then effects and the play systems, and the flow last so it sees this
// frame's scores.
func (gs *GameScene) OnTick(dt float64) error {
	gs.once.Do(gs.configure)
	if gs.done {
		return nil
	}
	session := components.Session.Get(components.Session.MustFirst(gs.ecs.World))

	// Failed scripts are logged and dropped by the scheduler; the rest keep running.
	_ = session.Scripts.Tick()
	session.Effects.Update(dt)
	gs.ecs.Update()

	status, err := gs.flow.Resume()
	if err != nil {
		gs.done = true
		return err
	}
	gs.done = status == script.Completed
	return nil
}

// OnRawInput delivers one raw event. It must be called between ticks.
func (gs *GameScene) OnRawInput(evt input.Event) {
	gs.once.Do(gs.configure)
	systems.RouteInput(gs.ecs, evt)
}

// Done reports whether the session has ended.
func (gs *GameScene) Done() bool {
	return gs.done
}

func (gs *GameScene) Update() error {
	gs.once.Do(gs.configure)
	if gs.opts.Poller != nil {
		gs.opts.Poller.Poll(gs.OnRawInput)
	}
	if err := gs.OnTick(1 / float64(ebiten.TPS())); err != nil {
		return err
	}
	if gs.done {
		return ebiten.Termination
	}
	return nil
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}
