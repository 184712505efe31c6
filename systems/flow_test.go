package systems

import (
	"slices"
	"testing"

	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/script"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func TestRoundWinsAndWinners(t *testing.T) {
	w := newTestWorld(t)
	a := w.addPlayer("A", 0, 0)
	b := w.addPlayer("B", 100, 0)
	c := w.addPlayer("C", 200, 0)

	rounds := [][3]int{
		{3, 3, 1}, // tie: A and B both credited
		{0, 1, 3},
		{3, 2, 2},
	}
	for _, scores := range rounds {
		for i, p := range []*components.PlayerData{
			components.Player.Get(a), components.Player.Get(b), components.Player.Get(c),
		} {
			p.Score = scores[i]
		}
		creditRoundWins(w.ecs)
	}

	wins := []int{
		components.Player.Get(a).RoundWins,
		components.Player.Get(b).RoundWins,
		components.Player.Get(c).RoundWins,
	}
	if !slices.Equal(wins, []int{2, 1, 1}) {
		t.Errorf("round wins = %v, want [2 1 1]", wins)
	}
	if got := winners(w.ecs); !slices.Equal(got, []string{"A"}) {
		t.Errorf("winners = %v, want [A]", got)
	}

	components.Player.Get(b).RoundWins = 2
	if got := winners(w.ecs); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("winners = %v, want [A B]", got)
	}
}

// frame runs one frame the way the game loop does: scripts first, then
// the play systems, then the flow.
func frame(t *testing.T, w *testWorld, flow *Flow) script.Status {
	t.Helper()
	_ = w.session().Scripts.Tick()
	WithPlayState(func(*ecs.ECS) { w.step() })(w.ecs)
	status, err := flow.Resume()
	if err != nil {
		t.Fatal(err)
	}
	return status
}

func TestFlowQuitDuringRegistration(t *testing.T) {
	w := newTestWorld(t)
	flow := NewFlow(w.ecs)

	frame(t, w, flow)
	if flow.State() != cfg.StateWelcome {
		t.Fatalf("state = %v, want welcome", flow.State())
	}
	w.clock.Advance(cfg.Game.WelcomeDuration)
	frame(t, w, flow)
	if flow.State() != cfg.StateRegistration {
		t.Fatalf("state = %v, want registration", flow.State())
	}

	RouteInput(w.ecs, key(cfg.Input.QuitKey))
	if status := frame(t, w, flow); status != script.Completed {
		t.Error("flow should complete after quit")
	}
	if !w.match().Done {
		t.Error("match should be done")
	}
}

func TestFlowQuickStart(t *testing.T) {
	saved := cfg.Debug.QuickStart
	cfg.Debug.QuickStart = true
	t.Cleanup(func() { cfg.Debug.QuickStart = saved })

	w := newTestWorld(t)
	if err := SavePlayers(w.store, savedRoster(t)[:1], nil); err != nil {
		t.Fatal(err)
	}
	flow := NewFlow(w.ecs)

	frame(t, w, flow)
	if flow.State() != cfg.StatePlay || flow.Round() != 1 {
		t.Fatalf("state = %v round %d, want gameplay round 1", flow.State(), flow.Round())
	}
	if w.match().GoalScore != 1 {
		t.Errorf("goal = %d, want 1", w.match().GoalScore)
	}
	if n := len(Players(w.ecs)); n != 1 {
		t.Errorf("players = %d, want 1", n)
	}
}

func TestFlowQuickStartWithoutSavedPlayers(t *testing.T) {
	saved := cfg.Debug.QuickStart
	cfg.Debug.QuickStart = true
	t.Cleanup(func() { cfg.Debug.QuickStart = saved })

	w := newTestWorld(t)
	flow := NewFlow(w.ecs)
	frame(t, w, flow)
	if flow.State() != cfg.StateWelcome {
		t.Errorf("state = %v, want welcome", flow.State())
	}
}

func TestFlowRoundToScoreboard(t *testing.T) {
	w := newTestWorld(t)
	w.session().Gamepads = func() []ebiten.GamepadID { return nil }
	flow := NewFlow(w.ecs)

	frame(t, w, flow)
	w.clock.Advance(cfg.Game.WelcomeDuration)
	frame(t, w, flow)
	for _, evt := range []ebiten.Key{ebiten.KeyW, ebiten.KeyA, ebiten.KeyD, ebiten.KeyUp, ebiten.KeyLeft, ebiten.KeyRight, cfg.Input.FinalizeKey} {
		RouteInput(w.ecs, key(evt))
		frame(t, w, flow)
	}
	if flow.State() != cfg.StatePlay || flow.Round() != 1 {
		t.Fatalf("state = %v round %d, want gameplay round 1", flow.State(), flow.Round())
	}

	players := Players(w.ecs)
	components.Player.Get(players[1]).Score = w.match().GoalScore
	frame(t, w, flow)
	if !flow.RoundOver() {
		t.Fatal("round should be over on the tick the goal is reached")
	}
	if got := components.Player.Get(players[1]).RoundWins; got != 1 {
		t.Errorf("round wins = %d, want 1", got)
	}

	w.clock.Advance(cfg.Game.RoundEndPause)
	frame(t, w, flow)
	if flow.State() != cfg.StateScoreboard || flow.ScoreboardState() != cfg.ScoreboardBlackout {
		t.Fatalf("state = %v/%v, want scoreboard blackout", flow.State(), flow.ScoreboardState())
	}

	// Input is ignored while blacked out.
	RouteInput(w.ecs, key(ebiten.KeyW))
	w.clock.Advance(cfg.Game.BlackoutDuration)
	frame(t, w, flow)
	if flow.ScoreboardState() != cfg.ScoreboardReady {
		t.Fatalf("scoreboard = %v, want ready", flow.ScoreboardState())
	}

	// Unbound keys do not continue.
	RouteInput(w.ecs, key(ebiten.KeyZ))
	frame(t, w, flow)
	if flow.State() != cfg.StateScoreboard {
		t.Fatal("unbound key should not leave the scoreboard")
	}

	RouteInput(w.ecs, key(ebiten.KeyUp))
	frame(t, w, flow)
	if flow.State() != cfg.StatePlay || flow.Round() != 2 {
		t.Errorf("state = %v round %d, want gameplay round 2", flow.State(), flow.Round())
	}
	for _, entry := range Players(w.ecs) {
		if components.Player.Get(entry).Score != 0 {
			t.Error("scores should reset for the new round")
		}
	}
}

func TestFlowQuitEndsAnyWait(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, w *testWorld, flow *Flow)
	}{
		{"play", func(*testing.T, *testWorld, *Flow) {}},
		{"scoreboard blackout", func(t *testing.T, w *testWorld, flow *Flow) {
			components.Player.Get(Players(w.ecs)[0]).Score = w.match().GoalScore
			frame(t, w, flow)
			w.clock.Advance(cfg.Game.RoundEndPause)
			frame(t, w, flow)
		}},
		{"scoreboard ready", func(t *testing.T, w *testWorld, flow *Flow) {
			components.Player.Get(Players(w.ecs)[0]).Score = w.match().GoalScore
			frame(t, w, flow)
			w.clock.Advance(cfg.Game.RoundEndPause)
			frame(t, w, flow)
			w.clock.Advance(cfg.Game.BlackoutDuration)
			frame(t, w, flow)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := cfg.Debug.QuickStart
			cfg.Debug.QuickStart = true
			t.Cleanup(func() { cfg.Debug.QuickStart = saved })

			w := newTestWorld(t)
			if err := SavePlayers(w.store, savedRoster(t)[:1], nil); err != nil {
				t.Fatal(err)
			}
			flow := NewFlow(w.ecs)
			frame(t, w, flow)
			tt.setup(t, w, flow)

			RouteInput(w.ecs, key(cfg.Input.QuitKey))
			if status := frame(t, w, flow); status != script.Completed {
				t.Errorf("flow still running in %v after quit", flow.State())
			}
		})
	}
}

func TestFlowRegistrationStartsWithSavedPlayers(t *testing.T) {
	w := newTestWorld(t)
	if err := SavePlayers(w.store, savedRoster(t)[:1], nil); err != nil {
		t.Fatal(err)
	}
	flow := NewFlow(w.ecs)

	frame(t, w, flow)
	w.clock.Advance(cfg.Game.WelcomeDuration)
	frame(t, w, flow)

	reg := getRegistration(w.ecs)
	if len(reg.Entries) != 1 || !reg.Entries[0].Complete() {
		t.Fatalf("entries = %+v, want the saved player", reg.Entries)
	}
	if reg.Msg != "Player 2: press flap" {
		t.Errorf("Msg = %q", reg.Msg)
	}
}
