package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/flapping/actors"
	"github.com/automoto/flapping/components"
	"github.com/automoto/flapping/input"
	"github.com/automoto/flapping/script"
	"github.com/automoto/flapping/shared/leveldata"
	"github.com/automoto/flapping/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

type fakeLevels map[string]*leveldata.CollisionData

func (f fakeLevels) Load(name string) (*leveldata.CollisionData, error) {
	if data, ok := f[name]; ok {
		return data, nil
	}
	return testLevel(), nil
}

type testWorld struct {
	ecs   *ecs.ECS
	clock *fakeClock
	store memStore
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		clock: &fakeClock{now: time.Unix(1000, 0)},
		store: memStore{},
	}
	factory.CreateSession(w.ecs, components.SessionData{
		Bindings: input.NewBindings(),
		Scripts:  script.NewScheduler(),
		Clock:    w.clock,
		Effects:  actors.NewList(),
		Rand:     rand.New(rand.NewPCG(1, 2)),
		Store:    w.store,
		Levels:   fakeLevels{},
	})
	factory.CreateMatch(w.ecs)
	factory.CreateRegistration(w.ecs)
	return w
}

func (w *testWorld) session() *components.SessionData { return getSession(w.ecs) }

func (w *testWorld) match() *components.MatchData { return getMatch(w.ecs) }

// step runs the play systems once in frame order.
func (w *testWorld) step() {
	UpdatePlayers(w.ecs)
	UpdateCollisions(w.ecs)
	UpdateGravity(w.ecs)
	UpdatePlayerContacts(w.ecs)
}

// testLevel is a 1280x720 map with a ten-tile floor at y=608 on the left,
// one hazard tile at x=640 and two spawn points standing on the floor.
func testLevel() *leveldata.CollisionData {
	data := &leveldata.CollisionData{
		Name:       "test",
		MapWidth:   1280,
		MapHeight:  720,
		TileWidth:  32,
		TileHeight: 32,
		HazardRects: []leveldata.Rect{
			{X: 640, Y: 608, W: 32, H: 32},
		},
		SpawnPoints: []leveldata.SpawnPoint{
			{X: 100, Y: 608},
			{X: 250, Y: 608, Index: 1},
		},
	}
	for x := 0.0; x < 320; x += 32 {
		data.SolidRects = append(data.SolidRects, leveldata.Rect{X: x, Y: 608, W: 32, H: 32})
	}
	return data
}

func (w *testWorld) addPlayer(name string, x, y float64) *donburi.Entry {
	return factory.CreatePlayer(w.ecs, name, name+".png", len(Players(w.ecs)), x, y)
}
