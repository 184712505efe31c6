package factory

import (
	"github.com/automoto/flapping/archetypes"
	"github.com/automoto/flapping/components"
	"github.com/automoto/flapping/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createTile(ecs, archetypes.Wall.Spawn(ecs), x, y, w, h, tags.ResolvSolid)
}

// CreateHazard creates a tile that kills any player touching it.
func CreateHazard(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createTile(ecs, archetypes.Hazard.Spawn(ecs), x, y, w, h, tags.ResolvHazard)
}

func createTile(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tag string) *donburi.Entry {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
