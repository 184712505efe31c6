package systems

import (
	"image/color"

	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every object in the collision space when hitbox
// debugging is on.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes || getMatch(ecs).State != cfg.StatePlay {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}

	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvHazard) {
			c = color.RGBA{255, 0, 0, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
