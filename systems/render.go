package systems

import (
	"image/color"

	"github.com/automoto/flapping/assets"
	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp  = &ebiten.DrawImageOptions{}
	avatars = assets.NewImageLoader()
)

// DrawLevel fills the background and draws walls and hazards as tiles.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)
	if getMatch(ecs).State != cfg.StatePlay {
		return
	}

	drawTiles(ecs, screen, tags.Wall, cfg.UI.WallColor)
	drawTiles(ecs, screen, tags.Hazard, cfg.UI.HazardColor)
}

func drawTiles(ecs *ecs.ECS, screen *ebiten.Image, tag *donburi.ComponentType[donburi.Tag], clr color.Color) {
	tag.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
	})
}

// DrawPlayers draws each live player's avatar, mirrored when it looks left.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	if getMatch(ecs).State != cfg.StatePlay {
		return
	}
	for _, entry := range Players(ecs) {
		player := components.Player.Get(entry)
		if !player.Alive {
			continue
		}
		o := components.Object.Get(entry)
		img := avatars.MustAvatar(player.Avatar)
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

		drawOp.GeoM.Reset()
		drawOp.GeoM.Scale(o.W/float64(iw), o.H/float64(ih))
		if player.LookLeft {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(o.W, 0)
		}
		drawOp.GeoM.Translate(o.X, o.Y)
		screen.DrawImage(img, drawOp)
	}
}

// DrawEffects draws the session's live effects, such as death bursts.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	if effects := getSession(ecs).Effects; effects != nil {
		effects.Draw(screen)
	}
}
