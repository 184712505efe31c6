package main

import (
	"image"

	"github.com/automoto/flapping/assets"
	"github.com/automoto/flapping/config"
	"github.com/automoto/flapping/fonts"
	"github.com/automoto/flapping/scenes"
	"github.com/automoto/flapping/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() (*Game, error) {
	err := fonts.LoadDefaults(map[fonts.FontName]float64{
		fonts.Title:  config.UI.TitleFontSize,
		fonts.Header: config.UI.HeaderFontSize,
		fonts.Body:   config.UI.BodyFontSize,
		fonts.HUD:    config.UI.HUDFontSize,
	})
	if err != nil {
		return nil, err
	}

	// Missing maps or avatars are fatal before the window opens.
	levels := assets.NewLevelLoader()
	if err := levels.CheckAll(config.Game.Maps); err != nil {
		return nil, err
	}
	if err := assets.NewImageLoader().CheckAvatars(config.Registration.Avatars); err != nil {
		return nil, err
	}

	opts := scenes.Options{
		Levels: levels,
		Poller: systems.NewInputPoller(),
	}
	if store, err := systems.OpenStore(); err != nil {
		log.Warn("players will not be saved", "err", err)
	} else {
		opts.Store = store
	}

	return &Game{scene: scenes.NewGameScene(opts)}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	path, err := config.Load()
	if err != nil {
		log.Fatal("could not load config", "err", err)
	}
	if level, err := log.ParseLevel(config.Debug.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("unknown log level", "level", config.Debug.LogLevel)
	}
	if path != "" {
		log.Info("loaded config", "path", path)
	}

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(config.Window.Fullscreen)
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame()
	if err != nil {
		log.Fatal("could not start", "err", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
