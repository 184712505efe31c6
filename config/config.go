package config

import (
	"image/color"
	"sort"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer everything lives on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per frame)
	MovementSpeed    float64 `yaml:"movement_speed"`
	FlapHorizImpulse float64 `yaml:"flap_horiz_impulse"`
	MaxHorizSpeed    float64 `yaml:"max_horiz_speed"`
	MaxVertSpeed     float64 `yaml:"max_vert_speed"`
	JumpSpeed        float64 `yaml:"jump_speed"`

	// Scoring
	KillScore  int `yaml:"kill_score"`
	DeathScore int `yaml:"death_score"`

	RespawnDelay time.Duration `yaml:"respawn_delay"`

	// Collision box
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`

	// Round start placement
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	StartSpacing float64 `yaml:"start_spacing"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`

	// Wall response
	CeilingBounce float64 `yaml:"ceiling_bounce"` // Downward speed after hitting a wall from below
	LandedNudge   float64 `yaml:"landed_nudge"`   // Upward nudge when flapping off a surface

	// Equal-height player bump
	BumpPush  float64 `yaml:"bump_push"`
	BumpSpeed float64 `yaml:"bump_speed"`

	// Where dead players wait for respawn
	OffFieldX float64 `yaml:"off_field_x"`
	OffFieldY float64 `yaml:"off_field_y"`
}

// GameConfig controls round and session flow
type GameConfig struct {
	GoalScore        int           `yaml:"goal_score"`
	Rounds           int           `yaml:"rounds"`
	Maps             []string      `yaml:"maps"`
	WelcomeDuration  time.Duration `yaml:"welcome_duration"`
	RoundEndPause    time.Duration `yaml:"round_end_pause"`
	BlackoutDuration time.Duration `yaml:"blackout_duration"`
}

// RegistrationConfig holds the avatar roster
type RegistrationConfig struct {
	// Avatars maps a display name to its image file.
	Avatars map[string]string `yaml:"avatars"`
	// SaveItem is the persisted item holding the last player list.
	SaveItem string `yaml:"save_item"`
}

// Roster returns the avatar names in the fixed order names cycle through.
func (r RegistrationConfig) Roster() []string {
	names := make([]string, 0, len(r.Avatars))
	for name := range r.Avatars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	Background  color.RGBA
	HeaderColor color.RGBA
	BodyColor   color.RGBA
	WallColor   color.RGBA
	HazardColor color.RGBA

	TitleFontSize  float64
	HeaderFontSize float64
	BodyFontSize   float64
	HUDFontSize    float64
}

// EffectsConfig tunes the death burst
type EffectsConfig struct {
	BurstParticles int           `yaml:"burst_particles"`
	BurstSpeed     float64       `yaml:"burst_speed"`
	BurstLifetime  time.Duration `yaml:"burst_lifetime"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	QuickStart bool   `yaml:"quick_start"` // Load the last players and skip welcome and registration
	LogLevel   string `yaml:"log_level"`
	Hitboxes   bool   `yaml:"hitboxes"`
}

// WindowConfig contains window options
type WindowConfig struct {
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Game GameConfig
var Registration RegistrationConfig
var UI UIConfig
var Effects EffectsConfig
var Debug DebugConfig
var Window WindowConfig

// Common colors
var (
	LightBlue = color.RGBA{R: 178, G: 198, B: 232, A: 255}
	DarkBlue  = color.RGBA{R: 30, G: 50, B: 90, A: 255}
	Charcoal  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Brown     = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	Red       = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Player = PlayerConfig{
		MovementSpeed:    0.15,
		FlapHorizImpulse: 1.5,
		MaxHorizSpeed:    5.0,
		MaxVertSpeed:     7.0,
		JumpSpeed:        3.0,

		KillScore:  2,
		DeathScore: -1,

		RespawnDelay: time.Second,

		CollisionWidth:  32,
		CollisionHeight: 32,

		StartX:       100,
		StartY:       600,
		StartSpacing: 100,
	}

	Physics = PhysicsConfig{
		Gravity:       0.2,
		CeilingBounce: 3.0,
		LandedNudge:   1.0,
		BumpPush:      1.0,
		BumpSpeed:     0.5,
		OffFieldX:     -100,
		OffFieldY:     -100,
	}

	Game = GameConfig{
		GoalScore:        3,
		Rounds:           8,
		Maps:             []string{"map1.tmx", "map2.tmx", "map3.tmx", "map4.tmx", "map5.tmx"},
		WelcomeDuration:  time.Second,
		RoundEndPause:    time.Second,
		BlackoutDuration: time.Second,
	}

	Registration = RegistrationConfig{
		Avatars: map[string]string{
			"Wayne":    "bat.png",
			"Quad":     "box.png",
			"Quackers": "duck.png",
			"Glorb":    "spaceship.png",
			"Clark":    "super.png",
			"Wright":   "biplane.png",
			"Luna":     "moon.png",
			"Crystal":  "snowflake.png",
			"Plumb":    "plunger.png",
			"Scooter":  "doghouse.png",
			"Melon":    "watermellon.png",
			"Centauri": "star.png",
		},
		SaveItem: "last_players",
	}

	UI = UIConfig{
		Background:  LightBlue,
		HeaderColor: DarkBlue,
		BodyColor:   Charcoal,
		WallColor:   Brown,
		HazardColor: Red,

		TitleFontSize:  100,
		HeaderFontSize: 48,
		BodyFontSize:   30,
		HUDFontSize:    20,
	}

	Effects = EffectsConfig{
		BurstParticles: 15,
		BurstSpeed:     5.0,
		BurstLifetime:  200 * time.Millisecond,
	}

	Debug = DebugConfig{
		QuickStart: false,
		LogLevel:   "info",
	}

	Window = WindowConfig{
		Title:      "Flapping",
		Fullscreen: false,
	}
}
