package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that points at a config file.
const EnvPath = "FLAPPING_CONFIG"

const fileName = "flapping.yaml"

// File is the on-disk overlay. Sections left out of the file keep their
// defaults; fields left out of a section keep theirs too.
type File struct {
	Player       *PlayerConfig       `yaml:"player"`
	Physics      *PhysicsConfig      `yaml:"physics"`
	Game         *GameConfig         `yaml:"game"`
	Registration *RegistrationConfig `yaml:"registration"`
	Effects      *EffectsConfig      `yaml:"effects"`
	Debug        *DebugConfig        `yaml:"debug"`
	Window       *WindowConfig       `yaml:"window"`
}

// Load applies the first config file found.
// Search order: $FLAPPING_CONFIG -> ~/.flapping/flapping.yaml -> ./flapping.yaml
// It returns the path that was applied, or "" when none exists. A file
// named by the environment variable must exist.
func Load() (string, error) {
	if custom := os.Getenv(EnvPath); custom != "" {
		if err := Apply(custom); err != nil {
			return "", err
		}
		return custom, nil
	}

	for _, path := range searchPaths() {
		err := Apply(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		return path, nil
	}
	return "", nil
}

// Apply reads a YAML file and overlays it onto the globals.
func Apply(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := ApplyYAML(data); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// ApplyYAML overlays YAML onto the globals. Nothing changes if the
// document is malformed.
func ApplyYAML(data []byte) error {
	player, physics, game := Player, Physics, Game
	reg, effects, debug, window := Registration, Effects, Debug, Window
	// maps decode into the existing value, so give the overlay its own copy
	reg.Avatars = nil

	f := File{
		Player:       &player,
		Physics:      &physics,
		Game:         &game,
		Registration: &reg,
		Effects:      &effects,
		Debug:        &debug,
		Window:       &window,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	if reg.Avatars == nil {
		reg.Avatars = Registration.Avatars
	}
	if err := validate(game, reg); err != nil {
		return err
	}

	Player, Physics, Game = player, physics, game
	Registration, Effects, Debug, Window = reg, effects, debug, window
	return nil
}

func validate(game GameConfig, reg RegistrationConfig) error {
	if len(game.Maps) == 0 {
		return errors.New("game.maps must name at least one map")
	}
	if game.Rounds < 1 {
		return fmt.Errorf("game.rounds must be positive, got %d", game.Rounds)
	}
	if len(reg.Avatars) == 0 {
		return errors.New("registration.avatars must not be empty")
	}
	return nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".flapping", fileName))
	}
	return append(paths, fileName)
}
