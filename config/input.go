package config

import "github.com/hajimehoshi/ebiten/v2"

// InputConfig holds the keys the game reserves and how gamepads are read
type InputConfig struct {
	// Reserved keys are interrupts during registration and never bindable.
	QuitKey     ebiten.Key
	FinalizeKey ebiten.Key
	RemoveKey   ebiten.Key

	// Hat lists the standard-layout D-pad buttons reported as a single
	// hat motion instead of separate buttons.
	HatLeft  ebiten.StandardGamepadButton
	HatRight ebiten.StandardGamepadButton
	HatUp    ebiten.StandardGamepadButton
	HatDown  ebiten.StandardGamepadButton
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		QuitKey:     ebiten.KeyEscape,
		FinalizeKey: ebiten.KeyEnter,
		RemoveKey:   ebiten.KeyF5,

		HatLeft:  ebiten.StandardGamepadButtonLeftLeft,
		HatRight: ebiten.StandardGamepadButtonLeftRight,
		HatUp:    ebiten.StandardGamepadButtonLeftTop,
		HatDown:  ebiten.StandardGamepadButtonLeftBottom,
	}
}

// IsHatButton reports whether b is one of the D-pad buttons read as a hat.
func (c InputConfig) IsHatButton(b ebiten.StandardGamepadButton) bool {
	return b == c.HatLeft || b == c.HatRight || b == c.HatUp || b == c.HatDown
}
