// Package input maps raw keyboard and joystick notifications to canonical,
// hashable event identities. Gameplay code binds handlers to those
// identities and never looks at framework key codes directly.
package input

import (
	"fmt"

	"github.com/automoto/flapping/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Kind tags the variant of an Event.
type Kind int

const (
	KeyPress Kind = iota
	KeyRelease
	JoyButtonPress
	JoyButtonRelease
	JoyHatMotion
)

func (k Kind) String() string {
	switch k {
	case KeyPress:
		return "KeyPress"
	case KeyRelease:
		return "KeyRelease"
	case JoyButtonPress:
		return "JoyButtonPress"
	case JoyButtonRelease:
		return "JoyButtonRelease"
	case JoyHatMotion:
		return "JoyHatMotion"
	default:
		return "Unknown"
	}
}

// IsPress reports whether the kind is a press (or hat motion, which has no release).
func (k Kind) IsPress() bool {
	return k == KeyPress || k == JoyButtonPress || k == JoyHatMotion
}

// Device identifies the physical source of an event.
// The keyboard is a single shared device; joysticks are identified by gamepad ID.
type Device int

// Keyboard is the device of every key event.
const Keyboard Device = -1

// Joystick returns the device for a connected gamepad.
func Joystick(id ebiten.GamepadID) Device {
	return Device(id)
}

// IsJoystick reports whether d refers to a gamepad.
func (d Device) IsJoystick() bool {
	return d != Keyboard
}

// GamepadID returns the gamepad behind a joystick device.
func (d Device) GamepadID() ebiten.GamepadID {
	return ebiten.GamepadID(d)
}

// Event is a single raw input notification.
type Event struct {
	Kind   Kind
	Device Device
	// Code is the ebiten.Key for key events and the button index for joystick buttons.
	Code int
	// HatX and HatY are only meaningful for JoyHatMotion.
	HatX, HatY int
}

// ID is the canonical identity of an event, suitable as a map key.
type ID struct {
	Kind   Kind
	Device Device
	Code   int
}

// Key builds a key event.
func Key(kind Kind, key ebiten.Key) Event {
	return Event{Kind: kind, Device: Keyboard, Code: int(key)}
}

// JoyButton builds a joystick button event.
func JoyButton(kind Kind, dev Device, button int) Event {
	return Event{Kind: kind, Device: dev, Code: button}
}

// JoyHat builds a hat motion event.
func JoyHat(dev Device, hatX, hatY int) Event {
	return Event{Kind: JoyHatMotion, Device: dev, HatX: hatX, HatY: hatY}
}

// ID returns the canonical identity. A hat has one identity per device
// regardless of the direction it reports.
func (e Event) ID() ID {
	if e.Kind == JoyHatMotion {
		return ID{Kind: JoyHatMotion, Device: e.Device}
	}
	return ID{Kind: e.Kind, Device: e.Device, Code: e.Code}
}

// Release derives the matching release event of a press.
func (e Event) Release() (Event, bool) {
	switch e.Kind {
	case KeyPress:
		e.Kind = KeyRelease
		return e, true
	case JoyButtonPress:
		e.Kind = JoyButtonRelease
		return e, true
	}
	return Event{}, false
}

// IsKey reports whether e is a key press of the given key.
func (e Event) IsKey(key ebiten.Key) bool {
	return e.Kind == KeyPress && e.Code == int(key)
}

// IsReserved reports whether e is one of the keys the registration
// protocol treats as interrupts (quit, finalize, remove).
func (e Event) IsReserved() bool {
	in := config.Input
	return e.IsKey(in.QuitKey) || e.IsKey(in.FinalizeKey) || e.IsKey(in.RemoveKey)
}

func (e Event) String() string {
	switch e.Kind {
	case KeyPress, KeyRelease:
		return ebiten.Key(e.Code).String()
	case JoyButtonPress, JoyButtonRelease:
		return fmt.Sprintf("JoyBtn%d", e.Code)
	case JoyHatMotion:
		return "JoyHat"
	}
	return "?"
}
