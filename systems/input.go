package systems

import (
	"slices"

	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/input"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hat struct{ x, y int }

// InputPoller turns ebiten's per-frame input state into input.Events.
// Standard-layout D-pads are reported as one hat per gamepad, emitted only
// when its direction changes.
type InputPoller struct {
	// pads is kept in connection order.
	pads []ebiten.GamepadID
	hats map[ebiten.GamepadID]hat

	// Reusable slices to avoid allocations
	keys    []ebiten.Key
	ids     []ebiten.GamepadID
	std     []ebiten.StandardGamepadButton
	buttons []ebiten.GamepadButton
}

func NewInputPoller() *InputPoller {
	return &InputPoller{hats: make(map[ebiten.GamepadID]hat)}
}

// Gamepads returns the connected gamepads in the order they connected.
func (p *InputPoller) Gamepads() []ebiten.GamepadID {
	return p.pads
}

// Poll calls emit for every press, release and hat change since the last frame.
func (p *InputPoller) Poll(emit func(input.Event)) {
	p.trackGamepads()

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		emit(input.Key(input.KeyPress, k))
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		emit(input.Key(input.KeyRelease, k))
	}

	for _, id := range p.pads {
		dev := input.Joystick(id)
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			p.pollRaw(id, dev, emit)
			continue
		}

		p.std = inpututil.AppendJustPressedStandardGamepadButtons(id, p.std[:0])
		for _, b := range p.std {
			if !cfg.Input.IsHatButton(b) {
				emit(input.JoyButton(input.JoyButtonPress, dev, int(b)))
			}
		}
		p.std = inpututil.AppendJustReleasedStandardGamepadButtons(id, p.std[:0])
		for _, b := range p.std {
			if !cfg.Input.IsHatButton(b) {
				emit(input.JoyButton(input.JoyButtonRelease, dev, int(b)))
			}
		}

		h := readHat(id)
		if h != p.hats[id] {
			p.hats[id] = h
			emit(input.JoyHat(dev, h.x, h.y))
		}
	}
}

func (p *InputPoller) pollRaw(id ebiten.GamepadID, dev input.Device, emit func(input.Event)) {
	p.buttons = inpututil.AppendJustPressedGamepadButtons(id, p.buttons[:0])
	for _, b := range p.buttons {
		emit(input.JoyButton(input.JoyButtonPress, dev, int(b)))
	}
	p.buttons = inpututil.AppendJustReleasedGamepadButtons(id, p.buttons[:0])
	for _, b := range p.buttons {
		emit(input.JoyButton(input.JoyButtonRelease, dev, int(b)))
	}
}

func (p *InputPoller) trackGamepads() {
	p.ids = inpututil.AppendJustConnectedGamepadIDs(p.ids[:0])
	for _, id := range p.ids {
		log.Info("gamepad connected", "id", id, "name", ebiten.GamepadName(id))
		p.pads = append(p.pads, id)
	}
	p.pads = slices.DeleteFunc(p.pads, func(id ebiten.GamepadID) bool {
		if !inpututil.IsGamepadJustDisconnected(id) {
			return false
		}
		log.Info("gamepad disconnected", "id", id)
		delete(p.hats, id)
		return true
	})
}

func readHat(id ebiten.GamepadID) hat {
	var h hat
	pressed := func(b ebiten.StandardGamepadButton) bool {
		return ebiten.IsStandardGamepadButtonPressed(id, b)
	}
	if pressed(cfg.Input.HatLeft) {
		h.x--
	}
	if pressed(cfg.Input.HatRight) {
		h.x++
	}
	if pressed(cfg.Input.HatUp) {
		h.y--
	}
	if pressed(cfg.Input.HatDown) {
		h.y++
	}
	return h
}
