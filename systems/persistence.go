package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/input"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

var (
	ErrUnknownAvatar   = errors.New("unknown player name")
	ErrDeviceMissing   = errors.New("joystick not connected")
	ErrIncompleteEntry = errors.New("player is missing a control")
)

// savedControl is one bound input on disk. A joystick is stored as its
// position in the list of connected gamepads, since gamepad IDs are not
// stable across runs. Pad is nil for the keyboard.
type savedControl struct {
	Kind string `json:"kind"`
	Pad  *int   `json:"pad,omitempty"`
	Code int    `json:"code"`
}

type savedPlayer struct {
	Name  string        `json:"name"`
	Flap  *savedControl `json:"flap"`
	Left  *savedControl `json:"left"`
	Right *savedControl `json:"right"`
}

// OpenStore opens the per-user item store.
func OpenStore() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: "flapping",
	})
	if err != nil {
		return nil, fmt.Errorf("open data store: %w", err)
	}
	return m, nil
}

// SavePlayers writes the complete entries as the last player list.
func SavePlayers(store components.ItemStore, entries []*components.RegistrationEntry, pads []ebiten.GamepadID) error {
	saved := make([]savedPlayer, 0, len(entries))
	for _, e := range entries {
		if !e.Complete() {
			continue
		}
		p := savedPlayer{Name: e.Name}
		var err error
		if p.Flap, err = encodeControl(e.Flap, pads); err != nil {
			return fmt.Errorf("save %s: %w", e.Name, err)
		}
		if p.Left, err = encodeControl(e.Left, pads); err != nil {
			return fmt.Errorf("save %s: %w", e.Name, err)
		}
		if p.Right, err = encodeControl(e.Right, pads); err != nil {
			return fmt.Errorf("save %s: %w", e.Name, err)
		}
		saved = append(saved, p)
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("encode players: %w", err)
	}
	if err := store.SaveItem(cfg.Registration.SaveItem, data); err != nil {
		return fmt.Errorf("save players: %w", err)
	}
	return nil
}

// LoadPlayers reads the last player list back as complete registration
// entries. A missing item is an empty list. If any record is invalid the
// whole list is rejected.
func LoadPlayers(store components.ItemStore, pads []ebiten.GamepadID) ([]*components.RegistrationEntry, error) {
	data, err := store.LoadItem(cfg.Registration.SaveItem)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var saved []savedPlayer
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse players: %w", err)
	}

	entries := make([]*components.RegistrationEntry, 0, len(saved))
	for i, p := range saved {
		if _, ok := cfg.Registration.Avatars[p.Name]; !ok {
			return nil, fmt.Errorf("player %d %q: %w", i, p.Name, ErrUnknownAvatar)
		}
		if p.Flap == nil || p.Left == nil || p.Right == nil {
			return nil, fmt.Errorf("player %d %q: %w", i, p.Name, ErrIncompleteEntry)
		}
		entry := &components.RegistrationEntry{Name: p.Name}
		for _, c := range []struct {
			dst **input.Event
			src *savedControl
		}{{&entry.Flap, p.Flap}, {&entry.Left, p.Left}, {&entry.Right, p.Right}} {
			evt, err := decodeControl(c.src, pads)
			if err != nil {
				return nil, fmt.Errorf("player %d %q: %w", i, p.Name, err)
			}
			*c.dst = evt
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// loadLastPlayers is LoadPlayers for the session store, logging and
// discarding anything invalid.
func loadLastPlayers(session *components.SessionData) []*components.RegistrationEntry {
	if session.Store == nil {
		return nil
	}
	entries, err := LoadPlayers(session.Store, session.GamepadIDs())
	if err != nil {
		log.Warn("discarding saved players", "err", err)
		return nil
	}
	return entries
}

var controlKinds = map[input.Kind]string{
	input.KeyPress:       "key",
	input.JoyButtonPress: "button",
	input.JoyHatMotion:   "hat",
}

func encodeControl(evt *input.Event, pads []ebiten.GamepadID) (*savedControl, error) {
	kind, ok := controlKinds[evt.Kind]
	if !ok {
		return nil, fmt.Errorf("cannot save %s event", evt.Kind)
	}
	c := &savedControl{Kind: kind, Code: evt.Code}
	if evt.Device.IsJoystick() {
		pad := slices.Index(pads, evt.Device.GamepadID())
		if pad < 0 {
			return nil, ErrDeviceMissing
		}
		c.Pad = &pad
	}
	return c, nil
}

func decodeControl(c *savedControl, pads []ebiten.GamepadID) (*input.Event, error) {
	dev := input.Keyboard
	if c.Pad != nil {
		if *c.Pad < 0 || *c.Pad >= len(pads) {
			return nil, fmt.Errorf("pad %d: %w", *c.Pad, ErrDeviceMissing)
		}
		dev = input.Joystick(pads[*c.Pad])
	}

	var evt input.Event
	switch c.Kind {
	case "key":
		if c.Pad != nil {
			return nil, fmt.Errorf("key on a joystick: %w", ErrIncompleteEntry)
		}
		evt = input.Key(input.KeyPress, ebiten.Key(c.Code))
	case "button":
		if c.Pad == nil {
			return nil, fmt.Errorf("button without a joystick: %w", ErrDeviceMissing)
		}
		evt = input.JoyButton(input.JoyButtonPress, dev, c.Code)
	case "hat":
		if c.Pad == nil {
			return nil, fmt.Errorf("hat without a joystick: %w", ErrDeviceMissing)
		}
		evt = input.JoyHat(dev, 0, 0)
	default:
		return nil, fmt.Errorf("control kind %q: %w", c.Kind, ErrIncompleteEntry)
	}
	return &evt, nil
}
