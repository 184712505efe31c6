package systems

import (
	"fmt"

	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/input"
	"github.com/automoto/flapping/script"
	"github.com/automoto/flapping/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type registrationStep int

const (
	flapWait registrationStep = iota
	leftWait
	rightWait
)

// registration walks each new player through binding flap, left and right.
// It reads presses from the registration latch, one per resume at most.
type registration struct {
	script.Waiter
	reg   *components.RegistrationData
	step  registrationStep
	entry *components.RegistrationEntry
	next  *script.Await[input.Event]
}

// NewRegistration returns the registration task for e's registration data.
// The task completes once the players are finalized or quit is pressed.
func NewRegistration(e *ecs.ECS) script.Task {
	return &registration{reg: getRegistration(e)}
}

func (r *registration) Resume() (script.Status, error) {
	for {
		blocked, err := r.Blocked()
		if err != nil {
			return script.Completed, err
		}
		if blocked {
			return script.Suspended, nil
		}
		if r.next != nil {
			evt := *r.next.Value()
			r.next = nil
			if r.handle(evt) {
				return script.Completed, nil
			}
		}
		r.prompt()
		r.next = script.WaitUntilNonNil(r.reg.Take)
		r.Wait(r.next)
	}
}

// handle applies one press and reports whether registration is over.
func (r *registration) handle(evt input.Event) bool {
	reg := r.reg
	switch {
	case evt.IsKey(cfg.Input.QuitKey):
		reg.Quit = true
		reg.Done = true
		return true
	case evt.IsKey(cfg.Input.FinalizeKey):
		complete := reg.Complete()
		if len(complete) == 0 {
			reg.Warning = "Register at least one player first"
			return false
		}
		reg.Entries = complete
		reg.Done = true
		return true
	case evt.IsKey(cfg.Input.RemoveKey):
		if n := len(reg.Entries); n > 0 {
			log.Debug("removed player", "name", reg.Entries[n-1].Name)
			reg.Entries = reg.Entries[:n-1]
		}
		reg.Warning = ""
		r.step = flapWait
		r.entry = nil
		return false
	}

	switch r.step {
	case flapWait:
		r.acceptFlap(evt)
	case leftWait:
		if !r.sameDevice(evt) {
			return false
		}
		r.entry.Left = &evt
		if evt.Kind == input.JoyHatMotion {
			r.entry.Right = &evt
			r.finishEntry()
			return false
		}
		reg.Warning = ""
		r.step = rightWait
	case rightWait:
		if !r.sameDevice(evt) {
			return false
		}
		if evt.Kind == input.JoyHatMotion {
			reg.Warning = "Press a button for right"
			return false
		}
		r.entry.Right = &evt
		r.finishEntry()
	}
	return false
}

func (r *registration) acceptFlap(evt input.Event) {
	reg := r.reg
	if evt.Kind == input.JoyHatMotion {
		reg.Warning = "Flap needs a button, not a hat"
		return
	}
	if reg.FlapDeviceTaken(evt.Device) {
		reg.Warning = "That joystick already has a player"
		return
	}
	name := freeName(reg)
	if name == "" {
		reg.Warning = "No more players available"
		return
	}
	r.entry = &components.RegistrationEntry{Name: name, Flap: &evt}
	reg.Entries = append(reg.Entries, r.entry)
	reg.Warning = ""
	r.step = leftWait
}

func (r *registration) sameDevice(evt input.Event) bool {
	if evt.Device != r.entry.Flap.Device {
		r.reg.Warning = fmt.Sprintf("%s must use the same device as flap", r.entry.Name)
		return false
	}
	return true
}

func (r *registration) finishEntry() {
	log.Info("registered player", "name", r.entry.Name,
		"flap", r.entry.Flap, "left", r.entry.Left, "right", r.entry.Right)
	r.reg.Warning = ""
	r.step = flapWait
	r.entry = nil
}

func (r *registration) prompt() {
	switch r.step {
	case flapWait:
		r.reg.Msg = fmt.Sprintf("Player %d: press flap", len(r.reg.Entries)+1)
	case leftWait:
		r.reg.Msg = fmt.Sprintf("%s: press left, or move the hat", r.entry.Name)
	case rightWait:
		r.reg.Msg = fmt.Sprintf("%s: press right", r.entry.Name)
	}
}

// OnRegistrationEvent receives every press during registration. Presses
// bound to an entry are swallowed, and a complete entry's flap press
// switches that player to the next free name. Anything else is latched
// for the registration task, replacing an earlier unclaimed press.
func OnRegistrationEvent(e *ecs.ECS, evt input.Event) {
	reg := getRegistration(e)
	if reg.Done {
		return
	}
	for _, entry := range reg.Entries {
		if !entry.Uses(evt) {
			continue
		}
		if entry.Complete() && entry.Flap.ID() == evt.ID() {
			cycleName(reg, entry)
		}
		return
	}
	reg.LastInput = &evt
}

// freeName returns the first roster name no entry has, or "" if all are taken.
func freeName(reg *components.RegistrationData) string {
	for _, name := range cfg.Registration.Roster() {
		if !reg.UsesName(name, nil) {
			return name
		}
	}
	return ""
}

func cycleName(reg *components.RegistrationData, entry *components.RegistrationEntry) {
	roster := cfg.Registration.Roster()
	at := 0
	for i, name := range roster {
		if name == entry.Name {
			at = i
			break
		}
	}
	for k := 1; k < len(roster); k++ {
		name := roster[(at+k)%len(roster)]
		if !reg.UsesName(name, entry) {
			entry.Name = name
			return
		}
	}
}

// FinalizeRegistration saves the complete entries, creates a player for
// each and binds their controls in the gameplay dispatch table.
func FinalizeRegistration(e *ecs.ECS) {
	reg := getRegistration(e)
	session := getSession(e)
	entries := reg.Complete()

	if session.Store != nil {
		if err := SavePlayers(session.Store, entries, session.GamepadIDs()); err != nil {
			log.Warn("could not save players", "err", err)
		}
	}

	session.Bindings.Reset()
	for i, entry := range entries {
		x, y := spawnPosition(nil, i)
		p := factory.CreatePlayer(e, entry.Name, cfg.Registration.Avatars[entry.Name], i, x, y)
		bindControls(session.Bindings, p, entry)
	}
	session.Bindings.Bind(input.Key(input.KeyPress, cfg.Input.QuitKey).ID(), func(input.Event) {
		getMatch(e).Done = true
	})
	log.Info("registration finished", "players", len(entries))
}

func bindControls(b *input.Bindings, p *donburi.Entry, entry *components.RegistrationEntry) {
	b.Bind(entry.Flap.ID(), func(input.Event) { OnFlap(p) })

	if entry.IsHat() {
		b.Bind(entry.Left.ID(), func(evt input.Event) { OnHat(p, evt.HatX) })
		return
	}
	bindHold(b, *entry.Left, func() { OnLeft(p) }, func() { OnLeftRelease(p) })
	bindHold(b, *entry.Right, func() { OnRight(p) }, func() { OnRightRelease(p) })
}

// bindHold binds a press and its matching release.
func bindHold(b *input.Bindings, press input.Event, down, up func()) {
	b.Bind(press.ID(), func(input.Event) { down() })
	if release, ok := press.Release(); ok {
		b.Bind(release.ID(), func(input.Event) { up() })
	}
}
