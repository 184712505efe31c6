package components

import (
	"github.com/automoto/flapping/input"
	"github.com/yohamta/donburi"
)

// RegistrationEntry is a player during the registration phase.
type RegistrationEntry struct {
	Name  string
	Flap  *input.Event
	Left  *input.Event
	Right *input.Event
}

// Complete reports whether the entry has all three controls bound.
// A hat entry has Left and Right set to the same event.
func (r *RegistrationEntry) Complete() bool {
	return r.Flap != nil && r.Left != nil && r.Right != nil
}

// IsHat reports whether the entry steers with a joystick hat.
func (r *RegistrationEntry) IsHat() bool {
	return r.Left != nil && r.Left.Kind == input.JoyHatMotion
}

// Uses reports whether evt matches any control bound to the entry.
func (r *RegistrationEntry) Uses(evt input.Event) bool {
	id := evt.ID()
	for _, bound := range []*input.Event{r.Flap, r.Left, r.Right} {
		if bound != nil && bound.ID() == id {
			return true
		}
	}
	return false
}

// RegistrationData is shared between the raw input callbacks and the
// registration script. It is a singleton component.
type RegistrationData struct {
	Entries []*RegistrationEntry
	// LastInput latches the most recent unclaimed press. A second press in
	// the same tick overwrites the first.
	LastInput *input.Event
	// Msg is the current prompt.
	Msg string
	// Warning is shown under the prompt until the next accepted input.
	Warning string
	Done    bool
	Quit    bool
}

var Registration = donburi.NewComponentType[RegistrationData]()

// Take returns the latched input and clears the latch.
func (r *RegistrationData) Take() *input.Event {
	evt := r.LastInput
	r.LastInput = nil
	return evt
}

// Complete returns the entries that have every control bound.
func (r *RegistrationData) Complete() []*RegistrationEntry {
	var out []*RegistrationEntry
	for _, e := range r.Entries {
		if e.Complete() {
			out = append(out, e)
		}
	}
	return out
}

// UsesName reports whether another entry than skip already has name.
func (r *RegistrationData) UsesName(name string, skip *RegistrationEntry) bool {
	for _, e := range r.Entries {
		if e != skip && e.Name == name {
			return true
		}
	}
	return false
}

// FlapDeviceTaken reports whether a joystick is already some entry's flap device.
func (r *RegistrationData) FlapDeviceTaken(dev input.Device) bool {
	if !dev.IsJoystick() {
		return false
	}
	for _, e := range r.Entries {
		if e.Flap != nil && e.Flap.Device == dev {
			return true
		}
	}
	return false
}
