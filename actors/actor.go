// Package actors manages short-lived visual objects that own their lifetime.
package actors

import "github.com/hajimehoshi/ebiten/v2"

// Reapable is implemented by anything whose lifetime a List can manage.
type Reapable interface {
	// CanReap reports whether the object is finished and may be dropped.
	CanReap() bool
	// Kill marks the object finished so it is reaped on the next update.
	Kill()
}

// Actor is a dynamic object the game updates and draws each frame.
type Actor interface {
	Reapable
	Update(dt float64)
	Draw(screen *ebiten.Image)
}

// List is a container of actors. A List is itself an Actor, so lists nest.
type List struct {
	actors []Actor
}

func NewList() *List {
	return &List{}
}

// Add appends an actor.
func (l *List) Add(a Actor) {
	l.actors = append(l.actors, a)
}

// Len returns the number of live actors.
func (l *List) Len() int {
	return len(l.actors)
}

// Update advances every actor and drops those that can be reaped.
func (l *List) Update(dt float64) {
	kept := l.actors[:0]
	for _, a := range l.actors {
		a.Update(dt)
		if !a.CanReap() {
			kept = append(kept, a)
		}
	}
	clear(l.actors[len(kept):])
	l.actors = kept
}

func (l *List) Draw(screen *ebiten.Image) {
	for _, a := range l.actors {
		a.Draw(screen)
	}
}

// CanReap reports whether every actor in the list is finished.
func (l *List) CanReap() bool {
	for _, a := range l.actors {
		if !a.CanReap() {
			return false
		}
	}
	return true
}

// Kill kills every actor and empties the list.
func (l *List) Kill() {
	for _, a := range l.actors {
		a.Kill()
	}
	l.Clear()
}

// Clear drops every actor without killing it.
func (l *List) Clear() {
	clear(l.actors)
	l.actors = l.actors[:0]
}
