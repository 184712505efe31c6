package script

import "time"

// Clock supplies wall-clock time to Sleep.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type waitUntil struct {
	pred func() bool
}

// WaitUntil suspends while pred is false. pred is checked once per resume,
// starting with the first one.
func WaitUntil(pred func() bool) Task {
	return &waitUntil{pred: pred}
}

func (w *waitUntil) Resume() (Status, error) {
	if w.pred() {
		return Completed, nil
	}
	return Suspended, nil
}

// Await suspends until its source yields a non-nil value, then holds it.
// It is the handshake between synchronous input callbacks, which fill a
// latch, and a script waiting on that latch.
type Await[T any] struct {
	f     func() *T
	value *T
}

// WaitUntilNonNil suspends while f returns nil.
func WaitUntilNonNil[T any](f func() *T) *Await[T] {
	return &Await[T]{f: f}
}

func (a *Await[T]) Resume() (Status, error) {
	v := a.f()
	if v == nil {
		return Suspended, nil
	}
	a.value = v
	return Completed, nil
}

// Value returns the first non-nil value, or nil before completion.
func (a *Await[T]) Value() *T {
	return a.value
}

type sleep struct {
	clock   Clock
	d       time.Duration
	end     time.Time
	started bool
}

// Sleep suspends until d has elapsed. The interval starts at the task's
// first actual resume, not when it was created or scheduled.
func Sleep(clock Clock, d time.Duration) Task {
	return &sleep{clock: clock, d: d}
}

func (s *sleep) Resume() (Status, error) {
	now := s.clock.Now()
	if !s.started {
		s.end = now.Add(s.d)
		s.started = true
	}
	if now.Before(s.end) {
		return Suspended, nil
	}
	return Completed, nil
}

type do struct {
	fn func()
}

// Do runs fn and completes on the same resume.
func Do(fn func()) Task {
	return &do{fn: fn}
}

func (d *do) Resume() (Status, error) {
	d.fn()
	return Completed, nil
}

// Func adapts a resume function to a Task.
type Func func() (Status, error)

func (f Func) Resume() (Status, error) { return f() }

type sequence struct {
	steps []Task
	i     int
}

// Sequence runs steps in order. Within one resume it keeps advancing until
// a step suspends, so consecutive synchronous steps cost no extra frames.
func Sequence(steps ...Task) Task {
	return &sequence{steps: steps}
}

func (s *sequence) Resume() (Status, error) {
	for s.i < len(s.steps) {
		status, err := s.steps[s.i].Resume()
		if err != nil {
			return Completed, err
		}
		if status == Suspended {
			return Suspended, nil
		}
		s.i++
	}
	return Completed, nil
}

// Waiter holds the wait a hand-written script is currently blocked on.
// Scripts written as state machines embed it and call Blocked at the top of
// Resume.
type Waiter struct {
	pending Task
}

// Wait makes t the pending wait. It is first resumed by the next Blocked call.
func (w *Waiter) Wait(t Task) {
	w.pending = t
}

// Blocked resumes the pending wait and reports whether it is still suspended.
func (w *Waiter) Blocked() (bool, error) {
	if w.pending == nil {
		return false, nil
	}
	status, err := w.pending.Resume()
	if err != nil {
		w.pending = nil
		return false, err
	}
	if status == Suspended {
		return true, nil
	}
	w.pending = nil
	return false, nil
}
