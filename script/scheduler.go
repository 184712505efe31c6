// Package script runs cooperative, frame-stepped scripts.
//
// A script is a Task: an explicit resumable object that keeps its own locals
// as fields and reports whether it suspended or completed. The Scheduler
// resumes every pooled task once per Tick, so long-lived sequences (a death
// and respawn, the registration protocol, the game flow) can span many
// frames without blocking the frame loop. Everything runs on the caller's
// goroutine; nothing here is safe for concurrent use.
package script

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Status is the outcome of a single Resume.
type Status int

const (
	Suspended Status = iota
	Completed
)

func (s Status) String() string {
	if s == Completed {
		return "Completed"
	}
	return "Suspended"
}

// Task is a suspendable computation. Resume runs it up to its next
// suspension point. Returning an error terminates the task.
type Task interface {
	Resume() (Status, error)
}

// Scheduler is a pool of tasks advanced once per frame.
type Scheduler struct {
	pool []Task
	done []bool
	// gen changes on every Clear, so a pass can tell its pool was replaced.
	gen int
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule resumes t once right away so any logic before its first
// suspension takes effect this frame. A task that completes (or fails) on
// that first resume is never pooled.
func (s *Scheduler) Schedule(t Task) error {
	status, err := resume(t)
	if err != nil {
		log.Error("script failed on first resume", "err", err)
		return err
	}
	if status == Completed {
		return nil
	}
	s.pool = append(s.pool, t)
	return nil
}

// Tick resumes every pooled task exactly once, in scheduling order. Tasks
// that complete are removed after the pass. A failing task is removed and
// reported without stopping the others; the failures are joined into the
// returned error. Tasks scheduled during the pass already had their first
// resume inside Schedule and wait for the next Tick.
func (s *Scheduler) Tick() error {
	n := len(s.pool)
	if n == 0 {
		return nil
	}
	if cap(s.done) < n {
		s.done = make([]bool, n)
	}
	done := s.done[:n]
	clear(done)

	gen := s.gen
	var errs []error
	for i := 0; i < n; i++ {
		status, err := resume(s.pool[i])
		if err != nil {
			log.Error("script failed", "err", err)
			errs = append(errs, err)
			done[i] = true
		} else {
			done[i] = status == Completed
		}
		if s.gen != gen {
			// A task cleared the pool. Whatever is pooled now was scheduled
			// after the clear and already had its first resume.
			return errors.Join(errs...)
		}
	}

	kept := s.pool[:0]
	for i := 0; i < n; i++ {
		if !done[i] {
			kept = append(kept, s.pool[i])
		}
	}
	kept = append(kept, s.pool[n:]...)
	for i := len(kept); i < len(s.pool); i++ {
		s.pool[i] = nil
	}
	s.pool = kept

	return errors.Join(errs...)
}

// Len returns the number of pooled tasks.
func (s *Scheduler) Len() int {
	return len(s.pool)
}

// Clear discards every pooled task.
func (s *Scheduler) Clear() {
	clear(s.pool)
	s.pool = s.pool[:0]
	s.gen++
}

func resume(t Task) (status Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			status = Completed
			err = fmt.Errorf("script panic: %v", r)
		}
	}()
	return t.Resume()
}
