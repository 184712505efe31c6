package script

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// counter suspends n times before completing, recording every resume.
type counter struct {
	n       int
	resumes int
}

func (c *counter) Resume() (Status, error) {
	c.resumes++
	if c.resumes > c.n {
		return Completed, nil
	}
	return Suspended, nil
}

func TestScheduleRunsFirstStepImmediately(t *testing.T) {
	s := NewScheduler()
	ran := false
	if err := s.Schedule(Do(func() { ran = true })); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("Schedule should resume the task once")
	}
	if s.Len() != 0 {
		t.Errorf("completed task pooled: Len() = %d", s.Len())
	}
}

func TestTickResumesEachTaskOnce(t *testing.T) {
	s := NewScheduler()
	a := &counter{n: 2}
	b := &counter{n: 5}
	s.Schedule(a)
	s.Schedule(b)

	for i := 0; i < 2; i++ {
		if err := s.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if a.resumes != 3 {
		t.Errorf("a resumes = %d, want 3", a.resumes)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d after a completes, want 1", s.Len())
	}
	if b.resumes != 3 {
		t.Errorf("b resumes = %d, want 3", b.resumes)
	}
}

func TestTickOrderAndRemovalDoNotPerturbIteration(t *testing.T) {
	s := NewScheduler()
	var order []string
	mk := func(name string, suspends int) Task {
		n := 0
		return Func(func() (Status, error) {
			if n > 0 {
				order = append(order, name)
			}
			n++
			if n > suspends {
				return Completed, nil
			}
			return Suspended, nil
		})
	}
	s.Schedule(mk("a", 1))
	s.Schedule(mk("b", 3))
	s.Schedule(mk("c", 1))

	s.Tick()
	s.Tick()

	want := []string{"a", "b", "c", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTaskScheduledDuringTickWaitsForNextTick(t *testing.T) {
	s := NewScheduler()
	child := &counter{n: 3}
	spawned := false
	s.Schedule(Func(func() (Status, error) {
		if !spawned {
			spawned = true
			return Suspended, nil
		}
		s.Schedule(child)
		return Completed, nil
	}))

	s.Tick()
	if child.resumes != 1 {
		t.Errorf("child resumes = %d after spawning tick, want 1", child.resumes)
	}
	s.Tick()
	if child.resumes != 2 {
		t.Errorf("child resumes = %d, want 2", child.resumes)
	}
}

func TestFailingTaskIsIsolated(t *testing.T) {
	s := NewScheduler()
	boom := errors.New("boom")
	panicky := &counter{n: 10}
	first := true

	s.Schedule(Func(func() (Status, error) {
		if first {
			first = false
			return Suspended, nil
		}
		return Suspended, boom
	}))
	s.Schedule(Func(func() (Status, error) {
		if panicky.resumes > 0 {
			panic("bad script")
		}
		panicky.resumes++
		return Suspended, nil
	}))
	other := &counter{n: 10}
	s.Schedule(other)

	err := s.Tick()
	if !errors.Is(err, boom) {
		t.Errorf("Tick() error = %v, want it to wrap boom", err)
	}
	if other.resumes != 2 {
		t.Errorf("healthy task resumes = %d, want 2", other.resumes)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want only the healthy task", s.Len())
	}
}

// Each guard is released by the outside world between ticks, the way input
// callbacks release the registration script.
func TestSuspensionPointsNeedExtraTicks(t *testing.T) {
	s := NewScheduler()
	flags := make([]bool, 3)
	steps := make([]Task, 0, len(flags))
	for i := range flags {
		steps = append(steps, WaitUntil(func() bool { return flags[i] }))
	}
	finished := false
	steps = append(steps, Do(func() { finished = true }))
	s.Schedule(Sequence(steps...))

	ticks := 0
	for i := range flags {
		flags[i] = true
		s.Tick()
		ticks++
	}
	for !finished {
		s.Tick()
		ticks++
		if ticks > 10 {
			t.Fatal("sequence never finished")
		}
	}
	if ticks < len(flags) {
		t.Errorf("finished after %d ticks, want at least %d", ticks, len(flags))
	}
	if s.Len() != 0 {
		t.Error("finished sequence still pooled")
	}
}

func TestWaitUntilNonNil(t *testing.T) {
	var latch *int
	a := WaitUntilNonNil(func() *int { return latch })

	if st, _ := a.Resume(); st != Suspended {
		t.Fatal("expected suspension on nil")
	}
	if a.Value() != nil {
		t.Error("Value() should be nil before completion")
	}
	v := 7
	latch = &v
	if st, _ := a.Resume(); st != Completed {
		t.Fatal("expected completion on non-nil")
	}
	if got := *a.Value(); got != 7 {
		t.Errorf("Value() = %d, want 7", got)
	}
}

func TestSleepStartsAtFirstResume(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	task := Sleep(clock, time.Second)

	// time passing before the first resume does not count
	clock.Advance(5 * time.Second)

	tests := []struct {
		advance time.Duration
		want    Status
	}{
		{0, Suspended},
		{500 * time.Millisecond, Suspended},
		{499 * time.Millisecond, Suspended},
		{time.Millisecond, Completed},
	}
	for i, tt := range tests {
		clock.Advance(tt.advance)
		got, err := task.Resume()
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("step %d: Resume() = %v, want %v", i, got, tt.want)
		}
	}
}

func TestZeroSleepCompletesImmediately(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewScheduler()
	done := false
	s.Schedule(Sequence(Sleep(clock, 0), Do(func() { done = true })))
	if !done || s.Len() != 0 {
		t.Errorf("zero sleep should not suspend: done=%v Len=%d", done, s.Len())
	}
}

func TestWaiter(t *testing.T) {
	var w Waiter
	if blocked, _ := w.Blocked(); blocked {
		t.Fatal("empty waiter must not block")
	}
	ready := false
	w.Wait(WaitUntil(func() bool { return ready }))
	if blocked, _ := w.Blocked(); !blocked {
		t.Fatal("expected block")
	}
	ready = true
	if blocked, _ := w.Blocked(); blocked {
		t.Fatal("expected release")
	}
	if blocked, _ := w.Blocked(); blocked {
		t.Fatal("released waiter must stay released")
	}
}

func TestClear(t *testing.T) {
	s := NewScheduler()
	s.Schedule(&counter{n: 3})
	s.Schedule(&counter{n: 3})
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear", s.Len())
	}
	if err := s.Tick(); err != nil {
		t.Error(err)
	}
}

func TestClearDuringTick(t *testing.T) {
	s := NewScheduler()
	later := &counter{n: 2}
	next := &counter{n: 2}
	other := &counter{n: 5}

	resumes := 0
	clearing := Func(func() (Status, error) {
		resumes++
		if resumes == 1 {
			return Suspended, nil
		}
		s.Clear()
		s.Schedule(later)
		s.Schedule(next)
		return Completed, nil
	})
	s.Schedule(clearing)
	s.Schedule(other)

	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d after clearing mid-pass, want 2", s.Len())
	}
	if later.resumes != 1 || next.resumes != 1 {
		t.Errorf("resumes = %d, %d; tasks scheduled after Clear run only their first step", later.resumes, next.resumes)
	}
	if other.resumes != 1 {
		t.Errorf("cleared task resumed %d times, want only its first step", other.resumes)
	}

	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if later.resumes != 2 || next.resumes != 2 {
		t.Errorf("resumes = %d, %d after next tick, want 2", later.resumes, next.resumes)
	}
}
