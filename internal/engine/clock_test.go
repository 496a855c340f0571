package engine

import "testing"

func TestClockRepeatingEvent(t *testing.T) {
	c := NewClock()
	fired := 0
	ev := c.AddEvent(EventConfig{Delay: 800, Loop: true, Callback: func() { fired++ }})

	c.Update(500)
	if fired != 0 {
		t.Fatalf("event fired early: %d", fired)
	}
	c.Update(300)
	if fired != 1 {
		t.Fatalf("expected 1 firing at 800ms, got %d", fired)
	}
	c.Update(1600)
	if fired != 3 {
		t.Fatalf("expected 3 firings at 2400ms, got %d", fired)
	}
	if ev.Fired() != 3 {
		t.Errorf("Fired() = %d, expected 3", ev.Fired())
	}
	if c.Active() != 1 {
		t.Errorf("looping event should stay active, Active() = %d", c.Active())
	}
}

func TestClockOneShotEvent(t *testing.T) {
	c := NewClock()
	fired := 0
	ev := c.AddEvent(EventConfig{Delay: 100, Callback: func() { fired++ }})

	c.Update(250)
	if fired != 1 {
		t.Errorf("one-shot event should fire exactly once, got %d", fired)
	}
	if !ev.Removed() {
		t.Error("one-shot event should be removed after firing")
	}
	if c.Active() != 0 {
		t.Errorf("Active() = %d, expected 0", c.Active())
	}
}

func TestClockRemoveFromCallback(t *testing.T) {
	c := NewClock()
	fired := 0
	var ev *TimerEvent
	ev = c.AddEvent(EventConfig{Delay: 10, Loop: true, Callback: func() {
		fired++
		c.Remove(ev)
	}})

	// Enough time for ten firings, but the first one removes the event.
	c.Update(100)
	if fired != 1 {
		t.Errorf("removed event kept firing: %d", fired)
	}
}

func TestClockReplaceFromCallback(t *testing.T) {
	c := NewClock()
	var current *TimerEvent
	replacements := 0

	var tick func()
	tick = func() {
		c.Remove(current)
		current = c.AddEvent(EventConfig{Delay: 50, Loop: true, Callback: tick})
		replacements++
	}
	current = c.AddEvent(EventConfig{Delay: 100, Loop: true, Callback: tick})

	for i := 0; i < 20; i++ {
		c.Update(10)
		if c.Active() != 1 {
			t.Fatalf("frame %d: expected exactly one live event, got %d", i, c.Active())
		}
	}
	// First firing at 100ms, then every 50ms counted from the frame after replacement.
	if replacements < 2 {
		t.Errorf("expected at least 2 replacements, got %d", replacements)
	}
	if current.Delay() != 50 {
		t.Errorf("current delay = %f, expected 50", current.Delay())
	}
}

func TestClockAddDuringUpdateWaitsForNextFrame(t *testing.T) {
	c := NewClock()
	inner := 0
	c.AddEvent(EventConfig{Delay: 10, Callback: func() {
		c.AddEvent(EventConfig{Delay: 1, Callback: func() { inner++ }})
	}})

	c.Update(10)
	if inner != 0 {
		t.Error("event added during Update should not fire in the same frame")
	}
	c.Update(1)
	if inner != 1 {
		t.Errorf("event added during Update should fire next frame, fired %d", inner)
	}
}

func TestClockZeroDelayIsClamped(t *testing.T) {
	c := NewClock()
	fired := 0
	c.AddEvent(EventConfig{Delay: 0, Loop: true, Callback: func() { fired++ }})
	c.Update(5)
	if fired != 5 {
		t.Errorf("zero delay should clamp to 1ms, got %d firings in 5ms", fired)
	}
}

func TestClockRemoveAll(t *testing.T) {
	c := NewClock()
	a := c.AddEvent(EventConfig{Delay: 10, Loop: true})
	b := c.AddEvent(EventConfig{Delay: 20, Loop: true})
	c.RemoveAll()
	if !a.Removed() || !b.Removed() || c.Active() != 0 {
		t.Error("RemoveAll should cancel every event")
	}
	if c.Now() != 0 {
		t.Errorf("Now() = %f, expected 0", c.Now())
	}
}
