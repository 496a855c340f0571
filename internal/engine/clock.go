package engine

// EventConfig describes a timer event.
type EventConfig struct {
	Delay    float64 // Milliseconds between firings
	Loop     bool    // Repeat until removed
	Callback func()
}

// TimerEvent is a scheduled callback. Keep it to remove the schedule later.
type TimerEvent struct {
	id      uint64
	delay   float64
	elapsed float64
	loop    bool
	fn      func()
	removed bool
	fired   int
}

// ID returns the event's identity, unique within its clock.
func (e *TimerEvent) ID() uint64 {
	return e.id
}

// Delay returns the interval in milliseconds.
func (e *TimerEvent) Delay() float64 {
	return e.delay
}

// Removed reports whether the event will never fire again.
func (e *TimerEvent) Removed() bool {
	return e.removed
}

// Fired returns how many times the event has fired.
func (e *TimerEvent) Fired() int {
	return e.fired
}

// Clock drives timer events from frame time.
type Clock struct {
	now    float64
	nextID uint64
	events []*TimerEvent
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// minDelay keeps a zero or negative delay from spinning forever in one frame.
const minDelay = 1.0

// AddEvent schedules a callback. Events added during Update start counting next frame.
func (c *Clock) AddEvent(cfg EventConfig) *TimerEvent {
	delay := cfg.Delay
	if delay < minDelay {
		delay = minDelay
	}
	c.nextID++
	ev := &TimerEvent{
		id:    c.nextID,
		delay: delay,
		loop:  cfg.Loop,
		fn:    cfg.Callback,
	}
	c.events = append(c.events, ev)
	return ev
}

// Remove cancels an event. It will not fire again, even later in the current frame.
func (c *Clock) Remove(ev *TimerEvent) {
	if ev == nil {
		return
	}
	ev.removed = true
}

// RemoveAll cancels every event.
func (c *Clock) RemoveAll() {
	for _, ev := range c.events {
		ev.removed = true
	}
	c.events = nil
}

// Now returns milliseconds elapsed since the clock started.
func (c *Clock) Now() float64 {
	return c.now
}

// Active returns the number of live events.
func (c *Clock) Active() int {
	n := 0
	for _, ev := range c.events {
		if !ev.removed {
			n++
		}
	}
	return n
}

// Update advances time by dt milliseconds and fires due events in scheduling order.
func (c *Clock) Update(dt float64) {
	c.now += dt

	due := append([]*TimerEvent(nil), c.events...)
	for _, ev := range due {
		if ev.removed {
			continue
		}
		ev.elapsed += dt
		for !ev.removed && ev.elapsed >= ev.delay {
			ev.elapsed -= ev.delay
			ev.fired++
			if !ev.loop {
				ev.removed = true
			}
			if ev.fn != nil {
				ev.fn()
			}
		}
	}

	live := c.events[:0]
	for _, ev := range c.events {
		if !ev.removed {
			live = append(live, ev)
		}
	}
	for i := len(live); i < len(c.events); i++ {
		c.events[i] = nil
	}
	c.events = live
}
