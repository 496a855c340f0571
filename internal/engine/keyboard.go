package engine

// Key identifies a keyboard key the engine understands.
type Key string

const (
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeySpace Key = "space"
	KeyEnter Key = "enter"
)

// Listener is a one-shot key-down subscription.
type Listener struct {
	key     Key
	fn      func()
	removed bool
}

// Keyboard tracks held keys and dispatches key-down events.
//
// Hosts with real key-release events call SetHeld. Hosts that only see
// presses (terminals) call Press and rely on the hold window: a key counts
// as held until holdWindow milliseconds pass without another press.
type Keyboard struct {
	now        float64
	holdWindow float64
	held       map[Key]bool
	lastPress  map[Key]float64
	pending    []Key
	listeners  []*Listener
}

// NewKeyboard creates a keyboard. holdWindow of 0 disables press-based holding.
func NewKeyboard(holdWindow float64) *Keyboard {
	return &Keyboard{
		holdWindow: holdWindow,
		held:       make(map[Key]bool),
		lastPress:  make(map[Key]float64),
	}
}

// Press records a key-down event. Listeners fire on the next dispatch.
func (k *Keyboard) Press(key Key) {
	k.lastPress[key] = k.now
	k.pending = append(k.pending, key)
}

// SetHeld sets the held state explicitly.
func (k *Keyboard) SetHeld(key Key, down bool) {
	k.held[key] = down
}

// Release ends a press-based hold immediately.
func (k *Keyboard) Release(key Key) {
	k.held[key] = false
	delete(k.lastPress, key)
}

// IsDown reports whether key is currently held.
func (k *Keyboard) IsDown(key Key) bool {
	if k.held[key] {
		return true
	}
	if k.holdWindow <= 0 {
		return false
	}
	at, ok := k.lastPress[key]
	return ok && k.now-at < k.holdWindow
}

// Once registers fn for the next key-down of key. It fires at most once.
func (k *Keyboard) Once(key Key, fn func()) *Listener {
	l := &Listener{key: key, fn: fn}
	k.listeners = append(k.listeners, l)
	return l
}

// Off cancels a listener.
func (k *Keyboard) Off(l *Listener) {
	if l == nil {
		return
	}
	l.removed = true
}

// Listeners returns the number of live listeners.
func (k *Keyboard) Listeners() int {
	n := 0
	for _, l := range k.listeners {
		if !l.removed {
			n++
		}
	}
	return n
}

// advance moves the keyboard's notion of time forward.
func (k *Keyboard) advance(dt float64) {
	k.now += dt
}

// dispatch fires listeners for queued key-downs. Listeners registered
// while dispatching wait for a later key-down.
func (k *Keyboard) dispatch() {
	if len(k.pending) == 0 {
		return
	}
	pending := k.pending
	k.pending = nil

	for _, key := range pending {
		current := append([]*Listener(nil), k.listeners...)
		for _, l := range current {
			if l.removed || l.key != key {
				continue
			}
			l.removed = true
			l.fn()
		}
	}
	k.compact()
}

// resetListeners drops all listeners and queued events. Held state survives.
func (k *Keyboard) resetListeners() {
	for _, l := range k.listeners {
		l.removed = true
	}
	k.listeners = nil
	k.pending = nil
}

func (k *Keyboard) compact() {
	live := k.listeners[:0]
	for _, l := range k.listeners {
		if !l.removed {
			live = append(live, l)
		}
	}
	for i := len(live); i < len(k.listeners); i++ {
		k.listeners[i] = nil
	}
	k.listeners = live
}
