package engine

// Collider is anything that can take part in an overlap check: a single sprite or a group.
type Collider interface {
	members() []*Sprite
}

// OverlapFunc is invoked once per overlapping pair per frame.
// a comes from the first collider, b from the second.
type OverlapFunc func(a, b *Sprite)

// Overlap is a registered overlap rule. Keep it to remove the rule later.
type Overlap struct {
	a, b    Collider
	fn      OverlapFunc
	removed bool
}

// World integrates sprite motion and detects overlaps.
type World struct {
	width    float64
	height   float64
	loader   *Loader
	sprites  []*Sprite
	groups   []*Group
	overlaps []*Overlap
	paused   bool
}

// NewWorld creates a world of the given size in pixels.
func NewWorld(width, height float64, loader *Loader) *World {
	return &World{
		width:  width,
		height: height,
		loader: loader,
	}
}

// Width returns the world width.
func (w *World) Width() float64 {
	return w.width
}

// Height returns the world height.
func (w *World) Height() float64 {
	return w.height
}

// AddSprite creates a standalone physics sprite.
func (w *World) AddSprite(x, y float64, key string) (*Sprite, error) {
	tex, err := w.loader.Texture(key)
	if err != nil {
		return nil, err
	}
	s := newSprite(x, y, tex)
	w.sprites = append(w.sprites, s)
	return s, nil
}

// NewGroup creates an empty physics group.
func (w *World) NewGroup() *Group {
	g := &Group{world: w}
	w.groups = append(w.groups, g)
	return g
}

// Groups returns all groups in creation order.
func (w *World) Groups() []*Group {
	return w.groups
}

// Sprites returns the active standalone sprites in creation order.
func (w *World) Sprites() []*Sprite {
	out := make([]*Sprite, 0, len(w.sprites))
	for _, s := range w.sprites {
		if s.active {
			out = append(out, s)
		}
	}
	return out
}

// AddOverlap registers fn for every overlapping pair drawn from a and b.
func (w *World) AddOverlap(a, b Collider, fn OverlapFunc) *Overlap {
	o := &Overlap{a: a, b: b, fn: fn}
	w.overlaps = append(w.overlaps, o)
	return o
}

// RemoveOverlap unregisters an overlap rule.
func (w *World) RemoveOverlap(o *Overlap) {
	if o == nil {
		return
	}
	o.removed = true
}

// Pause stops motion and overlap detection.
func (w *World) Pause() {
	w.paused = true
}

// Resume restarts motion and overlap detection.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether the world is paused.
func (w *World) Paused() bool {
	return w.paused
}

// Step advances the simulation by dt milliseconds, then runs overlap callbacks.
func (w *World) Step(dt float64) {
	if w.paused {
		return
	}
	secs := dt / 1000

	for _, s := range w.sprites {
		w.integrate(s, secs)
	}
	for _, g := range w.groups {
		for _, s := range g.sprites {
			w.integrate(s, secs)
			// Members that fall out of the world are gone.
			if s.active && s.Bounds().Y > w.height {
				s.Destroy()
			}
		}
	}

	w.detectOverlaps()

	for _, g := range w.groups {
		g.compact()
	}
}

// integrate moves one sprite and applies the world-bounds constraint.
func (w *World) integrate(s *Sprite, secs float64) {
	if !s.active {
		return
	}
	s.X += s.VX * secs
	s.Y += s.VY * secs

	if !s.collideBounds {
		return
	}
	halfW, halfH := s.DisplayWidth()/2, s.DisplayHeight()/2
	if s.X-halfW < 0 {
		s.X = halfW
	}
	if s.X+halfW > w.width {
		s.X = w.width - halfW
	}
	if s.Y-halfH < 0 {
		s.Y = halfH
	}
	if s.Y+halfH > w.height {
		s.Y = w.height - halfH
	}
}

// detectOverlaps runs each rule against the current members.
// Processing stops as soon as a callback pauses the world.
func (w *World) detectOverlaps() {
	rules := append([]*Overlap(nil), w.overlaps...)
next:
	for _, o := range rules {
		if o.removed {
			continue
		}
		for _, a := range o.a.members() {
			for _, b := range o.b.members() {
				if !a.active || !b.active || a == b {
					continue
				}
				if !a.BodyRect().Intersects(b.BodyRect()) {
					continue
				}
				o.fn(a, b)
				if w.paused {
					return
				}
				if o.removed {
					continue next
				}
			}
		}
	}
}
