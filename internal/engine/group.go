package engine

// Group is a collection of physics sprites sharing overlap rules.
type Group struct {
	world   *World
	sprites []*Sprite
}

// Create adds a new member at (x, y) using the texture key.
func (g *Group) Create(x, y float64, key string) (*Sprite, error) {
	tex, err := g.world.loader.Texture(key)
	if err != nil {
		return nil, err
	}
	s := newSprite(x, y, tex)
	s.group = g
	g.sprites = append(g.sprites, s)
	return s, nil
}

// Children returns the active members in creation order.
func (g *Group) Children() []*Sprite {
	out := make([]*Sprite, 0, len(g.sprites))
	for _, s := range g.sprites {
		if s.active {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of active members.
func (g *Group) Len() int {
	n := 0
	for _, s := range g.sprites {
		if s.active {
			n++
		}
	}
	return n
}

// Clear destroys every member.
func (g *Group) Clear() {
	for _, s := range g.sprites {
		s.Destroy()
	}
	g.sprites = g.sprites[:0]
}

// compact drops destroyed members.
func (g *Group) compact() {
	alive := g.sprites[:0]
	for _, s := range g.sprites {
		if s.active {
			alive = append(alive, s)
		}
	}
	for i := len(alive); i < len(g.sprites); i++ {
		g.sprites[i] = nil
	}
	g.sprites = alive
}

// members implements Collider.
func (g *Group) members() []*Sprite {
	return g.Children()
}
