package engine

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// Scene is implemented by games. The director calls Preload once, Create on
// every (re)build, and Update once per frame.
type Scene interface {
	Preload(l *Loader) error
	Create(ctx *Context) error
	Update(ctx *Context)
}

// Options configures a director.
type Options struct {
	Width      float64 // World width in pixels
	Height     float64 // World height in pixels
	HoldWindow float64 // Keyboard hold window in milliseconds (0 = explicit held state only)
}

// Context is everything one scene build owns. A restart replaces it wholesale.
type Context struct {
	director *Director
	World    *World
	Clock    *Clock
	Keyboard *Keyboard
	Loader   *Loader
	images   []*Sprite
	texts    []*Text
}

// AddImage adds a non-physics sprite drawn beneath everything else.
func (c *Context) AddImage(x, y float64, key string) (*Sprite, error) {
	tex, err := c.Loader.Texture(key)
	if err != nil {
		return nil, err
	}
	s := newSprite(x, y, tex)
	c.images = append(c.images, s)
	return s, nil
}

// Images returns the active images in creation order.
func (c *Context) Images() []*Sprite {
	out := make([]*Sprite, 0, len(c.images))
	for _, s := range c.images {
		if s.active {
			out = append(out, s)
		}
	}
	return out
}

// AddText adds a text object at (x, y).
func (c *Context) AddText(x, y float64, content string, style TextStyle) *Text {
	t := &Text{X: x, Y: y, content: content, style: style, visible: true, active: true}
	c.texts = append(c.texts, t)
	return t
}

// Texts returns the active texts ordered by depth, then creation.
func (c *Context) Texts() []*Text {
	out := make([]*Text, 0, len(c.texts))
	for _, t := range c.texts {
		if t.active {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].depth < out[j].depth
	})
	return out
}

// Restart rebuilds the scene at the end of the current frame.
func (c *Context) Restart() {
	c.director.Restart()
}

// Director owns the running scene and advances it one frame at a time.
type Director struct {
	scene    Scene
	opts     Options
	loader   *Loader
	keyboard *Keyboard
	ctx      *Context
	restart  bool
	builds   int
	frames   int
}

// NewDirector creates a director for scene. Call Start before Tick.
func NewDirector(scene Scene, opts Options) *Director {
	return &Director{
		scene:    scene,
		opts:     opts,
		loader:   NewLoader(),
		keyboard: NewKeyboard(opts.HoldWindow),
	}
}

// Start preloads assets and builds the scene for the first time.
func (d *Director) Start() error {
	if err := d.scene.Preload(d.loader); err != nil {
		return fmt.Errorf("engine: preload: %w", err)
	}
	return d.build()
}

// build creates a fresh context and runs Create against it.
func (d *Director) build() error {
	d.keyboard.resetListeners()
	d.ctx = &Context{
		director: d,
		World:    NewWorld(d.opts.Width, d.opts.Height, d.loader),
		Clock:    NewClock(),
		Keyboard: d.keyboard,
		Loader:   d.loader,
	}
	d.builds++
	if err := d.scene.Create(d.ctx); err != nil {
		return fmt.Errorf("engine: create: %w", err)
	}
	log.Debug("scene built", "build", d.builds)
	return nil
}

// Restart schedules a rebuild at the end of the current frame.
func (d *Director) Restart() {
	d.restart = true
}

// Tick advances one frame of dt milliseconds:
// key-down events, timers, scene update, physics with overlaps, deferred restart.
func (d *Director) Tick(dt float64) error {
	if d.ctx == nil {
		return fmt.Errorf("engine: director not started")
	}
	d.frames++
	d.keyboard.advance(dt)
	d.keyboard.dispatch()
	d.ctx.Clock.Update(dt)
	d.scene.Update(d.ctx)
	d.ctx.World.Step(dt)

	if d.restart {
		d.restart = false
		d.ctx.Clock.RemoveAll()
		return d.build()
	}
	return nil
}

// Context returns the current scene context.
func (d *Director) Context() *Context {
	return d.ctx
}

// Keyboard returns the keyboard, which outlives scene rebuilds.
func (d *Director) Keyboard() *Keyboard {
	return d.keyboard
}

// Builds returns how many times the scene has been built.
func (d *Director) Builds() int {
	return d.builds
}

// Frames returns how many frames have been ticked.
func (d *Director) Frames() int {
	return d.frames
}
