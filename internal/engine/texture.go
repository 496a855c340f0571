// Package engine is the small 2D arcade engine the games run on.
// It owns everything a scene needs but should not implement itself:
// textures, sprites with independent hitboxes, groups with overlap
// callbacks, a millisecond clock with repeating timers, keyboard state
// with one-shot listeners, text objects and the scene lifecycle.
//
// The engine is single-threaded. A host calls Director.Tick once per
// frame; every callback runs inside that call.
package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/catcher/internal/core"
)

// ErrTextureNotFound is returned when a sprite references an unloaded texture key.
var ErrTextureNotFound = errors.New("engine: texture not found")

// Texture is a procedural image: a pixel size plus how to draw it on a cell grid.
type Texture struct {
	Key    string
	Width  float64    // Source width in world pixels before scaling
	Height float64    // Source height in world pixels before scaling
	Glyph  rune       // Fill character for cell rendering
	Color  core.Color // Foreground color
	Art    []string   // Optional art tiled over the sprite instead of Glyph
}

// Loader maps texture keys to textures.
type Loader struct {
	textures map[string]*Texture
}

// NewLoader creates an empty texture loader.
func NewLoader() *Loader {
	return &Loader{textures: make(map[string]*Texture)}
}

// Load registers a texture under key, replacing any previous one.
func (l *Loader) Load(key string, tex Texture) {
	tex.Key = key
	l.textures[key] = &tex
}

// Texture returns the texture for key.
func (l *Loader) Texture(key string) (*Texture, error) {
	tex, ok := l.textures[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTextureNotFound, key)
	}
	return tex, nil
}
