package catcher

import (
	"github.com/vovakirdan/catcher/internal/core"
	"github.com/vovakirdan/catcher/internal/engine"
)

// Texture keys
const (
	TexBackground = "background"
	TexPlayer     = "player"
	TexFood       = "food"
	TexTrap       = "trap"
)

// parkArt is tiled over the background; spaces are transparent.
var parkArt = []string{
	"                                        ",
	"        .                     .         ",
	"                 '                      ",
	"   .                     .          '   ",
	"                                        ",
	"             .       '          .       ",
}

// registerTextures loads the procedural textures every scene uses.
func registerTextures(l *engine.Loader) {
	l.Load(TexBackground, engine.Texture{
		Width:  400,
		Height: 300,
		Glyph:  ' ',
		Color:  core.ColorGray,
		Art:    parkArt,
	})
	l.Load(TexPlayer, engine.Texture{
		Width:  160,
		Height: 160,
		Glyph:  '█',
		Color:  core.ColorBrightCyan,
	})
	l.Load(TexFood, engine.Texture{
		Width:  64,
		Height: 64,
		Glyph:  '●',
		Color:  core.ColorBrightGreen,
	})
	l.Load(TexTrap, engine.Texture{
		Width:  64,
		Height: 64,
		Glyph:  '✖',
		Color:  core.ColorBrightRed,
	})
}
