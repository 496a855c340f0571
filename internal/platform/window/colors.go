package window

import (
	"image/color"

	"github.com/vovakirdan/catcher/internal/core"
)

// palette approximates the terminal's ANSI colors in RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:           {R: 205, G: 49, B: 49, A: 255},
	core.ColorGreen:         {R: 13, G: 188, B: 121, A: 255},
	core.ColorYellow:        {R: 229, G: 229, B: 16, A: 255},
	core.ColorBlue:          {R: 36, G: 114, B: 200, A: 255},
	core.ColorMagenta:       {R: 188, G: 63, B: 188, A: 255},
	core.ColorCyan:          {R: 17, G: 168, B: 205, A: 255},
	core.ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	core.ColorBrightRed:     {R: 241, G: 76, B: 76, A: 255},
	core.ColorBrightGreen:   {R: 35, G: 209, B: 139, A: 255},
	core.ColorBrightYellow:  {R: 245, G: 245, B: 67, A: 255},
	core.ColorBrightBlue:    {R: 59, G: 142, B: 234, A: 255},
	core.ColorBrightMagenta: {R: 214, G: 112, B: 214, A: 255},
	core.ColorBrightCyan:    {R: 41, G: 184, B: 219, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 135, B: 0, A: 255},
	core.ColorGray:          {R: 138, G: 138, B: 138, A: 255},
}

// RGBA returns the window color for c. Unknown colors draw white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
