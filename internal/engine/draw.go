package engine

import (
	"math"

	"github.com/vovakirdan/catcher/internal/core"
)

// rotationRamp approximates a spinning sprite on a cell grid, one glyph per 45 degrees.
var rotationRamp = []rune{'|', '/', '-', '\\'}

// Projection maps world coordinates onto a cell grid.
type Projection struct {
	SX, SY float64
}

// NewProjection fits a world of worldW x worldH onto a screen of cellsW x cellsH.
func NewProjection(worldW, worldH float64, cellsW, cellsH int) Projection {
	return Projection{
		SX: float64(cellsW) / worldW,
		SY: float64(cellsH) / worldH,
	}
}

// Point projects a world point to a cell.
func (p Projection) Point(x, y float64) (int, int) {
	return int(math.Floor(x * p.SX)), int(math.Floor(y * p.SY))
}

// Rect projects a world box to cells. Any visible box covers at least one cell.
func (p Projection) Rect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * p.SX))
	y0 := int(math.Floor(r.Y * p.SY))
	x1 := int(math.Ceil(r.Right() * p.SX))
	y1 := int(math.Ceil(r.Bottom() * p.SY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// RotationGlyph picks the ramp glyph closest to angle.
func RotationGlyph(angle float64) rune {
	step := int(math.Round(angle / (math.Pi / 4)))
	n := len(rotationRamp)
	return rotationRamp[((step%n)+n)%n]
}

// Draw renders the scene onto dst: images, group members, standalone sprites, then texts.
func (c *Context) Draw(dst *core.Screen) {
	p := NewProjection(c.World.Width(), c.World.Height(), dst.Width(), dst.Height())

	for _, s := range c.images {
		drawSprite(dst, p, s)
	}
	for _, g := range c.World.Groups() {
		for _, s := range g.sprites {
			drawSprite(dst, p, s)
		}
	}
	for _, s := range c.World.sprites {
		drawSprite(dst, p, s)
	}
	for _, t := range c.Texts() {
		drawText(dst, p, t)
	}
}

func drawSprite(dst *core.Screen, p Projection, s *Sprite) {
	if !s.Visible() {
		return
	}
	r := p.Rect(s.Bounds())
	color := s.DrawColor()

	if s.Rotation != 0 {
		g := RotationGlyph(s.Rotation)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetCell(x, y, g, color)
			}
		}
		return
	}

	art := s.tex.Art
	if len(art) == 0 {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetCell(x, y, s.tex.Glyph, color)
			}
		}
		return
	}

	// Art is tiled from the sprite's top-left corner; spaces stay transparent.
	for y := r.Y; y < r.Bottom(); y++ {
		row := []rune(art[(y-r.Y)%len(art)])
		if len(row) == 0 {
			continue
		}
		for x := r.X; x < r.Right(); x++ {
			ch := row[(x-r.X)%len(row)]
			if ch == ' ' {
				continue
			}
			dst.SetCell(x, y, ch, color)
		}
	}
}

func drawText(dst *core.Screen, p Projection, t *Text) {
	if !t.Visible() {
		return
	}
	x, y := p.Point(t.X, t.Y)
	n := len([]rune(t.content))
	x -= int(math.Round(float64(n) * t.originX))
	dst.DrawTextColor(x, y, t.content, t.style.Color)
}
