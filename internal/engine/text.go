package engine

import "github.com/vovakirdan/catcher/internal/core"

// TextSize is a coarse font size hint. Cell renderers ignore it; pixel renderers scale by it.
type TextSize int

const (
	TextNormal TextSize = iota
	TextLarge
)

// TextStyle holds display options for a text object.
type TextStyle struct {
	Size  TextSize
	Color core.Color
}

// Text is a UI label positioned in world coordinates.
type Text struct {
	X, Y    float64
	content string
	style   TextStyle
	originX float64
	originY float64
	visible bool
	depth   int
	active  bool
}

// SetText replaces the content.
func (t *Text) SetText(s string) *Text {
	t.content = s
	return t
}

// String returns the content.
func (t *Text) String() string {
	return t.content
}

// Style returns the display style.
func (t *Text) Style() TextStyle {
	return t.style
}

// SetOrigin sets the anchor as a fraction of the text extent; 0.5 centers.
func (t *Text) SetOrigin(x, y float64) *Text {
	t.originX = x
	t.originY = y
	return t
}

// Origin returns the anchor.
func (t *Text) Origin() (float64, float64) {
	return t.originX, t.originY
}

// SetVisible shows or hides the text.
func (t *Text) SetVisible(v bool) *Text {
	t.visible = v
	return t
}

// Visible reports whether the text is drawn.
func (t *Text) Visible() bool {
	return t.visible && t.active
}

// SetDepth sets draw order; higher draws later.
func (t *Text) SetDepth(d int) *Text {
	t.depth = d
	return t
}

// Depth returns the draw order.
func (t *Text) Depth() int {
	return t.depth
}

// Destroy removes the text.
func (t *Text) Destroy() {
	t.active = false
}
