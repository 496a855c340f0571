package engine

import "github.com/vovakirdan/catcher/internal/core"

// Body is a sprite's collision box, positioned relative to the top-left
// corner of the sprite's displayed bounds.
type Body struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Sprite is a textured entity positioned by its center.
// Velocities are in world pixels per second.
type Sprite struct {
	X, Y     float64
	VX, VY   float64
	Rotation float64 // Radians

	tex           *Texture
	scale         float64
	body          Body
	customBody    bool
	tint          core.Color
	tinted        bool
	visible       bool
	collideBounds bool
	active        bool
	group         *Group
}

func newSprite(x, y float64, tex *Texture) *Sprite {
	return &Sprite{
		X:       x,
		Y:       y,
		tex:     tex,
		scale:   1,
		visible: true,
		active:  true,
	}
}

// Texture returns the sprite's texture.
func (s *Sprite) Texture() *Texture {
	return s.tex
}

// SetScale sets the uniform display scale.
func (s *Sprite) SetScale(scale float64) *Sprite {
	s.scale = scale
	return s
}

// Scale returns the display scale.
func (s *Sprite) Scale() float64 {
	return s.scale
}

// Width returns the unscaled texture width.
func (s *Sprite) Width() float64 {
	return s.tex.Width
}

// Height returns the unscaled texture height.
func (s *Sprite) Height() float64 {
	return s.tex.Height
}

// DisplayWidth returns the scaled width.
func (s *Sprite) DisplayWidth() float64 {
	return s.tex.Width * s.scale
}

// DisplayHeight returns the scaled height.
func (s *Sprite) DisplayHeight() float64 {
	return s.tex.Height * s.scale
}

// SetVelocityX sets horizontal velocity.
func (s *Sprite) SetVelocityX(vx float64) *Sprite {
	s.VX = vx
	return s
}

// SetVelocityY sets vertical velocity.
func (s *Sprite) SetVelocityY(vy float64) *Sprite {
	s.VY = vy
	return s
}

// SetCollideWorldBounds keeps the sprite's displayed bounds inside the world.
func (s *Sprite) SetCollideWorldBounds(on bool) *Sprite {
	s.collideBounds = on
	return s
}

// SetBodySize sets the hitbox size in world pixels, independent of the visual size.
func (s *Sprite) SetBodySize(w, h float64) *Sprite {
	s.body.Width = w
	s.body.Height = h
	s.customBody = true
	return s
}

// SetBodyOffset sets the hitbox offset from the displayed top-left corner.
func (s *Sprite) SetBodyOffset(x, y float64) *Sprite {
	s.body.OffsetX = x
	s.body.OffsetY = y
	s.customBody = true
	return s
}

// Body returns the effective hitbox. Without a custom body it covers the displayed bounds.
func (s *Sprite) Body() Body {
	if !s.customBody {
		return Body{Width: s.DisplayWidth(), Height: s.DisplayHeight()}
	}
	return s.body
}

// Bounds returns the displayed bounds in world coordinates.
func (s *Sprite) Bounds() core.RectF {
	w, h := s.DisplayWidth(), s.DisplayHeight()
	return core.RectF{X: s.X - w/2, Y: s.Y - h/2, W: w, H: h}
}

// BodyRect returns the hitbox in world coordinates.
func (s *Sprite) BodyRect() core.RectF {
	b := s.Body()
	bounds := s.Bounds()
	return core.RectF{X: bounds.X + b.OffsetX, Y: bounds.Y + b.OffsetY, W: b.Width, H: b.Height}
}

// SetTint recolors the sprite.
func (s *Sprite) SetTint(c core.Color) *Sprite {
	s.tint = c
	s.tinted = true
	return s
}

// ClearTint restores the texture color.
func (s *Sprite) ClearTint() *Sprite {
	s.tinted = false
	return s
}

// Tint returns the tint color and whether one is set.
func (s *Sprite) Tint() (core.Color, bool) {
	return s.tint, s.tinted
}

// DrawColor returns the color the sprite is drawn with.
func (s *Sprite) DrawColor() core.Color {
	if s.tinted {
		return s.tint
	}
	return s.tex.Color
}

// SetRotation sets the rotation in radians.
func (s *Sprite) SetRotation(rad float64) *Sprite {
	s.Rotation = rad
	return s
}

// SetVisible shows or hides the sprite.
func (s *Sprite) SetVisible(v bool) *Sprite {
	s.visible = v
	return s
}

// Visible reports whether the sprite is drawn.
func (s *Sprite) Visible() bool {
	return s.visible && s.active
}

// Active reports whether the sprite has not been destroyed.
func (s *Sprite) Active() bool {
	return s.active
}

// Destroy removes the sprite from play. Safe to call more than once.
func (s *Sprite) Destroy() {
	s.active = false
}

// Group returns the group the sprite belongs to, or nil.
func (s *Sprite) Group() *Group {
	return s.group
}

// members implements Collider.
func (s *Sprite) members() []*Sprite {
	if !s.active {
		return nil
	}
	return []*Sprite{s}
}
