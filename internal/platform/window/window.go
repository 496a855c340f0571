// Package window hosts a game in a desktop window via Ebiten.
// Unlike the terminal, a window reports real key releases, so held keys
// are polled every tick and handed to the engine directly.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/catcher/internal/core"
	"github.com/vovakirdan/catcher/internal/engine"
	"github.com/vovakirdan/catcher/internal/registry"
	"github.com/vovakirdan/catcher/internal/storage"
)

// Debug font cell size used by ebitenutil.
const (
	glyphW = 6
	glyphH = 16
)

// Game is what the window needs beyond registry.Game: real held keys and
// access to the engine scene for pixel drawing.
type Game interface {
	registry.Game
	SetHoldWindow(ms float64)
	SetKeyHeld(key engine.Key, down bool)
	SeedHighScore(score int)
	Director() *engine.Director
}

// keySource abstracts Ebiten's input polling.
type keySource interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
}

type liveKeys struct{}

func (liveKeys) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (liveKeys) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Host implements ebiten.Game around a catcher-style game.
type Host struct {
	game       Game
	store      *storage.Store
	keys       keySource
	width      int
	height     int
	textures   map[string]*ebiten.Image
	scratch    *ebiten.Image
	scoreSaved bool
}

// NewHost creates a host. The world size is the logical screen size.
func NewHost(game Game, store *storage.Store, width, height int) *Host {
	return &Host{
		game:     game,
		store:    store,
		keys:     liveKeys{},
		width:    width,
		height:   height,
		textures: make(map[string]*ebiten.Image),
	}
}

// Update advances the game one tick.
func (h *Host) Update() error {
	if h.keys.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	left, right := heldKeys(h.keys)
	h.game.SetKeyHeld(engine.KeyLeft, left)
	h.game.SetKeyHeld(engine.KeyRight, right)

	state := h.game.Step(inputFrame(h.keys)).State
	h.recordScore(state)
	return nil
}

// recordScore saves a finished run once per game over.
func (h *Host) recordScore(state core.GameState) {
	if !state.GameOver {
		h.scoreSaved = false
		return
	}
	if h.scoreSaved || h.store == nil {
		return
	}
	h.scoreSaved = true
	if _, err := h.store.SaveScore(h.game.ID(), state.Score); err != nil {
		log.Warn("save score failed", "game", h.game.ID(), "err", err)
	}
}

// heldKeys reads the movement keys. Arrows and A/D both steer.
func heldKeys(k keySource) (left, right bool) {
	left = k.IsKeyPressed(ebiten.KeyArrowLeft) || k.IsKeyPressed(ebiten.KeyA)
	right = k.IsKeyPressed(ebiten.KeyArrowRight) || k.IsKeyPressed(ebiten.KeyD)
	return left, right
}

// inputFrame collects this tick's one-shot actions.
func inputFrame(k keySource) core.InputFrame {
	f := core.NewInputFrame()
	if k.IsKeyJustPressed(ebiten.KeySpace) || k.IsKeyJustPressed(ebiten.KeyEnter) {
		f.Set(core.ActionConfirm)
	}
	if k.IsKeyJustPressed(ebiten.KeyR) {
		f.Set(core.ActionRestart)
	}
	if k.IsKeyJustPressed(ebiten.KeyP) || k.IsKeyJustPressed(ebiten.KeyEscape) {
		f.Set(core.ActionPause)
	}
	return f
}

// Draw renders images, group members, sprites and texts.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 48, B: 32, A: 255})

	d := h.game.Director()
	if d == nil {
		return
	}
	ctx := d.Context()

	for _, s := range ctx.Images() {
		h.drawSprite(screen, s, 0.35)
	}
	for _, g := range ctx.World.Groups() {
		for _, s := range g.Children() {
			h.drawSprite(screen, s, 1)
		}
	}
	for _, s := range ctx.World.Sprites() {
		h.drawSprite(screen, s, 1)
	}
	for _, t := range ctx.Texts() {
		h.drawText(screen, t)
	}

	if st := h.game.State(); st.Paused {
		msg := "PAUSED"
		ebitenutil.DebugPrintAt(screen, msg, (h.width-len(msg)*glyphW)/2, h.height/2)
	}
}

func (h *Host) drawSprite(screen *ebiten.Image, s *engine.Sprite, alpha float32) {
	if !s.Visible() {
		return
	}
	img := h.texture(s.Texture())

	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(s)
	op.ColorScale.ScaleWithColor(RGBA(s.DrawColor()))
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, op)
}

// texture returns a white image the size of tex, created on first use.
func (h *Host) texture(tex *engine.Texture) *ebiten.Image {
	if img, ok := h.textures[tex.Key]; ok {
		return img
	}
	w, ht := int(tex.Width), int(tex.Height)
	if w < 1 {
		w = 1
	}
	if ht < 1 {
		ht = 1
	}
	img := ebiten.NewImage(w, ht)
	img.Fill(color.White)
	h.textures[tex.Key] = img
	return img
}

// spriteGeoM places a texture-sized image at the sprite's center with its
// scale and rotation applied around that center.
func spriteGeoM(s *engine.Sprite) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-s.Width()/2, -s.Height()/2)
	m.Scale(s.Scale(), s.Scale())
	m.Rotate(s.Rotation)
	m.Translate(s.X, s.Y)
	return m
}

// drawText prints through a scratch image so texts can be colored and scaled.
func (h *Host) drawText(screen *ebiten.Image, t *engine.Text) {
	if !t.Visible() || t.String() == "" {
		return
	}
	content := t.String()
	w := len([]rune(content)) * glyphW

	if h.scratch == nil || h.scratch.Bounds().Dx() < w {
		h.scratch = ebiten.NewImage(max(w, h.width), glyphH)
	}
	h.scratch.Clear()
	ebitenutil.DebugPrint(h.scratch, content)

	scale := textScale(t.Style().Size)
	ox, oy := t.Origin()
	x, y := textTopLeft(t.X, t.Y, w, ox, oy, scale)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	if c := t.Style().Color; c != core.ColorDefault {
		op.ColorScale.ScaleWithColor(RGBA(c))
	}
	screen.DrawImage(h.scratch.SubImage(image.Rect(0, 0, w, glyphH)).(*ebiten.Image), op)
}

func textScale(size engine.TextSize) float64 {
	if size == engine.TextLarge {
		return 2
	}
	return 1
}

// textTopLeft anchors a w-pixel-wide line at (x, y) by its origin fractions.
func textTopLeft(x, y float64, w int, ox, oy, scale float64) (float64, float64) {
	return x - float64(w)*scale*ox, y - glyphH*scale*oy
}

// Layout fixes the logical screen to the world size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}

// Run opens a window and plays game until it closes or Q is pressed.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, width, height int) error {
	game.SetHoldWindow(0)
	game.Reset(cfg)
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			game.SeedHighScore(best)
		}
	}

	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(NewHost(game, store, width, height)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
