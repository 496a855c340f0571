// Package catcher implements the falling-item catch game in two variants:
// a simple one and a harder "rush" one with a start gate, tighter
// hitboxes, a spawn rate that rises with score and a milestone spin.
package catcher

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catcher/internal/config"
	"github.com/vovakirdan/catcher/internal/core"
	"github.com/vovakirdan/catcher/internal/engine"
	"github.com/vovakirdan/catcher/internal/registry"
)

// DefaultHoldWindow is how long a key press counts as held, in milliseconds,
// for hosts that never see key releases. It outlasts the usual terminal
// auto-repeat delay so a held arrow moves the player without gaps.
const DefaultHoldWindow = 500

// Variant names one of the registered games.
type Variant struct {
	ID    string
	Title string
}

var (
	Simple = Variant{ID: config.CatcherID, Title: "Catcher"}
	Rush   = Variant{ID: config.CatcherRushID, Title: "Catcher Rush"}
)

func init() {
	registry.Register(Simple.ID, func() registry.Game { return New(Simple) })
	registry.Register(Rush.ID, func() registry.Game { return New(Rush) })
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the tuning for a variant using the CLI settings.
func LoadConfig(v Variant) (config.CatcherConfig, error) {
	cfg, err := config.LoadCatcher(v.ID, configPath)
	if err != nil {
		return config.DefaultFor(v.ID), err
	}
	if difficultyPreset != "" {
		config.ApplyCatcherPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game adapts the scene to the registry.Game interface.
type Game struct {
	variant    Variant
	runtime    core.RuntimeConfig
	override   *config.CatcherConfig
	holdWindow float64
	best       int

	scene    *Scene
	director *engine.Director
	paused   bool
	err      error
}

// New creates a game for a variant. Config is loaded on Reset.
func New(v Variant) *Game {
	return &Game{variant: v, holdWindow: DefaultHoldWindow}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(v Variant, cfg config.CatcherConfig) *Game {
	g := New(v)
	g.override = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// SetHoldWindow changes the keyboard hold window; 0 means the host
// reports held keys itself via SetKeyHeld. Takes effect on Reset.
func (g *Game) SetHoldWindow(ms float64) {
	g.holdWindow = ms
}

// Reset starts a new engine and scene. The session high score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.err = nil
	if g.scene != nil && g.scene.best > g.best {
		g.best = g.scene.best
	}

	cfg := g.loadConfig()
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.scene = NewScene(g.variant.Title, cfg, rand.New(rand.NewSource(seed)))
	g.scene.SeedHighScore(g.best)
	g.director = engine.NewDirector(g.scene, engine.Options{
		Width:      cfg.World.Width,
		Height:     cfg.World.Height,
		HoldWindow: g.holdWindow,
	})
	if err := g.director.Start(); err != nil {
		g.err = err
		log.Error("start failed", "game", g.variant.ID, "err", err)
	}
}

func (g *Game) loadConfig() config.CatcherConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := LoadConfig(g.variant)
	if err != nil {
		log.Warn("config load failed, using defaults", "game", g.variant.ID, "err", err)
	}
	return cfg
}

// Step advances the engine by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.director == nil || g.err != nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// A press in one direction ends any hold in the other.
	kb := g.director.Keyboard()
	if in.Has(core.ActionLeft) {
		kb.Release(engine.KeyRight)
		kb.Press(engine.KeyLeft)
	}
	if in.Has(core.ActionRight) {
		kb.Release(engine.KeyLeft)
		kb.Press(engine.KeyRight)
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
		kb.Press(engine.KeySpace)
	}

	if err := g.director.Tick(g.runtime.FrameMillis()); err != nil {
		g.err = err
		log.Error("frame failed", "game", g.variant.ID, "err", err)
	}
	return core.StepResult{State: g.State()}
}

// SetKeyHeld reports a key's held state from hosts with key-up events.
func (g *Game) SetKeyHeld(key engine.Key, down bool) {
	if g.director != nil {
		g.director.Keyboard().SetHeld(key, down)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextColor(1, 1, "error: "+g.err.Error(), core.ColorRed)
		return
	}
	if g.director == nil {
		return
	}
	g.director.Context().Draw(dst)

	if g.paused {
		msg := "PAUSED"
		dst.DrawTextColor((dst.Width()-len(msg))/2, dst.Height()/2, msg, core.ColorBrightYellow)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused, HighScore: g.best}
	if g.scene == nil || g.scene.session == nil {
		return st
	}
	sess := g.scene.session
	st.Score = sess.Score
	st.HighScore = sess.HighScore
	st.Lives = sess.Lives
	st.GameOver = sess.GameOver
	st.Started = sess.GameStarted
	return st
}

// SeedHighScore raises the session high score, e.g. from the scoreboard.
func (g *Game) SeedHighScore(score int) {
	if score > g.best {
		g.best = score
	}
	if g.scene != nil {
		g.scene.SeedHighScore(score)
	}
}

// Reconfigure applies cfg from the next scene build on.
func (g *Game) Reconfigure(cfg config.CatcherConfig) {
	g.override = &cfg
	if g.scene != nil {
		g.scene.Reconfigure(cfg)
	}
}

// ReloadConfig reloads the config from disk and applies it on the next build.
func (g *Game) ReloadConfig() error {
	cfg, err := LoadConfig(g.variant)
	if err != nil {
		return err
	}
	g.Reconfigure(cfg)
	log.Info("config reloaded", "game", g.variant.ID)
	return nil
}

// Scene returns the running controller.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Director returns the running engine director.
func (g *Game) Director() *engine.Director {
	return g.director
}

// Err returns the startup or frame error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}
