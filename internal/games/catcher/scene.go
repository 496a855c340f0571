package catcher

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catcher/internal/config"
	"github.com/vovakirdan/catcher/internal/core"
	"github.com/vovakirdan/catcher/internal/engine"
)

// Layout of the HUD and overlays in world pixels.
const (
	hudX       = 16
	scoreY     = 16
	livesY     = 50
	highY      = 84
	overlayTop = 10 // Depth of gate and game-over texts
)

var (
	hudStyle     = engine.TextStyle{Size: engine.TextNormal, Color: core.ColorWhite}
	titleStyle   = engine.TextStyle{Size: engine.TextLarge, Color: core.ColorBrightYellow}
	gameOverFont = engine.TextStyle{Size: engine.TextLarge, Color: core.ColorRed}
)

// Scene is the gameplay controller. One Scene lives for the whole process;
// every build gets a fresh Session and fresh engine objects.
type Scene struct {
	title string
	cfg   config.CatcherConfig
	rng   *rand.Rand
	diff  *config.DifficultyManager

	pending *config.CatcherConfig // Applied on the next build
	best    int                   // High score across restarts

	session    *Session
	player     *engine.Sprite
	foods      *engine.Group
	traps      *engine.Group
	scoreText  *engine.Text
	livesText  *engine.Text
	highText   *engine.Text
	gateTexts  []*engine.Text
	spawnTimer *engine.TimerEvent
	spinTimer  *engine.TimerEvent
	spins      int
}

// NewScene creates a controller for the given title and tuning.
func NewScene(title string, cfg config.CatcherConfig, rng *rand.Rand) *Scene {
	s := &Scene{title: title, rng: rng}
	s.applyConfig(cfg)
	return s
}

func (s *Scene) applyConfig(cfg config.CatcherConfig) {
	s.cfg = cfg
	s.diff = config.NewDifficultyManager(cfg.Difficulty, cfg.Spawn.DelayMS)
}

// Reconfigure replaces the tuning from the next scene build on.
func (s *Scene) Reconfigure(cfg config.CatcherConfig) {
	s.pending = &cfg
}

// SeedHighScore raises the session-wide high score.
func (s *Scene) SeedHighScore(score int) {
	if score > s.best {
		s.best = score
	}
	if s.session != nil && score > s.session.HighScore {
		s.session.HighScore = score
		s.highText.SetText(highLabel(score))
	}
}

// Session returns the state of the current run.
func (s *Scene) Session() *Session {
	return s.session
}

// Config returns the tuning of the current build.
func (s *Scene) Config() config.CatcherConfig {
	return s.cfg
}

// Preload registers the procedural textures.
func (s *Scene) Preload(l *engine.Loader) error {
	registerTextures(l)
	return nil
}

// Create builds the play field from a clean slate.
func (s *Scene) Create(ctx *engine.Context) error {
	if s.pending != nil {
		s.applyConfig(*s.pending)
		s.pending = nil
	}
	cfg := s.cfg
	s.session = NewSession(cfg.Gameplay.Lives, s.best, cfg.Gameplay.StartGate)
	s.spinTimer = nil
	s.gateTexts = nil

	bg, err := ctx.AddImage(cfg.World.Width/2, cfg.World.Height/2, TexBackground)
	if err != nil {
		return fmt.Errorf("catcher: background: %w", err)
	}
	bg.SetScale(2)

	s.player, err = ctx.World.AddSprite(cfg.Player.X, cfg.Player.Y, TexPlayer)
	if err != nil {
		return fmt.Errorf("catcher: player: %w", err)
	}
	s.player.SetScale(cfg.Player.Scale).SetCollideWorldBounds(true)
	fitPlayerBody(s.player, cfg.Player.BodyWidth, cfg.Player.BodyHeight)

	s.foods = ctx.World.NewGroup()
	s.traps = ctx.World.NewGroup()

	s.scoreText = ctx.AddText(hudX, scoreY, scoreLabel(0), hudStyle)
	s.livesText = ctx.AddText(hudX, livesY, livesLabel(s.session.Lives), hudStyle)
	s.highText = ctx.AddText(hudX, highY, highLabel(s.session.HighScore), hudStyle)

	s.armSpawner(ctx, cfg.Spawn.DelayMS)

	ctx.World.AddOverlap(s.player, s.foods, func(_, food *engine.Sprite) {
		s.catchFood(ctx, food)
	})
	ctx.World.AddOverlap(s.player, s.traps, func(_, trap *engine.Sprite) {
		s.hitTrap(ctx, trap)
	})

	if cfg.Gameplay.StartGate {
		s.showGate(ctx)
	}
	return nil
}

// Update maps held keys to horizontal velocity. Left wins over right.
func (s *Scene) Update(ctx *engine.Context) {
	if s.session.GameOver || !s.session.GameStarted {
		s.player.SetVelocityX(0)
		return
	}

	speed := s.cfg.Player.Speed
	switch {
	case ctx.Keyboard.IsDown(engine.KeyLeft):
		s.player.SetVelocityX(-speed)
	case ctx.Keyboard.IsDown(engine.KeyRight):
		s.player.SetVelocityX(speed)
	default:
		s.player.SetVelocityX(0)
	}
}

func (s *Scene) showGate(ctx *engine.Context) {
	cx, cy := s.cfg.World.Width/2, s.cfg.World.Height/2
	title := ctx.AddText(cx, cy-50, strings.ToUpper(s.title), titleStyle)
	prompt := ctx.AddText(cx, cy+20, "Press SPACE to Start", hudStyle)
	for _, t := range []*engine.Text{title, prompt} {
		t.SetOrigin(0.5, 0.5).SetDepth(overlayTop)
	}
	s.gateTexts = []*engine.Text{title, prompt}

	ctx.Keyboard.Once(engine.KeySpace, func() {
		s.session.GameStarted = true
		for _, t := range s.gateTexts {
			t.SetVisible(false)
		}
		log.Debug("gate opened", "game", s.title)
	})
}

// armSpawner replaces the spawn timer. At most one is ever live.
func (s *Scene) armSpawner(ctx *engine.Context, delay float64) {
	if s.spawnTimer != nil {
		ctx.Clock.Remove(s.spawnTimer)
	}
	s.spawnTimer = ctx.Clock.AddEvent(engine.EventConfig{
		Delay: delay,
		Loop:  true,
		Callback: func() {
			s.spawnItems(ctx)
		},
	})
}

func (s *Scene) spawnItems(ctx *engine.Context) {
	if s.session.GameOver || !s.session.GameStarted {
		return
	}
	cfg := s.cfg
	score := s.session.Score

	group, key, speed := s.traps, TexTrap, cfg.Items.TrapSpeed
	if s.rng.Float64() < cfg.Items.FoodProbability {
		group, key, speed = s.foods, TexFood, cfg.Items.FoodSpeed
	}
	x := spawnX(s.rng, cfg.Items.SpawnInset, cfg.World.Width)

	item, err := group.Create(x, 0, key)
	if err != nil {
		log.Error("spawn failed", "err", err)
		return
	}
	item.SetScale(cfg.Items.Scale)
	fitItemBody(item, cfg.Items.HitboxFactor)
	item.SetVelocityY(speed + s.diff.SpeedBonus(score))
	log.Debug("spawned", "kind", key, "x", x, "vy", item.VY)

	if s.diff.Adaptive() {
		delay := s.diff.SpawnDelay(score)
		s.armSpawner(ctx, delay)
		log.Debug("spawn timer re-armed", "delay", delay)
	}
}

func (s *Scene) catchFood(ctx *engine.Context, food *engine.Sprite) {
	food.Destroy()
	sess := s.session
	sess.Score += s.cfg.Gameplay.FoodReward
	s.scoreText.SetText(scoreLabel(sess.Score))

	if sess.Score > sess.HighScore {
		sess.HighScore = sess.Score
		s.highText.SetText(highLabel(sess.HighScore))
	}
	if sess.HighScore > s.best {
		s.best = sess.HighScore
	}

	if s.cfg.Flourish.Enabled && sess.Celebrate(s.cfg.Flourish.Every) {
		s.startSpin(ctx)
	}
}

// startSpin rotates the player through a few full turns. A new spin
// replaces one still running. Velocity and collisions are untouched.
func (s *Scene) startSpin(ctx *engine.Context) {
	if s.spinTimer != nil {
		ctx.Clock.Remove(s.spinTimer)
	}
	s.spins++
	fl := s.cfg.Flourish
	elapsed := 0.0
	player := s.player

	var ev *engine.TimerEvent
	ev = ctx.Clock.AddEvent(engine.EventConfig{
		Delay: fl.IntervalMS,
		Loop:  true,
		Callback: func() {
			elapsed += fl.IntervalMS
			if elapsed >= fl.DurationMS {
				player.SetRotation(0)
				ctx.Clock.Remove(ev)
				if s.spinTimer == ev {
					s.spinTimer = nil
				}
				return
			}
			player.SetRotation(elapsed / fl.DurationMS * fl.Turns * 2 * math.Pi)
		},
	})
	s.spinTimer = ev
	log.Debug("flourish", "score", s.session.Score)
}

func (s *Scene) hitTrap(ctx *engine.Context, trap *engine.Sprite) {
	trap.Destroy()
	sess := s.session
	if sess.GameOver {
		return
	}
	sess.Lives--
	if sess.Lives < 0 {
		sess.Lives = 0
	}
	s.livesText.SetText(livesLabel(sess.Lives))

	if sess.Lives <= 0 {
		s.endGame(ctx)
	}
}

func (s *Scene) endGame(ctx *engine.Context) {
	sess := s.session
	ctx.World.Pause()
	s.player.SetTint(core.ColorRed)
	sess.GameOver = true

	cx, cy := s.cfg.World.Width/2, s.cfg.World.Height/2
	ctx.AddText(cx, cy, "GAME OVER", gameOverFont).SetOrigin(0.5, 0.5).SetDepth(overlayTop)
	ctx.AddText(cx, cy+100, "Press SPACE to Restart", hudStyle).SetOrigin(0.5, 0.5).SetDepth(overlayTop)

	lives := s.cfg.Gameplay.Lives
	ctx.Keyboard.Once(engine.KeySpace, func() {
		sess.Reset(lives)
		ctx.Restart()
	})
	log.Info("game over", "game", s.title, "score", sess.Score, "high", sess.HighScore)
}

// fitPlayerBody shrinks the player's hitbox to a centred, bottom-aligned
// fraction of its displayed size.
func fitPlayerBody(p *engine.Sprite, fw, fh float64) {
	w, h := p.DisplayWidth(), p.DisplayHeight()
	bw, bh := w*fw, h*fh
	p.SetBodySize(bw, bh).SetBodyOffset((w-bw)/2, h-bh)
}

// fitItemBody centres a hitbox of factor times the displayed size.
func fitItemBody(item *engine.Sprite, factor float64) {
	b := ItemBody(item.Width(), item.Height(), item.Scale(), factor)
	item.SetBodySize(b.Width, b.Height).SetBodyOffset(b.OffsetX, b.OffsetY)
}

// ItemBody returns the hitbox of a falling item with source size w×h.
func ItemBody(w, h, scale, factor float64) engine.Body {
	return engine.Body{
		Width:   w * scale * factor,
		Height:  h * scale * factor,
		OffsetX: w * scale * (1 - factor) / 2,
		OffsetY: h * scale * (1 - factor) / 2,
	}
}

// spawnX picks an integer column in [inset, width-inset].
func spawnX(rng *rand.Rand, inset, width float64) float64 {
	lo, hi := int(inset), int(width-inset)
	return float64(lo + rng.Intn(hi-lo+1))
}

func scoreLabel(n int) string { return fmt.Sprintf("Score: %d", n) }
func livesLabel(n int) string { return fmt.Sprintf("Lives: %d", n) }
func highLabel(n int) string  { return fmt.Sprintf("High: %d", n) }
