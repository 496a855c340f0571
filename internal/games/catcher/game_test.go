package catcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/catcher/internal/config"
	"github.com/vovakirdan/catcher/internal/core"
	"github.com/vovakirdan/catcher/internal/engine"
	"github.com/vovakirdan/catcher/internal/registry"
)

func TestRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"catcher", "Catcher"},
		{"catcher_rush", "Catcher Rush"},
	}
	for _, tt := range tests {
		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", tt.id, err)
		}
		if g.ID() != tt.id || g.Title() != tt.title {
			t.Errorf("got %s/%s, want %s/%s", g.ID(), g.Title(), tt.id, tt.title)
		}
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, Rush, config.DefaultRushConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Score: 0", "Lives: 2", "High: 0", "CATCHER RUSH", "Press SPACE to Start"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("render missing player")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (core.GameState, string) {
		g := newGame(t, Simple, config.DefaultCatcherConfig())
		for i := 0; i < 900; i++ {
			var in core.InputFrame
			switch {
			case i%120 < 40:
				in = press(core.ActionLeft)
			case i%120 < 80:
				in = press(core.ActionRight)
			default:
				in = core.NewInputFrame()
			}
			g.Step(in)
		}
		screen := core.NewScreen(80, 24)
		g.Render(screen)
		return g.State(), screen.String()
	}

	st1, out1 := run()
	st2, out2 := run()
	if st1 != st2 {
		t.Errorf("states differ: %+v vs %+v", st1, st2)
	}
	if out1 != out2 {
		t.Error("renders differ for the same seed")
	}
}

func TestPauseFreezesFrame(t *testing.T) {
	g := newGame(t, Simple, config.DefaultCatcherConfig())
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	ctx := g.Director().Context()
	frames, now := g.Director().Frames(), ctx.Clock.Now()

	if st := g.Step(press(core.ActionPause)).State; !st.Paused {
		t.Fatal("expected paused")
	}
	for i := 0; i < 100; i++ {
		g.Step(press(core.ActionLeft))
	}
	if g.Director().Frames() != frames || ctx.Clock.Now() != now {
		t.Error("paused game should not advance")
	}
	if g.Scene().player.X != 400 {
		t.Error("player moved while paused")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused || g.Director().Frames() != frames+1 {
		t.Error("unpause should resume ticking")
	}
}

func TestExplicitHeldKeys(t *testing.T) {
	g := NewWithConfig(Simple, config.DefaultCatcherConfig())
	g.SetHoldWindow(0)
	g.Reset(testRuntime())

	g.SetKeyHeld(engine.KeyRight, true)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	x := g.Scene().player.X
	if x <= 400 {
		t.Fatalf("player X = %g, want moved right", x)
	}

	g.SetKeyHeld(engine.KeyRight, false)
	g.Step(core.NewInputFrame())
	stopped := g.Scene().player.X
	g.Step(core.NewInputFrame())
	if g.Scene().player.X != stopped || g.Scene().player.VX != 0 {
		t.Error("release should stop the player")
	}

	// Without a hold window a bare press is not a hold
	g.Step(press(core.ActionLeft))
	if g.Scene().player.VX != 0 {
		t.Error("press without hold window should not move")
	}
}

func TestPlayerStaysInWorld(t *testing.T) {
	g := newGame(t, Simple, config.DefaultCatcherConfig())
	for i := 0; i < 200; i++ {
		g.Step(press(core.ActionLeft))
	}
	if x := g.Scene().player.X; x != 40 {
		t.Errorf("player X = %g, want clamped at 40", x)
	}
}

func TestReconfigureAppliesOnRebuild(t *testing.T) {
	g := newGame(t, Simple, config.DefaultCatcherConfig())

	cfg := config.DefaultCatcherConfig()
	cfg.Gameplay.Lives = 5
	g.Reconfigure(cfg)
	if g.State().Lives != 3 {
		t.Error("reconfigure must not touch the running build")
	}

	for i := 0; i < 3; i++ {
		hitOne(t, g)
	}
	g.Step(press(core.ActionConfirm))
	if g.State().Lives != 5 {
		t.Errorf("Lives after rebuild = %d, want 5", g.State().Lives)
	}
	if g.Scene().Config().Gameplay.Lives != 5 {
		t.Error("scene config not replaced")
	}
}

func TestLoadConfigFromCLISettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rush.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("hard")
	defer func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	}()

	g := New(Rush)
	g.Reset(testRuntime())
	if g.State().Lives != 3 {
		t.Errorf("Lives = %d, want 4 from file minus 1 for hard", g.State().Lives)
	}
	if g.Scene().Config().Items.TrapSpeed != 300 {
		t.Errorf("TrapSpeed = %g, want 300", g.Scene().Config().Items.TrapSpeed)
	}

	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := g.ReloadConfig(); err != nil {
		t.Fatalf("ReloadConfig() failed: %v", err)
	}
	g.Step(press(core.ActionConfirm))
	for i := 0; i < 3; i++ {
		hitOne(t, g)
	}
	g.Step(press(core.ActionConfirm))
	if g.State().Lives != 5 {
		t.Errorf("Lives after reload = %d, want 5", g.State().Lives)
	}
}

func TestSeedHighScore(t *testing.T) {
	g := newGame(t, Simple, config.DefaultCatcherConfig())
	g.SeedHighScore(120)
	if g.State().HighScore != 120 {
		t.Errorf("HighScore = %d, want 120", g.State().HighScore)
	}
	if findText(g.Director().Context(), "High: 120") == nil {
		t.Error("high text not updated")
	}
	g.SeedHighScore(50)
	if g.State().HighScore != 120 {
		t.Error("seeding lower must not lower the high score")
	}
}

func TestTerminalHoldBridgesRepeatDelay(t *testing.T) {
	g := newGame(t, Simple, config.DefaultCatcherConfig())
	player := g.Scene().player

	// One press, then a gap as long as a typical auto-repeat delay.
	g.Step(press(core.ActionLeft))
	for i := 0; i < 24; i++ {
		g.Step(core.NewInputFrame())
		if player.VX != -300 {
			t.Fatalf("frame %d: VX = %g, want -300 while the press is held", i, player.VX)
		}
	}

	// Turning around ends the left hold at once.
	g.Step(press(core.ActionRight))
	if player.VX != 300 {
		t.Errorf("VX = %g after pressing right, want 300", player.VX)
	}

	// With no further presses the hold runs out.
	for i := 0; i < 40; i++ {
		g.Step(core.NewInputFrame())
	}
	if player.VX != 0 {
		t.Errorf("VX = %g after the hold window, want 0", player.VX)
	}
}
