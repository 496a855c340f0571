package engine

import (
	"errors"
	"testing"

	"github.com/vovakirdan/catcher/internal/core"
)

// recordingScene logs lifecycle calls into a shared trace.
type recordingScene struct {
	trace    *[]string
	creates  int
	failWith error
	onCreate func(ctx *Context) error
}

func (s *recordingScene) Preload(l *Loader) error {
	*s.trace = append(*s.trace, "preload")
	l.Load("dot", Texture{Width: 10, Height: 10, Glyph: '*', Color: core.ColorYellow})
	return s.failWith
}

func (s *recordingScene) Create(ctx *Context) error {
	s.creates++
	*s.trace = append(*s.trace, "create")
	if s.onCreate != nil {
		return s.onCreate(ctx)
	}
	return nil
}

func (s *recordingScene) Update(ctx *Context) {
	*s.trace = append(*s.trace, "update")
}

func TestDirectorFrameOrder(t *testing.T) {
	var trace []string
	scene := &recordingScene{trace: &trace}
	scene.onCreate = func(ctx *Context) error {
		ctx.Keyboard.Once(KeySpace, func() { trace = append(trace, "key") })
		ctx.Clock.AddEvent(EventConfig{Delay: 10, Callback: func() { trace = append(trace, "timer") }})
		player, err := ctx.World.AddSprite(100, 100, "dot")
		if err != nil {
			return err
		}
		items := ctx.World.NewGroup()
		if _, err := items.Create(100, 100, "dot"); err != nil {
			return err
		}
		ctx.World.AddOverlap(player, items, func(a, b *Sprite) {
			trace = append(trace, "overlap")
			b.Destroy()
		})
		return nil
	}

	d := NewDirector(scene, Options{Width: 800, Height: 600})
	if err := d.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	d.Keyboard().Press(KeySpace)
	if err := d.Tick(10); err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}

	expected := []string{"preload", "create", "key", "timer", "update", "overlap"}
	if len(trace) != len(expected) {
		t.Fatalf("trace = %v, expected %v", trace, expected)
	}
	for i := range expected {
		if trace[i] != expected[i] {
			t.Errorf("trace[%d] = %q, expected %q (full: %v)", i, trace[i], expected[i], trace)
		}
	}
}

func TestDirectorRestartIsDeferredAndClean(t *testing.T) {
	var trace []string
	scene := &recordingScene{trace: &trace}
	scene.onCreate = func(ctx *Context) error {
		ctx.Clock.AddEvent(EventConfig{Delay: 1000, Loop: true})
		ctx.Keyboard.Once(KeySpace, func() { ctx.Restart() })
		ctx.AddText(0, 0, "hello", TextStyle{})
		return nil
	}

	d := NewDirector(scene, Options{Width: 800, Height: 600})
	if err := d.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	first := d.Context()
	firstClock := first.Clock

	d.Keyboard().Press(KeySpace)
	if err := d.Tick(16); err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}

	if scene.creates != 2 {
		t.Fatalf("expected scene to be built twice, got %d", scene.creates)
	}
	if d.Context() == first {
		t.Error("restart should build a fresh context")
	}
	if firstClock.Active() != 0 {
		t.Error("old clock events should be cancelled on restart")
	}
	if d.Context().Clock.Active() != 1 {
		t.Errorf("new clock should hold one event, got %d", d.Context().Clock.Active())
	}
	if len(d.Context().Texts()) != 1 {
		t.Errorf("new context should hold only its own texts, got %d", len(d.Context().Texts()))
	}
	if d.Keyboard().Listeners() != 1 {
		t.Errorf("expected only the rebuilt scene's listener, got %d", d.Keyboard().Listeners())
	}
	if d.Builds() != 2 || d.Frames() != 1 {
		t.Errorf("Builds()=%d Frames()=%d, expected 2 and 1", d.Builds(), d.Frames())
	}
}

func TestDirectorPreloadError(t *testing.T) {
	var trace []string
	boom := errors.New("boom")
	d := NewDirector(&recordingScene{trace: &trace, failWith: boom}, Options{Width: 800, Height: 600})
	if err := d.Start(); !errors.Is(err, boom) {
		t.Errorf("Start() error = %v, expected wrapped boom", err)
	}
}

func TestDirectorTickBeforeStart(t *testing.T) {
	var trace []string
	d := NewDirector(&recordingScene{trace: &trace}, Options{Width: 800, Height: 600})
	if err := d.Tick(16); err == nil {
		t.Error("Tick() before Start() should fail")
	}
}

func TestContextTextsOrderedByDepth(t *testing.T) {
	ctx := &Context{}
	top := ctx.AddText(0, 0, "top", TextStyle{}).SetDepth(10)
	bottom := ctx.AddText(0, 0, "bottom", TextStyle{})
	gone := ctx.AddText(0, 0, "gone", TextStyle{})
	gone.Destroy()

	texts := ctx.Texts()
	if len(texts) != 2 || texts[0] != bottom || texts[1] != top {
		t.Errorf("Texts() returned wrong order or included destroyed text")
	}
}
