package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/catcher/internal/core"
)

type stubGame struct{ id, title string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return g.title }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{"stub_b", "Stub B"} })
	Register("stub_a", func() Game { return stubGame{"stub_a", "Stub A"} })

	var got []GameInfo
	for _, info := range List() {
		if info.ID == "stub_a" || info.ID == "stub_b" {
			got = append(got, info)
		}
	}
	want := []GameInfo{{"stub_b", "Stub B"}, {"stub_a", "Stub A"}}
	if len(got) != len(want) {
		t.Fatalf("List() stubs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Stub A" {
		t.Errorf("Create().Title() = %q, want %q", g.Title(), "Stub A")
	}
	if !Exists("stub_b") {
		t.Error("Exists(stub_b) = false")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, want ErrUnknownGame", err)
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{"stub_dup", "Dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{"stub_dup", "Dup"} })
}
