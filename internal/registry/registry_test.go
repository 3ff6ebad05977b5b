package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/blockhop/internal/core"
)

type stubGame struct{}

func (stubGame) ID() string                           { return "stub" }
func (stubGame) Title() string                        { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz-stub", Title: "Stub"}, func() Game { return stubGame{} })

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub")
	}

	info, ok := Lookup("zz-stub")
	if !ok || info.Title != "Stub" {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}

	found := false
	for _, gi := range List() {
		if gi.ID == "zz-stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz-dup"}, func() Game { return stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register(GameInfo{ID: "zz-dup"}, func() Game { return stubGame{} })
}
