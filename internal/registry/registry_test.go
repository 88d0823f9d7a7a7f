package registry

import (
	"testing"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
)

type stubGame struct {
	id  string
	cfg *config.ArenaConfig
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(core.Renderer)                 {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Configure(cfg config.ArenaConfig)     { g.cfg = &cfg }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("registered game not found")
	}
	if Exists("zz_missing") {
		t.Error("unregistered game reported as existing")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub_a" {
			found = info.Title == "Stub zz_stub_a"
		}
	}
	if !found {
		t.Error("List() missing stub game or its title")
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
}

func TestCreateConfigured(t *testing.T) {
	Register("zz_stub_c", func() Game { return &stubGame{id: "zz_stub_c"} })

	cfg := config.DefaultArenaConfig()
	cfg.Player.Health = 9
	g, err := CreateConfigured("zz_stub_c", cfg)
	if err != nil {
		t.Fatalf("CreateConfigured() error: %v", err)
	}
	stub := g.(*stubGame)
	if stub.cfg == nil || stub.cfg.Player.Health != 9 {
		t.Error("config was not handed to the game")
	}
}
