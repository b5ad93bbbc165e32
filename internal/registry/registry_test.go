package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridracer/internal/core"
)

type stubGame struct {
	id   string
	opts Options
}

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return strings.ToUpper(s.id) }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func register(id string) {
	Register(id, func(opts Options) Game {
		return &stubGame{id: id, opts: opts}
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register("test_beta")
	register("test_alpha")

	if !Exists("test_alpha") {
		t.Fatal("Exists(test_alpha) = false, expected true")
	}
	if Exists("test_missing") {
		t.Error("Exists(test_missing) = true, expected false")
	}

	g, err := Create("test_alpha", Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if stub := g.(*stubGame); stub.opts.Difficulty != "hard" {
		t.Errorf("Create() passed difficulty %q, expected hard", stub.opts.Difficulty)
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test_alpha" || ids[1] != "test_beta" {
		t.Errorf("List() ids = %v, expected sorted [test_alpha test_beta]", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("test_nope", Options{}); err == nil {
		t.Error("Create() should fail for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("test_dup")
	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate id")
		}
	}()
	register("test_dup")
}
