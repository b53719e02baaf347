package registry_test

import (
	"testing"

	_ "github.com/vovakirdan/tui-mindgames/internal/games/codebreaker"
	_ "github.com/vovakirdan/tui-mindgames/internal/games/memory"
	_ "github.com/vovakirdan/tui-mindgames/internal/games/tictactoe"
	"github.com/vovakirdan/tui-mindgames/internal/registry"
)

func TestRegisteredGames(t *testing.T) {
	want := []string{"codebreaker", "memory", "tictactoe"}
	list := registry.List()
	if len(list) != len(want) {
		t.Fatalf("List() = %+v, expected %v", list, want)
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("List()[%d] = %q, expected %q", i, list[i].ID, id)
		}
		if list[i].Title == "" {
			t.Errorf("%s has no title", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := registry.Create("pong"); err == nil {
		t.Error("Create of an unknown game should fail")
	}
	if registry.Exists("pong") {
		t.Error("Exists(pong) should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	registry.Register("memory", nil)
}
