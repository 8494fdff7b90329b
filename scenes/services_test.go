package scenes

import (
	"testing"

	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestSaveControlsKeepsTableAndPersists(t *testing.T) {
	s := &Services{Controls: systems.NewMemoryControlStore()}
	table := cfg.DefaultControls()
	table[2].Key, table[2].Display = ebiten.KeyI, "i"

	if err := s.SaveControls(table); err != nil {
		t.Fatalf("SaveControls: %v", err)
	}

	// Later edits to the caller's slice must not leak into the services.
	table[2].Key = ebiten.KeyK
	if s.Table[2].Key != ebiten.KeyI {
		t.Errorf("kept table: got %v, want I", s.Table[2].Key)
	}

	loaded, err := s.Controls.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded[2].Key != ebiten.KeyI {
		t.Errorf("persisted table: got %v, want I", loaded[2].Key)
	}
}

func TestMenuHooksQuit(t *testing.T) {
	quits := 0
	s := &Services{Controls: systems.NewMemoryControlStore(), Quit: func() { quits++ }}

	hooks := s.menuHooks()
	hooks.Quit()
	if quits != 1 {
		t.Errorf("quits: got %d, want 1", quits)
	}
	if err := hooks.SaveControls(cfg.DefaultControls()); err != nil {
		t.Errorf("SaveControls: %v", err)
	}
}
