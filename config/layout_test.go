package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLayout(t *testing.T) {
	l, err := LoadMenuLayout("")
	if err != nil {
		t.Fatalf("LoadMenuLayout: %v", err)
	}
	titles := []string{"New Game", "Load Game", "Settings", "Exit"}
	if len(l.MainMenu) != len(titles) {
		t.Fatalf("main menu buttons: got %d, want %d", len(l.MainMenu), len(titles))
	}
	for i, want := range titles {
		if got := l.MainMenu[i].Title; got != want {
			t.Errorf("main menu[%d]: got %q, want %q", i, got, want)
		}
	}

	settings := l.MainMenu[2]
	if settings.Status != StatusSettings {
		t.Errorf("settings status: got %v, want %v", settings.Status, StatusSettings)
	}
	want := []Effect{{Kind: EffectClose, Panel: PanelMainMenu}, {Kind: EffectOpen, Panel: PanelSettings}}
	if len(settings.Effects) != len(want) {
		t.Fatalf("settings effects: got %v, want %v", settings.Effects, want)
	}
	for i := range want {
		if settings.Effects[i] != want[i] {
			t.Errorf("settings effect %d: got %v, want %v", i, settings.Effects[i], want[i])
		}
	}

	if len(l.MainMenu[1].Effects) != 0 {
		t.Errorf("load game effects: got %v, want none", l.MainMenu[1].Effects)
	}
	yes := l.Exit[1]
	if len(yes.Effects) != 1 || yes.Effects[0].Kind != EffectQuit {
		t.Errorf("exit yes effects: got %v, want [quit]", yes.Effects)
	}
}

func TestParseMenuLayoutRejectsUnknownEffect(t *testing.T) {
	data := []byte(`
main_menu:
  - title: Boom
    status: main_menu
    effects: [explode]
`)
	_, err := ParseMenuLayout(data)
	if err == nil {
		t.Fatal("expected error for unknown effect")
	}
	if !strings.Contains(err.Error(), "explode") {
		t.Errorf("error should name the effect, got %v", err)
	}
}

func TestParseMenuLayoutRejectsUnknownStatusAndPanel(t *testing.T) {
	cases := map[string]string{
		"status": "main_menu:\n  - title: A\n    status: somewhere\n",
		"panel":  "main_menu:\n  - title: A\n    status: exit\n    effects: [open:inventory]\n",
		"empty":  "exit:\n  - title: A\n    status: exit\n",
		"title":  "main_menu:\n  - status: exit\n",
	}
	for name, doc := range cases {
		if _, err := ParseMenuLayout([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadMenuLayoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	doc := "main_menu:\n  - title: Only\n    status: exit\n    effects: [open:exit]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := LoadMenuLayout(path)
	if err != nil {
		t.Fatalf("LoadMenuLayout: %v", err)
	}
	if len(l.MainMenu) != 1 || l.MainMenu[0].Title != "Only" {
		t.Errorf("custom layout: got %+v", l.MainMenu)
	}
	if _, err := LoadMenuLayout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing layout file: expected error")
	}
}

func TestStatusNames(t *testing.T) {
	for s := StatusScreensaver; s < StatusCount; s++ {
		var back Status
		if err := back.UnmarshalText([]byte(s.String())); err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		if back != s {
			t.Errorf("status round trip: got %v, want %v", back, s)
		}
	}
}
