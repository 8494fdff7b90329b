package systems

import (
	"testing"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestCreateButtonsAlignsIDsAndDestinations(t *testing.T) {
	g := ButtonGeometry{X: 10, XStep: 5, BaseY: 100, YOffset: 50, StartY: -20, CharWidth: 10, FontSize: 20, Alpha: 128}
	buttons, dest := CreateButtons(cfg.Layout.MainMenu, g)

	if len(buttons) != len(cfg.Layout.MainMenu) || len(dest) != len(buttons) {
		t.Fatalf("got %d buttons and %d destinations", len(buttons), len(dest))
	}
	for i, b := range buttons {
		if b.ID != i {
			t.Errorf("button %d: id %d", i, b.ID)
		}
		if want := 100 + float64(i+1)*50; dest[i] != want {
			t.Errorf("dest %d: got %v, want %v", i, dest[i], want)
		}
		if b.Rect.Y != -20 || b.Rect.X != 10+float64(i)*5 {
			t.Errorf("button %d: starts at (%v, %v)", i, b.Rect.X, b.Rect.Y)
		}
		if b.Rect.W != float64(len(b.Label))*10 || b.Rect.H != 20 {
			t.Errorf("button %d: size %vx%v", i, b.Rect.W, b.Rect.H)
		}
		if b.Label != cfg.Layout.MainMenu[i].Title || b.Action.Target != cfg.Layout.MainMenu[i].Status {
			t.Errorf("button %d: %q -> %v", i, b.Label, b.Action.Target)
		}
	}
}

func TestCreateControlRowsAnchorsColumns(t *testing.T) {
	table := cfg.DefaultControls()
	rows, dest := CreateControlRows(table, RowGeometry{LabelX: 500, KeyX: 600, BaseY: 0, YOffset: 40, CharWidth: 10, FontSize: 30})

	if len(rows) != len(table) || len(dest) != len(table) {
		t.Fatalf("got %d rows", len(rows))
	}
	for i, row := range rows {
		if got := row.Title.Rect.X + row.Title.Rect.W; got != 500 {
			t.Errorf("row %d: title ends at %v", i, got)
		}
		if row.Key.Rect.X != 600 || row.Key.Key != table[i].Key || row.Key.Label != table[i].Display {
			t.Errorf("row %d: key %v %q at %v", i, row.Key.Key, row.Key.Label, row.Key.Rect.X)
		}
		if row.Title.ID != i || row.Key.ID != i {
			t.Errorf("row %d: ids %d/%d", i, row.Title.ID, row.Key.ID)
		}
	}
}

func TestAnchoredRect(t *testing.T) {
	tests := []struct {
		anchor components.Anchor
		wantX  float64
	}{
		{components.AnchorLeft, 100},
		{components.AnchorRight, 60},
		{components.AnchorCenter, 80},
	}
	for _, tt := range tests {
		if r := components.AnchoredRect(tt.anchor, 100, 0, 40, 10); r.X != tt.wantX {
			t.Errorf("anchor %d: x %v, want %v", tt.anchor, r.X, tt.wantX)
		}
	}
}

func TestButtonAtAndRowAt(t *testing.T) {
	buttons := []components.Button{
		{Rect: components.Rect{X: 0, Y: 0, W: 50, H: 20}},
		{Rect: components.Rect{X: 0, Y: 30, W: 50, H: 20}},
	}
	if got := ButtonAt(buttons, 10, 35); got != 1 {
		t.Errorf("ButtonAt: got %d, want 1", got)
	}
	if got := ButtonAt(buttons, 10, 25); got != -1 {
		t.Errorf("ButtonAt gap: got %d, want -1", got)
	}
	// Right and bottom edges are exclusive.
	if got := ButtonAt(buttons, 50, 10); got != -1 {
		t.Errorf("ButtonAt edge: got %d, want -1", got)
	}

	rows := []components.ControlRow{{
		Title: components.Button{Rect: components.Rect{X: 0, Y: 0, W: 40, H: 20}},
		Key:   components.ControlButton{Button: components.Button{Rect: components.Rect{X: 100, Y: 0, W: 10, H: 20}}},
	}}
	if RowAt(rows, 105, 5) != 0 || RowAt(rows, 5, 5) != 0 {
		t.Error("RowAt should match title and key")
	}
	if RowAt(rows, 70, 5) != -1 {
		t.Error("RowAt between columns should miss")
	}
}

func TestUpdateHover(t *testing.T) {
	b := components.Button{BaseAlpha: 128, Alpha: 128, HoverOffset: 10}

	UpdateHover(&b, true)
	if b.Alpha != 138 {
		t.Errorf("hovered: got %v", b.Alpha)
	}
	b.Alpha = 250
	UpdateHover(&b, true)
	if b.Alpha != 255 {
		t.Errorf("capped: got %v", b.Alpha)
	}
	UpdateHover(&b, false)
	if b.Alpha != 245 {
		t.Errorf("fading back: got %v", b.Alpha)
	}
	b.Alpha = 133
	UpdateHover(&b, false)
	if b.Alpha != 128 {
		t.Errorf("floor: got %v", b.Alpha)
	}

	// Buttons still fading in do not react.
	hidden := components.Button{BaseAlpha: 128, Alpha: 50, HoverOffset: 10}
	UpdateHover(&hidden, true)
	if hidden.Alpha != 50 {
		t.Errorf("hidden: got %v", hidden.Alpha)
	}
}

func TestCaptureKey(t *testing.T) {
	b := components.ControlButton{Key: ebiten.KeyA, Selected: true}
	b.Label = "a"

	if CaptureKey(&b, ebiten.KeyNumpad5, cfg.AllowedKeys) {
		t.Error("numpad key should be refused")
	}
	if b.Key != ebiten.KeyA || !b.Selected {
		t.Errorf("refused key changed the button: %v selected=%v", b.Key, b.Selected)
	}

	if !CaptureKey(&b, ebiten.KeySpace, cfg.AllowedKeys) {
		t.Fatal("space should be accepted")
	}
	if b.Key != ebiten.KeySpace || b.Label != "space" || b.Selected {
		t.Errorf("got %v %q selected=%v", b.Key, b.Label, b.Selected)
	}
	if b.Rect.W != 5*cfg.Settings.CharWidth {
		t.Errorf("width: got %v", b.Rect.W)
	}
}
