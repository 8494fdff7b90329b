package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestSetupMenuStartsOnScreensaver(t *testing.T) {
	e := newMenuWorld()

	menu := GetOrCreateMenu(e)
	if menu.Status != cfg.StatusScreensaver || menu.State != cfg.StateMainMenu {
		t.Errorf("menu: got %v/%v", menu.Status, menu.State)
	}
	if menu.Selected != components.NoSelection {
		t.Errorf("selected: got %d", menu.Selected)
	}
	if !GetPanel(e, cfg.PanelScreensaver).Active {
		t.Error("screensaver should start active")
	}
	for _, id := range []cfg.PanelID{cfg.PanelMainMenu, cfg.PanelSettings, cfg.PanelExit} {
		if GetPanel(e, id).Active {
			t.Errorf("%v should start inactive", id)
		}
	}
	if n := len(GetPanel(e, cfg.PanelSettings).Rows); n != len(cfg.DefaultControls()) {
		t.Errorf("settings rows: got %d", n)
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	p := &components.PanelData{}

	ActivatePanel(p, time.Second)
	ActivatePanel(p, 5*time.Second)
	if !p.Active || p.ActivatedAt != time.Second {
		t.Errorf("after double open: active=%v at=%v", p.Active, p.ActivatedAt)
	}

	DeactivatePanel(p, 6*time.Second)
	DeactivatePanel(p, 9*time.Second)
	if p.Active || p.ActivatedAt != 6*time.Second {
		t.Errorf("after double close: active=%v at=%v", p.Active, p.ActivatedAt)
	}
}

func TestDropdownOpens(t *testing.T) {
	e := newMenuWorld()
	p := GetPanel(e, cfg.PanelMainMenu)
	ActivatePanel(p, time.Second)

	Dropdown(p, 2*time.Second)
	b := p.Buttons[0]
	want := cfg.Menu.StartY + (p.Dest[0]-cfg.Menu.StartY)/2
	if !near(b.Rect.Y, want) {
		t.Errorf("midway y: got %v, want %v", b.Rect.Y, want)
	}
	if p.Settled {
		t.Error("should not be settled halfway")
	}

	Dropdown(p, 3*time.Second+time.Millisecond)
	for i, b := range p.Buttons {
		if b.Rect.Y != p.Dest[i] {
			t.Errorf("button %d: y %v, want %v", i, b.Rect.Y, p.Dest[i])
		}
		if b.Alpha != b.BaseAlpha {
			t.Errorf("button %d: alpha %v, want %v", i, b.Alpha, b.BaseAlpha)
		}
	}
	if !p.Settled {
		t.Error("should be settled")
	}
}

func TestDropdownCloses(t *testing.T) {
	e := newMenuWorld()
	p := GetPanel(e, cfg.PanelMainMenu)
	ActivatePanel(p, 0)
	settle(p)

	DeactivatePanel(p, 10*time.Second)
	Dropdown(p, 13*time.Second)
	for i, b := range p.Buttons {
		if b.Rect.Y != p.CloseY || b.Alpha != 0 {
			t.Errorf("button %d: y %v alpha %v, want %v and 0", i, b.Rect.Y, b.Alpha, p.CloseY)
		}
	}
}

func TestDropdownReversesFromCurrentPosition(t *testing.T) {
	e := newMenuWorld()
	p := GetPanel(e, cfg.PanelMainMenu)
	ActivatePanel(p, time.Second)
	Dropdown(p, 2*time.Second)
	mid := p.Buttons[0].Rect.Y

	DeactivatePanel(p, 2*time.Second)
	if p.Buttons[0].FromY != mid {
		t.Fatalf("from y: got %v, want %v", p.Buttons[0].FromY, mid)
	}

	// No jump at the edge.
	Dropdown(p, 2*time.Second)
	if !near(p.Buttons[0].Rect.Y, mid) {
		t.Errorf("at edge: got %v, want %v", p.Buttons[0].Rect.Y, mid)
	}

	Dropdown(p, 3*time.Second)
	want := mid + (p.CloseY-mid)/2
	if !near(p.Buttons[0].Rect.Y, want) {
		t.Errorf("halfway back: got %v, want %v", p.Buttons[0].Rect.Y, want)
	}
}

func TestDropdownWaitsForFirstEdge(t *testing.T) {
	e := newMenuWorld()
	p := GetPanel(e, cfg.PanelSettings)
	before := p.Rows[0].Title.Rect.Y

	Dropdown(p, 10*time.Second)
	if p.Rows[0].Title.Rect.Y != before {
		t.Errorf("never opened panel moved to %v", p.Rows[0].Title.Rect.Y)
	}
}

func TestSettingsRowsDropToDestinations(t *testing.T) {
	e := newMenuWorld()
	p := GetPanel(e, cfg.PanelSettings)
	ActivatePanel(p, 0)
	settle(p)

	for i, row := range p.Rows {
		if row.Title.Rect.Y != p.RowDest[i] || row.Key.Rect.Y != p.RowDest[i] {
			t.Errorf("row %d: title %v key %v, want %v", i, row.Title.Rect.Y, row.Key.Rect.Y, p.RowDest[i])
		}
	}
}

func TestOverlayFades(t *testing.T) {
	e := newMenuWorld()
	p := GetPanel(e, cfg.PanelExit)
	ActivatePanel(p, time.Second)

	UpdateOverlay(p, time.Second)
	if p.Overlay != p.OverlayClosed {
		t.Errorf("at edge: got %d", p.Overlay)
	}
	UpdateOverlay(p, 1500*time.Millisecond)
	if p.Overlay < 120 || p.Overlay > 135 {
		t.Errorf("halfway: got %d", p.Overlay)
	}
	UpdateOverlay(p, 5*time.Second)
	if p.Overlay != p.OverlayOpen {
		t.Errorf("open: got %d, want %d", p.Overlay, p.OverlayOpen)
	}

	DeactivatePanel(p, 6*time.Second)
	UpdateOverlay(p, 10*time.Second)
	if p.Overlay != p.OverlayClosed {
		t.Errorf("closed: got %d, want %d", p.Overlay, p.OverlayClosed)
	}
}

func TestScreensaverFadesAndAnimates(t *testing.T) {
	e := newMenuWorld()

	for i := 0; i < cfg.Screensaver.FrameTicks; i++ {
		UpdateMenuAnimation(e)
	}
	if got := GetOrCreateScreensaver(e).Frame; got != 1 {
		t.Errorf("frame after %d ticks: got %d, want 1", cfg.Screensaver.FrameTicks, got)
	}

	setNow(e, cfg.Screensaver.BackgroundDuration)
	UpdateMenuAnimation(e)
	if got := GetPanel(e, cfg.PanelScreensaver).Overlay; got != cfg.Screensaver.BackgroundEnd {
		t.Errorf("overlay: got %d, want %d", got, cfg.Screensaver.BackgroundEnd)
	}

	s := GetOrCreateScreensaver(e)
	s.Frame = cfg.Screensaver.Frames - 1
	s.Tick = cfg.Screensaver.FrameTicks - 1
	UpdateMenuAnimation(e)
	if s.Frame != 0 {
		t.Errorf("frame should wrap, got %d", s.Frame)
	}
}

func TestOpenMainMenuSkipsSplash(t *testing.T) {
	e := newMenuWorld()
	setNow(e, 2*time.Second)
	OpenMainMenu(e)

	saver := GetPanel(e, cfg.PanelScreensaver)
	if saver.Active || saver.Overlay != saver.OverlayClosed {
		t.Errorf("screensaver: active=%v overlay=%d", saver.Active, saver.Overlay)
	}
	main := GetPanel(e, cfg.PanelMainMenu)
	if !main.Active || main.ActivatedAt != 2*time.Second {
		t.Errorf("main menu: active=%v at=%v", main.Active, main.ActivatedAt)
	}
	if got := GetOrCreateMenu(e).Status; got != cfg.StatusMainMenu {
		t.Errorf("status: got %v", got)
	}
}

func TestHoverBrightensSettledButton(t *testing.T) {
	e := newMenuWorld()
	var r recorder
	main := openMainMenu(e, time.Second, r.hooks())
	setNow(e, 5*time.Second)

	b := main.Buttons[2]
	in := getOrCreateInput(e)
	in.CursorX, in.CursorY = b.Rect.X+1, b.Rect.Y+1

	UpdateMenuAnimation(e)
	if got := main.Buttons[2].Alpha; got != b.BaseAlpha+b.HoverOffset {
		t.Errorf("hovered alpha: got %v, want %v", got, b.BaseAlpha+b.HoverOffset)
	}
	if got := main.Buttons[0].Alpha; got != main.Buttons[0].BaseAlpha {
		t.Errorf("idle alpha: got %v", got)
	}
}

func TestSelectedRowPulses(t *testing.T) {
	e := newMenuWorld()
	var r recorder
	settings := openSettings(e, r.hooks())
	DispatchMenuEvent(e, clickOn(settings.Rows[4].Key.Rect, 6*time.Second), r.hooks())

	setNow(e, 7*time.Second)
	UpdateMenuAnimation(e)
	if got := settings.Rows[4].Key.Alpha; got < 128 || got > 255 {
		t.Errorf("pulse alpha out of range: %v", got)
	}
}
