package systems

import (
	"time"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMenuAnimation advances every panel animation by one tick.
// Must run AFTER the menu system so this tick's edges are visible.
func UpdateMenuAnimation(e *ecs.ECS) {
	now := Now(e)
	menu := GetOrCreateMenu(e)

	advanceScreensaver(GetOrCreateScreensaver(e))
	UpdateOverlay(GetPanel(e, cfg.PanelScreensaver), now)

	// Nothing else is on screen until the splash is dismissed.
	if menu.Status == cfg.StatusScreensaver {
		return
	}

	input := getOrCreateInput(e)
	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		p := components.Panel.Get(entry)
		if p.ID == cfg.PanelScreensaver {
			return
		}
		Dropdown(p, now)
		UpdateOverlay(p, now)
		if p.Active && p.Settled {
			hoverPanel(p, input.CursorX, input.CursorY)
		}
	})

	settings := GetPanel(e, cfg.PanelSettings)
	if menu.Selected >= 0 && menu.Selected < len(settings.Rows) {
		settings.Rows[menu.Selected].Key.Alpha = gamemath.Pulse(now)
	}
}

// Dropdown moves the panel's buttons toward their open destinations, or
// toward CloseY once the panel is closing, starting from where they were at
// the last edge. Opacity follows the same edge over FadeDuration.
func Dropdown(p *components.PanelData, now time.Duration) {
	if !p.Activated || p.Settled {
		return
	}
	settled := true
	for _, b := range p.AnimatedButtons() {
		toY, toAlpha := p.CloseY, 0.0
		if p.Active {
			toY, toAlpha = p.DestFor(b), b.BaseAlpha
		}
		y, movedDone := gamemath.Tween(b.FromY, toY, now, p.ActivatedAt, p.DropdownDuration)
		a, fadeDone := gamemath.Tween(b.FromAlpha, toAlpha, now, p.ActivatedAt, p.FadeDuration)
		b.Rect.Y = y
		b.Alpha = a
		settled = settled && movedDone && fadeDone
	}
	p.Settled = settled
}

// UpdateOverlay fades the panel overlay toward its open or closed alpha.
func UpdateOverlay(p *components.PanelData, now time.Duration) {
	if !p.Activated {
		return
	}
	to := p.OverlayClosed
	if p.Active {
		to = p.OverlayOpen
	}
	p.Overlay = gamemath.AlphaVanish(p.OverlayFrom, to, now, p.ActivatedAt, p.FadeDuration)
}

// ScreensaverTextAlpha is the opacity of the splash prompt at now.
func ScreensaverTextAlpha(e *ecs.ECS, now time.Duration) float64 {
	s := cfg.Screensaver
	p := GetPanel(e, cfg.PanelScreensaver)
	return gamemath.ScreensaverTextAlpha(s.TextStartAlpha, s.TextEndAlpha, s.TextThreshold,
		now, p.ActivatedAt, s.EmergenceDuration)
}

func advanceScreensaver(s *components.ScreensaverData) {
	s.Tick++
	if s.Tick < cfg.Screensaver.FrameTicks {
		return
	}
	s.Tick = 0
	s.Frame = (s.Frame + 1) % cfg.Screensaver.Frames
}

func hoverPanel(p *components.PanelData, x, y float64) {
	for i := range p.Buttons {
		UpdateHover(&p.Buttons[i], p.Buttons[i].Rect.Contains(x, y))
	}
	for i := range p.Rows {
		row := &p.Rows[i]
		hovered := row.Title.Rect.Contains(x, y) || row.Key.Rect.Contains(x, y)
		UpdateHover(&row.Title, hovered)
		if !row.Key.Selected {
			UpdateHover(&row.Key.Button, hovered)
		}
	}
}
