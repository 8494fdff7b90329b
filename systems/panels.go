package systems

import (
	"slices"
	"time"

	"github.com/automoto/crygeen/archetypes"
	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetupMenu builds the menu context and the four panels. The screensaver
// starts active at the current scene time.
func SetupMenu(e *ecs.ECS, layout cfg.MenuLayout, table []cfg.ControlBinding) {
	menu := GetOrCreateMenu(e)
	*menu = components.MenuData{
		Status:   cfg.StatusScreensaver,
		State:    cfg.StateMainMenu,
		Selected: components.NoSelection,
	}
	GetOrCreateControls(e).Table = slices.Clone(table)
	GetOrCreateScreensaver(e)
	getOrCreateEventQueue(e)

	now := Now(e)
	for _, p := range []components.PanelData{
		newScreensaverPanel(),
		newMainMenuPanel(layout.MainMenu),
		newSettingsPanel(table),
		newExitPanel(layout.Exit),
	} {
		entry := archetypes.Panel.Spawn(e)
		components.Panel.SetValue(entry, p)
	}
	ActivatePanel(GetPanel(e, cfg.PanelScreensaver), now)
}

func newScreensaverPanel() components.PanelData {
	s := cfg.Screensaver
	return components.PanelData{
		ID:            cfg.PanelScreensaver,
		FadeDuration:  s.BackgroundDuration,
		OverlayOpen:   s.BackgroundEnd,
		OverlayClosed: s.BackgroundEnd,
		OverlayColor:  cfg.Black,
		Overlay:       s.BackgroundStart,
	}
}

func newMainMenuPanel(entries []cfg.ButtonLayout) components.PanelData {
	m := cfg.Menu
	buttons, dest := CreateButtons(entries, ButtonGeometry{
		X:           m.X,
		BaseY:       m.BaseY,
		YOffset:     m.YOffset,
		StartY:      m.StartY,
		Anchor:      components.AnchorLeft,
		FontSize:    m.FontSize,
		CharWidth:   m.CharWidth,
		Alpha:       m.ButtonAlpha,
		HoverOffset: m.HoverOffset,
	})
	return components.PanelData{
		ID:               cfg.PanelMainMenu,
		Buttons:          buttons,
		Dest:             dest,
		CloseY:           m.CloseY,
		DropdownDuration: m.DropdownDuration,
		FadeDuration:     m.FadeDuration,
	}
}

func newSettingsPanel(table []cfg.ControlBinding) components.PanelData {
	s := cfg.Settings
	rows, dest := CreateControlRows(table, RowGeometry{
		LabelX:      s.LabelX,
		KeyX:        s.KeyX,
		BaseY:       s.BaseY,
		YOffset:     s.YOffset,
		StartY:      s.StartY,
		FontSize:    s.FontSize,
		CharWidth:   s.CharWidth,
		Alpha:       cfg.Menu.ButtonAlpha,
		HoverOffset: cfg.Menu.HoverOffset,
	})
	// The list may scroll until its last row reaches the top of the view
	// band or its first row reaches the bottom.
	span := float64(max(len(rows)-1, 0)) * s.YOffset
	return components.PanelData{
		ID:               cfg.PanelSettings,
		Rows:             rows,
		RowDest:          dest,
		CloseY:           s.CloseY,
		DropdownDuration: s.DropdownDuration,
		FadeDuration:     s.FadeDuration,
		OverlayOpen:      s.OverlayOpen,
		OverlayClosed:    s.OverlayClosed,
		OverlayColor:     s.OverlayColor,
		ScrollTop:        s.ViewTop - span,
		ScrollBottom:     s.ViewBottom + span,
		ScrollOffset:     s.ScrollOffset,
	}
}

func newExitPanel(entries []cfg.ButtonLayout) components.PanelData {
	x := cfg.Exit
	buttons, dest := CreateButtons(entries, ButtonGeometry{
		X:           x.X,
		XStep:       x.XStep,
		BaseY:       x.DestY,
		StartY:      x.StartY,
		Anchor:      components.AnchorCenter,
		FontSize:    cfg.Menu.FontSize,
		CharWidth:   cfg.Menu.CharWidth,
		Alpha:       cfg.Menu.ButtonAlpha,
		HoverOffset: cfg.Menu.HoverOffset,
	})
	return components.PanelData{
		ID:               cfg.PanelExit,
		Buttons:          buttons,
		Dest:             dest,
		CloseY:           x.CloseY,
		DropdownDuration: x.DropdownDuration,
		FadeDuration:     x.FadeDuration,
		OverlayOpen:      x.OverlayOpen,
		OverlayClosed:    x.OverlayClosed,
		OverlayColor:     x.OverlayColor,
	}
}

// GetPanel returns the panel with the given id. It panics if SetupMenu has
// not run.
func GetPanel(e *ecs.ECS, id cfg.PanelID) *components.PanelData {
	var found *components.PanelData
	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		if p := components.Panel.Get(entry); p.ID == id {
			found = p
		}
	})
	if found == nil {
		panic("panel " + id.String() + " does not exist")
	}
	return found
}

// ActivatePanel opens p. Opening an already open panel keeps its timer.
func ActivatePanel(p *components.PanelData, now time.Duration) {
	if p.Active {
		return
	}
	p.Active = true
	markEdge(p, now)
}

// DeactivatePanel starts closing p. Closing a closed panel keeps its timer.
func DeactivatePanel(p *components.PanelData, now time.Duration) {
	if !p.Active {
		return
	}
	p.Active = false
	markEdge(p, now)
}

// markEdge restarts the panel's animations from the current visual state.
func markEdge(p *components.PanelData, now time.Duration) {
	p.Activated = true
	p.ActivatedAt = now
	p.Settled = false
	p.OverlayFrom = p.Overlay
	for _, b := range p.AnimatedButtons() {
		b.FromY = b.Rect.Y
		b.FromAlpha = b.Alpha
	}
}

// GetOrCreateMenu returns the menu context singleton.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			Selected: components.NoSelection,
		})
	}
	return components.Menu.Get(entry)
}

// GetOrCreateControls returns the in-memory control table.
func GetOrCreateControls(e *ecs.ECS) *components.ControlsData {
	entry, ok := components.Controls.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Controls))
		components.Controls.SetValue(entry, components.ControlsData{
			Table: cfg.DefaultControls(),
		})
	}
	return components.Controls.Get(entry)
}

// GetOrCreateScreensaver returns the splash animation state.
func GetOrCreateScreensaver(e *ecs.ECS) *components.ScreensaverData {
	entry, ok := components.Screensaver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Screensaver))
	}
	return components.Screensaver.Get(entry)
}

// OpenMainMenu skips the splash: the screensaver disappears at once and the
// main menu starts dropping in.
func OpenMainMenu(e *ecs.ECS) {
	now := Now(e)
	saver := GetPanel(e, cfg.PanelScreensaver)
	saver.Overlay = saver.OverlayClosed
	DeactivatePanel(saver, now)
	ActivatePanel(GetPanel(e, cfg.PanelMainMenu), now)
	setStatus(e, cfg.StatusMainMenu)
}
