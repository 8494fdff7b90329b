package systems

import (
	"fmt"
	"time"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// MenuHooks are the router's ways out of the menu.
type MenuHooks struct {
	// Quit ends the process. It runs at most once.
	Quit func()
	// SaveControls persists the whole control table after a remap.
	SaveControls func([]cfg.ControlBinding) error
}

type menuHandler func(e *ecs.ECS, ev components.InputEvent, hooks MenuHooks)

// Every Status needs an entry; DispatchMenuEvent panics on a missing one.
var menuHandlers = map[cfg.Status]menuHandler{
	cfg.StatusScreensaver: handleScreensaverEvent,
	cfg.StatusMainMenu:    handleMainMenuEvent,
	cfg.StatusSettings:    handleSettingsEvent,
	cfg.StatusSetControl:  handleSetControlEvent,
	cfg.StatusExit:        handleExitEvent,
	cfg.StatusNewGame:     ignoreEvent,
	cfg.StatusLoadGame:    ignoreEvent,
}

// DispatchMenuEvent routes one raw input event by the current status.
func DispatchMenuEvent(e *ecs.ECS, ev components.InputEvent, hooks MenuHooks) {
	menu := GetOrCreateMenu(e)
	if menu.Terminated {
		return
	}
	if ev.Kind == components.EventQuit {
		terminate(menu, hooks)
		return
	}

	handle, ok := menuHandlers[menu.Status]
	if !ok {
		panic(fmt.Sprintf("no event handler for status %v", menu.Status))
	}
	handle(e, ev, hooks)
}

// DrainMenuEvents dispatches and clears every queued event.
func DrainMenuEvents(e *ecs.ECS, hooks MenuHooks) {
	queue := getOrCreateEventQueue(e)
	events := queue.Events
	queue.Events = queue.Events[:0]
	for _, ev := range events {
		DispatchMenuEvent(e, ev, hooks)
	}
}

func handleScreensaverEvent(e *ecs.ECS, ev components.InputEvent, hooks MenuHooks) {
	if ev.Kind != components.EventKeyDown {
		return
	}
	runAction(e, components.ButtonAction{
		Target: cfg.StatusMainMenu,
		Effects: []cfg.Effect{
			{Kind: cfg.EffectClose, Panel: cfg.PanelScreensaver},
			{Kind: cfg.EffectOpen, Panel: cfg.PanelMainMenu},
		},
	}, ev.At, hooks)
}

func handleMainMenuEvent(e *ecs.ECS, ev components.InputEvent, hooks MenuHooks) {
	if !isLeftClick(ev) {
		return
	}
	p := GetPanel(e, cfg.PanelMainMenu)
	if i := ButtonAt(p.Buttons, ev.X, ev.Y); i >= 0 {
		runAction(e, p.Buttons[i].Action, ev.At, hooks)
	}
}

func handleSettingsEvent(e *ecs.ECS, ev components.InputEvent, hooks MenuHooks) {
	p := GetPanel(e, cfg.PanelSettings)
	switch ev.Kind {
	case components.EventMouseDown:
		if ev.Button != ebiten.MouseButtonLeft {
			return
		}
		if i := RowAt(p.Rows, ev.X, ev.Y); i >= 0 {
			selectRow(e, p, i)
			setStatus(e, cfg.StatusSetControl)
		}
	case components.EventWheel:
		// Wheel up pulls earlier rows into view.
		if ev.WheelY > 0 {
			ScrollRows(p, p.ScrollOffset)
		} else if ev.WheelY < 0 {
			ScrollRows(p, -p.ScrollOffset)
		}
	case components.EventKeyDown:
		if ev.Key == ebiten.KeyEscape {
			runAction(e, backToMainMenu(cfg.PanelSettings), ev.At, hooks)
		}
	}
}

func handleSetControlEvent(e *ecs.ECS, ev components.InputEvent, hooks MenuHooks) {
	if ev.Kind != components.EventKeyDown {
		return
	}
	menu := GetOrCreateMenu(e)
	p := GetPanel(e, cfg.PanelSettings)

	if ev.Key == ebiten.KeyEscape {
		clearSelection(e, p)
		setStatus(e, cfg.StatusSettings)
		return
	}
	if menu.Selected < 0 || menu.Selected >= len(p.Rows) {
		setStatus(e, cfg.StatusSettings)
		return
	}

	row := &p.Rows[menu.Selected]
	oldKey, oldLabel := row.Key.Key, row.Key.Label
	if !CaptureKey(&row.Key, ev.Key, cfg.AllowedKeys) {
		return
	}

	controls := GetOrCreateControls(e)
	// A key drives one action only: whoever held it takes the old key.
	for i := range p.Rows {
		if i != menu.Selected && p.Rows[i].Key.Key == ev.Key {
			p.Rows[i].Key.Key = oldKey
			p.Rows[i].Key.Label = oldLabel
			p.Rows[i].Key.Rect.W = float64(len(oldLabel)) * cfg.Settings.CharWidth
			controls.Table[i].Key = oldKey
			controls.Table[i].Display = oldLabel
		}
	}
	controls.Table[menu.Selected].Key = row.Key.Key
	controls.Table[menu.Selected].Display = row.Key.Label
	logger.Debug("control remapped", "action", controls.Table[menu.Selected].Title, "key", row.Key.Label)

	if hooks.SaveControls != nil {
		if err := hooks.SaveControls(controls.Table); err != nil {
			logger.Error("could not save controls", "error", err)
		}
	}

	menu.Selected = components.NoSelection
	setStatus(e, cfg.StatusSettings)
}

func handleExitEvent(e *ecs.ECS, ev components.InputEvent, hooks MenuHooks) {
	switch ev.Kind {
	case components.EventKeyDown:
		switch ev.Key {
		case ebiten.KeyEscape:
			runAction(e, backToMainMenu(cfg.PanelExit), ev.At, hooks)
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			terminate(GetOrCreateMenu(e), hooks)
		}
	case components.EventMouseDown:
		if !isLeftClick(ev) {
			return
		}
		p := GetPanel(e, cfg.PanelExit)
		if i := ButtonAt(p.Buttons, ev.X, ev.Y); i >= 0 {
			runAction(e, p.Buttons[i].Action, ev.At, hooks)
		}
	}
}

func ignoreEvent(*ecs.ECS, components.InputEvent, MenuHooks) {}

func backToMainMenu(from cfg.PanelID) components.ButtonAction {
	return components.ButtonAction{
		Target: cfg.StatusMainMenu,
		Effects: []cfg.Effect{
			{Kind: cfg.EffectClose, Panel: from},
			{Kind: cfg.EffectOpen, Panel: cfg.PanelMainMenu},
		},
	}
}

func isLeftClick(ev components.InputEvent) bool {
	return ev.Kind == components.EventMouseDown && ev.Button == ebiten.MouseButtonLeft
}

// runAction moves to the action's status and then applies its effects.
func runAction(e *ecs.ECS, action components.ButtonAction, at time.Duration, hooks MenuHooks) {
	setStatus(e, action.Target)
	applyEffects(e, action.Effects, at, hooks)
}

func applyEffects(e *ecs.ECS, effects []cfg.Effect, at time.Duration, hooks MenuHooks) {
	for _, eff := range effects {
		switch eff.Kind {
		case cfg.EffectOpen:
			ActivatePanel(GetPanel(e, eff.Panel), at)
		case cfg.EffectClose:
			DeactivatePanel(GetPanel(e, eff.Panel), at)
		case cfg.EffectQuit:
			terminate(GetOrCreateMenu(e), hooks)
		}
	}
}

func setStatus(e *ecs.ECS, s cfg.Status) {
	menu := GetOrCreateMenu(e)
	if menu.Status != s {
		logger.Debug("menu status", "from", menu.Status, "to", s)
	}
	menu.Status = s
}

func terminate(menu *components.MenuData, hooks MenuHooks) {
	if menu.Terminated {
		return
	}
	menu.Terminated = true
	logger.Info("quit requested")
	if hooks.Quit != nil {
		hooks.Quit()
	}
}

// selectRow marks row i as waiting for a key. At most one row is selected.
func selectRow(e *ecs.ECS, p *components.PanelData, i int) {
	clearSelection(e, p)
	p.Rows[i].Key.Selected = true
	GetOrCreateMenu(e).Selected = i
}

func clearSelection(e *ecs.ECS, p *components.PanelData) {
	menu := GetOrCreateMenu(e)
	if menu.Selected >= 0 && menu.Selected < len(p.Rows) {
		p.Rows[menu.Selected].Key.Selected = false
	}
	menu.Selected = components.NoSelection
}

// ScrollRows moves every control row by dy. The move is refused when it
// would lift the first row above ScrollTop or sink the last row below
// ScrollBottom.
func ScrollRows(p *components.PanelData, dy float64) bool {
	if len(p.Rows) == 0 || dy == 0 {
		return false
	}
	if dy < 0 && p.Rows[0].Title.Rect.Y+dy < p.ScrollTop {
		return false
	}
	if dy > 0 && p.Rows[len(p.Rows)-1].Title.Rect.Y+dy > p.ScrollBottom {
		return false
	}
	for i := range p.Rows {
		p.Rows[i].Title.Rect.Y += dy
		p.Rows[i].Key.Rect.Y += dy
	}
	return true
}
