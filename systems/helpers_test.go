package systems

import (
	"time"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newMenuWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	SetupMenu(e, cfg.Layout, cfg.DefaultControls())
	return e
}

func setNow(e *ecs.ECS, now time.Duration) {
	GetOrCreateClock(e).Now = now
}

func keyDown(k ebiten.Key, at time.Duration) components.InputEvent {
	return components.InputEvent{Kind: components.EventKeyDown, Key: k, At: at}
}

func clickOn(r components.Rect, at time.Duration) components.InputEvent {
	return components.InputEvent{
		Kind:   components.EventMouseDown,
		Button: ebiten.MouseButtonLeft,
		X:      r.X + 1,
		Y:      r.Y + 1,
		At:     at,
	}
}

func wheel(dy float64, at time.Duration) components.InputEvent {
	return components.InputEvent{Kind: components.EventWheel, WheelY: dy, At: at}
}

// settle finishes the panel's current dropdown.
func settle(p *components.PanelData) {
	Dropdown(p, p.ActivatedAt+p.DropdownDuration+p.FadeDuration)
}

func buttonByLabel(p *components.PanelData, label string) components.Button {
	for _, b := range p.Buttons {
		if b.Label == label {
			return b
		}
	}
	panic("no button " + label)
}

// recorder collects hook calls.
type recorder struct {
	quits int
	saves [][]cfg.ControlBinding
	err   error
}

func (r *recorder) hooks() MenuHooks {
	return MenuHooks{
		Quit: func() { r.quits++ },
		SaveControls: func(table []cfg.ControlBinding) error {
			r.saves = append(r.saves, append([]cfg.ControlBinding(nil), table...))
			return r.err
		},
	}
}

// openMainMenu dismisses the screensaver at t and settles the main menu.
func openMainMenu(e *ecs.ECS, t time.Duration, hooks MenuHooks) *components.PanelData {
	DispatchMenuEvent(e, keyDown(ebiten.KeySpace, t), hooks)
	p := GetPanel(e, cfg.PanelMainMenu)
	settle(p)
	return p
}

// openSettings goes through the main menu to the settled settings panel.
func openSettings(e *ecs.ECS, hooks MenuHooks) *components.PanelData {
	main := openMainMenu(e, time.Second, hooks)
	DispatchMenuEvent(e, clickOn(buttonByLabel(main, "Settings").Rect, 4*time.Second), hooks)
	p := GetPanel(e, cfg.PanelSettings)
	settle(p)
	return p
}

// openExit goes through the main menu to the settled exit panel.
func openExit(e *ecs.ECS, hooks MenuHooks) *components.PanelData {
	main := openMainMenu(e, time.Second, hooks)
	DispatchMenuEvent(e, clickOn(buttonByLabel(main, "Exit").Rect, 4*time.Second), hooks)
	p := GetPanel(e, cfg.PanelExit)
	settle(p)
	return p
}
