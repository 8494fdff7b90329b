package systems

import (
	"math"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonGeometry places a panel's buttons. Button i is created at
// (X + i*XStep, StartY) and drops to BaseY + (i+1)*YOffset.
type ButtonGeometry struct {
	X, XStep       float64
	BaseY, YOffset float64
	StartY         float64
	Anchor         components.Anchor

	FontSize    float64
	CharWidth   float64
	Alpha       float64
	HoverOffset float64
}

// CreateButtons builds one button per layout entry with ids 0..N-1 and the
// matching destination list.
func CreateButtons(entries []cfg.ButtonLayout, g ButtonGeometry) ([]components.Button, []float64) {
	buttons := make([]components.Button, len(entries))
	dest := make([]float64, len(entries))
	for i, entry := range entries {
		buttons[i] = newButton(i, entry.Title, g.Anchor, g.X+float64(i)*g.XStep, g.StartY, g)
		buttons[i].Action = components.ButtonAction{
			Target:  entry.Status,
			Effects: entry.Effects,
		}
		dest[i] = g.BaseY + float64(i+1)*g.YOffset
	}
	return buttons, dest
}

// RowGeometry places the control rows of the settings panel.
type RowGeometry struct {
	LabelX, KeyX   float64
	BaseY, YOffset float64
	StartY         float64

	FontSize    float64
	CharWidth   float64
	Alpha       float64
	HoverOffset float64
}

// CreateControlRows builds one row per binding, in table order.
func CreateControlRows(table []cfg.ControlBinding, g RowGeometry) ([]components.ControlRow, []float64) {
	bg := ButtonGeometry{FontSize: g.FontSize, CharWidth: g.CharWidth, Alpha: g.Alpha, HoverOffset: g.HoverOffset}
	rows := make([]components.ControlRow, len(table))
	dest := make([]float64, len(table))
	for i, b := range table {
		rows[i] = components.ControlRow{
			Title: newButton(i, b.Title, components.AnchorRight, g.LabelX, g.StartY, bg),
			Key: components.ControlButton{
				Button: newButton(i, b.Display, components.AnchorLeft, g.KeyX, g.StartY, bg),
				Key:    b.Key,
			},
		}
		rows[i].Title.Action.Target = cfg.StatusSetControl
		rows[i].Key.Action.Target = cfg.StatusSetControl
		dest[i] = g.BaseY + float64(i+1)*g.YOffset
	}
	return rows, dest
}

func newButton(id int, label string, anchor components.Anchor, x, y float64, g ButtonGeometry) components.Button {
	w, h := labelSize(label, g)
	return components.Button{
		ID:          id,
		Label:       label,
		Rect:        components.AnchoredRect(anchor, x, y, w, h),
		BaseAlpha:   g.Alpha,
		HoverOffset: g.HoverOffset,
		FromY:       y,
	}
}

func labelSize(label string, g ButtonGeometry) (float64, float64) {
	return float64(len(label)) * g.CharWidth, g.FontSize
}

// ButtonAt returns the index of the first button containing (x, y), or -1.
func ButtonAt(buttons []components.Button, x, y float64) int {
	for i := range buttons {
		if buttons[i].Rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RowAt returns the index of the first control row whose title or key
// contains (x, y), or -1.
func RowAt(rows []components.ControlRow, x, y float64) int {
	for i := range rows {
		if rows[i].Title.Rect.Contains(x, y) || rows[i].Key.Rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// UpdateHover brightens a visible hovered button and lets it fade back to
// its resting opacity otherwise.
func UpdateHover(b *components.Button, hovered bool) {
	if hovered && b.Alpha > 100 {
		b.Alpha = math.Min(b.Alpha+b.HoverOffset, 255)
		return
	}
	if b.Alpha > b.BaseAlpha {
		b.Alpha = math.Max(b.Alpha-b.HoverOffset, b.BaseAlpha)
	}
}

// CaptureKey binds key to the control button if the key may be remapped.
// It reports whether the binding changed; a refused key leaves the button
// selected.
func CaptureKey(b *components.ControlButton, key ebiten.Key, allowed map[ebiten.Key]string) bool {
	display, ok := allowed[key]
	if !ok {
		return false
	}
	b.Key = key
	b.Label = display
	b.Rect.W = float64(len(display)) * cfg.Settings.CharWidth
	b.Selected = false
	return true
}
