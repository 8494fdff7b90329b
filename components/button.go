package components

import (
	cfg "github.com/automoto/crygeen/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Anchor selects which horizontal point of a button its base X refers to.
type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorRight
	AnchorCenter
)

// AnchoredRect places a w×h rect so that its anchor point sits at x.
func AnchoredRect(a Anchor, x, y, w, h float64) Rect {
	switch a {
	case AnchorRight:
		x -= w
	case AnchorCenter:
		x -= w / 2
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// ButtonAction is what clicking a button does: move to Target and run Effects.
type ButtonAction struct {
	Target  cfg.Status
	Effects []cfg.Effect
}

// Button is a clickable, animated menu label. ID indexes the owning panel's
// destination list.
type Button struct {
	ID          int
	Label       string
	Rect        Rect
	BaseAlpha   float64
	Alpha       float64
	HoverOffset float64
	Action      ButtonAction

	// Values captured at the panel's last open/close edge; the dropdown
	// animates from here.
	FromY     float64
	FromAlpha float64
}

// ControlButton shows the key bound to one action. Label holds the key's
// display string.
type ControlButton struct {
	Button
	Key      ebiten.Key
	Selected bool
}

// ControlRow pairs an action title with its key button.
type ControlRow struct {
	Title Button
	Key   ControlButton
}
