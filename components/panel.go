package components

import (
	"image/color"
	"time"

	cfg "github.com/automoto/crygeen/config"
	"github.com/yohamta/donburi"
)

// PanelData is one menu screen: its buttons, their destinations, and the
// timer every animation of the panel is measured from.
type PanelData struct {
	ID cfg.PanelID

	Buttons []Button
	Dest    []float64 // Dest[i] is the open Y of Buttons[i]

	Rows    []ControlRow // Settings only
	RowDest []float64

	CloseY float64

	Active      bool
	Activated   bool          // ActivatedAt has been set at least once
	ActivatedAt time.Duration // Time of the last Active edge
	Settled     bool          // Dropdown finished since the last edge

	DropdownDuration time.Duration
	FadeDuration     time.Duration

	OverlayOpen   uint8
	OverlayClosed uint8
	OverlayColor  color.RGBA
	Overlay       uint8 // Current overlay alpha
	OverlayFrom   uint8 // Overlay alpha at the last edge

	// Scroll limits for Rows: the first row may not rise above ScrollTop and
	// the last row may not sink below ScrollBottom.
	ScrollTop    float64
	ScrollBottom float64
	ScrollOffset float64
}

// AnimatedButtons returns every button the dropdown moves, rows included.
func (p *PanelData) AnimatedButtons() []*Button {
	out := make([]*Button, 0, len(p.Buttons)+2*len(p.Rows))
	for i := range p.Buttons {
		out = append(out, &p.Buttons[i])
	}
	for i := range p.Rows {
		out = append(out, &p.Rows[i].Title, &p.Rows[i].Key.Button)
	}
	return out
}

// DestFor returns the open Y of an animated button.
func (p *PanelData) DestFor(b *Button) float64 {
	if len(p.Rows) > 0 {
		return p.RowDest[b.ID]
	}
	return p.Dest[b.ID]
}

var Panel = donburi.NewComponentType[PanelData]()
