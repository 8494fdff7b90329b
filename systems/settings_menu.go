package systems

import (
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawSettingsMenu renders the control remap panel: its overlay, then one
// title and key button per row.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	p := GetPanel(e, cfg.PanelSettings)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	drawOverlay(screen, p, width, height)

	if !p.Activated {
		return
	}

	face := fonts.Setting.Get()
	for i := range p.Rows {
		row := &p.Rows[i]
		drawButton(screen, &row.Title, face, cfg.Menu.TextColor)

		keyColor := cfg.Settings.KeyColor
		if row.Key.Selected {
			keyColor = cfg.Settings.SelectedColor
			r := row.Key.Rect
			vector.StrokeRect(screen, float32(r.X-4), float32(r.Y), float32(r.W+8), float32(r.H), 1,
				withAlpha(keyColor, row.Key.Alpha), false)
		}
		drawButton(screen, &row.Key.Button, face, keyColor)
	}
}
