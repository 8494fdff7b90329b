package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision bodies and prints frame and grass stats when
// debug mode is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Verbose {
		return
	}

	offX, offY := screenTopLeft(e, screen)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x, y := obj.X-offX, obj.Y-offY
			// Cull objects outside viewport
			if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	msg := fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if level := GetLevel(e); level != nil && level.Grass != nil {
		msg += fmt.Sprintf("\ngrass tiles %d  cached images %d", level.Grass.Len(), level.Grass.CachedImages())
	}
	ebitenutil.DebugPrintAt(screen, msg, int(width)-260, 4)
}
