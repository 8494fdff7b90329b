package systems

import (
	"image/color"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Culling padding so bodies do not pop in at the screen edges.
const cullPadding = 64.0

// DrawCharacters renders enemies, then the player on top.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	offX, offY := screenTopLeft(e, screen)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	now := Now(e)

	visible := func(obj components.ObjectData) bool {
		x, y := obj.X-offX, obj.Y-offY
		return x+obj.W >= -cullPadding && x <= width+cullPadding &&
			y+obj.H >= -cullPadding && y <= height+cullPadding
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if !visible(*obj) {
			return
		}
		c := cfg.Enemy.Color
		if now < components.Enemy.Get(entry).FlashUntil {
			c = cfg.Enemy.HitColor
		}
		drawBody(screen, *obj, offX, offY, c)
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		player := components.Player.Get(entry)
		c := cfg.Player.Color
		if player.Attacking(now) {
			c = cfg.Lightning.Color
		}
		drawBody(screen, *obj, offX, offY, c)

		// Facing marker
		cx, cy := obj.Center()
		vector.StrokeLine(screen,
			float32(cx-offX), float32(cy-offY),
			float32(cx-offX+player.Facing.X*obj.W), float32(cy-offY+player.Facing.Y*obj.W),
			2, cfg.Orange, true)
	})
}

func drawBody(screen *ebiten.Image, obj components.ObjectData, offX, offY float64, c color.RGBA) {
	vector.FillRect(screen,
		float32(obj.X-offX), float32(obj.Y-offY),
		float32(obj.W), float32(obj.H),
		c, false)
}
