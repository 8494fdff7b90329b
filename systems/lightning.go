package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// JaggedPath splits the segment from-to into streaks pieces and pushes every
// inner point sideways by up to deviation. The endpoints stay put.
func JaggedPath(from, to components.Vector, streaks int, deviation float64, rng *rand.Rand) []components.Vector {
	if streaks < 1 {
		streaks = 1
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	// Unit normal of the segment.
	nx, ny := -dy, dx
	if l := math.Hypot(nx, ny); l > 0 {
		nx, ny = nx/l, ny/l
	}

	points := make([]components.Vector, streaks+1)
	for i := 0; i <= streaks; i++ {
		t := float64(i) / float64(streaks)
		p := components.Vector{X: from.X + dx*t, Y: from.Y + dy*t}
		if i > 0 && i < streaks {
			off := (rng.Float64()*2 - 1) * deviation
			p.X += nx * off
			p.Y += ny * off
		}
		points[i] = p
	}
	return points
}

// DrawLightning renders every active bolt with a fresh jagged path.
func DrawLightning(e *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(e)
	if level == nil {
		return
	}
	offX, offY := screenTopLeft(e, screen)
	l := cfg.Lightning

	components.Lightning.Each(e.World, func(entry *donburi.Entry) {
		bolt := components.Lightning.Get(entry)
		if len(bolt.Points) < 2 {
			return
		}
		path := JaggedPath(bolt.Points[0], bolt.Points[len(bolt.Points)-1], l.Streaks, l.Deviation, level.Rand)
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			vector.StrokeLine(screen,
				float32(a.X-offX), float32(a.Y-offY),
				float32(b.X-offX), float32(b.Y-offY),
				l.Width, l.Color, true)
		}
	})
}
