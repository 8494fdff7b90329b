package systems

import (
	"math"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/grass"
	"github.com/automoto/crygeen/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrass pushes the grass away from the player, then lets every tile
// relax toward the wind.
func UpdateGrass(e *ecs.ECS) {
	level := GetLevel(e)
	if level == nil || level.Grass == nil {
		return
	}

	if entry, ok := tags.Player.First(e.World); ok {
		cx, cy := components.Object.Get(entry).Center()
		level.Grass.ApplyForce(cx, cy, cfg.Player.GrassForceRadius, cfg.Player.GrassForceDropOff)
	}

	tick := float64(GetOrCreateClock(e).Tick)
	level.Grass.Update(tickDuration().Seconds(), func(x, _ float64) float64 {
		return WindRotation(tick, x)
	})
}

// WindRotation is the resting lean of grass at world x on a given tick.
func WindRotation(tick, x float64) float64 {
	return math.Sin(tick/60+x/100) * 15
}

// DrawGrass renders the visible part of the grass field.
func DrawGrass(e *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(e)
	if level == nil || level.Grass == nil {
		return
	}
	offX, offY := screenTopLeft(e, screen)
	level.Grass.Draw(screen, offX, offY, grass.Style{
		BladeLength: cfg.Grass.BladeLength,
		BladeWidth:  1,
		Colors:      cfg.Grass.Colors,
	})
}
