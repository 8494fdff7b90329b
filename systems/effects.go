package systems

import (
	"time"

	"github.com/automoto/crygeen/components"
	"github.com/automoto/crygeen/gamemath"
	"github.com/automoto/crygeen/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances particles and drops expired ones.
func UpdateEffects(e *ecs.ECS) {
	now := Now(e)
	var toDestroy []*donburi.Entry

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if !UpdateParticle(p, now) {
			toDestroy = append(toDestroy, entry)
		}
	})

	components.Lightning.Each(e.World, func(entry *donburi.Entry) {
		if now >= components.Lightning.Get(entry).Until {
			toDestroy = append(toDestroy, entry)
		}
	})

	for _, entry := range toDestroy {
		entry.Remove()
	}
}

// UpdateParticle moves p along its path for now. It reports false once the
// particle's lifetime is over.
func UpdateParticle(p *components.ParticleData, now time.Duration) bool {
	if now-p.Born >= p.Lifetime {
		return false
	}
	p.X, _ = gamemath.Tween(p.StartX, p.EndX, now, p.Born, p.Lifetime)
	p.Y, _ = gamemath.Tween(p.StartY, p.EndY, now, p.Born, p.Lifetime)
	p.Radius, _ = gamemath.Tween(p.StartRadius, p.EndRadius, now, p.Born, p.Lifetime)
	return true
}

// DrawParticles renders every live particle.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	offX, offY := screenTopLeft(e, screen)
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if p.Radius <= 0 {
			return
		}
		vector.FillCircle(screen, float32(p.X-offX), float32(p.Y-offY), float32(p.Radius), p.Color, true)
	})
}
