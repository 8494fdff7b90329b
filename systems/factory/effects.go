package factory

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/crygeen/archetypes"
	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticles emits a burst of p.Count particles at (x, y). Each one
// drifts toward a random point within p.Spread.
func SpawnParticles(ecs *ecs.ECS, kind components.ParticleKind, x, y float64, p cfg.ParticleConfig, rng *rand.Rand, now time.Duration) {
	for i := 0; i < p.Count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := rng.Float64() * p.Spread
		lifetime := p.Lifetime
		if p.LifetimeJit > 0 {
			lifetime += time.Duration(rng.Int63n(int64(p.LifetimeJit)))
		}

		entry := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(entry, components.ParticleData{
			Kind:        kind,
			StartX:      x,
			StartY:      y,
			EndX:        x + math.Cos(angle)*dist,
			EndY:        y + math.Sin(angle)*dist,
			StartRadius: p.StartRadius,
			EndRadius:   p.EndRadius,
			Born:        now,
			Lifetime:    lifetime,
			Color:       p.Color,
			X:           x,
			Y:           y,
			Radius:      p.StartRadius,
		})
	}
}

// SpawnLightning creates the attack bolt, alive until the given time.
func SpawnLightning(ecs *ecs.ECS, from, to components.Vector, until time.Duration) *donburi.Entry {
	entry := archetypes.Lightning.Spawn(ecs)
	components.Lightning.SetValue(entry, components.LightningData{
		Points: []components.Vector{from, to},
		Until:  until,
	})
	return entry
}
