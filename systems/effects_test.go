package systems

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/systems/factory"
	"github.com/automoto/crygeen/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdateParticle(t *testing.T) {
	p := components.ParticleData{
		StartX: 0, StartY: 0,
		EndX: 10, EndY: 20,
		StartRadius: 4, EndRadius: 0,
		Born:     time.Second,
		Lifetime: time.Second,
	}

	if !UpdateParticle(&p, 1500*time.Millisecond) {
		t.Fatal("particle should be alive halfway")
	}
	if !near(p.X, 5) || !near(p.Y, 10) || !near(p.Radius, 2) {
		t.Errorf("halfway: (%v, %v) r=%v", p.X, p.Y, p.Radius)
	}
	if UpdateParticle(&p, 2*time.Second) {
		t.Error("particle should expire at the end of its lifetime")
	}
}

func TestUpdateEffectsRemovesExpired(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	rng := rand.New(rand.NewSource(3))
	factory.SpawnParticles(e, components.ParticleBlood, 0, 0, cfg.Blood, rng, 0)
	factory.SpawnLightning(e, components.Vector{}, components.Vector{X: 10}, 200*time.Millisecond)

	setNow(e, 100*time.Millisecond)
	UpdateEffects(e)
	if n := countTagged(e, tags.Particle); n != cfg.Blood.Count {
		t.Errorf("early: %d particles", n)
	}
	if _, ok := components.Lightning.First(e.World); !ok {
		t.Error("bolt removed too early")
	}

	setNow(e, cfg.Blood.Lifetime+cfg.Blood.LifetimeJit)
	UpdateEffects(e)
	if n := countTagged(e, tags.Particle); n != 0 {
		t.Errorf("late: %d particles", n)
	}
	if _, ok := components.Lightning.First(e.World); ok {
		t.Error("bolt should be gone")
	}
}

func TestJaggedPath(t *testing.T) {
	from := components.Vector{X: 0, Y: 0}
	to := components.Vector{X: 100, Y: 0}
	rng := rand.New(rand.NewSource(4))

	path := JaggedPath(from, to, 8, 12, rng)
	if len(path) != 9 {
		t.Fatalf("points: got %d, want 9", len(path))
	}
	if path[0] != from || path[8] != to {
		t.Errorf("endpoints moved: %v %v", path[0], path[8])
	}
	for i, p := range path {
		if !near(p.X, float64(i)*12.5) {
			t.Errorf("point %d: x %v", i, p.X)
		}
		if math.Abs(p.Y) > 12 {
			t.Errorf("point %d: deviation %v", i, p.Y)
		}
	}

	if got := JaggedPath(from, to, 0, 12, rng); len(got) != 2 {
		t.Errorf("zero streaks: got %d points", len(got))
	}
}
