package systems

import (
	"time"

	"github.com/automoto/crygeen/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances scene time by one tick. It must run first.
func UpdateClock(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	clock.Now += tickDuration()
	clock.Tick++
}

func tickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// GetOrCreateClock returns the scene clock singleton.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// Now returns the scene time.
func Now(e *ecs.ECS) time.Duration {
	return GetOrCreateClock(e).Now
}
