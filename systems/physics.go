package systems

import (
	"github.com/automoto/crygeen/components"
	"github.com/automoto/crygeen/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves every body with a velocity by one tick, stopping at
// solid obstacles and the level edge.
func UpdatePhysics(e *ecs.ECS) {
	dt := tickDuration().Seconds()
	level := GetLevel(e)

	components.Velocity.Each(e.World, func(entry *donburi.Entry) {
		vel := components.Velocity.Get(entry)
		obj := components.Object.Get(entry)

		MoveAndCollide(obj, vel.Velocity.X*dt, vel.Velocity.Y*dt)

		if level != nil && level.Level != nil {
			obj.X = gamemath.Clamp(obj.X, 0, float64(level.Level.Width)-obj.W)
			obj.Y = gamemath.Clamp(obj.Y, 0, float64(level.Level.Height)-obj.H)
		}
	})
}
