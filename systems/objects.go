package systems

import (
	"github.com/automoto/crygeen/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every body's cells in the collision space after
// it moved.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	})
}
