package factory

import (
	"github.com/automoto/crygeen/archetypes"
	"github.com/automoto/crygeen/components"
	"github.com/automoto/crygeen/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle adds a solid rectangle the player cannot walk through.
func CreateObstacle(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = obstacle // Link for O(1) lookup

	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return obstacle
}

// addToSpace registers obj with the level's space if it exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
