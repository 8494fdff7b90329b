package factory

import (
	"github.com/automoto/crygeen/archetypes"
	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a static enemy with its top-left at (x, y). A zero
// size falls back to the configured enemy size.
func CreateEnemy(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	if w <= 0 || h <= 0 {
		w, h = cfg.Enemy.Width, cfg.Enemy.Height
	}
	enemy := archetypes.Enemy.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy

	components.Enemy.SetValue(enemy, components.EnemyData{})
	addToSpace(ecs, obj)

	return enemy
}
