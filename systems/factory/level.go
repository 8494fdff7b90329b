package factory

import (
	"math/rand"

	"github.com/automoto/crygeen/archetypes"
	"github.com/automoto/crygeen/assets"
	"github.com/automoto/crygeen/components"
	"github.com/automoto/crygeen/grass"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the loaded map and its grass field.
func CreateLevel(ecs *ecs.ECS, level *assets.Level, field *grass.Field, rng *rand.Rand) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		Level: level,
		Grass: field,
		Rand:  rng,
	})
	return entry
}
