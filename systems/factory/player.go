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

// CreatePlayer spawns the player centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	components.Player.SetValue(player, components.PlayerData{
		Facing: components.Vector{X: 0, Y: 1},
	})
	addToSpace(ecs, obj)

	return player
}
