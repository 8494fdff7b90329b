package components

import (
	"math/rand"

	"github.com/automoto/crygeen/assets"
	"github.com/automoto/crygeen/grass"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *assets.Level
	Grass *grass.Field
	Rand  *rand.Rand // Drives particles and lightning
}

var Level = donburi.NewComponentType[LevelData]()
