package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/crygeen/assets"
	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/grass"
	"github.com/automoto/crygeen/systems/factory"
	"github.com/automoto/crygeen/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var groundColor = color.RGBA{R: 34, G: 52, B: 30, A: 255}

// SetupLevel populates the world from a loaded map: collision space,
// obstacles, enemies, the player, its camera and the grass field.
func SetupLevel(e *ecs.ECS, level *assets.Level, rng *rand.Rand) {
	field := grass.NewField(GrassConfig(), rng)
	planted := PlantGrass(field, level.GrassRegions, rng)
	factory.CreateLevel(e, level, field, rng)

	// Now create the space for collision detection using the level's dimensions.
	ts := cfg.Grass.TileSize
	factory.CreateSpace(e, level.Width, level.Height, ts, ts)

	for _, o := range level.Obstacles {
		factory.CreateObstacle(e, o.X, o.Y, o.Width, o.Height)
	}
	for _, s := range level.EnemySpawns {
		factory.CreateEnemy(e, s.X, s.Y, s.Width, s.Height)
	}
	factory.CreatePlayer(e, level.PlayerSpawnX, level.PlayerSpawnY)
	cx, cy := clampCamera(level, level.PlayerSpawnX, level.PlayerSpawnY)
	factory.CreateCamera(e, cx, cy)

	logger.Info("level ready",
		"name", level.Name,
		"obstacles", len(level.Obstacles),
		"enemies", len(level.EnemySpawns),
		"grass_tiles", planted)
}

// GrassConfig converts the configured grass settings for the simulation.
func GrassConfig() grass.Config {
	g := cfg.Grass
	return grass.Config{
		TileSize:  g.TileSize,
		MaxUnique: g.MaxUnique,
		Stiffness: g.Stiffness,
		Precision: g.Precision,
		PlaceMin:  float64(g.PlaceMinY) / float64(g.TileSize),
		PlaceMax:  float64(g.PlaceMaxY) / float64(g.TileSize),
	}
}

// PlantGrass fills every region with tiles whose noise value exceeds the
// placement threshold. It returns the number of tiles placed.
func PlantGrass(field *grass.Field, regions []assets.GrassRegion, rng *rand.Rand) int {
	g := cfg.Grass
	ts := float64(g.TileSize)
	phaseX, phaseY := rng.Float64()*2*math.Pi, rng.Float64()*2*math.Pi

	placed := 0
	for _, r := range regions {
		x0, y0 := int(math.Floor(r.X/ts)), int(math.Floor(r.Y/ts))
		x1, y1 := int(math.Ceil((r.X+r.Width)/ts)), int(math.Ceil((r.Y+r.Height)/ts))
		for ty := y0; ty < y1; ty++ {
			for tx := x0; tx < x1; tx++ {
				v := r.Density * grassNoise(tx, ty, phaseX, phaseY)
				if v <= g.PlaceThreshold {
					continue
				}
				density := int(v * g.DensityScale)
				if density <= 0 {
					continue
				}
				if field.PlaceTile(grass.Point{X: tx, Y: ty}, density, g.Variants) {
					placed++
				}
			}
		}
	}
	return placed
}

// grassNoise is a smooth value in [0, 1] that varies across the grid.
func grassNoise(tx, ty int, phaseX, phaseY float64) float64 {
	x, y := float64(tx), float64(ty)
	v := 0.5 + 0.25*math.Sin(x*0.37+phaseX) + 0.25*math.Cos(y*0.29+phaseY)
	return v*0.8 + 0.2*math.Sin(x*0.11+y*0.13)*math.Sin(x*0.11+y*0.13)
}

// GetLevel returns the level data, or nil before SetupLevel.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// DrawLevel renders the ground and obstacles.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(groundColor)

	offX, offY := screenTopLeft(e, screen)
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.FillRect(screen,
			float32(obj.X-offX), float32(obj.Y-offY),
			float32(obj.W), float32(obj.H),
			cfg.Purple, false)
	})
}
