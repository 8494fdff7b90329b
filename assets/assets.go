package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the map the game starts on.
const DefaultLevel = "levels/meadow.tmx"

// Rect is a rectangle in world pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// GrassRegion is an area to fill with grass. Density scales the blade count.
type GrassRegion struct {
	Rect
	Density float64
}

type EnemySpawn struct {
	Rect
}

type Level struct {
	Name         string
	Width        int
	Height       int
	Obstacles    []Rect
	GrassRegions []GrassRegion
	PlayerSpawnX float64
	PlayerSpawnY float64
	EnemySpawns  []EnemySpawn
}

// LevelFS returns the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LevelNames lists the embedded .tmx files.
func LevelNames() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, "levels/"+entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevel parses a Tiled map from fsys. The map is expected to carry
// Obstacles, Grass and Spawns object groups.
func LoadLevel(fsys fs.FS, levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	level := &Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	level.PlayerSpawnX = float64(level.Width) / 2
	level.PlayerSpawnY = float64(level.Height) / 2

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Obstacles":
			for _, o := range og.Objects {
				level.Obstacles = append(level.Obstacles, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "Grass":
			for _, o := range og.Objects {
				density := 1.0
				if len(o.Properties.Get("density")) > 0 {
					density = o.Properties.GetFloat("density")
				}
				level.GrassRegions = append(level.GrassRegions, GrassRegion{
					Rect:    Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Density: density,
				})
			}
		case "Spawns":
			for _, o := range og.Objects {
				switch o.Name {
				case "player":
					level.PlayerSpawnX = o.X
					level.PlayerSpawnY = o.Y
				case "enemy":
					level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
						Rect: Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					})
				}
			}
		}
	}

	return level, nil
}

// MustLoadLevel loads an embedded level and panics on failure.
func MustLoadLevel(levelPath string) *Level {
	level, err := LoadLevel(assetFS, levelPath)
	if err != nil {
		panic(err)
	}
	return level
}
