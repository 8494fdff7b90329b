package assets

import (
	"testing"
	"testing/fstest"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	level, err := LoadLevel(LevelFS(), DefaultLevel)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Width != 1920 || level.Height != 1024 {
		t.Errorf("size: got %dx%d, want 1920x1024", level.Width, level.Height)
	}
	if got := len(level.Obstacles); got != 7 {
		t.Errorf("obstacles: got %d, want 7", got)
	}
	if got := len(level.GrassRegions); got != 2 {
		t.Fatalf("grass regions: got %d, want 2", got)
	}
	if got := level.GrassRegions[1].Density; got != 0.5 {
		t.Errorf("verge density: got %v, want 0.5", got)
	}
	if level.PlayerSpawnX != 960 || level.PlayerSpawnY != 560 {
		t.Errorf("player spawn: got (%v, %v), want (960, 560)", level.PlayerSpawnX, level.PlayerSpawnY)
	}
	if len(level.EnemySpawns) != 1 {
		t.Fatalf("enemy spawns: got %d, want 1", len(level.EnemySpawns))
	}
	e := level.EnemySpawns[0]
	if e.X != 200 || e.Y != 300 || e.Width != 50 || e.Height != 50 {
		t.Errorf("enemy spawn: got %+v", e)
	}
}

func TestLevelNames(t *testing.T) {
	names, err := LevelNames()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, n := range names {
		if n == DefaultLevel {
			found = true
		}
	}
	if !found {
		t.Errorf("LevelNames %v does not include %s", names, DefaultLevel)
	}
}

func TestLoadLevelDefaultsSpawnToCenter(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Grass">
  <object id="1" x="0" y="0" width="32" height="32"/>
 </objectgroup>
</map>`)},
	}
	level, err := LoadLevel(fsys, "empty.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.PlayerSpawnX != 80 || level.PlayerSpawnY != 64 {
		t.Errorf("spawn: got (%v, %v), want (80, 64)", level.PlayerSpawnX, level.PlayerSpawnY)
	}
	if level.GrassRegions[0].Density != 1 {
		t.Errorf("default density: got %v, want 1", level.GrassRegions[0].Density)
	}

	if _, err := LoadLevel(fsys, "missing.tmx"); err == nil {
		t.Error("missing map: expected error")
	}
}
