package systems

import (
	"math"

	"github.com/automoto/crygeen/assets"
	"github.com/automoto/crygeen/components"
	"github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level := GetLevel(e)
	if level == nil || level.Level == nil {
		return
	}

	px, py := components.Object.Get(playerEntry).Center()
	targetX, targetY := clampCamera(level.Level, px, py)

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.Smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.Smoothing

	// Process screen shake
	updateScreenShake(cameraEntry, camera)
}

// clampCamera keeps the view inside the level. A level smaller than the
// screen is centered.
func clampCamera(level *assets.Level, x, y float64) (float64, float64) {
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(level.Width)
	levelHeight := float64(level.Height)

	x = clampAxis(x, screenWidth, levelWidth)
	y = clampAxis(y, screenHeight, levelHeight)
	return x, y
}

func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// cameraTopLeft returns the world position drawn at the screen's top-left.
func cameraTopLeft(e *ecs.ECS, w, h int) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(w)/2, camera.Position.Y - float64(h)/2
}

// screenTopLeft is cameraTopLeft for the given screen.
func screenTopLeft(e *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	return cameraTopLeft(e, screen.Bounds().Dx(), screen.Bounds().Dy())
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := math.Max(float64(shake.Duration-shake.Elapsed)/float64(shake.Duration), 0)
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
