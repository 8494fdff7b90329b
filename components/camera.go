package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point shown at the center of the screen.
type CameraData struct {
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData stores active screen shake state
type ScreenShakeData struct {
	Intensity float64 // Max pixel offset
	Duration  int     // Total frames
	Elapsed   int     // Frames elapsed
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
