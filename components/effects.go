package components

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi"
)

// ParticleKind tells blood from spurt dust.
type ParticleKind int

const (
	ParticleBlood ParticleKind = iota
	ParticleSpurt
)

// ParticleData is a single short-lived dot that moves from its start to its
// end position while its radius shrinks.
type ParticleData struct {
	Kind                   ParticleKind
	StartX, StartY         float64
	EndX, EndY             float64
	StartRadius, EndRadius float64
	Born                   time.Duration
	Lifetime               time.Duration
	Color                  color.RGBA

	X, Y, Radius float64 // Current values
}

var Particle = donburi.NewComponentType[ParticleData]()

// LightningData is the jagged bolt drawn while the player attacks.
type LightningData struct {
	Points []Vector
	Until  time.Duration
}

var Lightning = donburi.NewComponentType[LightningData]()
