package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// VelocityData is the per-second movement of a body.
type VelocityData struct {
	Velocity Vector
}

var Velocity = donburi.NewComponentType[VelocityData]()
