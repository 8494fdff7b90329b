package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing Vector

	// Ability windows, in scene time.
	SpurtUntil    time.Duration
	SpurtReadyAt  time.Duration
	AttackUntil   time.Duration
	AttackReadyAt time.Duration
}

// Spurting reports whether the speed boost is running at now.
func (p *PlayerData) Spurting(now time.Duration) bool {
	return now < p.SpurtUntil
}

// Attacking reports whether an attack is running at now.
func (p *PlayerData) Attacking(now time.Duration) bool {
	return now < p.AttackUntil
}

var Player = donburi.NewComponentType[PlayerData]()
