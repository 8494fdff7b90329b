package systems

import (
	"math"
	"time"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/gamemath"
	"github.com/automoto/crygeen/systems/factory"
	"github.com/automoto/crygeen/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the action state into velocity, spurts and attacks.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	vel := components.Velocity.Get(entry)
	input := getOrCreateInput(e)
	now := Now(e)

	dx, dy := MoveDirection(input)
	if dx != 0 || dy != 0 {
		player.Facing = components.Vector{X: dx, Y: dy}
	}

	cx, cy := obj.Center()
	level := GetLevel(e)

	if GetAction(input, cfg.ActionSpurt).JustPressed && TrySpurt(player, now) {
		logger.Debug("spurt", "until", player.SpurtUntil)
	}
	if player.Spurting(now) && level != nil {
		factory.SpawnParticles(e, components.ParticleSpurt, cx, cy+obj.H/2, cfg.Spurt, level.Rand, now)
	}

	speed := PlayerSpeed(player, now)
	vel.Velocity = components.Vector{X: dx * speed, Y: dy * speed}

	if GetAction(input, cfg.ActionAction).JustPressed && TryAttack(player, now) {
		tx, ty := attackTarget(e, player, cx, cy, input)
		factory.SpawnLightning(e,
			components.Vector{X: cx, Y: cy},
			components.Vector{X: tx, Y: ty},
			player.AttackUntil)
		strikeEnemies(e, cx, cy, tx, ty, now)
	}
}

// MoveDirection returns the normalized movement direction from the held
// direction actions.
func MoveDirection(input *components.InputData) (float64, float64) {
	var dx, dy float64
	if GetAction(input, cfg.ActionLeft).Pressed {
		dx--
	}
	if GetAction(input, cfg.ActionRight).Pressed {
		dx++
	}
	if GetAction(input, cfg.ActionUp).Pressed {
		dy--
	}
	if GetAction(input, cfg.ActionDown).Pressed {
		dy++
	}
	return gamemath.Normalize(dx, dy)
}

// TrySpurt starts a speed boost unless it is cooling down.
func TrySpurt(p *components.PlayerData, now time.Duration) bool {
	if now < p.SpurtReadyAt {
		return false
	}
	p.SpurtUntil = now + cfg.Player.SpurtDuration
	p.SpurtReadyAt = now + cfg.Player.SpurtCooldown
	return true
}

// TryAttack starts an attack unless it is cooling down.
func TryAttack(p *components.PlayerData, now time.Duration) bool {
	if now < p.AttackReadyAt {
		return false
	}
	p.AttackUntil = now + cfg.Player.AttackDuration
	p.AttackReadyAt = now + cfg.Player.AttackCooldown
	return true
}

// PlayerSpeed is the movement speed in pixels per second at now.
func PlayerSpeed(p *components.PlayerData, now time.Duration) float64 {
	if p.Spurting(now) {
		return cfg.Player.Speed * cfg.Player.SpurtCoefficient
	}
	return cfg.Player.Speed
}

// attackTarget aims the bolt at the pointer, or along the facing direction
// when the pointer sits on the player.
func attackTarget(e *ecs.ECS, p *components.PlayerData, cx, cy float64, input *components.InputData) (float64, float64) {
	offX, offY := cameraTopLeft(e, cfg.C.Width, cfg.C.Height)
	dirX, dirY := gamemath.Normalize(input.CursorX+offX-cx, input.CursorY+offY-cy)
	if dirX == 0 && dirY == 0 {
		dirX, dirY = p.Facing.X, p.Facing.Y
	}
	length := cfg.Lightning.Length
	return cx + dirX*length, cy + dirY*length
}

// distanceToSegment returns how far (px, py) is from the segment a-b.
func distanceToSegment(px, py, ax, ay, bx, by float64) float64 {
	abx, aby := bx-ax, by-ay
	lenSq := abx*abx + aby*aby
	t := 0.0
	if lenSq > 0 {
		t = gamemath.Clamp01(((px-ax)*abx + (py-ay)*aby) / lenSq)
	}
	return math.Hypot(px-(ax+t*abx), py-(ay+t*aby))
}
