package systems

import (
	"time"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/systems/factory"
	"github.com/automoto/crygeen/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const enemyFlashDuration = 100 * time.Millisecond

// UpdateEnemies draws blood from every enemy the player is touching.
func UpdateEnemies(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	now := Now(e)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if !overlaps(playerObj.Object, obj.Object) {
			return
		}
		x, y := playerObj.Center()
		Bleed(e, entry, x, y, now)
	})
}

// Bleed sprays blood from an enemy at (x, y) unless it bled too recently.
func Bleed(e *ecs.ECS, entry *donburi.Entry, x, y float64, now time.Duration) bool {
	enemy := components.Enemy.Get(entry)
	if now < enemy.BleedReadyAt {
		return false
	}
	enemy.BleedReadyAt = now + cfg.Enemy.BloodCooldown
	enemy.FlashUntil = now + enemyFlashDuration

	if level := GetLevel(e); level != nil {
		factory.SpawnParticles(e, components.ParticleBlood, x, y, cfg.Blood, level.Rand, now)
	}
	TriggerScreenShake(e, 3, 8)
	return true
}

// strikeEnemies bleeds every enemy the bolt from (ax, ay) to (bx, by) touches.
func strikeEnemies(e *ecs.ECS, ax, ay, bx, by float64, now time.Duration) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		cx, cy := obj.Center()
		reach := (obj.W + obj.H) / 4
		if distanceToSegment(cx, cy, ax, ay, bx, by) <= reach {
			Bleed(e, entry, cx, cy, now)
		}
	})
}
