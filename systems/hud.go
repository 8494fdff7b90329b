package systems

import (
	"image/color"
	"time"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 8
	hudMargin    = 10
	hudGap       = 4
)

// DrawHUD renders the spurt and attack cooldowns in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	now := Now(e)

	drawCooldownBar(screen, hudMargin, CooldownReady(player.SpurtReadyAt, cfg.Player.SpurtCooldown, now), cfg.LightBlue)
	drawCooldownBar(screen, hudMargin+hudBarHeight+hudGap, CooldownReady(player.AttackReadyAt, cfg.Player.AttackCooldown, now), cfg.BrightOrange)
}

// CooldownReady returns how far an ability has recharged, from 0 to 1.
func CooldownReady(readyAt, cooldown, now time.Duration) float64 {
	return gamemath.Progress(now, readyAt-cooldown, cooldown)
}

func drawCooldownBar(screen *ebiten.Image, y float32, ratio float64, fill color.RGBA) {
	// Background (dark gray)
	vector.FillRect(screen, hudMargin, y, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, hudMargin, y, hudBarWidth*float32(ratio), hudBarHeight, fill, false)
}
