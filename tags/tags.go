package tags

import "github.com/yohamta/donburi"

var (
	Panel    = donburi.NewTag().SetName("Panel")
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
