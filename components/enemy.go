package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type EnemyData struct {
	BleedReadyAt time.Duration // Next time touching the enemy may draw blood
	FlashUntil   time.Duration
}

var Enemy = donburi.NewComponentType[EnemyData]()
