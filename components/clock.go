package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the scene's notion of now, advanced once per tick.
type ClockData struct {
	Now  time.Duration
	Tick int
}

var Clock = donburi.NewComponentType[ClockData]()
