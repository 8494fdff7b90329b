package components

import (
	cfg "github.com/automoto/crygeen/config"
	"github.com/yohamta/donburi"
)

// NoSelection marks that no control row is waiting for a key.
const NoSelection = -1

// MenuData is the menu context shared by the event router and the
// animation player.
type MenuData struct {
	Status cfg.Status
	State  cfg.State

	// Selected is the index of the control row awaiting a key, or NoSelection.
	Selected int

	// Terminated is set once the quit hook has run.
	Terminated bool
}

var Menu = donburi.NewComponentType[MenuData]()

// ScreensaverData drives the splash background animation.
type ScreensaverData struct {
	Frame int
	Tick  int
}

var Screensaver = donburi.NewComponentType[ScreensaverData]()
