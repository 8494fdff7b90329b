package components

import (
	cfg "github.com/automoto/crygeen/config"
	"github.com/yohamta/donburi"
)

// ControlsData is the in-memory control remap table.
type ControlsData struct {
	Table []cfg.ControlBinding
}

var Controls = donburi.NewComponentType[ControlsData]()
