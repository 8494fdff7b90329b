package scenes

import (
	"slices"

	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Services are the long-lived dependencies every scene shares.
type Services struct {
	Layout   cfg.MenuLayout
	Controls *systems.ControlStore
	Table    []cfg.ControlBinding // Current control table
	Level    string               // Map path inside the embedded level files
	Seed     int64
	Quit     func()
}

// SaveControls keeps the remapped table for later scenes and persists it.
// The in-memory table is updated even if saving fails.
func (s *Services) SaveControls(table []cfg.ControlBinding) error {
	s.Table = slices.Clone(table)
	return s.Controls.Save(table)
}

func (s *Services) menuHooks() systems.MenuHooks {
	return systems.MenuHooks{
		Quit:         s.Quit,
		SaveControls: s.SaveControls,
	}
}
