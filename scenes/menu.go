package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the splash screen and the menu panels
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	skipSplash   bool
	once         sync.Once
}

// NewMenuScene creates a menu scene that starts on the screensaver
func NewMenuScene(sc SceneChanger, s *Services) *MenuScene {
	return &MenuScene{sceneChanger: sc, services: s}
}

// NewMainMenuScene creates a menu scene that opens straight on the main menu
func NewMainMenuScene(sc SceneChanger, s *Services) *MenuScene {
	return &MenuScene{sceneChanger: sc, services: s, skipSplash: true}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createLevelScene := func() interface{} {
		return NewLevelScene(ms.sceneChanger, ms.services)
	}

	// Clock first so events are stamped with this tick's time
	ms.ecs.AddSystem(systems.UpdateClock)
	ms.ecs.AddSystem(systems.CollectMenuEvents)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createLevelScene, ms.services.menuHooks()))
	ms.ecs.AddSystem(systems.UpdateMenuAnimation)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	systems.SetupMenu(ms.ecs, ms.services.Layout, ms.services.Table)
	if ms.skipSplash {
		systems.OpenMainMenu(ms.ecs)
	}
}
