package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/crygeen/assets"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene runs gameplay on one map
type LevelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	leave        bool
	once         sync.Once
}

// NewLevelScene creates a level scene using the current control table
func NewLevelScene(sc SceneChanger, s *Services) *LevelScene {
	return &LevelScene{sceneChanger: sc, services: s}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	if ebiten.IsWindowBeingClosed() && ls.services.Quit != nil {
		ls.services.Quit()
		return
	}
	ls.ecs.Update()

	// Escape from the pause overlay returns to the main menu
	if ls.leave {
		ls.sceneChanger.ChangeScene(NewMainMenuScene(ls.sceneChanger, ls.services))
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	level := assets.MustLoadLevel(ls.services.Level)

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(func() { ls.leave = true }))

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateGrass))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// World renderers
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawGrass)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawCharacters)
	e.AddRenderer(cfg.Default, systems.DrawLightning)

	// Screen-space renderers
	e.AddRenderer(cfg.Overlay, systems.DrawHUD)
	e.AddRenderer(cfg.Overlay, systems.DrawDebug)
	e.AddRenderer(cfg.Overlay, systems.DrawPause)

	ls.ecs = e

	systems.SetBindings(e, cfg.BindingsFromControls(ls.services.Table))

	seed := ls.services.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	systems.SetupLevel(e, level, rand.New(rand.NewSource(seed)))
}
