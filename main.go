// crygeen is a top-down action-adventure prototype: an animated menu with a
// control remap screen in front of a grassy meadow level.
//
// Usage:
//
//	crygeen [flags]
//
// Flags:
//
//	--skip-menu      - Start directly in the level
//	--debug          - Debug logging and collision overlay
//	--tps <rate>     - Tick rate (default: 60)
//	--fullscreen     - Start fullscreen
//	--layout <path>  - Custom menu layout YAML
//	--level <path>   - Embedded map to play
//	--seed <value>   - RNG seed for grass and effects (0 = time based)
package main

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/automoto/crygeen/assets"
	"github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/fonts"
	"github.com/automoto/crygeen/scenes"
	"github.com/automoto/crygeen/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "crygeen"

var (
	flagSkipMenu   bool
	flagDebug      bool
	flagTPS        int
	flagFullscreen bool
	flagLayout     string
	flagLevel      string
	flagSeed       int64
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(services *scenes.Services) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	services.Quit = func() { g.quit = true }

	if config.Debug.SkipMenu {
		g.scene = scenes.NewLevelScene(g, services)
	} else {
		g.scene = scenes.NewMenuScene(g, services)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Crygeen - a top-down action-adventure prototype",
	Long: `Crygeen opens on an animated splash screen. Press any key for the
main menu, remap controls under Settings, and start a New Game to walk
through the meadow.

Examples:
  crygeen
  crygeen --skip-menu --debug
  crygeen --layout ./my-menu.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Skip the menu and start in the level")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and overlays")
	rootCmd.Flags().IntVar(&flagTPS, "tps", 60, "Tick rate (ticks per second)")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen mode")
	rootCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a custom menu layout YAML")
	rootCmd.Flags().StringVar(&flagLevel, "level", assets.DefaultLevel, "Embedded level to play")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		systems.Logger().Error("crygeen stopped", "error", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := systems.Logger()

	config.Debug.SkipMenu = flagSkipMenu
	config.Debug.Verbose = flagDebug
	systems.SetVerbose(flagDebug)
	if flagTPS <= 0 {
		return fmt.Errorf("invalid --tps %d", flagTPS)
	}
	config.C.TPS = flagTPS

	layout, err := config.LoadMenuLayout(flagLayout)
	if err != nil {
		return err
	}
	config.Layout = layout

	// Fail before opening a window if the map is broken
	if _, err := assets.LoadLevel(assets.LevelFS(), flagLevel); err != nil {
		return err
	}

	if err := fonts.LoadDefaults(config.Menu.FontSize, config.Settings.FontSize); err != nil {
		return err
	}

	store, err := systems.OpenControlStore(appName)
	if err != nil {
		logger.Warn("could not open save data, controls will not persist", "error", err)
		store = systems.NewMemoryControlStore()
	}
	table, err := store.Load()
	if err != nil {
		if errors.Is(err, systems.ErrMalformedControls) {
			return fmt.Errorf("control data is damaged, delete %s to reset it: %w", systems.ControlsItem, err)
		}
		return err
	}

	services := &scenes.Services{
		Layout:   layout,
		Controls: store,
		Table:    table,
		Level:    flagLevel,
		Seed:     flagSeed,
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(flagFullscreen)
	ebiten.SetTPS(config.C.TPS)

	logger.Info("starting", "tps", config.C.TPS, "level", flagLevel, "skip_menu", flagSkipMenu)
	if err := ebiten.RunGame(NewGame(services)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
