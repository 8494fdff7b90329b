package systems

import (
	"image/color"
	"math"

	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the menu system: it routes queued events and leaves
// the menu once a new game is requested.
func NewUpdateMenu(sceneChanger SceneChanger, createGameScene func() interface{}, hooks MenuHooks) ecs.System {
	return func(e *ecs.ECS) {
		DrainMenuEvents(e, hooks)

		menu := GetOrCreateMenu(e)
		if menu.Status != cfg.StatusNewGame || menu.State != cfg.StateMainMenu {
			return
		}
		menu.State = cfg.StateGame
		logger.Info("starting new game")
		sceneChanger.ChangeScene(createGameScene())
	}
}

// DrawMenu renders the menu screen, panel by panel.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	now := Now(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)
	drawScreensaverFrame(screen, GetOrCreateScreensaver(e).Frame, width, height)

	if menu.Status != cfg.StatusScreensaver {
		titleFont := fonts.Title.Get()
		title := cfg.Menu.Title
		titleX := int((width - float64(text.BoundString(titleFont, title).Dx())) / 2)
		text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY)+64, cfg.Menu.TitleColor)
	}

	drawButtons(screen, GetPanel(e, cfg.PanelMainMenu).Buttons, fonts.Button, cfg.Menu.TextColor)

	DrawSettingsMenu(e, screen)

	exit := GetPanel(e, cfg.PanelExit)
	drawOverlay(screen, exit, width, height)
	if exit.Active {
		face := fonts.Button.Get()
		msg := cfg.Exit.Text
		x := int((width - float64(text.BoundString(face, msg).Dx())) / 2)
		text.Draw(screen, msg, face, x, int(cfg.Exit.TextY), withAlpha(cfg.Menu.TextColor, float64(exit.Overlay)))
	}
	drawButtons(screen, exit.Buttons, fonts.Button, cfg.Menu.TextColor)

	saver := GetPanel(e, cfg.PanelScreensaver)
	drawOverlay(screen, saver, width, height)
	if menu.Status == cfg.StatusScreensaver {
		face := fonts.Button.Get()
		msg := cfg.Screensaver.Text
		x := int((width - float64(text.BoundString(face, msg).Dx())) / 2)
		alpha := ScreensaverTextAlpha(e, now)
		text.Draw(screen, msg, face, x, int(cfg.Screensaver.TextY), withAlpha(cfg.Menu.TextColor, alpha))
	}
}

// drawScreensaverFrame paints the looping background: rings drifting
// outward from the screen center.
func drawScreensaverFrame(screen *ebiten.Image, frame int, width, height float64) {
	frames := float64(cfg.Screensaver.Frames)
	cx, cy := float32(width/2), float32(height/2)
	maxR := math.Hypot(width, height) / 2
	const rings = 6
	for i := 0; i < rings; i++ {
		phase := math.Mod(float64(frame)/frames+float64(i)/rings, 1)
		r := float32(phase * maxR)
		clr := withAlpha(cfg.Orange, 90*(1-phase))
		vector.StrokeCircle(screen, cx, cy, r, 3, clr, true)
	}
}

func drawOverlay(screen *ebiten.Image, p *components.PanelData, width, height float64) {
	if p.Overlay == 0 {
		return
	}
	c := p.OverlayColor
	vector.FillRect(screen, 0, 0, float32(width), float32(height), withAlpha(c, float64(p.Overlay)), false)
}

func drawButtons(screen *ebiten.Image, buttons []components.Button, name fonts.FontName, clr color.RGBA) {
	face := name.Get()
	for i := range buttons {
		drawButton(screen, &buttons[i], face, clr)
	}
}

func drawButton(screen *ebiten.Image, b *components.Button, face font.Face, clr color.RGBA) {
	if b.Alpha <= 0 {
		return
	}
	baseline := int(b.Rect.Y + b.Rect.H*0.8)
	text.Draw(screen, b.Label, face, int(b.Rect.X), baseline, withAlpha(clr, b.Alpha))
}

// withAlpha returns c with its alpha replaced by a, clamped to [0, 255].
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(math.Max(0, math.Min(a, 255))))}
}
