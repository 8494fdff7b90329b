package systems

import (
	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pauseHint = "Paused   Enter: Resume   Esc: Main menu"

// PauseOutcome is what a pause step asks the scene to do.
type PauseOutcome int

const (
	PauseNone PauseOutcome = iota
	PauseToggled
	PauseLeaveLevel
)

// PauseStep applies one tick of pause input. While paused, Escape leaves the
// level and takes precedence over the pause action, which may share its key.
func PauseStep(p *components.PauseData, pausePressed, escapePressed, resumePressed bool) PauseOutcome {
	if p.IsPaused {
		switch {
		case escapePressed:
			return PauseLeaveLevel
		case pausePressed || resumePressed:
			p.IsPaused = false
			return PauseToggled
		}
		return PauseNone
	}
	if pausePressed {
		p.IsPaused = true
		return PauseToggled
	}
	return PauseNone
}

// NewUpdatePause creates the pause system. leave runs when the player quits
// the level from the pause overlay.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func NewUpdatePause(leave func()) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		outcome := PauseStep(pause,
			GetAction(input, cfg.ActionPause).JustPressed,
			inpututil.IsKeyJustPressed(ebiten.KeyEscape),
			inpututil.IsKeyJustPressed(ebiten.KeyEnter))
		switch outcome {
		case PauseToggled:
			logger.Debug("pause", "paused", pause.IsPaused)
		case PauseLeaveLevel:
			logger.Info("leaving level")
			leave()
		}
	}
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	face := fonts.Button.Get()
	x := int((width - float64(text.BoundString(face, pauseHint).Dx())) / 2)
	text.Draw(screen, pauseHint, face, x, int(height/2), cfg.Menu.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
