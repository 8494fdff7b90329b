package components

import (
	"time"

	cfg "github.com/automoto/crygeen/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// EventKind classifies a raw input event.
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventMouseDown
	EventWheel
)

// InputEvent is one raw input event collected during a tick.
type InputEvent struct {
	Kind   EventKind
	Key    ebiten.Key
	Button ebiten.MouseButton
	X, Y   float64 // Pointer position for mouse events
	WheelY float64 // Positive when the wheel turns away from the user
	At     time.Duration
}

// EventQueueData holds the events collected this tick, drained by the router.
type EventQueueData struct {
	Events []InputEvent
}

var EventQueue = donburi.NewComponentType[EventQueueData]()

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Bindings cfg.InputConfig

	CursorX, CursorY float64
}

var Input = donburi.NewComponentType[InputData]()
