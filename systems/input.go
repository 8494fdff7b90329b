package systems

import (
	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for just pressed keys to avoid allocations
var pressedKeys []ebiten.Key

// CollectMenuEvents turns this tick's raw input into queued menu events.
// Must run BEFORE the menu system.
func CollectMenuEvents(e *ecs.ECS) {
	queue := getOrCreateEventQueue(e)
	now := Now(e)

	if ebiten.IsWindowBeingClosed() {
		queue.Events = append(queue.Events, components.InputEvent{Kind: components.EventQuit, At: now})
	}

	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	for _, k := range pressedKeys {
		queue.Events = append(queue.Events, components.InputEvent{
			Kind: components.EventKeyDown,
			Key:  k,
			At:   now,
		})
	}

	x, y := ebiten.CursorPosition()
	for _, btn := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if inpututil.IsMouseButtonJustPressed(btn) {
			queue.Events = append(queue.Events, components.InputEvent{
				Kind:   components.EventMouseDown,
				Button: btn,
				X:      float64(x),
				Y:      float64(y),
				At:     now,
			})
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		queue.Events = append(queue.Events, components.InputEvent{
			Kind:   components.EventWheel,
			WheelY: wy,
			X:      float64(x),
			Y:      float64(y),
			At:     now,
		})
	}

	input := getOrCreateInput(e)
	input.CursorX, input.CursorY = float64(x), float64(y)
}

// UpdateInput polls the gameplay bindings and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range input.Bindings.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	x, y := ebiten.CursorPosition()
	input.CursorX, input.CursorY = float64(x), float64(y)
}

// SetBindings replaces the gameplay key bindings.
func SetBindings(e *ecs.ECS, bindings cfg.InputConfig) {
	getOrCreateInput(e).Bindings = bindings
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{Bindings: cfg.Input})
	}
	return components.Input.Get(entry)
}

func getOrCreateEventQueue(e *ecs.ECS) *components.EventQueueData {
	entry, ok := components.EventQueue.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.EventQueue))
	}
	return components.EventQueue.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PushEvent queues a menu event, as if it had been collected this tick.
func PushEvent(e *ecs.ECS, ev components.InputEvent) {
	queue := getOrCreateEventQueue(e)
	queue.Events = append(queue.Events, ev)
}
