package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action. The first ActionCount-1 values
// follow the order of DefaultControls.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionPause
	ActionInventory
	ActionSpurt
	ActionAction
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = BindingsFromControls(DefaultControls())
}

// BindingsFromControls builds gameplay bindings from the remap table.
// Row i of the table drives ActionID(i+1).
func BindingsFromControls(table []ControlBinding) InputConfig {
	in := InputConfig{Bindings: make(map[ActionID]InputBinding, len(table))}
	for i, b := range table {
		action := ActionID(i + 1)
		if action >= ActionCount {
			break
		}
		keys := []ebiten.Key{b.Key}
		// Shift is bound as the left key; accept either side.
		if b.Key == ebiten.KeyShiftLeft {
			keys = append(keys, ebiten.KeyShiftRight)
		}
		in.Bindings[action] = InputBinding{Keys: keys}
	}
	return in
}
