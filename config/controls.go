package config

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ControlBinding maps one action title to a physical key.
// It is stored on disk as a [title, code, display] triple.
type ControlBinding struct {
	Title   string
	Key     ebiten.Key
	Display string
}

func (b ControlBinding) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{b.Title, int(b.Key), b.Display})
}

func (b *ControlBinding) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("control binding: want 3 fields, got %d", len(raw))
	}
	var code int
	if err := json.Unmarshal(raw[0], &b.Title); err != nil {
		return fmt.Errorf("control binding title: %w", err)
	}
	if err := json.Unmarshal(raw[1], &code); err != nil {
		return fmt.Errorf("control binding key code: %w", err)
	}
	if err := json.Unmarshal(raw[2], &b.Display); err != nil {
		return fmt.Errorf("control binding display: %w", err)
	}
	b.Key = ebiten.Key(code)
	return nil
}

// DefaultControls returns a fresh copy of the built-in bindings, in the
// fixed order the settings panel lists them.
func DefaultControls() []ControlBinding {
	return []ControlBinding{
		{Title: "Left", Key: ebiten.KeyA, Display: "a"},
		{Title: "Right", Key: ebiten.KeyD, Display: "d"},
		{Title: "Up", Key: ebiten.KeyW, Display: "w"},
		{Title: "Down", Key: ebiten.KeyS, Display: "s"},
		{Title: "Pause", Key: ebiten.KeyEscape, Display: "esc"},
		{Title: "Inventory", Key: ebiten.KeyTab, Display: "TAB"},
		{Title: "Spurt", Key: ebiten.KeyShiftLeft, Display: "shift"},
		{Title: "Action", Key: ebiten.KeySpace, Display: "space"},
		{Title: "Slot 1", Key: ebiten.KeyDigit1, Display: "1"},
		{Title: "Slot 2", Key: ebiten.KeyDigit2, Display: "2"},
		{Title: "Slot 3", Key: ebiten.KeyDigit3, Display: "3"},
	}
}

// AllowedKeys lists every key a control can be remapped to, with the label
// shown in the settings panel.
var AllowedKeys = map[ebiten.Key]string{
	ebiten.KeyA: "a", ebiten.KeyB: "b", ebiten.KeyC: "c", ebiten.KeyD: "d",
	ebiten.KeyE: "e", ebiten.KeyF: "f", ebiten.KeyG: "g", ebiten.KeyH: "h",
	ebiten.KeyI: "i", ebiten.KeyJ: "j", ebiten.KeyK: "k", ebiten.KeyL: "l",
	ebiten.KeyM: "m", ebiten.KeyN: "n", ebiten.KeyO: "o", ebiten.KeyP: "p",
	ebiten.KeyQ: "q", ebiten.KeyR: "r", ebiten.KeyS: "s", ebiten.KeyT: "t",
	ebiten.KeyU: "u", ebiten.KeyV: "v", ebiten.KeyW: "w", ebiten.KeyX: "x",
	ebiten.KeyY: "y", ebiten.KeyZ: "z",

	ebiten.KeyDigit0: "0", ebiten.KeyDigit1: "1", ebiten.KeyDigit2: "2",
	ebiten.KeyDigit3: "3", ebiten.KeyDigit4: "4", ebiten.KeyDigit5: "5",
	ebiten.KeyDigit6: "6", ebiten.KeyDigit7: "7", ebiten.KeyDigit8: "8",
	ebiten.KeyDigit9: "9",

	ebiten.KeyMinus: "-", ebiten.KeyEqual: "=", ebiten.KeyBracketLeft: "[",
	ebiten.KeyBracketRight: "]", ebiten.KeyBackslash: "\\", ebiten.KeySemicolon: ";",
	ebiten.KeyQuote: "'", ebiten.KeyComma: ",", ebiten.KeyPeriod: ".",
	ebiten.KeySlash: "/", ebiten.KeyBackquote: "`",

	ebiten.KeyF1: "F1", ebiten.KeyF2: "F2", ebiten.KeyF3: "F3", ebiten.KeyF4: "F4",
	ebiten.KeyF5: "F5", ebiten.KeyF6: "F6", ebiten.KeyF7: "F7", ebiten.KeyF8: "F8",
	ebiten.KeyF9: "F9", ebiten.KeyF10: "F10", ebiten.KeyF11: "F11", ebiten.KeyF12: "F12",

	ebiten.KeyAltLeft: "L alt", ebiten.KeyAltRight: "R alt",
	ebiten.KeyControlLeft: "L ctrl", ebiten.KeyControlRight: "R ctrl",
	ebiten.KeyShiftLeft: "shift", ebiten.KeyShiftRight: "R shift",

	ebiten.KeySpace: "space", ebiten.KeyTab: "TAB", ebiten.KeyEnter: "enter",
	ebiten.KeyBackspace: "backspace", ebiten.KeyEscape: "esc",
	ebiten.KeyArrowUp: "up", ebiten.KeyArrowDown: "down",
	ebiten.KeyArrowLeft: "left", ebiten.KeyArrowRight: "right",
	ebiten.KeyCapsLock: "CAPS",
}
