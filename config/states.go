package config

import "fmt"

// Status is the fine-grained UI mode: which menu panel, or gameplay, owns input.
type Status int

const (
	StatusScreensaver Status = iota
	StatusMainMenu
	StatusSettings
	StatusSetControl
	StatusExit
	StatusNewGame
	StatusLoadGame
	StatusCount // Must be last
)

var statusNames = [StatusCount]string{
	StatusScreensaver: "screensaver",
	StatusMainMenu:    "main_menu",
	StatusSettings:    "settings",
	StatusSetControl:  "set_control",
	StatusExit:        "exit",
	StatusNewGame:     "new_game",
	StatusLoadGame:    "load_game",
}

func (s Status) String() string {
	if s < 0 || s >= StatusCount {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// UnmarshalText decodes a status name as written in the menu layout.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", string(text))
}

// State separates menu time from gameplay time.
type State int

const (
	StateMainMenu State = iota
	StateGame
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateGame:
		return "game"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// PanelID names one of the menu panels.
type PanelID int

const (
	PanelScreensaver PanelID = iota
	PanelMainMenu
	PanelSettings
	PanelExit
	PanelCount // Must be last
)

var panelNames = [PanelCount]string{
	PanelScreensaver: "screensaver",
	PanelMainMenu:    "main_menu",
	PanelSettings:    "settings",
	PanelExit:        "exit",
}

func (p PanelID) String() string {
	if p < 0 || p >= PanelCount {
		return fmt.Sprintf("Panel(%d)", int(p))
	}
	return panelNames[p]
}

// ParsePanelID resolves a panel name from the menu layout.
func ParsePanelID(name string) (PanelID, error) {
	for i, n := range panelNames {
		if n == name {
			return PanelID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown panel %q", name)
}
