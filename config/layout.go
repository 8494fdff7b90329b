package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed menu_layout.yaml
var defaultLayoutYAML []byte

// EffectKind is one of the side effects a menu button may trigger.
type EffectKind int

const (
	EffectNone  EffectKind = iota
	EffectOpen             // activate a panel and restart its timer
	EffectClose            // deactivate a panel and restart its timer
	EffectQuit
)

// Effect is a single typed side effect. Panel is only meaningful for
// EffectOpen and EffectClose.
type Effect struct {
	Kind  EffectKind
	Panel PanelID
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectOpen:
		return "open:" + e.Panel.String()
	case EffectClose:
		return "close:" + e.Panel.String()
	case EffectQuit:
		return "quit"
	}
	return "none"
}

// ParseEffect decodes the layout notation of an effect.
func ParseEffect(s string) (Effect, error) {
	switch s {
	case "", "none":
		return Effect{Kind: EffectNone}, nil
	case "quit":
		return Effect{Kind: EffectQuit}, nil
	}
	verb, target, ok := strings.Cut(s, ":")
	if !ok {
		return Effect{}, fmt.Errorf("unknown effect %q", s)
	}
	panel, err := ParsePanelID(target)
	if err != nil {
		return Effect{}, fmt.Errorf("effect %q: %w", s, err)
	}
	switch verb {
	case "open":
		return Effect{Kind: EffectOpen, Panel: panel}, nil
	case "close":
		return Effect{Kind: EffectClose, Panel: panel}, nil
	}
	return Effect{}, fmt.Errorf("unknown effect %q", s)
}

// ButtonLayout describes one menu button: where it leads and what it triggers.
type ButtonLayout struct {
	Title   string
	Status  Status
	Effects []Effect
}

// MenuLayout is the ordered button list of each clickable panel.
type MenuLayout struct {
	MainMenu []ButtonLayout
	Exit     []ButtonLayout
}

type rawButton struct {
	Title   string   `yaml:"title"`
	Status  string   `yaml:"status"`
	Effects []string `yaml:"effects"`
}

type rawLayout struct {
	MainMenu []rawButton `yaml:"main_menu"`
	Exit     []rawButton `yaml:"exit"`
}

// Layout is the active menu layout.
var Layout MenuLayout

func init() {
	l, err := ParseMenuLayout(defaultLayoutYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded menu layout: %v", err))
	}
	Layout = l
}

// LoadMenuLayout reads a layout from customPath, or returns the embedded
// default when customPath is empty.
func LoadMenuLayout(customPath string) (MenuLayout, error) {
	if customPath == "" {
		return ParseMenuLayout(defaultLayoutYAML)
	}
	data, err := os.ReadFile(customPath)
	if err != nil {
		return MenuLayout{}, fmt.Errorf("failed to read layout %s: %w", customPath, err)
	}
	l, err := ParseMenuLayout(data)
	if err != nil {
		return MenuLayout{}, fmt.Errorf("failed to parse layout %s: %w", customPath, err)
	}
	return l, nil
}

// ParseMenuLayout decodes and validates a YAML menu layout.
func ParseMenuLayout(data []byte) (MenuLayout, error) {
	var raw rawLayout
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return MenuLayout{}, err
	}
	if len(raw.MainMenu) == 0 {
		return MenuLayout{}, errors.New("main_menu has no buttons")
	}

	var l MenuLayout
	var err error
	if l.MainMenu, err = convertButtons("main_menu", raw.MainMenu); err != nil {
		return MenuLayout{}, err
	}
	if l.Exit, err = convertButtons("exit", raw.Exit); err != nil {
		return MenuLayout{}, err
	}
	return l, nil
}

func convertButtons(section string, raw []rawButton) ([]ButtonLayout, error) {
	out := make([]ButtonLayout, 0, len(raw))
	for i, rb := range raw {
		if rb.Title == "" {
			return nil, fmt.Errorf("%s[%d]: missing title", section, i)
		}
		var st Status
		if err := st.UnmarshalText([]byte(rb.Status)); err != nil {
			return nil, fmt.Errorf("%s[%d] %q: %w", section, i, rb.Title, err)
		}
		b := ButtonLayout{Title: rb.Title, Status: st}
		for _, s := range rb.Effects {
			eff, err := ParseEffect(s)
			if err != nil {
				return nil, fmt.Errorf("%s[%d] %q: %w", section, i, rb.Title, err)
			}
			if eff.Kind != EffectNone {
				b.Effects = append(b.Effects, eff)
			}
		}
		out = append(out, b)
	}
	return out, nil
}
