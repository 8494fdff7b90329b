package config

import (
	"image/color"
	"time"
)

// Config holds the logical screen size and tick rate.
type Config struct {
	Width  int
	Height int
	TPS    int
}

var C *Config

// MenuConfig contains main menu layout and animation timing
type MenuConfig struct {
	X       float64 // Left edge of the button column
	BaseY   float64 // Destination Y of button i is BaseY + (i+1)*YOffset
	YOffset float64
	StartY  float64 // Buttons are created here, off-screen
	CloseY  float64 // Buttons slide here when the panel closes

	FontSize    float64
	CharWidth   float64 // Approximate glyph width used to size button rects
	ButtonAlpha float64 // Resting opacity of a visible button
	HoverOffset float64 // Opacity gained per tick while hovered

	DropdownDuration time.Duration
	FadeDuration     time.Duration

	BackgroundColor color.RGBA
	TextColor       color.RGBA
	TitleColor      color.RGBA
	Title           string
	TitleY          float64
}

// ExitConfig contains the exit confirmation panel configuration
type ExitConfig struct {
	X      float64 // X of the first button
	XStep  float64 // Horizontal distance between buttons
	DestY  float64
	StartY float64
	CloseY float64

	Text  string
	TextY float64

	OverlayOpen      uint8 // Overlay alpha once fully open
	OverlayClosed    uint8
	OverlayColor     color.RGBA
	FadeDuration     time.Duration
	DropdownDuration time.Duration
}

// SettingsConfig contains the control remap panel configuration
type SettingsConfig struct {
	LabelX  float64 // Right edge of the action title column
	KeyX    float64 // Left edge of the key column
	BaseY   float64
	YOffset float64
	StartY  float64
	CloseY  float64

	FontSize  float64
	CharWidth float64

	// Viewport band the list may be scrolled through. The last row can rise
	// to ViewTop and the first row can drop to ViewBottom.
	ViewTop      float64
	ViewBottom   float64
	ScrollOffset float64

	OverlayOpen      uint8
	OverlayClosed    uint8
	OverlayColor     color.RGBA
	FadeDuration     time.Duration
	DropdownDuration time.Duration

	KeyColor      color.RGBA
	SelectedColor color.RGBA
}

// ScreensaverConfig contains splash screen timing
type ScreensaverConfig struct {
	BackgroundStart    uint8
	BackgroundEnd      uint8
	BackgroundDuration time.Duration

	Text              string
	TextY             float64
	TextStartAlpha    float64
	TextEndAlpha      float64
	TextThreshold     float64 // Fade-in hands over to the pulse above this alpha
	EmergenceDuration time.Duration

	Frames     int // Background animation frames
	FrameTicks int // Ticks each frame stays on screen
}

// PlayerConfig contains player movement and ability timing
type PlayerConfig struct {
	Speed            float64 // Pixels per second
	SpurtCoefficient float64
	SpurtDuration    time.Duration
	SpurtCooldown    time.Duration
	AttackDuration   time.Duration
	AttackCooldown   time.Duration

	Width  float64
	Height float64
	Color  color.RGBA

	// Grass bending force applied at the player's center
	GrassForceRadius  float64
	GrassForceDropOff float64
}

// EnemyConfig contains the training dummy configuration
type EnemyConfig struct {
	Width         float64
	Height        float64
	BloodCooldown time.Duration
	Color         color.RGBA
	HitColor      color.RGBA
}

// ParticleConfig contains emitter settings for one particle kind
type ParticleConfig struct {
	Count       int
	Lifetime    time.Duration
	LifetimeJit time.Duration
	Spread      float64
	StartRadius float64
	EndRadius   float64
	Color       color.RGBA
}

// LightningConfig contains the attack lightning settings
type LightningConfig struct {
	Streaks   int
	Length    float64
	Deviation float64
	Width     float32
	Color     color.RGBA
}

// GrassConfig contains the grass field settings
type GrassConfig struct {
	TileSize       int
	MaxUnique      int
	Stiffness      float64 // Degrees per second of relaxation
	Precision      int     // Number of cached master rotations
	PlaceMinY      int
	PlaceMaxY      int
	Variants       []int
	DensityScale   float64
	PlaceThreshold float64
	BladeLength    float64
	Colors         []color.RGBA
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	Smoothing float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Verbose  bool
}

var (
	Menu        MenuConfig
	Exit        ExitConfig
	Settings    SettingsConfig
	Screensaver ScreensaverConfig
	Player      PlayerConfig
	Enemy       EnemyConfig
	Blood       ParticleConfig
	Spurt       ParticleConfig
	Lightning   LightningConfig
	Grass       GrassConfig
	Camera      CameraConfig
	Debug       DebugConfig
)

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 140, G: 10, B: 20, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 760,
		TPS:    60,
	}

	w := float64(C.Width)
	h := float64(C.Height)

	Menu = MenuConfig{
		X:                150,
		BaseY:            100,
		YOffset:          100,
		StartY:           -100,
		CloseY:           h + 100,
		FontSize:         40,
		CharWidth:        20,
		ButtonAlpha:      128,
		HoverOffset:      10,
		DropdownDuration: 2000 * time.Millisecond,
		FadeDuration:     1000 * time.Millisecond,
		BackgroundColor:  color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TextColor:        White,
		TitleColor:       Orange,
		Title:            "CRYGEEN",
		TitleY:           60,
	}

	Exit = ExitConfig{
		X:                w/2 - 200,
		XStep:            400,
		DestY:            500,
		StartY:           1000,
		CloseY:           1000,
		Text:             "Are you sure you want to exit?",
		TextY:            h / 3,
		OverlayOpen:      255,
		OverlayClosed:    0,
		OverlayColor:     Black,
		FadeDuration:     1000 * time.Millisecond,
		DropdownDuration: 2000 * time.Millisecond,
	}

	Settings = SettingsConfig{
		LabelX:           w/2 - 40,
		KeyX:             w/2 + 40,
		BaseY:            h / 10,
		YOffset:          60,
		StartY:           -100,
		CloseY:           -100,
		FontSize:         30,
		CharWidth:        15,
		ViewTop:          h / 4,
		ViewBottom:       h - h/4,
		ScrollOffset:     30,
		OverlayOpen:      128,
		OverlayClosed:    0,
		OverlayColor:     Black,
		FadeDuration:     1000 * time.Millisecond,
		DropdownDuration: 1000 * time.Millisecond,
		KeyColor:         LightBlue,
		SelectedColor:    BrightOrange,
	}

	Screensaver = ScreensaverConfig{
		BackgroundStart:    255,
		BackgroundEnd:      0,
		BackgroundDuration: 10000 * time.Millisecond,
		Text:               "Press any key to continue...",
		TextY:              h - h/8,
		TextStartAlpha:     0,
		TextEndAlpha:       255,
		TextThreshold:      200,
		EmergenceDuration:  7000 * time.Millisecond,
		Frames:             48,
		FrameTicks:         4,
	}

	Player = PlayerConfig{
		Speed:             200,
		SpurtCoefficient:  2,
		SpurtDuration:     300 * time.Millisecond,
		SpurtCooldown:     1400 * time.Millisecond,
		AttackDuration:    250 * time.Millisecond,
		AttackCooldown:    400 * time.Millisecond,
		Width:             20,
		Height:            30,
		Color:             color.RGBA{R: 230, G: 220, B: 200, A: 255},
		GrassForceRadius:  15,
		GrassForceDropOff: 25,
	}

	Enemy = EnemyConfig{
		Width:         50,
		Height:        50,
		BloodCooldown: 120 * time.Millisecond,
		Color:         color.RGBA{R: 90, G: 30, B: 40, A: 255},
		HitColor:      LightRed,
	}

	Blood = ParticleConfig{
		Count:       10,
		Lifetime:    450 * time.Millisecond,
		LifetimeJit: 250 * time.Millisecond,
		Spread:      40,
		StartRadius: 4,
		EndRadius:   0,
		Color:       DarkRed,
	}

	Spurt = ParticleConfig{
		Count:       3,
		Lifetime:    300 * time.Millisecond,
		LifetimeJit: 100 * time.Millisecond,
		Spread:      8,
		StartRadius: 6,
		EndRadius:   1,
		Color:       color.RGBA{R: 220, G: 220, B: 255, A: 160},
	}

	Lightning = LightningConfig{
		Streaks:   8,
		Length:    160,
		Deviation: 12,
		Width:     2,
		Color:     color.RGBA{R: 200, G: 220, B: 255, A: 255},
	}

	Grass = GrassConfig{
		TileSize:       16,
		MaxUnique:      10,
		Stiffness:      360,
		Precision:      30,
		PlaceMinY:      4,
		PlaceMaxY:      12,
		Variants:       []int{0, 1, 2, 3, 4},
		DensityScale:   12,
		PlaceThreshold: 0.1,
		BladeLength:    10,
		Colors: []color.RGBA{
			{R: 40, G: 110, B: 40, A: 255},
			{R: 55, G: 130, B: 45, A: 255},
			{R: 70, G: 150, B: 50, A: 255},
			{R: 90, G: 160, B: 60, A: 255},
			{R: 110, G: 175, B: 70, A: 255},
		},
	}

	Camera = CameraConfig{
		Smoothing: 0.1,
	}
}
