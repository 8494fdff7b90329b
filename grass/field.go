// Package grass simulates tile-based decorative grass that bends away from
// forces and springs back, sharing rendered tile images wherever possible.
package grass

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sort"
	"strings"
)

// Point is a tile coordinate on the grass grid.
type Point struct {
	X, Y int
}

// Blade is one blade of grass, positioned relative to its tile's top-left.
type Blade struct {
	X, Y     float64
	Variant  int
	Rotation float64 // Degrees from vertical
}

// FormatID identifies tiles that may share a blade layout: same blade count
// and same set of allowed variants.
type FormatID struct {
	Density int
	Options string
}

// NewFormatID builds the format signature of a tile. Options are sorted so
// the order they were listed in does not matter.
func NewFormatID(density int, options []int) FormatID {
	sorted := slices.Clone(options)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, o := range sorted {
		parts[i] = fmt.Sprint(o)
	}
	return FormatID{Density: density, Options: strings.Join(parts, ",")}
}

type layout struct {
	id     int
	blades []Blade
}

// Config tunes a Field.
type Config struct {
	TileSize  int
	MaxUnique int     // Distinct layouts kept per format
	Stiffness float64 // Degrees per second a bent blade recovers
	Precision int     // Master rotation steps between 0 and 90 degrees
	PlaceMin  float64 // Vertical placement range of blade bases, as a fraction of the tile
	PlaceMax  float64
}

// Field owns every grass tile and the layout cache they draw from.
type Field struct {
	cfg     Config
	rng     *rand.Rand
	tiles   map[Point]*Tile
	formats map[FormatID][]layout
	nextID  int
	render  renderCache
}

// NewField creates an empty field. rng drives blade placement.
func NewField(cfg Config, rng *rand.Rand) *Field {
	if cfg.Precision <= 0 {
		cfg.Precision = 30
	}
	return &Field{
		cfg:     cfg,
		rng:     rng,
		tiles:   map[Point]*Tile{},
		formats: map[FormatID][]layout{},
		render:  newRenderCache(),
	}
}

// Config returns the field configuration.
func (f *Field) Config() Config {
	return f.cfg
}

// Len returns the number of placed tiles.
func (f *Field) Len() int {
	return len(f.tiles)
}

// Tile returns the tile at p.
func (f *Field) Tile(p Point) (*Tile, bool) {
	t, ok := f.tiles[p]
	return t, ok
}

// Layouts returns how many distinct blade layouts are stored for a format.
func (f *Field) Layouts(id FormatID) int {
	return len(f.formats[id])
}

// PlaceTile adds a tile at p with density blades drawn from options.
// It does nothing and returns false if p is already taken.
func (f *Field) PlaceTile(p Point, density int, options []int) bool {
	if _, ok := f.tiles[p]; ok {
		return false
	}
	if len(options) == 0 {
		options = []int{0}
	}

	formatID := NewFormatID(density, options)
	var l layout
	if existing := f.formats[formatID]; len(existing) >= f.cfg.MaxUnique && len(existing) > 0 {
		l = existing[f.rng.Intn(len(existing))]
	} else {
		l = layout{id: f.nextID, blades: f.generateBlades(density, options)}
		f.nextID++
		f.formats[formatID] = append(existing, l)
	}

	size := float64(f.cfg.TileSize)
	f.tiles[p] = &Tile{
		Loc:    p,
		X:      float64(p.X) * size,
		Y:      float64(p.Y) * size,
		baseID: l.id,
		blades: slices.Clone(l.blades),
	}
	return true
}

func (f *Field) generateBlades(density int, options []int) []Blade {
	size := float64(f.cfg.TileSize)
	yRange := f.cfg.PlaceMax - f.cfg.PlaceMin
	blades := make([]Blade, 0, density)
	for i := 0; i < density; i++ {
		y := f.cfg.PlaceMin
		if yRange > 0 {
			y += f.rng.Float64() * yRange
		}
		blades = append(blades, Blade{
			X:        f.rng.Float64() * size,
			Y:        y * size,
			Variant:  options[f.rng.Intn(len(options))],
			Rotation: f.rng.Float64()*30 - 15,
		})
	}
	// Back to front.
	sort.SliceStable(blades, func(i, j int) bool { return blades[i].Variant < blades[j].Variant })
	return blades
}

// ApplyForce bends blades around (x, y). Blades within radius are pushed
// fully over; beyond it the force fades to nothing across dropOff.
func (f *Field) ApplyForce(x, y, radius, dropOff float64) {
	size := float64(f.cfg.TileSize)
	gx := int(math.Floor(x / size))
	gy := int(math.Floor(y / size))
	reach := int(math.Ceil((radius + dropOff) / size))

	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if t, ok := f.tiles[Point{gx + dx, gy + dy}]; ok {
				t.applyForce(x, y, radius, dropOff)
			}
		}
	}
}

// Update sets every tile's master rotation from rotate, called with the
// tile's pixel position, and relaxes bent blades by Stiffness*dt degrees.
func (f *Field) Update(dt float64, rotate func(x, y float64) float64) {
	step := f.cfg.Stiffness * dt
	for _, t := range f.tiles {
		if rotate != nil {
			t.setRotation(rotate(t.X, t.Y), f.cfg.Precision)
		}
		t.relax(step)
	}
}

// Visible returns the tiles overlapping the w×h view whose top-left is at
// (offsetX, offsetY).
func (f *Field) Visible(offsetX, offsetY float64, w, h int) []*Tile {
	size := f.cfg.TileSize
	baseX := int(math.Floor(offsetX / float64(size)))
	baseY := int(math.Floor(offsetY / float64(size)))
	cols := w/size + 2
	rows := h/size + 2

	var out []*Tile
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if t, ok := f.tiles[Point{baseX + x, baseY + y}]; ok {
				out = append(out, t)
			}
		}
	}
	return out
}
