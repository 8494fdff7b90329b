package grass

import (
	"math"
	"slices"
)

// Tile is one grid cell of grass.
type Tile struct {
	Loc  Point
	X, Y float64 // Pixel position of the tile's top-left

	baseID int
	blades []Blade

	// custom is set while a force bends the tile. The tile then bypasses the
	// shared image cache until every blade is back at rest.
	custom []Blade

	masterRotation int
	trueRotation   float64
}

// BaseID is the id of the blade layout the tile was built from.
func (t *Tile) BaseID() int {
	return t.baseID
}

// Blades returns the resting blades.
func (t *Tile) Blades() []Blade {
	return t.blades
}

// Bent reports whether the tile is currently deformed.
func (t *Tile) Bent() bool {
	return t.custom != nil
}

// Current returns the blades as they should be drawn now.
func (t *Tile) Current() []Blade {
	if t.custom != nil {
		return t.custom
	}
	return t.blades
}

// MasterRotation is the quantised wind rotation step of the tile.
func (t *Tile) MasterRotation() int {
	return t.masterRotation
}

// DrawRotation returns the on-screen angle of b, limited to [-90, 90].
func (t *Tile) DrawRotation(b Blade) float64 {
	return math.Max(-90, math.Min(90, b.Rotation+t.trueRotation))
}

func (t *Tile) setRotation(rotation float64, precision int) {
	r := int(math.Round(rotation))
	r = max(-precision, min(precision, r))
	t.masterRotation = r
	t.trueRotation = 90 / float64(precision) * float64(r)
}

func (t *Tile) applyForce(px, py, radius, dropOff float64) {
	if t.custom == nil {
		t.custom = slices.Clone(t.blades)
	}
	for i, b := range t.blades {
		bx := t.X + b.X
		by := t.Y + b.Y
		dist := math.Hypot(bx-px, by-py)

		var force float64
		if dist < radius {
			force = 2
		} else if dropOff > 0 {
			force = 1 - math.Min(math.Max(0, dist-radius)/dropOff, 1)
		}

		dir := -1.0
		if px > bx {
			dir = 1
		}

		// A weaker push never undoes a stronger one still in effect.
		if math.Abs(t.custom[i].Rotation-b.Rotation) <= force*90 {
			t.custom[i].Rotation = b.Rotation + dir*force*90
		}
	}
}

func (t *Tile) relax(step float64) {
	if t.custom == nil {
		return
	}
	matching := true
	for i := range t.custom {
		target := t.blades[i].Rotation
		t.custom[i].Rotation = normalize(t.custom[i].Rotation, step, target)
		if t.custom[i].Rotation != target {
			matching = false
		}
	}
	if matching {
		t.custom = nil
	}
}

func normalize(value, amount, target float64) float64 {
	switch {
	case value > target+amount:
		return value - amount
	case value < target-amount:
		return value + amount
	}
	return target
}
