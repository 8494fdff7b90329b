package grass

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// renderKey identifies a cached tile image: one layout at one wind step.
type renderKey struct {
	layout   int
	rotation int
}

type renderCache struct {
	images map[renderKey]*ebiten.Image
}

func newRenderCache() renderCache {
	return renderCache{images: map[renderKey]*ebiten.Image{}}
}

// Style controls how blades are painted.
type Style struct {
	BladeLength float64
	BladeWidth  float32
	Colors      []color.RGBA // Indexed by blade variant
}

// CacheKey returns the image cache key of t, or false when the tile is bent
// and has to be painted fresh.
func CacheKey(t *Tile) (renderKey, bool) {
	if t.Bent() {
		return renderKey{}, false
	}
	return renderKey{layout: t.baseID, rotation: t.masterRotation}, true
}

// CachedImages returns how many tile images are cached.
func (f *Field) CachedImages() int {
	return len(f.render.images)
}

// Draw paints the visible tiles. offsetX/offsetY is the camera's top-left in
// world space.
func (f *Field) Draw(screen *ebiten.Image, offsetX, offsetY float64, style Style) {
	pad := int(math.Ceil(style.BladeLength))
	b := screen.Bounds()
	for _, t := range f.Visible(offsetX, offsetY, b.Dx(), b.Dy()) {
		var img *ebiten.Image
		if key, ok := CacheKey(t); ok {
			img = f.render.images[key]
			if img == nil {
				img = f.paintTile(t, pad, style)
				f.render.images[key] = img
			}
		} else {
			img = f.paintTile(t, pad, style)
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(t.X-offsetX-float64(pad), t.Y-offsetY-float64(pad))
		screen.DrawImage(img, op)

		if t.Bent() {
			img.Deallocate()
		}
	}
}

func (f *Field) paintTile(t *Tile, pad int, style Style) *ebiten.Image {
	size := f.cfg.TileSize + pad*2
	img := ebiten.NewImage(size, size)
	for _, bl := range t.Current() {
		rad := t.DrawRotation(bl) * math.Pi / 180
		x0 := bl.X + float64(pad)
		y0 := bl.Y + float64(pad)
		x1 := x0 + math.Sin(rad)*style.BladeLength
		y1 := y0 - math.Cos(rad)*style.BladeLength
		vector.StrokeLine(img, float32(x0), float32(y0), float32(x1), float32(y1),
			style.BladeWidth, bladeColor(style.Colors, bl.Variant), true)
	}
	return img
}

func bladeColor(colors []color.RGBA, variant int) color.RGBA {
	if len(colors) == 0 {
		return color.RGBA{G: 128, A: 255}
	}
	if variant < 0 {
		variant = -variant
	}
	return colors[variant%len(colors)]
}
