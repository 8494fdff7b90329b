package systems

import (
	"math"

	"github.com/automoto/crygeen/components"
	"github.com/automoto/crygeen/tags"
	"github.com/solarlune/resolv"
)

// MoveAndCollide moves obj by (dx, dy), one axis at a time, stopping flush
// against the nearest solid in the way.
func MoveAndCollide(obj components.ObjectData, dx, dy float64) {
	if dx != 0 {
		obj.X += resolveHorizontal(obj.Object, dx)
	}
	if dy != 0 {
		obj.Y += resolveVertical(obj.Object, dy)
	}
}

func resolveHorizontal(object *resolv.Object, dx float64) float64 {
	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return dx
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsVertically(object, solid) {
			continue
		}
		if contact := check.ContactWithObject(solid).X(); math.Abs(contact) < math.Abs(dx) && sameDirection(contact, dx) {
			dx = contact
		} else if !sameDirection(contact, dx) {
			dx = 0
		}
	}
	return dx
}

func resolveVertical(object *resolv.Object, dy float64) float64 {
	check := object.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		return dy
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(object, solid) {
			continue
		}
		if contact := check.ContactWithObject(solid).Y(); math.Abs(contact) < math.Abs(dy) && sameDirection(contact, dy) {
			dy = contact
		} else if !sameDirection(contact, dy) {
			dy = 0
		}
	}
	return dy
}

// sameDirection treats zero as moving with v, so a flush contact stops the
// move instead of reversing it.
func sameDirection(contact, v float64) bool {
	return contact == 0 || (contact > 0) == (v > 0)
}

func overlapsVertically(object, solid *resolv.Object) bool {
	return object.Y+object.H > solid.Y && object.Y < solid.Y+solid.H
}

func overlapsHorizontally(object, solid *resolv.Object) bool {
	return object.X+object.W > solid.X && object.X < solid.X+solid.W
}

// overlaps reports whether two bodies intersect.
func overlaps(a, b *resolv.Object) bool {
	return overlapsHorizontally(a, b) && overlapsVertically(a, b)
}
