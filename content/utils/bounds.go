package utils

import "image"

// Bounds returns the integer box of a w x h body at (x, y). The position is
// truncated toward zero, the way the renderer snaps bodies to pixels.
func Bounds(x, y float64, w, h int) image.Rectangle {
	ix, iy := int(x), int(y)
	return image.Rect(ix, iy, ix+w, iy+h)
}

// Overlaps reports whether two boxes share a non-empty area. Boxes that only
// touch along an edge do not overlap.
func Overlaps(a, b image.Rectangle) bool {
	return a.Overlaps(b)
}
