// Package imgutil bridges Go's image.Image types and the row-streaming
// resample engine: it fits a source image into a bounding box without
// distorting its aspect ratio, and drives the engine's push/pull protocol
// over concrete image types.
package imgutil

import (
	"image"
	"math"
)

// FitRect returns a rectangle with the same aspect ratio as src, scaled
// down (never up) to fit within a maxWidth x maxHeight bounding box. A
// non-positive maxWidth or maxHeight leaves that dimension unconstrained.
// If src already fits, a same-size rectangle at the origin is returned.
func FitRect(src image.Rectangle, maxWidth, maxHeight int) image.Rectangle {
	width, height := src.Dx(), src.Dy()
	if width <= 0 || height <= 0 {
		return image.Rect(0, 0, 0, 0)
	}
	if maxWidth <= 0 {
		maxWidth = width
	}
	if maxHeight <= 0 {
		maxHeight = height
	}

	scale := math.Min(float64(maxWidth)/float64(width), float64(maxHeight)/float64(height))
	if scale >= 1 {
		return image.Rect(0, 0, width, height)
	}

	w := int(math.Round(scale * float64(width)))
	h := int(math.Round(scale * float64(height)))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.Rect(0, 0, w, h)
}
