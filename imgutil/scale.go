// This file adapts a Catmull-Rom image.Image scaler to run on the
// row-streaming, fixed-point resample engine rather than float64 distribution
// tables.

package imgutil

import (
	"image"
	"image/draw"

	"github.com/kanoe/resizeimg/resample"
)

// Scaler scales the source image to the destination image.
type Scaler interface {
	Scale(dst, src *image.NRGBA) error
}

// CatmullRom is the only Scaler this package provides: an adaptively
// anti-aliased bicubic Catmull-Rom resampler, driven row by row through
// resample.Engine. Unlike a plain bicubic kernel it widens its taps on
// downscale, so it is safe to use for arbitrary reduction ratios without a
// separate pre-filtering pass.
var CatmullRom Scaler = kernelScaler{}

type kernelScaler struct{}

// Scale implements Scaler. dst determines the output dimensions; src is
// read through as many goroutine-free passes as resample.Engine needs, one
// input row at a time.
func (kernelScaler) Scale(dst, src *image.NRGBA) error {
	srcB, dstB := src.Bounds(), dst.Bounds()
	eng, err := resample.NewEngine(
		uint32(srcB.Dx()), uint32(srcB.Dy()),
		uint32(dstB.Dx()), uint32(dstB.Dy()),
		4,
	)
	if err != nil {
		return err
	}

	nextY := srcB.Min.Y
	for pos := 0; pos < dstB.Dy(); pos++ {
		for eng.NeedsInput() {
			off := src.PixOffset(srcB.Min.X, nextY)
			row := src.Pix[off : off+srcB.Dx()*4]
			if err := eng.PushRow(row); err != nil {
				return err
			}
			nextY++
		}

		off := dst.PixOffset(dstB.Min.X, dstB.Min.Y+pos)
		out := dst.Pix[off : off+dstB.Dx()*4]
		if err := eng.ScaleOutput(out, uint32(pos)); err != nil {
			return err
		}
	}
	return nil
}

// ToNRGBA converts any image.Image to *image.NRGBA (straight, not
// premultiplied, alpha) so it can be fed to CatmullRom. Images already in
// NRGBA form are returned as-is.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
