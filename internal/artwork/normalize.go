package artwork

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Fit scales src to fit inside a target×target square and centers it on an
// opaque black canvas.
//
// The image is only ever scaled down: the scale factor is
// min(target/width, target/height) clamped to at most 1. Offsets use floor
// division, so a 400×300 result sits at (0, 50). Transparent source pixels
// end up black. An image that is already target×target is copied unchanged.
func Fit(src image.Image, target int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, target, target))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return dst
	}

	sw, sh := scaledSize(width, height, target)
	x := (target - sw) / 2
	y := (target - sh) / 2
	rect := image.Rect(x, y, x+sw, y+sh)

	if sw == width && sh == height {
		draw.Draw(dst, rect, src, bounds.Min, draw.Over)
		return dst
	}

	// Catmull-Rom for high-quality downscaling
	draw.CatmullRom.Scale(dst, rect, src, bounds, draw.Over, nil)
	return dst
}

// scaledSize returns the dimensions of a width×height image scaled to fit
// inside target×target without upscaling.
func scaledSize(width, height, target int) (int, int) {
	scale := math.Min(float64(target)/float64(width), float64(target)/float64(height))
	if scale >= 1 {
		return width, height
	}
	return clampEdge(int(math.Round(float64(width)*scale)), target),
		clampEdge(int(math.Round(float64(height)*scale)), target)
}

func clampEdge(v, target int) int {
	if v < 1 {
		return 1
	}
	if v > target {
		return target
	}
	return v
}
