package imageio

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resamples img to width x height with a bilinear filter.
// Non-positive dimensions keep the source size for that axis; if both
// match the source the image is copied unscaled.
func Scale(img image.Image, width, height int) *image.RGBA {
	sr := img.Bounds()
	if width <= 0 {
		width = sr.Dx()
	}
	if height <= 0 {
		height = sr.Dy()
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == sr.Dx() && height == sr.Dy() {
		draw.Copy(dst, image.Point{}, img, sr, draw.Src, nil)
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), img, sr, draw.Src, nil)
	return dst
}
