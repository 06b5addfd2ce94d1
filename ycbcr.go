package yuv

import (
	"fmt"
	"image"
)

// FromYCbCr wraps a 4:2:0 image.YCbCr as a PlanarFrame without copying.
//
// The image's Cb and Cr planes play the U and V roles. Images whose
// rectangle does not start at the origin are re-sliced so that row 0 of the
// frame is the first row of the rectangle; an odd Rect.Min.Y would split a
// chroma row and is rejected, as is an odd Rect.Min.X.
func FromYCbCr(img *image.YCbCr) (*PlanarFrame, error) {
	if img.SubsampleRatio != image.YCbCrSubsampleRatio420 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSubsampling, img.SubsampleRatio)
	}
	r := img.Rect
	if r.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, r)
	}
	if r.Min.X%2 != 0 || r.Min.Y%2 != 0 {
		return nil, fmt.Errorf("yuv: rectangle origin %v not aligned to chroma grid", r.Min)
	}

	yi := img.YOffset(r.Min.X, r.Min.Y)
	ci := img.COffset(r.Min.X, r.Min.Y)
	return &PlanarFrame{
		Width:  r.Dx(),
		Height: r.Dy(),
		Y:      Plane{Data: img.Y[yi:], Stride: img.YStride},
		U:      Plane{Data: img.Cb[ci:], Stride: img.CStride},
		V:      Plane{Data: img.Cr[ci:], Stride: img.CStride},
	}, nil
}
