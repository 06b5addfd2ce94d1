package yuv

import (
	"fmt"
	"math"
)

// Fixed-point BT.601 coefficients, scaled by 256.
//
//	B = 1.164*(Y-16) + 2.018*(U-128)
//	G = 1.164*(Y-16) - 0.813*(V-128) - 0.391*(U-128)
//	R = 1.164*(Y-16) + 1.596*(V-128)
const (
	coefY  = 298
	coefUB = 517
	coefUG = -100
	coefVG = -208
	coefVR = 409

	lumaBias   = 16
	chromaBias = 128
	fixedScale = 256
)

// chromaAccess describes how a chroma row is addressed for each
// horizontal pair of luma samples.
type chromaAccess struct {
	step int // chroma bytes consumed per luma pair
	uOff int // offset of the U-role byte within the pair's chroma bytes
	vOff int // offset of the V-role byte within the pair's chroma bytes
}

var (
	// Interleaved chroma: the first byte plays the V role, the second U.
	semiPlanarAccess = chromaAccess{step: 2, uOff: 1, vOff: 0}

	// One byte per pair in each of two planes.
	planarAccess = chromaAccess{step: 1, uOff: 0, vOff: 0}
)

// rowBytes returns how many chroma bytes one row of a frame of the given
// width occupies.
func (a chromaAccess) rowBytes(width int) int {
	return width / 2 * a.step
}

// frameArgs binds the planes and geometry of one conversion call.
// For semi-planar frames u and v alias the same interleaved plane.
type frameArgs struct {
	width, height int

	luma       []byte
	lumaStride int

	u, v             []byte
	uStride, vStride int

	access chromaAccess
	layout Layout

	dst []uint32
}

// chromaRows returns the number of chroma rows the frame needs.
// Rows 2k and 2k+1 share chroma row k, so an odd last row still
// reads a row of its own.
func (f *frameArgs) chromaRows() int {
	return (f.height + 1) / 2
}

// validate checks every precondition the kernel relies on.
func (f *frameArgs) validate() error {
	if err := f.validateSource(); err != nil {
		return err
	}
	if need := f.width * f.height; len(f.dst) < need {
		return fmt.Errorf("%w: have %d words, need %d", ErrDestinationTooSmall, len(f.dst), need)
	}
	return nil
}

// validateSource checks geometry, strides and plane sizes, ignoring dst.
func (f *frameArgs) validateSource() error {
	if f.width <= 0 || f.height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, f.width, f.height)
	}
	if f.width%2 != 0 {
		return fmt.Errorf("%w: width %d", ErrOddWidth, f.width)
	}
	if f.height > math.MaxInt/f.width {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, f.width, f.height)
	}

	cw := f.access.rowBytes(f.width)
	if f.lumaStride < f.width {
		return fmt.Errorf("%w: luma stride %d < %d", ErrInvalidStride, f.lumaStride, f.width)
	}
	if f.uStride < cw {
		return fmt.Errorf("%w: chroma stride %d < %d", ErrInvalidStride, f.uStride, cw)
	}
	if f.vStride < cw {
		return fmt.Errorf("%w: chroma stride %d < %d", ErrInvalidStride, f.vStride, cw)
	}

	rows := f.chromaRows()
	planes := []struct {
		data         []byte
		rows, stride int
		rowBytes     int
		tooSmall     error
	}{
		{f.luma, f.height, f.lumaStride, f.width, ErrLumaTooSmall},
		{f.u, rows, f.uStride, cw, ErrChromaTooSmall},
		{f.v, rows, f.vStride, cw, ErrChromaTooSmall},
	}
	for _, p := range planes {
		need, ok := planeBytes(p.rows, p.stride, p.rowBytes)
		if !ok {
			return fmt.Errorf("%w: %d rows of stride %d overflow", ErrInvalidStride, p.rows, p.stride)
		}
		if len(p.data) < need {
			return fmt.Errorf("%w: have %d bytes, need %d", p.tooSmall, len(p.data), need)
		}
	}
	return nil
}

// planeBytes returns the minimum length of a plane with the given number
// of rows. The last row needs no trailing padding.
// ok is false if the length does not fit in an int.
func planeBytes(rows, stride, rowBytes int) (n int, ok bool) {
	if rows > 1 && stride > (math.MaxInt-rowBytes)/(rows-1) {
		return 0, false
	}
	return (rows-1)*stride + rowBytes, true
}

// rowCursor tracks plane offsets while walking down a frame.
// Luma moves every row; chroma only after odd rows.
type rowCursor struct {
	luma, u, v int
	dst        int

	lumaSteps   int
	chromaSteps int
}

// cursorAt positions a cursor on row, which must be even when the walk
// starts mid-frame.
func (f *frameArgs) cursorAt(row int) rowCursor {
	return rowCursor{
		luma: row * f.lumaStride,
		u:    row / 2 * f.uStride,
		v:    row / 2 * f.vStride,
		dst:  row * f.width,
	}
}

// advance moves the cursor past row.
func (f *frameArgs) advance(c *rowCursor, row int) {
	c.luma += f.lumaStride
	c.lumaSteps++
	if row&1 != 0 {
		c.u += f.uStride
		c.v += f.vStride
		c.chromaSteps++
	}
	c.dst += f.width
}

// convertRows converts rows [r0, r1). r0 must be even unless it is zero
// so that the cursor starts on a chroma row boundary.
// The arguments must have passed validate.
func (f *frameArgs) convertRows(r0, r1 int) rowCursor {
	c := f.cursorAt(r0)
	cw := f.access.rowBytes(f.width)
	for row := r0; row < r1; row++ {
		convertRow(
			f.dst[c.dst:c.dst+f.width],
			f.luma[c.luma:c.luma+f.width],
			f.u[c.u:c.u+cw],
			f.v[c.v:c.v+cw],
			f.access,
			f.layout,
		)
		f.advance(&c, row)
	}
	return c
}

// convertRow converts one row of luma samples. len(dst) == len(luma) and
// both are even.
func convertRow(dst []uint32, luma, uRow, vRow []byte, a chromaAccess, layout Layout) {
	info := &layoutInfoTable[layout]
	ci := 0
	for x := 0; x+1 < len(luma); x += 2 {
		u := int(uRow[ci+a.uOff]) - chromaBias
		v := int(vRow[ci+a.vOff]) - chromaBias
		ci += a.step

		ub := coefUB * u
		uvg := coefVG*v + coefUG*u
		vr := coefVR * v

		dst[x] = packPixel(coefY*(int(luma[x])-lumaBias), ub, uvg, vr, info)
		dst[x+1] = packPixel(coefY*(int(luma[x+1])-lumaBias), ub, uvg, vr, info)
	}
}

// packPixel finishes one sample from its scaled luma term and the shared
// chroma terms. Division truncates toward zero.
func packPixel(yt, ub, uvg, vr int, info *layoutInfo) uint32 {
	b := clipTable[(yt+ub)/fixedScale-ClipMin]
	g := clipTable[(yt+uvg)/fixedScale-ClipMin]
	r := clipTable[(yt+vr)/fixedScale-ClipMin]
	return uint32(r)<<info.rShift | uint32(g)<<info.gShift | uint32(b)<<info.bShift
}
