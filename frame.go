package yuv

// Plane is a read-only view over one plane of samples.
//
// Stride is the byte distance between the starts of successive rows and may
// exceed the row width for padding. The logical width and height of a plane
// follow from the frame that owns it: chroma planes of a 4:2:0 frame have
// ceil(height/2) rows.
type Plane struct {
	Data   []byte
	Stride int
}

// Row returns the first n bytes of row y.
// Returns nil if the row does not fit in Data.
func (p Plane) Row(y, n int) []byte {
	start := y * p.Stride
	if y < 0 || n < 0 || start+n > len(p.Data) {
		return nil
	}
	return p.Data[start : start+n]
}

// Frame is a 4:2:0 source that a Converter can consume.
// It is implemented by *SemiPlanarFrame and *PlanarFrame.
type Frame interface {
	// Size returns the frame dimensions in luma samples.
	Size() (width, height int)

	// Layout returns the layout of the words this frame converts to.
	Layout() Layout

	// Validate reports whether the planes satisfy the converter
	// preconditions.
	Validate() error

	args(dst []uint32) frameArgs
}

// SemiPlanarFrame is a luma plane plus one interleaved chroma plane.
// See ConvertSemiPlanar for the chroma byte order.
type SemiPlanarFrame struct {
	Width, Height int
	Y, UV         Plane
}

// NewSemiPlanarFrame allocates a tightly packed semi-planar frame.
// Odd heights round the chroma plane up to ceil(height/2) rows.
// Non-positive dimensions allocate nothing; Validate then reports
// ErrInvalidDimensions.
func NewSemiPlanarFrame(width, height int) *SemiPlanarFrame {
	w, h := max(width, 0), max(height, 0)
	cw := semiPlanarAccess.rowBytes(w)
	return &SemiPlanarFrame{
		Width:  width,
		Height: height,
		Y:      Plane{Data: make([]byte, w*h), Stride: w},
		UV:     Plane{Data: make([]byte, cw*((h+1)/2)), Stride: cw},
	}
}

// Size implements Frame.
func (f *SemiPlanarFrame) Size() (int, int) { return f.Width, f.Height }

// Layout implements Frame. Semi-planar frames produce LayoutXBGR.
func (f *SemiPlanarFrame) Layout() Layout { return LayoutXBGR }

// Validate implements Frame.
func (f *SemiPlanarFrame) Validate() error {
	a := f.args(nil)
	return a.validateSource()
}

// Convert writes the frame into dst. See ConvertSemiPlanar.
func (f *SemiPlanarFrame) Convert(dst []uint32) error {
	return ConvertSemiPlanar(f.Width, f.Height, f.Y.Stride, f.UV.Stride, f.Y.Data, f.UV.Data, dst)
}

func (f *SemiPlanarFrame) args(dst []uint32) frameArgs {
	return frameArgs{
		width:      f.Width,
		height:     f.Height,
		luma:       f.Y.Data,
		lumaStride: f.Y.Stride,
		u:          f.UV.Data,
		v:          f.UV.Data,
		uStride:    f.UV.Stride,
		vStride:    f.UV.Stride,
		access:     semiPlanarAccess,
		layout:     LayoutXBGR,
		dst:        dst,
	}
}

// PlanarFrame is a luma plane plus separate U and V planes.
type PlanarFrame struct {
	Width, Height int
	Y, U, V       Plane
}

// NewPlanarFrame allocates a tightly packed fully planar frame.
// Non-positive dimensions are handled as in NewSemiPlanarFrame.
func NewPlanarFrame(width, height int) *PlanarFrame {
	w, h := max(width, 0), max(height, 0)
	cw := planarAccess.rowBytes(w)
	ch := (h + 1) / 2
	return &PlanarFrame{
		Width:  width,
		Height: height,
		Y:      Plane{Data: make([]byte, w*h), Stride: w},
		U:      Plane{Data: make([]byte, cw*ch), Stride: cw},
		V:      Plane{Data: make([]byte, cw*ch), Stride: cw},
	}
}

// Size implements Frame.
func (f *PlanarFrame) Size() (int, int) { return f.Width, f.Height }

// Layout implements Frame. Fully planar frames produce LayoutXRGB.
func (f *PlanarFrame) Layout() Layout { return LayoutXRGB }

// Validate implements Frame.
func (f *PlanarFrame) Validate() error {
	a := f.args(nil)
	return a.validateSource()
}

// Convert writes the frame into dst. See ConvertFullyPlanar.
func (f *PlanarFrame) Convert(dst []uint32) error {
	return ConvertFullyPlanar(f.Width, f.Height, f.Y.Stride, f.U.Stride, f.V.Stride,
		f.Y.Data, f.U.Data, f.V.Data, dst)
}

func (f *PlanarFrame) args(dst []uint32) frameArgs {
	return frameArgs{
		width:      f.Width,
		height:     f.Height,
		luma:       f.Y.Data,
		lumaStride: f.Y.Stride,
		u:          f.U.Data,
		v:          f.V.Data,
		uStride:    f.U.Stride,
		vStride:    f.V.Stride,
		access:     planarAccess,
		layout:     LayoutXRGB,
		dst:        dst,
	}
}
