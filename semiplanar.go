package yuv

// ConvertSemiPlanar converts a 4:2:0 frame with one luma plane and one
// interleaved chroma plane (NV12-style) to packed LayoutXBGR words.
//
// For each even column x the chroma row supplies two bytes: chroma[x] is
// used as the red-difference (V) term and chroma[x+1] as the
// blue-difference (U) term. This is the reverse of the usual NV12 naming
// and matches the producer this kernel was written for; callers feeding
// U-first data get red and blue chroma contributions exchanged.
//
// lumaStride and chromaStride are the byte distances between rows. The
// chroma plane needs ceil(height/2) rows of at least width bytes. dst
// receives width*height words, width per row with no padding.
//
// The returned error is nil on success; otherwise dst is untouched and the
// error wraps one of the precondition sentinels (ErrOddWidth, ...).
func ConvertSemiPlanar(width, height, lumaStride, chromaStride int, luma, chroma []byte, dst []uint32) error {
	f := frameArgs{
		width:      width,
		height:     height,
		luma:       luma,
		lumaStride: lumaStride,
		u:          chroma,
		v:          chroma,
		uStride:    chromaStride,
		vStride:    chromaStride,
		access:     semiPlanarAccess,
		layout:     LayoutXBGR,
		dst:        dst,
	}
	if err := f.validate(); err != nil {
		return err
	}
	f.convertRows(0, height)
	return nil
}
