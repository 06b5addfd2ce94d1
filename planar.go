package yuv

// ConvertFullyPlanar converts a 4:2:0 frame with separate luma, U and V
// planes (I420-style) to packed LayoutXRGB words.
//
// Each chroma plane holds one byte per 2x2 luma block, read at column x/2,
// and has its own stride. Note the output layout differs from
// ConvertSemiPlanar: red is in bits 16-23 here.
//
// The returned error is nil on success; otherwise dst is untouched.
func ConvertFullyPlanar(width, height, lumaStride, uStride, vStride int, luma, u, v []byte, dst []uint32) error {
	f := frameArgs{
		width:      width,
		height:     height,
		luma:       luma,
		lumaStride: lumaStride,
		u:          u,
		v:          v,
		uStride:    uStride,
		vStride:    vStride,
		access:     planarAccess,
		layout:     LayoutXRGB,
		dst:        dst,
	}
	if err := f.validate(); err != nil {
		return err
	}
	f.convertRows(0, height)
	return nil
}
