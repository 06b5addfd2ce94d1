// Package yuv converts 4:2:0 luma/chroma frames to packed 32-bit RGB.
//
// # Overview
//
// Capture and decode pipelines hand over frames as one luma plane plus
// subsampled chroma, either interleaved in one plane (semi-planar, NV12
// style) or split into two planes (fully planar, I420 style). yuv turns
// them into one uint32 per pixel using fixed-point BT.601 coefficients
// with a common denominator of 256, clamping every channel to [0, 255].
//
// # Quick Start
//
//	dst := make([]uint32, width*height)
//	err := yuv.ConvertSemiPlanar(width, height, yStride, uvStride, y, uv, dst)
//
//	// Or, splitting each frame across all CPUs:
//	c := yuv.NewConverter()
//	defer c.Close()
//	f := yuv.NewPlanarFrame(width, height) // fill f.Y, f.U, f.V
//	pm, err := c.NewPixmap(f)
//	defer c.Release(pm)
//
// # Output Layouts
//
// The two converters pack channels in opposite orders and this is part of
// their contract:
//   - ConvertSemiPlanar: LayoutXBGR, (B<<16)|(G<<8)|R
//   - ConvertFullyPlanar: LayoutXRGB, (R<<16)|(G<<8)|B
//
// The top byte is always zero. Layout.TextureFormat names the GPU texture
// format with the same byte order.
//
// # Errors
//
// Odd widths, short strides and undersized buffers are reported as errors
// wrapping the sentinels in this package; a failed call leaves the
// destination untouched.
//
// # Concurrency
//
// The saturation table is built during package initialisation and never
// modified, so every function here may run concurrently on disjoint
// buffers.
package yuv
