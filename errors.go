package yuv

import "errors"

// Precondition errors returned by the converters.
//
// None of these are produced for well-formed input: a conversion either
// fills the whole destination or returns one of them before touching it.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("yuv: invalid dimensions")

	// ErrOddWidth is returned when the frame width is not a multiple of two.
	// Every iteration consumes a horizontal pair of luma samples.
	ErrOddWidth = errors.New("yuv: width must be even")

	// ErrInvalidStride is returned when a row stride is smaller than the
	// number of bytes one row of that plane occupies.
	ErrInvalidStride = errors.New("yuv: stride too small for width")

	// ErrLumaTooSmall is returned when the luma plane cannot hold every row.
	ErrLumaTooSmall = errors.New("yuv: luma plane too small")

	// ErrChromaTooSmall is returned when a chroma plane cannot hold
	// ceil(height/2) rows.
	ErrChromaTooSmall = errors.New("yuv: chroma plane too small")

	// ErrDestinationTooSmall is returned when the destination holds fewer
	// than width*height words.
	ErrDestinationTooSmall = errors.New("yuv: destination too small")

	// ErrUnsupportedSubsampling is returned by FromYCbCr for images that
	// are not 4:2:0.
	ErrUnsupportedSubsampling = errors.New("yuv: unsupported chroma subsampling")

	// ErrConverterClosed is returned by Converter methods after Close.
	ErrConverterClosed = errors.New("yuv: converter closed")
)
