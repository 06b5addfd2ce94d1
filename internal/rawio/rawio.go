// Package rawio reads raw 4:2:0 frame dumps as produced by capture tools
// (ffmpeg -f rawvideo, v4l2 dumps), optionally zstd-compressed.
package rawio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/yuv"
)

// Errors returned by the reader.
var (
	// ErrUnknownFormat is returned by ParseFormat for unrecognised names.
	ErrUnknownFormat = errors.New("rawio: unknown pixel format")

	// ErrShortFrame is returned when the input ends inside a frame.
	ErrShortFrame = errors.New("rawio: short frame")
)

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Format is a raw frame layout.
type Format uint8

const (
	// FormatNV12 is a luma plane followed by one interleaved chroma plane.
	FormatNV12 Format = iota

	// FormatI420 is a luma plane followed by the U plane and the V plane.
	FormatI420
)

// String returns the conventional lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatNV12:
		return "nv12"
	case FormatI420:
		return "i420"
	default:
		return "unknown"
	}
}

// ParseFormat maps a name to a Format. "yuv420p" is accepted for I420.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nv12":
		return FormatNV12, nil
	case "i420", "yuv420p":
		return FormatI420, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FrameSize returns the byte size of one tightly packed frame.
// Chroma planes have ceil(height/2) rows. Dimensions must be positive and
// small enough for the size to fit in an int.
func FrameSize(f Format, width, height int) (int, error) {
	if f != FormatNV12 && f != FormatI420 {
		return 0, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	if width <= 0 || height <= 0 || height > math.MaxInt/2/width {
		return 0, fmt.Errorf("%w: %dx%d", yuv.ErrInvalidDimensions, width, height)
	}
	luma := width * height
	chroma := (width / 2) * ((height + 1) / 2)
	return luma + 2*chroma, nil
}

// NewReader returns a reader over raw frame bytes, decompressing zstd
// input transparently. The caller must call the returned close function.
func NewReader(r io.Reader) (io.Reader, func(), error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("rawio: peek: %w", err)
	}
	if !bytes.Equal(head, zstdMagic) {
		return br, func() {}, nil
	}

	dec, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, nil, fmt.Errorf("rawio: zstd: %w", err)
	}
	return dec, dec.Close, nil
}

// Open opens a raw frame file, compressed or not.
func Open(path string) (io.Reader, func() error, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("rawio: open: %w", err)
	}
	r, closeDec, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return r, func() error {
		closeDec()
		return f.Close()
	}, nil
}

// Skip discards n frames.
func Skip(r io.Reader, f Format, width, height, n int) error {
	size, err := FrameSize(f, width, height)
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	if int64(n) > math.MaxInt64/int64(size) {
		return fmt.Errorf("%w: skipping %d frames", ErrShortFrame, n)
	}
	if _, err := io.CopyN(io.Discard, r, int64(size)*int64(n)); err != nil {
		return fmt.Errorf("%w: skipping %d frames: %w", ErrShortFrame, n, err)
	}
	return nil
}

// ReadFrame reads one frame and returns it as a yuv.Frame with tight
// strides. io.EOF is returned unwrapped when the input ends on a frame
// boundary.
func ReadFrame(r io.Reader, f Format, width, height int) (yuv.Frame, error) {
	if _, err := FrameSize(f, width, height); err != nil {
		return nil, err
	}
	switch f {
	case FormatNV12:
		fr := yuv.NewSemiPlanarFrame(width, height)
		if err := readPlanes(r, fr.Y.Data, fr.UV.Data); err != nil {
			return nil, err
		}
		return fr, nil
	case FormatI420:
		fr := yuv.NewPlanarFrame(width, height)
		if err := readPlanes(r, fr.Y.Data, fr.U.Data, fr.V.Data); err != nil {
			return nil, err
		}
		return fr, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

func readPlanes(r io.Reader, planes ...[]byte) error {
	for i, p := range planes {
		n, err := io.ReadFull(r, p)
		if err == nil {
			continue
		}
		if i == 0 && n == 0 && errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("%w: plane %d: %w", ErrShortFrame, i, err)
	}
	return nil
}
