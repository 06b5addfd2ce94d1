package yuv

import "github.com/gogpu/gputypes"

// Layout names the channel order inside a packed 32-bit output word.
//
// Names read from the most significant byte down, following the DRM
// fourcc convention: the top byte is always unused and zero.
type Layout uint8

const (
	// LayoutXBGR packs (B<<16)|(G<<8)|R.
	// Produced by ConvertSemiPlanar.
	LayoutXBGR Layout = iota

	// LayoutXRGB packs (R<<16)|(G<<8)|B.
	// Produced by ConvertFullyPlanar.
	LayoutXRGB

	// layoutCount is the number of layouts (for internal use).
	layoutCount
)

// layoutInfo describes where each channel lives in a word.
type layoutInfo struct {
	name    string
	rShift  uint
	gShift  uint
	bShift  uint
	texture gputypes.TextureFormat
}

// layoutInfoTable contains metadata for each layout.
//
// Words are stored little-endian, so the low byte comes first in memory:
// XBGR is laid out R,G,B,X and XRGB is laid out B,G,R,X.
var layoutInfoTable = [layoutCount]layoutInfo{
	LayoutXBGR: {
		name:    "XBGR",
		rShift:  0,
		gShift:  8,
		bShift:  16,
		texture: gputypes.TextureFormatRGBA8Unorm,
	},
	LayoutXRGB: {
		name:    "XRGB",
		rShift:  16,
		gShift:  8,
		bShift:  0,
		texture: gputypes.TextureFormatBGRA8Unorm,
	},
}

// IsValid returns true if the layout is a known layout.
func (l Layout) IsValid() bool {
	return l < layoutCount
}

// String returns a string representation of the layout.
func (l Layout) String() string {
	if !l.IsValid() {
		return "Unknown"
	}
	return layoutInfoTable[l].name
}

// Pack builds a word from three channel values.
// Unknown layouts pack as LayoutXRGB.
func (l Layout) Pack(r, g, b uint8) uint32 {
	if !l.IsValid() {
		l = LayoutXRGB
	}
	info := &layoutInfoTable[l]
	return uint32(r)<<info.rShift | uint32(g)<<info.gShift | uint32(b)<<info.bShift
}

// Unpack splits a word into its channel values.
func (l Layout) Unpack(w uint32) (r, g, b uint8) {
	if !l.IsValid() {
		l = LayoutXRGB
	}
	info := &layoutInfoTable[l]
	return uint8(w >> info.rShift), uint8(w >> info.gShift), uint8(w >> info.bShift)
}

// Swap returns the other layout. Converting a word between the two
// layouts exchanges its red and blue bytes.
func (l Layout) Swap() Layout {
	if l == LayoutXBGR {
		return LayoutXRGB
	}
	return LayoutXBGR
}

// TextureFormat returns the GPU texture format whose memory layout matches
// the little-endian bytes of this layout. The unused byte lands in the
// alpha channel, so samplers must ignore alpha or the caller must fill it.
func (l Layout) TextureFormat() gputypes.TextureFormat {
	if !l.IsValid() {
		return gputypes.TextureFormatUndefined
	}
	return layoutInfoTable[l].texture
}

// SwapRedBlue exchanges bytes 0 and 2 of a packed word, converting it
// between LayoutXBGR and LayoutXRGB.
func SwapRedBlue(w uint32) uint32 {
	return w&0xFF00FF00 | (w&0xFF)<<16 | (w>>16)&0xFF
}
