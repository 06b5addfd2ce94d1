package yuv

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/gogpu/yuv/internal/imageio"
)

// Pixmap is a converted frame: width*height packed words in one Layout.
//
// Pixmap implements image.Image so it can be handed to encoders directly.
// The unused top byte of each word is reported as opaque alpha.
type Pixmap struct {
	width  int
	height int
	layout Layout
	words  []uint32
}

// NewPixmap creates a zeroed pixmap with the given dimensions and layout.
func NewPixmap(width, height int, layout Layout) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		layout: layout,
		words:  make([]uint32, width*height),
	}
}

// PixmapFromWords wraps existing words without copying.
// len(words) must be at least width*height.
func PixmapFromWords(words []uint32, width, height int, layout Layout) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(words) < width*height {
		return nil, ErrDestinationTooSmall
	}
	return &Pixmap{
		width:  width,
		height: height,
		layout: layout,
		words:  words[:width*height],
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Layout returns the channel order of the words.
func (p *Pixmap) Layout() Layout {
	return p.layout
}

// Words returns the packed words, width per row.
func (p *Pixmap) Words() []uint32 {
	return p.words
}

// Bytes returns the words serialised little-endian, 4 bytes per pixel.
// The result matches p.Layout().TextureFormat().
func (p *Pixmap) Bytes() []byte {
	out := make([]byte, 0, len(p.words)*4)
	for _, w := range p.words {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}

// RGBAt returns the channels of pixel (x, y).
// Out-of-bounds coordinates return zeros.
func (p *Pixmap) RGBAt(x, y int) (r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0
	}
	return p.layout.Unpack(p.words[y*p.width+x])
}

// ToRGBA converts the pixmap to an opaque image.RGBA.
func (p *Pixmap) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, w := range p.words {
		r, g, b := p.layout.Unpack(w)
		o := i * 4
		img.Pix[o+0] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = 255
	}
	return img
}

// Save encodes the pixmap to path. The format is chosen by extension:
// .png, .jpg/.jpeg, .bmp, .tif/.tiff.
func (p *Pixmap) Save(path string) error {
	return imageio.Save(path, p.ToRGBA())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	r, g, b := p.RGBAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
