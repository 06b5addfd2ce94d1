package yuv

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(3, 2, LayoutXRGB)
	if pm.Width() != 3 || pm.Height() != 2 || pm.Layout() != LayoutXRGB {
		t.Fatalf("NewPixmap = %dx%d %v", pm.Width(), pm.Height(), pm.Layout())
	}
	if len(pm.Words()) != 6 {
		t.Fatalf("len(Words()) = %d, want 6", len(pm.Words()))
	}
	if got := pm.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", got)
	}
	if pm.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() is not RGBAModel")
	}
}

func TestPixmapFromWords(t *testing.T) {
	words := make([]uint32, 10)
	pm, err := PixmapFromWords(words, 3, 3, LayoutXBGR)
	if err != nil {
		t.Fatal(err)
	}
	if len(pm.Words()) != 9 {
		t.Errorf("len(Words()) = %d, want 9", len(pm.Words()))
	}
	words[4] = 0x00010203
	if pm.Words()[4] != 0x00010203 {
		t.Error("PixmapFromWords copied the words")
	}

	if _, err := PixmapFromWords(words, 4, 3, LayoutXBGR); !errors.Is(err, ErrDestinationTooSmall) {
		t.Errorf("short words: got %v, want ErrDestinationTooSmall", err)
	}
	if _, err := PixmapFromWords(words, 0, 3, LayoutXBGR); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width: got %v, want ErrInvalidDimensions", err)
	}
}

func TestPixmapAt(t *testing.T) {
	for _, l := range []Layout{LayoutXBGR, LayoutXRGB} {
		t.Run(l.String(), func(t *testing.T) {
			pm := NewPixmap(2, 2, l)
			pm.Words()[3] = l.Pack(10, 20, 30)

			r, g, b := pm.RGBAt(1, 1)
			if r != 10 || g != 20 || b != 30 {
				t.Errorf("RGBAt(1,1) = (%d,%d,%d), want (10,20,30)", r, g, b)
			}
			if got, want := pm.At(1, 1), (color.RGBA{10, 20, 30, 255}); got != want {
				t.Errorf("At(1,1) = %v, want %v", got, want)
			}
			if got := pm.At(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
				t.Errorf("At(0,0) = %v, want opaque black", got)
			}
			if got := pm.At(2, 0); got != (color.RGBA{}) {
				t.Errorf("At(2,0) = %v, want zero", got)
			}
			if r, g, b := pm.RGBAt(-1, 0); r|g|b != 0 {
				t.Error("RGBAt out of bounds returned non-zero")
			}
		})
	}
}

func TestPixmapToRGBA(t *testing.T) {
	pm := NewPixmap(2, 1, LayoutXBGR)
	pm.Words()[0] = LayoutXBGR.Pack(1, 2, 3)
	pm.Words()[1] = LayoutXBGR.Pack(250, 251, 252)

	img := pm.ToRGBA()
	want := []uint8{1, 2, 3, 255, 250, 251, 252, 255}
	if string(img.Pix) != string(want) {
		t.Errorf("ToRGBA().Pix = %v, want %v", img.Pix, want)
	}
}

// TestPixmapBytes verifies the serialised byte order matches the layout's
// texture format: RGBA for XBGR and BGRA for XRGB.
func TestPixmapBytes(t *testing.T) {
	tests := []struct {
		layout Layout
		want   []byte
	}{
		{LayoutXBGR, []byte{0x11, 0x22, 0x33, 0x00}},
		{LayoutXRGB, []byte{0x33, 0x22, 0x11, 0x00}},
	}
	for _, tt := range tests {
		pm := NewPixmap(1, 1, tt.layout)
		pm.Words()[0] = tt.layout.Pack(0x11, 0x22, 0x33)
		if got := pm.Bytes(); string(got) != string(tt.want) {
			t.Errorf("%v Bytes() = % x, want % x", tt.layout, got, tt.want)
		}
	}
}

func TestPixmapSave(t *testing.T) {
	pm := NewPixmap(4, 2, LayoutXRGB)
	for i := range pm.Words() {
		pm.Words()[i] = LayoutXRGB.Pack(uint8(i*30), uint8(255-i*30), 128)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := pm.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}

	for y := range 2 {
		for x := range 4 {
			gr, gg, gb, ga := img.At(x, y).RGBA()
			wr, wg, wb, wa := pm.At(x, y).RGBA()
			if gr != wr || gg != wg || gb != wb || ga != wa {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, img.At(x, y), pm.At(x, y))
			}
		}
	}
}

func TestPixmapSaveUnsupported(t *testing.T) {
	pm := NewPixmap(2, 2, LayoutXBGR)
	if err := pm.Save(filepath.Join(t.TempDir(), "frame.gif")); err == nil {
		t.Error("Save accepted .gif")
	}
}
