package yuv

import (
	"errors"
	"image"
	"math/rand"
	"testing"
)

func randomYCbCr(rng *rand.Rand, r image.Rectangle) *image.YCbCr {
	img := image.NewYCbCr(r, image.YCbCrSubsampleRatio420)
	rng.Read(img.Y)
	rng.Read(img.Cb)
	rng.Read(img.Cr)
	return img
}

// wantYCbCr converts img pixel by pixel with the reference formulas.
func wantYCbCr(img *image.YCbCr) []uint32 {
	r := img.Rect
	out := make([]uint32, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ci := img.COffset(x, y)
			rr, g, b := refRGB(int(img.Y[img.YOffset(x, y)]), int(img.Cb[ci]), int(img.Cr[ci]))
			out = append(out, LayoutXRGB.Pack(rr, g, b))
		}
	}
	return out
}

func TestFromYCbCr(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	tests := []struct {
		name string
		img  *image.YCbCr
	}{
		{"origin", randomYCbCr(rng, image.Rect(0, 0, 16, 10))},
		{"odd-height", randomYCbCr(rng, image.Rect(0, 0, 8, 7))},
		{"offset-rect", randomYCbCr(rng, image.Rect(2, 2, 14, 11))},
		{"sub-image", randomYCbCr(rng, image.Rect(0, 0, 20, 20)).SubImage(image.Rect(4, 6, 14, 15)).(*image.YCbCr)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FromYCbCr(tt.img)
			if err != nil {
				t.Fatalf("FromYCbCr: %v", err)
			}
			w, h := f.Size()
			if w != tt.img.Rect.Dx() || h != tt.img.Rect.Dy() {
				t.Fatalf("Size() = %dx%d, want %v", w, h, tt.img.Rect.Size())
			}

			dst := make([]uint32, w*h)
			if err := f.Convert(dst); err != nil {
				t.Fatalf("Convert: %v", err)
			}
			compareWords(t, dst, wantYCbCr(tt.img), w)
		})
	}
}

func TestFromYCbCrShares(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420)
	f, err := FromYCbCr(img)
	if err != nil {
		t.Fatal(err)
	}
	img.Y[0] = 200
	img.Cb[0] = 10
	img.Cr[0] = 20
	if f.Y.Data[0] != 200 || f.U.Data[0] != 10 || f.V.Data[0] != 20 {
		t.Error("frame does not alias the image planes")
	}
}

func TestFromYCbCrRejects(t *testing.T) {
	sub444 := image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio444)
	if _, err := FromYCbCr(sub444); !errors.Is(err, ErrUnsupportedSubsampling) {
		t.Errorf("4:4:4: got %v, want ErrUnsupportedSubsampling", err)
	}

	empty := image.NewYCbCr(image.Rectangle{}, image.YCbCrSubsampleRatio420)
	if _, err := FromYCbCr(empty); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("empty: got %v, want ErrInvalidDimensions", err)
	}

	base := image.NewYCbCr(image.Rect(0, 0, 8, 8), image.YCbCrSubsampleRatio420)
	for _, r := range []image.Rectangle{image.Rect(1, 0, 7, 8), image.Rect(0, 1, 8, 7)} {
		sub := base.SubImage(r).(*image.YCbCr)
		if _, err := FromYCbCr(sub); err == nil {
			t.Errorf("sub-image %v with odd origin accepted", r)
		}
	}

	odd := image.NewYCbCr(image.Rect(0, 0, 5, 4), image.YCbCrSubsampleRatio420)
	f, err := FromYCbCr(odd)
	if err != nil {
		t.Fatalf("FromYCbCr(5x4): %v", err)
	}
	if err := f.Validate(); !errors.Is(err, ErrOddWidth) {
		t.Errorf("5x4 Validate: got %v, want ErrOddWidth", err)
	}
}
