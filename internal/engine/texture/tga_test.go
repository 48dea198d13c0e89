package texture

import (
	"image"
	"image/color"
	"testing"
)

// tinyTGA builds a 2x1 uncompressed 24-bit top-to-bottom TGA with a red
// and a blue pixel.
func tinyTGA() []byte {
	header := make([]byte, 18)
	header[2] = TGATypeUncompressed
	header[12] = 2 // width
	header[14] = 1 // height
	header[16] = 24
	header[17] = 0x20 // top-to-bottom

	// BGR order
	pixels := []byte{
		0, 0, 255, // red
		255, 0, 0, // blue
	}
	return append(header, pixels...)
}

func TestDecodeTGA(t *testing.T) {
	img, err := DecodeTGA(tinyTGA())
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v, want 2x1", img.Bounds())
	}

	r, _, _, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 255 {
		t.Errorf("pixel 0 red channel = %d, want 255", uint8(r>>8))
	}
	_, _, b, _ := img.At(1, 0).RGBA()
	if uint8(b>>8) != 255 {
		t.Errorf("pixel 1 blue channel = %d, want 255", uint8(b>>8))
	}
}

func TestDecodeTGARejectsShortData(t *testing.T) {
	if _, err := DecodeTGA([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for truncated TGA")
	}
}

func TestDecodeTGARejectsColorMapped(t *testing.T) {
	data := tinyTGA()
	data[1] = 1
	if _, err := DecodeTGA(data); err == nil {
		t.Fatal("expected error for color-mapped TGA")
	}
}

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(64, 8)
	if img.Bounds().Dx() != 64 {
		t.Fatalf("size = %d, want 64", img.Bounds().Dx())
	}
	c0 := img.RGBAAt(0, 0)
	c1 := img.RGBAAt(8, 0)
	if c0 == c1 {
		t.Error("adjacent cells should alternate colors")
	}
	if (c0 != color.RGBA{R: 200, G: 200, B: 200, A: 255}) {
		t.Errorf("first cell = %v, want light gray", c0)
	}
}

func TestEnsureNonEmptySubstitutesCheckerboard(t *testing.T) {
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	got := ensureNonEmpty(empty)
	if len(got.Pix) == 0 {
		t.Fatal("zero-size image should be replaced")
	}
	if got = ensureNonEmpty(nil); len(got.Pix) == 0 {
		t.Fatal("nil image should be replaced")
	}

	solid := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if ensureNonEmpty(solid) != solid {
		t.Error("non-empty image should pass through unchanged")
	}
}
