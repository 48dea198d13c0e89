package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	_ "image/jpeg"             // JPEG decoder registration
	_ "image/png"              // PNG decoder registration
)

// Decode decodes texture data by file extension: TGA through the
// hand-rolled decoder, everything else (PNG, JPEG, BMP) through the
// image registry.
func Decode(data []byte, path string) (*image.RGBA, error) {
	var img image.Image
	var err error
	if strings.HasSuffix(strings.ToLower(path), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ImageToRGBA(img), nil
}

// LoadFile reads and decodes a texture from disk.
func LoadFile(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read texture: %w", err)
	}
	return Decode(data, path)
}

// Upload creates an OpenGL texture from an RGBA image with mipmaps and
// linear filtering. Must be called with a current GL context.
func Upload(img *image.RGBA) uint32 {
	img = ensureNonEmpty(img)

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return texID
}

// ensureNonEmpty substitutes the checkerboard for images with no pixel
// data. A zero-size image is a valid decode result but has nothing to
// upload.
func ensureNonEmpty(img *image.RGBA) *image.RGBA {
	if img == nil || len(img.Pix) == 0 {
		return Checkerboard(256, 8)
	}
	return img
}

// Checkerboard returns a gray checker pattern used as the fallback when
// no texture is configured or decoding fails.
func Checkerboard(size, cells int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	light := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	dark := color.RGBA{R: 90, G: 90, B: 90, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}

// ImageToRGBA converts any image.Image to *image.RGBA.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			rgba.SetRGBA(x, y, color.RGBA{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
				A: uint8(a16 >> 8),
			})
		}
	}
	return rgba
}
