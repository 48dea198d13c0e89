// Package texture provides image decoding and OpenGL texture upload.
package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// DecodeTGA decodes a TGA image. Uncompressed (type 2) and RLE
// compressed (type 10) true-color files are supported; the stdlib image
// registry has no TGA decoder, so model textures in this common format
// need one here.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}
	pixelData := data[offset:]

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bytesPerPixel := bpp / 8

	// Bit 5 of the descriptor means rows are stored top-to-bottom.
	topToBottom := (descriptor & 0x20) != 0

	if imageType == TGATypeUncompressed {
		expectedSize := width * height * bytesPerPixel
		if len(pixelData) < expectedSize {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for y := 0; y < height; y++ {
			destY := y
			if !topToBottom {
				destY = height - 1 - y
			}
			for x := 0; x < width; x++ {
				i := (y*width + x) * bytesPerPixel
				img.SetRGBA(x, destY, tgaPixel(pixelData[i:], bytesPerPixel))
			}
		}
		return img, nil
	}

	if err := decodeTGARLE(img, pixelData, width, height, bytesPerPixel, topToBottom); err != nil {
		return nil, err
	}
	return img, nil
}

// tgaPixel reads one BGR(A) pixel.
func tgaPixel(data []byte, bytesPerPixel int) color.RGBA {
	c := color.RGBA{R: data[2], G: data[1], B: data[0], A: 255}
	if bytesPerPixel == 4 {
		c.A = data[3]
	}
	return c
}

// decodeTGARLE decodes RLE-compressed TGA pixel data into an image.
func decodeTGARLE(img *image.RGBA, pixelData []byte, width, height, bytesPerPixel int, topToBottom bool) error {
	pixelCount := width * height
	pixelIdx := 0
	dataIdx := 0

	setPixel := func(c color.RGBA) {
		x := pixelIdx % width
		y := pixelIdx / width
		destY := y
		if !topToBottom {
			destY = height - 1 - y
		}
		img.SetRGBA(x, destY, c)
		pixelIdx++
	}

	for pixelIdx < pixelCount && dataIdx < len(pixelData) {
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// RLE packet: one pixel repeated count times.
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			c := tgaPixel(pixelData[dataIdx:], bytesPerPixel)
			dataIdx += bytesPerPixel
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				setPixel(c)
			}
		} else {
			// Raw packet: count literal pixels.
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				if dataIdx+bytesPerPixel > len(pixelData) {
					break
				}
				setPixel(tgaPixel(pixelData[dataIdx:], bytesPerPixel))
				dataIdx += bytesPerPixel
			}
		}
	}

	return nil
}
