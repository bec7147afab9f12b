/*
Package raster holds the plain in-memory true color image consumed by the MIF
conversion pipeline.

Pixels are stored row-major with row 0 being the bottom row of the image, the
same order a bottom-up Windows bitmap stores them on disk.
*/
package raster

import (
	"errors"
	"image"
	"image/color"
)

var errSize = errors.New("raster: pixel count does not match dimensions")

// RGB is a single 8-bit per channel pixel.
type RGB struct {
	R, G, B uint8
}

// Image is an immutable true color image with bottom-up row order.
type Image struct {
	Width  int
	Height int
	Pix    []RGB
}

// New returns an Image wrapping pix, which must hold exactly width*height
// pixels with the bottom row first.
func New(width, height int, pix []RGB) (*Image, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, errSize
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    pix,
	}, nil
}

// At returns the pixel at column x of row y, counting rows from the bottom.
func (m *Image) At(x, y int) RGB {
	return m.Pix[y*m.Width+x]
}

// FromImage converts m into an Image, flipping it so that the bottom row of
// m becomes row 0. Alpha is ignored.
func FromImage(m image.Image) *Image {
	b := m.Bounds()
	img := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]RGB, b.Dx()*b.Dy()),
	}

	// Fast path for what golang.org/x/image/bmp hands back for 24-bit files
	rgba, isRGBA := m.(*image.RGBA)

	for y := 0; y < img.Height; y++ {
		sy := b.Max.Y - 1 - y
		row := img.Pix[y*img.Width : (y+1)*img.Width]

		if isRGBA {
			i := rgba.PixOffset(b.Min.X, sy)
			for x := range row {
				row[x] = RGB{rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2]}
				i += 4
			}
			continue
		}

		for x := range row {
			c := color.RGBAModel.Convert(m.At(b.Min.X+x, sy)).(color.RGBA)
			row[x] = RGB{c.R, c.G, c.B}
		}
	}

	return img
}
