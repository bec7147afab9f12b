package mif

import (
	"errors"
	"image"
	"image/color"
)

var errCols = errors.New("mif: depth is not a multiple of the column count")

// Expand a channel code back to 8 bits, e.g. 3 bits 0-7 to 0-255
func expand(code uint16, bits int) uint8 {
	return uint8(uint32(code) * 0xff / (1<<uint(bits) - 1))
}

// Image renders m onto a canvas cols words wide so it can be inspected.
// Unpopulated addresses are black.
func (m *Memory) Image(cols int) (*image.RGBA, error) {
	if cols <= 0 || m.Depth%cols != 0 {
		return nil, errCols
	}
	if m.Width%channels != 0 {
		return nil, ErrDepth
	}

	bits := m.Width / channels
	mask := uint16(1)<<uint(bits) - 1

	img := image.NewRGBA(image.Rect(0, 0, cols, m.Depth/cols))
	draw := func(address int, code uint16) {
		img.SetRGBA(address%cols, address/cols, color.RGBA{
			expand(code>>uint(bits<<1)&mask, bits),
			expand(code>>uint(bits)&mask, bits),
			expand(code&mask, bits),
			0xff,
		})
	}

	for i := 0; i < m.Depth; i++ {
		draw(i, 0)
	}
	for _, w := range m.words {
		draw(w.Address, w.Code)
	}

	return img, nil
}
