package mif

import "github.com/bodgit/bmp2mif/raster"

// Average each channel over the stride sized window with its bottom left
// corner at x, y
func average(img *raster.Image, x, y int, s Scale) raster.RGB {
	var r, g, b int
	for i := 0; i < s.Y; i++ {
		row := img.Pix[(y+i)*img.Width+x:]
		for j := 0; j < s.X; j++ {
			r += int(row[j].R)
			g += int(row[j].G)
			b += int(row[j].B)
		}
	}
	n := s.X * s.Y
	return raster.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// Convert resamples, quantizes and maps img onto the canvas c. Words are set
// in scan order, bottom row of the image first.
func Convert(img *raster.Image, c Canvas) (*Memory, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s := NewScale(img.Width, img.Height, c)
	w, h := s.Cells(img.Width, img.Height)
	mapper := NewMapper(c, w)
	bits := c.ChannelBits()

	m := NewMemory(c.Depth, c.Words())
	for vy := 0; vy < h; vy++ {
		for vx := 0; vx < w; vx++ {
			address, ok := mapper.Address(vx, vy)
			if !ok {
				continue
			}
			if err := m.Set(address, Pack(average(img, vx*s.X, vy*s.Y, s), bits)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
