package bmp

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/bmp2mif/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xbmp "golang.org/x/image/bmp"
)

// encode returns a 24-bit bitmap; every pixel is opaque so the encoder
// doesn't switch to 32-bit.
func encode(t *testing.T, width, height int, f func(x, y int) color.RGBA) []byte {
	t.Helper()
	m := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetRGBA(x, y, f(x, y))
		}
	}
	b := new(bytes.Buffer)
	require.NoError(t, xbmp.Encode(b, m))
	return b.Bytes()
}

func gradient(x, y int) color.RGBA {
	return color.RGBA{uint8(x * 10), uint8(y * 10), uint8(x + y), 0xff}
}

func TestDecodeHeader(t *testing.T) {
	b := encode(t, 3, 2, gradient)

	h, err := DecodeHeader(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 3, h.Width)
	assert.Equal(t, 2, h.Height)
	assert.False(t, h.TopDown)
	assert.Equal(t, uint32(headerLen), h.PixelStart)
	assert.Equal(t, 12, h.RowSize())
	assert.True(t, h.Fits(len(b)))
	assert.False(t, h.Fits(len(b)-1))
	assert.False(t, h.Fits(headerLen-1))
}

func TestDecodeHeaderTopDown(t *testing.T) {
	b := encode(t, 1, 2, gradient)
	binary.LittleEndian.PutUint32(b[22:26], uint32(0xfffffffe)) // -2

	h, err := DecodeHeader(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 2, h.Height)
	assert.True(t, h.TopDown)
}

func TestDecodeHeaderErrors(t *testing.T) {
	valid := encode(t, 2, 2, gradient)

	tables := []struct {
		name   string
		mangle func([]byte) []byte
		err    error
	}{
		{
			name:   "empty",
			mangle: func(b []byte) []byte { return nil },
			err:    ErrTruncated,
		},
		{
			name:   "short header",
			mangle: func(b []byte) []byte { return b[:headerLen-1] },
			err:    ErrTruncated,
		},
		{
			name: "signature",
			mangle: func(b []byte) []byte {
				b[0] = 'X'
				return b
			},
			err: errNotBitmap,
		},
		{
			name: "bit count",
			mangle: func(b []byte) []byte {
				binary.LittleEndian.PutUint16(b[28:30], 8)
				return b
			},
			err: errUnsupported,
		},
		{
			name: "compression",
			mangle: func(b []byte) []byte {
				binary.LittleEndian.PutUint32(b[30:34], 1)
				return b
			},
			err: errUnsupported,
		},
		{
			name: "zero width",
			mangle: func(b []byte) []byte {
				binary.LittleEndian.PutUint32(b[18:22], 0)
				return b
			},
			err: errDimensions,
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			b := append([]byte(nil), valid...)
			_, err := DecodeHeader(bytes.NewReader(table.mangle(b)))
			assert.Equal(t, table.err, err)
		})
	}
}

func TestDecode(t *testing.T) {
	// Odd width forces row padding
	for _, width := range []int{1, 2, 3, 4, 5} {
		b := encode(t, width, 3, gradient)

		m, err := Decode(bytes.NewReader(b))
		require.NoError(t, err)
		require.Equal(t, width, m.Width)
		require.Equal(t, 3, m.Height)

		for y := 0; y < 3; y++ {
			for x := 0; x < width; x++ {
				// Row 0 is the bottom row of the picture
				c := gradient(x, 2-y)
				assert.Equal(t, raster.RGB{R: c.R, G: c.G, B: c.B}, m.At(x, y), "width %d at %d,%d", width, x, y)
			}
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	valid := encode(t, 4, 4, gradient)

	tables := []struct {
		name          string
		size          int
		width, height uint32
	}{
		{"last byte", len(valid) - 1, 4, 4},
		{"no pixels", headerLen, 4, 4},
		{"huge dimensions", len(valid), 0x7fffffff, 0x7fffffff},
		{"huge height", len(valid), 4, 0x7fffffff},
		{"huge top-down", len(valid), 0x7fffffff, 0x80000001},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			b := append([]byte(nil), valid[:table.size]...)
			binary.LittleEndian.PutUint32(b[18:22], table.width)
			binary.LittleEndian.PutUint32(b[22:26], table.height)

			_, err := DecodeHeader(bytes.NewReader(b))
			require.NoError(t, err)

			_, err = Decode(bytes.NewReader(b))
			assert.Equal(t, ErrTruncated, err)
		})
	}
}

func TestDecodeUnsupported(t *testing.T) {
	// A translucent image is written with 32 bits per pixel
	b := encode(t, 2, 2, func(x, y int) color.RGBA {
		return color.RGBA{0x10, 0x10, 0x10, 0x10}
	})

	_, err := Decode(bytes.NewReader(b))
	assert.Equal(t, errUnsupported, err)
}
