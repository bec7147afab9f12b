package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tables := []struct {
		name          string
		width, height int
		pix           []RGB
		err           error
	}{
		{"exact", 2, 1, []RGB{{}, {}}, nil},
		{"empty", 0, 0, nil, nil},
		{"short", 2, 2, []RGB{{}, {}, {}}, errSize},
		{"long", 1, 1, []RGB{{}, {}}, errSize},
		{"negative", -1, -1, []RGB{{}}, errSize},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			img, err := New(table.width, table.height, table.pix)
			if table.err != nil {
				assert.Equal(t, table.err, err)
				assert.Nil(t, img)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, table.width, img.Width)
			assert.Equal(t, table.height, img.Height)
		})
	}
}

func TestFromImage(t *testing.T) {
	top := color.RGBA{0x10, 0x20, 0x30, 0xff}
	bottom := color.RGBA{0xa0, 0xb0, 0xc0, 0xff}

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		rgba.Set(x, 0, top)
		rgba.Set(x, 1, bottom)
		nrgba.Set(x, 0, top)
		nrgba.Set(x, 1, bottom)
	}

	for name, m := range map[string]image.Image{"rgba": rgba, "nrgba": nrgba} {
		t.Run(name, func(t *testing.T) {
			img := FromImage(m)
			assert.Equal(t, 2, img.Width)
			assert.Equal(t, 2, img.Height)
			assert.Equal(t, RGB{0xa0, 0xb0, 0xc0}, img.At(0, 0))
			assert.Equal(t, RGB{0xa0, 0xb0, 0xc0}, img.At(1, 0))
			assert.Equal(t, RGB{0x10, 0x20, 0x30}, img.At(0, 1))
			assert.Equal(t, RGB{0x10, 0x20, 0x30}, img.At(1, 1))
		})
	}
}

func TestFromImageSubImage(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 4, 4))
	m.Set(2, 2, color.RGBA{1, 2, 3, 0xff})
	m.Set(3, 1, color.RGBA{4, 5, 6, 0xff})

	img := FromImage(m.SubImage(image.Rect(2, 1, 4, 3)))
	require.Equal(t, 2, img.Width)
	require.Equal(t, 2, img.Height)
	assert.Equal(t, RGB{1, 2, 3}, img.At(0, 0))
	assert.Equal(t, RGB{4, 5, 6}, img.At(1, 1))
}
