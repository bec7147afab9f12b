package bmp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"io/ioutil"

	"github.com/bodgit/bmp2mif/raster"
	xbmp "golang.org/x/image/bmp"
)

var (
	// ErrTruncated is returned when there are fewer bytes than the
	// declared dimensions imply.
	ErrTruncated = errors.New("bmp: not enough image data")

	errNotBitmap   = errors.New("bmp: invalid signature")
	errUnsupported = errors.New("bmp: only 24-bit uncompressed bitmaps are supported")
	errDimensions  = errors.New("bmp: invalid dimensions")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Header is the validated subset of the bitmap file and info headers.
type Header struct {
	PixelStart uint32
	InfoSize   uint32
	Width      int
	Height     int
	TopDown    bool
}

// RowSize returns the number of bytes used by each row including padding.
func (h Header) RowSize() int {
	return (h.Width*bytesPerPixel + 3) &^ 3
}

// Fits reports whether a file of size bytes holds all of the pixel data
// implied by the dimensions.
func (h Header) Fits(size int) bool {
	avail := size - int(h.PixelStart)
	// Divide rather than multiply, huge dimensions would overflow
	return avail >= 0 && h.Width <= avail/bytesPerPixel && h.Height <= avail/h.RowSize()
}

// DecodeHeader reads and validates the headers at the start of r.
func DecodeHeader(r io.Reader) (Header, error) {
	var b [headerLen]byte
	if err := readFull(r, b[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return Header{}, ErrTruncated
		}
		return Header{}, err
	}

	if b[0] != 'B' || b[1] != 'M' {
		return Header{}, errNotBitmap
	}

	le := binary.LittleEndian
	h := Header{
		PixelStart: le.Uint32(b[10:14]),
		InfoSize:   le.Uint32(b[14:18]),
		Width:      int(int32(le.Uint32(b[18:22]))),
		Height:     int(int32(le.Uint32(b[22:26]))),
	}

	planes, bpp, compression := le.Uint16(b[26:28]), le.Uint16(b[28:30]), le.Uint32(b[30:34])
	if h.InfoSize < infoHeaderLen || h.PixelStart < headerLen || planes != 1 || bpp != bitsPerPixel || compression != 0 {
		return Header{}, errUnsupported
	}

	if h.Height < 0 {
		h.Height, h.TopDown = -h.Height, true
	}
	if h.Width <= 0 || h.Height <= 0 {
		return Header{}, errDimensions
	}

	return h, nil
}

// Decode reads a 24-bit bitmap from r and returns it with the bottom row
// first, regardless of the row order used in the file.
func Decode(r io.Reader) (*raster.Image, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	h, err := DecodeHeader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	if !h.Fits(len(b)) {
		return nil, ErrTruncated
	}

	m, err := xbmp.Decode(bytes.NewReader(b))
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, ErrTruncated
		}
		return nil, err
	}

	return raster.FromImage(m), nil
}
