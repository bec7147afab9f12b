/*
Package bmp2mif converts 24-bit bitmaps into MIF memory initialization files
for FPGA frame buffers.
*/
package bmp2mif

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"

	"github.com/bodgit/bmp2mif/bmp"
	"github.com/bodgit/bmp2mif/mif"
)

var (
	// ErrConfiguration is returned for an unusable canvas.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrInput is returned when the input is missing, unreadable or not a
	// supported bitmap.
	ErrInput = errors.New("invalid input")
	// ErrOutput is returned when the output can't be written.
	ErrOutput = errors.New("unable to write output")
)

// OutputFilename returns the default output filename for in, which is in
// with the extension replaced by the canvas width, color depth and ".mif".
func OutputFilename(in string, canvas mif.Canvas) string {
	return fmt.Sprintf("%s_%d_%d.mif", strings.TrimSuffix(in, filepath.Ext(in)), canvas.Cols, canvas.Depth)
}

type Converter struct {
	canvas mif.Canvas
	db     *ConversionDB
	logger *log.Logger
}

// New returns a Converter for canvas. db is optional and caches previous
// conversions.
func New(canvas mif.Canvas, db *ConversionDB, logger *log.Logger) (*Converter, error) {
	if err := canvas.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return &Converter{
		canvas: canvas,
		db:     db,
		logger: logger,
	}, nil
}

// Canvas returns the canvas used for every conversion.
func (c *Converter) Canvas() mif.Canvas {
	return c.canvas
}

// Convert decodes the bitmap in b and returns the encoded MIF file along
// with the number of populated words.
func (c *Converter) Convert(b []byte) ([]byte, int, error) {
	img, err := bmp.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInput, err)
	}

	m, err := mif.Convert(img, c.canvas)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	out := new(bytes.Buffer)
	if err := mif.Encode(out, m); err != nil {
		return nil, 0, err
	}

	return out.Bytes(), m.Len(), nil
}

// ConvertFile converts the bitmap in and writes the result to out, or to
// OutputFilename(in) if out is empty. It returns the name of the file
// written. Nothing is written if the conversion fails.
func (c *Converter) ConvertFile(in, out string) (string, error) {
	if out == "" {
		out = OutputFilename(in, c.canvas)
	}

	b, err := ioutil.ReadFile(in)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInput, err)
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	var data []byte
	if c.db != nil {
		if data, err = c.db.FindMIF(sha, c.canvas); err != nil {
			return "", err
		}
		if data != nil {
			c.logger.Printf("Using cached conversion of \"%s\", with SHA1 \"%s\"\n", in, sha)
		}
	}

	if data == nil {
		var words int
		if data, words, err = c.Convert(b); err != nil {
			return "", fmt.Errorf("%q: %w", in, err)
		}
		c.logger.Printf("Populated %d of %d words\n", words, c.canvas.Words())

		if c.db != nil {
			if _, err := c.db.AddMIF(sha, c.canvas, words, data); err != nil {
				return "", err
			}
		}
	}

	if err := writeFile(out, data); err != nil {
		return "", err
	}

	c.logger.Printf("Read bitmap file %s, wrote (%s) MIF to file %s\n", in, c.canvas, out)

	return out, nil
}
