package bmp2mif

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/bodgit/bmp2mif/mif"
)

// PreviewFilename returns the default PNG filename for the MIF file in.
func PreviewFilename(in string) string {
	return strings.TrimSuffix(in, ".mif") + ".png"
}

// Preview renders the MIF file in onto a canvas cols words wide and writes
// it to out as a PNG, or to PreviewFilename(in) if out is empty.
func Preview(in, out string, cols int, logger *log.Logger) (string, error) {
	if out == "" {
		out = PreviewFilename(in)
	}

	f, err := os.Open(in)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInput, err)
	}
	defer f.Close()

	m, err := mif.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInput, in, err)
	}

	img, err := m.Image(cols)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	b := new(bytes.Buffer)
	if err := png.Encode(b, img); err != nil {
		return "", err
	}

	if err := writeFile(out, b.Bytes()); err != nil {
		return "", err
	}

	logger.Printf("Read MIF file %s, wrote (%d x %d) PNG to file %s\n", in, img.Bounds().Dx(), img.Bounds().Dy(), out)

	return out, nil
}
