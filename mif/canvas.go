package mif

import (
	"errors"
	"fmt"
)

var (
	// ErrDepth is returned for a color depth other than 3, 6 or 9.
	ErrDepth = errors.New("mif: color depth must be 3, 6, or 9")
	// ErrSize is returned for a canvas without any words.
	ErrSize = errors.New("mif: canvas columns and rows must be positive")
)

// Canvas is the target frame buffer.
type Canvas struct {
	Cols  int
	Rows  int
	Depth int
}

// DefaultCanvas returns a 640 by 480 canvas with 9-bit color.
func DefaultCanvas() Canvas {
	return Canvas{
		Cols:  DefaultCols,
		Rows:  DefaultRows,
		Depth: DefaultDepth,
	}
}

// Validate checks the canvas can be used for a conversion.
func (c Canvas) Validate() error {
	switch c.Depth {
	case 3, 6, 9:
	default:
		return ErrDepth
	}
	if c.Cols <= 0 || c.Rows <= 0 {
		return ErrSize
	}
	return nil
}

// ChannelBits returns the number of bits per color channel.
func (c Canvas) ChannelBits() int {
	return c.Depth / channels
}

// Words returns the number of addressable words.
func (c Canvas) Words() int {
	return c.Cols * c.Rows
}

func (c Canvas) String() string {
	return fmt.Sprintf("%d x %d x %d", c.Cols, c.Rows, c.Depth)
}
