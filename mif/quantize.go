package mif

import "github.com/bodgit/bmp2mif/raster"

// Quantize reduces the 8-bit channel value v to a bits wide code. The range
// is cut into 1<<bits equal bands at floor(255*k/(1<<bits)) for k = 1 up to
// (1<<bits)-1 and the code is the number of thresholds v is greater than, so
// for 2 bits the thresholds are 63, 127 and 191.
func Quantize(v uint8, bits int) uint16 {
	return uint16(v) >> uint(channelBits-bits)
}

// Pack quantizes each channel of c and packs them into a single word with red
// in the most significant bits and blue in the least.
func Pack(c raster.RGB, bits int) uint16 {
	return Quantize(c.R, bits)<<uint(bits<<1) | Quantize(c.G, bits)<<uint(bits) | Quantize(c.B, bits)
}
