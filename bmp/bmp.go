/*
Package bmp implements a decoder for 24-bit uncompressed Windows bitmaps that
produces a raster.Image.

The file starts with a 14 byte file header followed by at least a 40 byte
info header. The image width and height are stored as little-endian 32-bit
integers at offsets 18 and 22. Pixels are stored as blue, green, red triples
with each row padded to a multiple of four bytes, normally with the bottom row
first.
*/
package bmp

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	headerLen     = fileHeaderLen + infoHeaderLen
	bitsPerPixel  = 24
	bytesPerPixel = bitsPerPixel >> 3
)
