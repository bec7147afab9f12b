/*
Package mif converts a true color image into a MIF memory initialization file
for a fixed resolution frame buffer.

The image is reduced by an integer box filter so that it fits the canvas,
each channel is cut down to 1, 2 or 3 bits and the three channel codes are
packed into a single 3, 6 or 9 bit word with red in the most significant bits.
Words are addressed row by row from the top left of the canvas. The file is
written as:

	WIDTH=9;
	DEPTH=307200;

	ADDRESS_RADIX=UNS;
	DATA_RADIX=HEX;

	CONTENT BEGIN
	0 : 1FF;
	...
	END;

where WIDTH is the word size in bits and DEPTH the number of words. Addresses
not covered by the image are left out.
*/
package mif

const (
	// DefaultCols is the default canvas width.
	DefaultCols = 640
	// DefaultRows is the default canvas height.
	DefaultRows = 480
	// DefaultDepth is the default color depth in bits per word.
	DefaultDepth = 9

	channels    = 3
	channelBits = 8
)
