package mif

// Scale is the box filter size used along each axis. Both axes always use the
// same stride so the image is never stretched.
type Scale struct {
	X int
	Y int
}

// NewScale returns the smallest integer stride that brings a width by height
// image down to, or near, the canvas. Images that already fit use a stride of
// one and are never enlarged.
func NewScale(width, height int, c Canvas) Scale {
	x, y := 1, 1
	if width > c.Cols {
		x = width / c.Cols
	}
	if height > c.Rows {
		y = height / c.Rows
	}

	if x > y {
		y = x
	} else {
		x = y
	}

	return Scale{x, y}
}

// Cells returns the size of the resampled grid. Only complete windows count,
// so any trailing pixels that don't fill a whole window are dropped.
func (s Scale) Cells(width, height int) (int, int) {
	return width / s.X, height / s.Y
}
