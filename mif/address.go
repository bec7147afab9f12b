package mif

// Flip mirrors row vertically within a canvas of rows rows.
func Flip(row, rows int) int {
	return rows - 1 - row
}

// Mapper turns resampled grid coordinates into canvas addresses.
//
// Rows are always flipped so that row 0 of the image, the bottom one, ends up
// at the highest canvas row. When the resampled image is narrower than the
// canvas it is centered horizontally, otherwise any columns past the right
// edge are clipped. There is no vertical centering; an image shorter than the
// canvas leaves the rows at the top unpopulated.
type Mapper struct {
	cols   int
	rows   int
	offset int
	center bool
}

// NewMapper returns a Mapper for a resampled image that is width cells wide.
func NewMapper(c Canvas, width int) Mapper {
	m := Mapper{
		cols: c.Cols,
		rows: c.Rows,
	}
	if c.Cols > width {
		m.center = true
		m.offset = (c.Cols - width) / 2
	}
	return m
}

// Address returns the canvas address for the cell at vx, vy and whether the
// cell lands on the canvas at all.
func (m Mapper) Address(vx, vy int) (int, bool) {
	if vx < 0 || vy < 0 || vy >= m.rows {
		return 0, false
	}

	col := vx
	if m.center {
		col += m.offset
	} else if vx >= m.cols {
		return 0, false
	}

	return Flip(vy, m.rows)*m.cols + col, true
}
