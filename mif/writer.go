package mif

import (
	"bufio"
	"fmt"
	"io"
)

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) encode(m *Memory) error {
	fmt.Fprintf(e.w, "WIDTH=%d;\n", m.Width)
	fmt.Fprintf(e.w, "DEPTH=%d;\n\n", m.Depth)
	fmt.Fprint(e.w, "ADDRESS_RADIX=UNS;\nDATA_RADIX=HEX;\n\n")
	fmt.Fprint(e.w, "CONTENT BEGIN\n")

	for _, w := range m.words {
		if _, err := fmt.Fprintf(e.w, "%d : %X;\n", w.Address, w.Code); err != nil {
			return err
		}
	}

	fmt.Fprint(e.w, "END;\n")

	// Any earlier write error is sticky and surfaces here
	return e.w.Flush()
}

// Encode writes the memory image m to w in MIF format. Words are written in
// the order they were set.
func Encode(w io.Writer, m *Memory) error {
	e := encoder{w: bufio.NewWriter(w)}
	return e.encode(m)
}
