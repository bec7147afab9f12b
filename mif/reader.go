package mif

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	errSyntax   = errors.New("mif: syntax error")
	errRadix    = errors.New("mif: only unsigned addresses and hexadecimal data are supported")
	errNotEnded = errors.New("mif: missing END")
)

// Largest number of words accepted from a file, 64 Mi words
const maxDepth = 1 << 26

type decoder struct {
	s    *bufio.Scanner
	line int

	width, depth int
	m            *Memory
}

// Return the next non-blank line with any comment removed
func (d *decoder) next() (string, bool) {
	for d.s.Scan() {
		d.line++
		line := d.s.Text()
		if i := strings.Index(line, "--"); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, true
		}
	}
	return "", false
}

func (d *decoder) syntaxError(line string) error {
	return fmt.Errorf("%w: line %d: %q", errSyntax, d.line, line)
}

func (d *decoder) readHeader() error {
	for {
		line, ok := d.next()
		if !ok {
			return errNotEnded
		}
		if strings.EqualFold(line, "CONTENT BEGIN") {
			break
		}

		kv := strings.SplitN(strings.TrimSuffix(line, ";"), "=", 2)
		if len(kv) != 2 || !strings.HasSuffix(line, ";") {
			return d.syntaxError(line)
		}
		key, value := strings.ToUpper(strings.TrimSpace(kv[0])), strings.ToUpper(strings.TrimSpace(kv[1]))

		var err error
		switch key {
		case "WIDTH":
			d.width, err = strconv.Atoi(value)
		case "DEPTH":
			d.depth, err = strconv.Atoi(value)
		case "ADDRESS_RADIX":
			if value != "UNS" {
				return errRadix
			}
		case "DATA_RADIX":
			if value != "HEX" {
				return errRadix
			}
		default:
			return d.syntaxError(line)
		}
		if err != nil {
			return d.syntaxError(line)
		}
	}

	if d.width <= 0 || d.width > 16 || d.depth <= 0 || d.depth > maxDepth {
		return fmt.Errorf("%w: width %d depth %d", errSyntax, d.width, d.depth)
	}
	return nil
}

func (d *decoder) readContent() error {
	d.m = NewMemory(d.width, d.depth)
	for {
		line, ok := d.next()
		if !ok {
			return errNotEnded
		}
		if strings.EqualFold(line, "END;") {
			return nil
		}

		parts := strings.SplitN(strings.TrimSuffix(line, ";"), ":", 2)
		if len(parts) != 2 || !strings.HasSuffix(line, ";") {
			return d.syntaxError(line)
		}

		address, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return d.syntaxError(line)
		}
		code, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 16, 16)
		if err != nil {
			return d.syntaxError(line)
		}
		if err := d.m.Set(address, uint16(code)); err != nil {
			return err
		}
	}
}

func (d *decoder) decode(r io.Reader) error {
	d.s = bufio.NewScanner(r)

	if err := d.readHeader(); err != nil {
		return err
	}
	if err := d.readContent(); err != nil {
		return err
	}
	return d.s.Err()
}

// Decode reads a MIF file from r. Only unsigned decimal addresses and
// hexadecimal data are understood, which is what Encode writes.
func Decode(r io.Reader) (*Memory, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		if serr := d.s.Err(); serr != nil {
			return nil, serr
		}
		return nil, err
	}
	return d.m, nil
}
