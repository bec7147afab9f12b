package mif

import (
	"errors"
	"fmt"
)

var (
	errAddress   = errors.New("mif: address out of range")
	errDuplicate = errors.New("mif: address already populated")
	errCode      = errors.New("mif: code too wide")
)

// Word is a single populated address.
type Word struct {
	Address int
	Code    uint16
}

// Memory is a sparse memory image. It remembers the order words were set in
// so that encoding is reproducible.
type Memory struct {
	// Width is the size of each word in bits.
	Width int
	// Depth is the number of addressable words.
	Depth int

	words []Word
	index map[int]int
}

// NewMemory returns an empty memory image of depth words, each width bits.
func NewMemory(width, depth int) *Memory {
	return &Memory{
		Width: width,
		Depth: depth,
		index: make(map[int]int),
	}
}

// Set stores code at address. Each address can only be set once.
func (m *Memory) Set(address int, code uint16) error {
	if address < 0 || address >= m.Depth {
		return fmt.Errorf("%w: %d", errAddress, address)
	}
	if m.Width < 16 && code>>uint(m.Width) != 0 {
		return fmt.Errorf("%w: %X", errCode, code)
	}
	if _, ok := m.index[address]; ok {
		return fmt.Errorf("%w: %d", errDuplicate, address)
	}
	m.index[address] = len(m.words)
	m.words = append(m.words, Word{address, code})
	return nil
}

// Get returns the code stored at address, if any.
func (m *Memory) Get(address int) (uint16, bool) {
	i, ok := m.index[address]
	if !ok {
		return 0, false
	}
	return m.words[i].Code, true
}

// Len returns the number of populated addresses.
func (m *Memory) Len() int {
	return len(m.words)
}

// Words returns the populated addresses in the order they were set.
func (m *Memory) Words() []Word {
	return append(m.words[:0:0], m.words...)
}
