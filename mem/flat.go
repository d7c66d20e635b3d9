package mem

import (
	"os"

	"mipsi/cpu"
)

// Flat is a span of simulated memory addressed from zero, sized at creation
// and grown only by LoadBytes when an image does not fit. It
// keeps bytes in the same address order the CPU's boundary-crossing helpers
// expect, so Read/Write are plain slice copies with bounds checking.
type Flat struct {
	bytes []byte
}

// NewFlat allocates a Flat of the given size, zero-filled.
func NewFlat(size uint32) *Flat {
	return &Flat{bytes: make([]byte, size)}
}

func (f *Flat) span(addr uint32, length int) (int, int, bool) {
	start := int(addr)
	end := start + length
	if length < 0 || start < 0 || end > len(f.bytes) || end < start {
		return 0, 0, false
	}
	return start, end, true
}

// Read copies length bytes starting at addr into dest. An out-of-range span
// reports InvalidAddress.
func (f *Flat) Read(addr uint32, length int, dest []byte) error {
	start, end, ok := f.span(addr, length)
	if !ok {
		return cpu.ErrInvalidAddress
	}
	copy(dest[:length], f.bytes[start:end])
	return nil
}

// Write copies length bytes from src into the span starting at addr. An
// out-of-range span reports InvalidAddress.
func (f *Flat) Write(addr uint32, length int, src []byte) error {
	start, end, ok := f.span(addr, length)
	if !ok {
		return cpu.ErrInvalidAddress
	}
	copy(f.bytes[start:end], src[:length])
	return nil
}

// Size returns the number of addressable bytes.
func (f *Flat) Size() uint32 {
	return uint32(len(f.bytes))
}

// LoadBytes writes image starting at address 0, growing the backing store
// if image is larger than the current size.
func (f *Flat) LoadBytes(image []byte) *cpu.Fault {
	if uint32(len(image)) > f.Size() {
		grown := make([]byte, len(image))
		copy(grown, f.bytes)
		f.bytes = grown
	}
	if err := f.Write(0, len(image), image); err != nil {
		return cpu.ErrFileWriteError
	}
	return nil
}

// LoadFile reads the named file whole and loads it at address 0, the Go
// equivalent of the original C simulator's mips_load_file: read the entire
// file into a buffer, then a single mips_mem_write at address zero.
func LoadFile(f *Flat, path string) *cpu.Fault {
	data, err := os.ReadFile(path)
	if err != nil {
		return cpu.ErrFileReadError
	}
	return f.LoadBytes(data)
}
