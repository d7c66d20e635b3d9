// Package mem provides a reference implementation of the cpu.Memory
// collaborator: a flat, byte-addressable span of simulated big-endian
// storage whose size is set at creation (LoadBytes grows it to fit an
// image). It exists so cpu.CPU can be exercised standalone —
// production embedders are expected to supply their own Memory, backed by
// whatever address map their system needs.
package mem

import "mipsi/cpu"

// Device is the structural contract a mem.Flat (or any other collaborator
// in this package) satisfies; it is defined here, rather than imported from
// package cpu, purely as documentation of the boundary this package sits
// behind.
type Device interface {
	Read(addr uint32, length int, dest []byte) error
	Write(addr uint32, length int, src []byte) error
}

var _ Device = (*Flat)(nil)
var _ cpu.Memory = (*Flat)(nil)
