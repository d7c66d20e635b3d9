// Package cpu implements an interpreting simulator of the MIPS-I 32-bit
// instruction set: the register file, the fetch-decode-execute loop with
// branch-delay semantics, and the arithmetic/logical/shift/multiply-divide/
// memory/branch/jump/trap instruction handlers. The byte-addressable
// memory a CPU is wired to, and any coprocessor it delegates to, are
// supplied by the caller through the Memory and Coprocessor interfaces —
// this package owns none of them.
package cpu

import "io"

const numRegisters = 32
const numCoprocessors = 4
const numExceptionHandlers = 16

// Memory is the byte-addressable collaborator a CPU is bound to. It defines
// its own alignment granularity; a misaligned-span fault it returns from
// Read or Write propagates out of Step unchanged.
type Memory interface {
	Read(addr uint32, length int, dest []byte) error
	Write(addr uint32, length int, src []byte) error
}

// CopOp is a general coprocessor operation invoked by COPz.
type CopOp func(c *CPU, instruction uint32) *Fault

// CopLoadStore is invoked by LWCz (with the freshly loaded word in data) or
// SWCz (to fill data with the word to store).
type CopLoadStore func(c *CPU, reg uint32, data *uint32) *Fault

// Coprocessor is the triple of optional callables installed for one of the
// four COPz/LWCz/SWCz slots.
type Coprocessor struct {
	Op    CopOp
	Load  CopLoadStore
	Store CopLoadStore
}

// DebugHandler receives one formatted diagnostic line per emission. It
// takes precedence over the byte sink when both are installed.
type DebugHandler func(c *CPU, message []byte)

// CPU is an opaque handle to simulator state: the register file, HI/LO, the
// two-PC branch-delay pair, and the caller-installed collaborators. The
// zero value is not usable; construct one with Create.
type CPU struct {
	reg [numRegisters]uint32
	hi  uint32
	lo  uint32
	pc  uint32
	pcN uint32

	mem Memory

	debugLevel   uint
	debugSink    io.Writer
	debugHandler DebugHandler

	coproc [numCoprocessors]*Coprocessor

	exceptionHandler [numExceptionHandlers]uint32
}

// Create allocates and initialises a new CPU bound to mem. All registers
// and HI/LO start at zero, pc=0 and the delay-slot successor pcN=4. mem is
// not owned by the returned CPU; Free must not free it.
func Create(mem Memory) (*CPU, *Fault) {
	if mem == nil {
		return nil, ErrInvalidArgument
	}
	c := &CPU{mem: mem}
	c.resetState()
	return c, nil
}

func (c *CPU) resetState() {
	for i := range c.reg {
		c.reg[i] = 0
	}
	c.hi = 0
	c.lo = 0
	c.pc = 0
	c.pcN = 4
}

// Reset zeroes all architectural state as if the CPU had just been
// created. mem, debugLevel, debugSink and the debug handler are preserved.
func (c *CPU) Reset() *Fault {
	if c == nil {
		return ErrInvalidHandle
	}
	c.resetState()
	return nil
}

// GetRegister returns the current value of general-purpose register i.
func (c *CPU) GetRegister(i uint32) (uint32, *Fault) {
	if c == nil {
		return 0, ErrInvalidHandle
	}
	if i >= numRegisters {
		return 0, ErrInvalidArgument
	}
	return c.reg[i], nil
}

// SetRegister writes value into general-purpose register i. Writes
// addressed to register 0 are silently discarded, preserving the
// hard-wired-zero invariant.
func (c *CPU) SetRegister(i uint32, value uint32) *Fault {
	if c == nil {
		return ErrInvalidHandle
	}
	if i >= numRegisters {
		return ErrInvalidArgument
	}
	if i != 0 {
		c.reg[i] = value
	}
	return nil
}

// GetPC returns the address of the next instruction to execute.
func (c *CPU) GetPC() (uint32, *Fault) {
	if c == nil {
		return 0, ErrInvalidHandle
	}
	return c.pc, nil
}

// SetPC sets the program counter, implicitly establishing pcN = pc+4. It
// does not itself cause any execution.
func (c *CPU) SetPC(pc uint32) *Fault {
	if c == nil {
		return ErrInvalidHandle
	}
	c.pc = pc
	c.pcN = pc + 4
	return nil
}

// GetHiLo returns the HI and LO registers.
func (c *CPU) GetHiLo() (hi, lo uint32, fault *Fault) {
	if c == nil {
		return 0, 0, ErrInvalidHandle
	}
	return c.hi, c.lo, nil
}

// SetDebugLevel configures tracing verbosity and the byte sink used when no
// handler is installed. Level 0 disables all tracing.
func (c *CPU) SetDebugLevel(level uint, sink io.Writer) *Fault {
	if c == nil {
		return ErrInvalidHandle
	}
	c.debugLevel = level
	c.debugSink = sink
	return nil
}

// SetDebugHandler installs a callback that receives every diagnostic line
// instead of the byte sink.
func (c *CPU) SetDebugHandler(handler DebugHandler) *Fault {
	if c == nil {
		return ErrInvalidHandle
	}
	c.debugHandler = handler
	return nil
}

// SetCoprocessor installs the callable triple for coprocessor slot i.
func (c *CPU) SetCoprocessor(i uint32, cp Coprocessor) *Fault {
	if c == nil {
		return ErrInvalidHandle
	}
	if i >= numCoprocessors {
		return ErrInvalidArgument
	}
	cpCopy := cp
	c.coproc[i] = &cpCopy
	return nil
}

// SetExceptionHandler records the target address associated with an
// exception kind. The table is retained for future extension; Step never
// consults it (spec: raising a fault never transfers control internally).
func (c *CPU) SetExceptionHandler(kind Kind, handler uint32) *Fault {
	if c == nil {
		return ErrInvalidHandle
	}
	if int(kind) >= numExceptionHandlers {
		return ErrInvalidArgument
	}
	c.exceptionHandler[kind] = handler
	return nil
}

// writeReg writes a general-purpose register from within an instruction
// handler, honoring the hard-wired-zero invariant. index must already be
// known to be in [0,32) — it comes straight from a 5-bit decoded field.
func (c *CPU) writeReg(index uint32, value uint32) {
	if index != 0 {
		c.reg[index] = value
	}
}

// readReg reads a general-purpose register from within an instruction
// handler. index must already be known to be in [0,32).
func (c *CPU) readReg(index uint32) uint32 {
	return c.reg[index]
}

// Free releases resources associated with c. It tolerates a nil handle. A
// non-nil handle must not be freed twice.
func Free(c *CPU) {
	if c == nil {
		return
	}
	c.mem = nil
	c.debugSink = nil
	c.debugHandler = nil
}
