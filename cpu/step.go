package cpu

import "encoding/binary"

// opHandler implements one instruction's semantics. Handlers validate all
// preconditions before writing any state, and are responsible for their
// own program-counter update on success (advancePC for straight-line
// instructions, setBranchDelay for a taken branch or jump). On fault they
// must not have written anything.
type opHandler func(c *CPU, instruction uint32) *Fault

type tableEntry struct {
	handler  opHandler
	mnemonic string
}

// advancePC implements the straight-line half of the two-PC branch-delay
// model: the instruction that was pcN becomes current, and the new
// successor is four bytes further on.
func (c *CPU) advancePC() {
	next := c.pcN
	c.pc = next
	c.pcN = next + 4
}

// setBranchDelay implements the taken-branch half: the delay-slot
// instruction (already pcN) executes next as usual, but the instruction
// after it will be target instead of pc+8.
func (c *CPU) setBranchDelay(target uint32) {
	next := c.pcN
	c.pc = next
	c.pcN = target
}

// linkAddress is the return address a JAL/JALR/branch-and-link instruction
// writes: the address of the instruction after the delay slot. It must be
// read before advancePC/setBranchDelay rotates pc/pcN.
func (c *CPU) linkAddress() uint32 {
	return c.pc + 8
}

// Step advances the processor by one instruction. If a fault occurs,
// architectural state (registers, HI/LO, pc, pcN) is left exactly as it
// was before the call.
func (c *CPU) Step() *Fault {
	if c == nil {
		return ErrInvalidHandle
	}
	if c.mem == nil {
		return ErrInvalidHandle
	}

	c.traceDetail(3, "pc=0x%08X", c.pc)

	if c.pc%4 != 0 {
		return c.traceFault(ErrInvalidAlignment)
	}

	var buf [4]byte
	if err := c.mem.Read(c.pc, 4, buf[:]); err != nil {
		return c.traceFault(asFault(err))
	}

	// The memory collaborator hands back the four bytes in address order;
	// reverseWord turns that big-endian span into a host-order instruction
	// word, the same boundary crossing the original C simulator performs
	// with reverse_word after its raw memcpy into a native uint32_t.
	word := reverseWord(binary.LittleEndian.Uint32(buf[:]))

	handler, mnemonic, fault := dispatch(word)
	if fault != nil {
		return c.traceFault(fault)
	}

	if c.debugLevel >= 2 {
		c.trace(2, "%s", mnemonic)
	}

	if fault := handler(c, word); fault != nil {
		return c.traceFault(fault)
	}
	return nil
}

func (c *CPU) traceFault(f *Fault) *Fault {
	c.trace(1, "exception: %s", FaultName(f))
	return f
}

// asFault adapts an arbitrary error returned by the memory collaborator
// into a *Fault so it can propagate through Step unchanged. Memory
// implementations in this module already return *Fault; a foreign
// implementation returning a plain error is wrapped as AccessViolation.
func asFault(err error) *Fault {
	if err == nil {
		return nil
	}
	if f, ok := err.(*Fault); ok {
		return f
	}
	return ErrAccessViolation
}
