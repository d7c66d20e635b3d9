package cpu

// opSYSCALL and opBREAK never touch architectural state: they exist purely
// to report a trap to the caller, who decides what happens next.

func opSYSCALL(c *CPU, instruction uint32) *Fault {
	return ErrSystemCall
}

func opBREAK(c *CPU, instruction uint32) *Fault {
	return ErrBreak
}

// copSlot builds a COPz handler bound to coprocessor slot. A missing slot,
// or a slot with no Op installed, faults as CoprocessorUnusable before any
// state is touched.
func copSlot(slot uint32) opHandler {
	return func(c *CPU, instruction uint32) *Fault {
		cp := c.coproc[slot]
		if cp == nil || cp.Op == nil {
			return ErrCoprocessorUnusable
		}
		if fault := cp.Op(c, instruction); fault != nil {
			return fault
		}
		c.advancePC()
		return nil
	}
}

// lwcSlot loads a word from memory and hands it to the coprocessor's Load
// callback to place into its own register file.
func lwcSlot(slot uint32) opHandler {
	return func(c *CPU, instruction uint32) *Fault {
		cp := c.coproc[slot]
		if cp == nil || cp.Load == nil {
			return ErrCoprocessorUnusable
		}
		i := decodeIType(instruction)
		addr := effectiveAddress(c, i)
		if addr%4 != 0 {
			return ErrInvalidAlignment
		}
		word, fault := c.readWord(addr)
		if fault != nil {
			return fault
		}
		if fault := cp.Load(c, i.rt, &word); fault != nil {
			return fault
		}
		c.advancePC()
		return nil
	}
}

// swcSlot asks the coprocessor's Store callback for a word from its own
// register file and writes it to memory.
func swcSlot(slot uint32) opHandler {
	return func(c *CPU, instruction uint32) *Fault {
		cp := c.coproc[slot]
		if cp == nil || cp.Store == nil {
			return ErrCoprocessorUnusable
		}
		i := decodeIType(instruction)
		addr := effectiveAddress(c, i)
		if addr%4 != 0 {
			return ErrInvalidAlignment
		}
		var word uint32
		if fault := cp.Store(c, i.rt, &word); fault != nil {
			return fault
		}
		if fault := c.writeWord(addr, word); fault != nil {
			return fault
		}
		c.advancePC()
		return nil
	}
}

var (
	opCOP0 = copSlot(0)
	opCOP1 = copSlot(1)
	opCOP2 = copSlot(2)
	opCOP3 = copSlot(3)

	opLWC0 = lwcSlot(0)
	opLWC1 = lwcSlot(1)
	opLWC2 = lwcSlot(2)
	opLWC3 = lwcSlot(3)

	opSWC0 = swcSlot(0)
	opSWC1 = swcSlot(1)
	opSWC2 = swcSlot(2)
	opSWC3 = swcSlot(3)
)
