package cpu

func opSLL(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, c.readReg(r.rt)<<r.shamt)
	c.advancePC()
	return nil
}

func opSRL(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, c.readReg(r.rt)>>r.shamt)
	c.advancePC()
	return nil
}

func opSRA(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, uint32(int32(c.readReg(r.rt))>>r.shamt))
	c.advancePC()
	return nil
}

// The variable-shift forms mask the shift register to its low 5 bits
// explicitly (spec.md §9: the source reads the full register, MIPS-I masks
// it, and this implementation follows the corrected MIPS-I rule).

func opSLLV(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	amt := c.readReg(r.rs) & 0x1F
	c.writeReg(r.rd, c.readReg(r.rt)<<amt)
	c.advancePC()
	return nil
}

func opSRLV(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	amt := c.readReg(r.rs) & 0x1F
	c.writeReg(r.rd, c.readReg(r.rt)>>amt)
	c.advancePC()
	return nil
}

func opSRAV(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	amt := c.readReg(r.rs) & 0x1F
	c.writeReg(r.rd, uint32(int32(c.readReg(r.rt))>>amt))
	c.advancePC()
	return nil
}
