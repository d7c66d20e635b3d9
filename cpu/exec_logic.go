package cpu

func opAND(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, c.readReg(r.rs)&c.readReg(r.rt))
	c.advancePC()
	return nil
}

func opOR(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, c.readReg(r.rs)|c.readReg(r.rt))
	c.advancePC()
	return nil
}

func opXOR(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, c.readReg(r.rs)^c.readReg(r.rt))
	c.advancePC()
	return nil
}

func opNOR(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, ^(c.readReg(r.rs) | c.readReg(r.rt)))
	c.advancePC()
	return nil
}

// The immediate logical forms zero-extend their 16-bit immediate rather
// than sign-extending it, so they read immRaw instead of imm.

func opANDI(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	c.writeReg(i.rt, c.readReg(i.rs)&i.immRaw)
	c.advancePC()
	return nil
}

func opORI(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	c.writeReg(i.rt, c.readReg(i.rs)|i.immRaw)
	c.advancePC()
	return nil
}

func opXORI(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	c.writeReg(i.rt, c.readReg(i.rs)^i.immRaw)
	c.advancePC()
	return nil
}

func opLUI(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	c.writeReg(i.rt, i.immRaw<<16)
	c.advancePC()
	return nil
}
