package cpu

func opSLT(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	var result uint32
	if int32(c.readReg(r.rs)) < int32(c.readReg(r.rt)) {
		result = 1
	}
	c.writeReg(r.rd, result)
	c.advancePC()
	return nil
}

func opSLTU(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	var result uint32
	if c.readReg(r.rs) < c.readReg(r.rt) {
		result = 1
	}
	c.writeReg(r.rd, result)
	c.advancePC()
	return nil
}

func opSLTI(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	var result uint32
	if int32(c.readReg(i.rs)) < int32(i.imm) {
		result = 1
	}
	c.writeReg(i.rt, result)
	c.advancePC()
	return nil
}

func opSLTIU(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	var result uint32
	if c.readReg(i.rs) < i.imm {
		result = 1
	}
	c.writeReg(i.rt, result)
	c.advancePC()
	return nil
}
