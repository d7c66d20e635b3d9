package cpu

func opMULT(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	x := int64(int32(c.readReg(r.rs)))
	y := int64(int32(c.readReg(r.rt)))
	product := uint64(x * y)
	c.hi = uint32(product >> 32)
	c.lo = uint32(product)
	c.advancePC()
	return nil
}

func opMULTU(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	product := uint64(c.readReg(r.rs)) * uint64(c.readReg(r.rt))
	c.hi = uint32(product >> 32)
	c.lo = uint32(product)
	c.advancePC()
	return nil
}

// DIV/DIVU never fault. Division by zero and signed INT_MIN/-1 write zero
// to both HI and LO instead — a documented deviation from some MIPS
// references, preserved from the original C simulator (spec.md §9).

func opDIV(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	x := int32(c.readReg(r.rs))
	y := int32(c.readReg(r.rt))
	if y == 0 || (x == -1<<31 && y == -1) {
		c.hi = 0
		c.lo = 0
	} else {
		c.lo = uint32(x / y)
		c.hi = uint32(x % y)
	}
	c.advancePC()
	return nil
}

func opDIVU(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	x := c.readReg(r.rs)
	y := c.readReg(r.rt)
	if y == 0 {
		c.hi = 0
		c.lo = 0
	} else {
		c.lo = x / y
		c.hi = x % y
	}
	c.advancePC()
	return nil
}

func opMFHI(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, c.hi)
	c.advancePC()
	return nil
}

func opMTHI(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.hi = c.readReg(r.rs)
	c.advancePC()
	return nil
}

func opMFLO(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, c.lo)
	c.advancePC()
	return nil
}

func opMTLO(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.lo = c.readReg(r.rs)
	c.advancePC()
	return nil
}
