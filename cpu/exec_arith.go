package cpu

import "math"

// addOverflows reports whether the signed 32-bit sum x+y overflows,
// mirroring the original C simulator's INT_MAX/INT_MIN bounds check.
func addOverflows(x, y int32) bool {
	return (y > 0 && x > math.MaxInt32-y) || (y < 0 && x < math.MinInt32-y)
}

func opADD(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	x := int32(c.readReg(r.rs))
	y := int32(c.readReg(r.rt))
	if addOverflows(x, y) {
		return ErrArithmeticOverflow
	}
	c.writeReg(r.rd, uint32(x+y))
	c.advancePC()
	return nil
}

func opADDU(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, c.readReg(r.rs)+c.readReg(r.rt))
	c.advancePC()
	return nil
}

func opSUB(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	x := int32(c.readReg(r.rs))
	y := -int32(c.readReg(r.rt))
	if addOverflows(x, y) {
		return ErrArithmeticOverflow
	}
	c.writeReg(r.rd, uint32(x+y))
	c.advancePC()
	return nil
}

func opSUBU(c *CPU, instruction uint32) *Fault {
	r := decodeRType(instruction)
	c.writeReg(r.rd, c.readReg(r.rs)-c.readReg(r.rt))
	c.advancePC()
	return nil
}

func opADDI(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	x := int32(c.readReg(i.rs))
	y := int32(i.imm)
	if addOverflows(x, y) {
		return ErrArithmeticOverflow
	}
	c.writeReg(i.rt, uint32(x+y))
	c.advancePC()
	return nil
}

func opADDIU(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	c.writeReg(i.rt, c.readReg(i.rs)+i.imm)
	c.advancePC()
	return nil
}
