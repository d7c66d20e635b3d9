package cpu

import "encoding/binary"

// readWord/writeWord/readHalf/writeHalf/readByte/writeByte cross the
// memory boundary the way spec.md §4.1 describes: the collaborator hands
// back (or accepts) bytes in address order, and reverseWord/reverseHalf
// convert between that big-endian span and the host-order value the CPU
// operates on — mirroring the original C simulator's memcpy-then-
// reverse_word idiom.

func (c *CPU) readWord(addr uint32) (uint32, *Fault) {
	var buf [4]byte
	if err := c.mem.Read(addr, 4, buf[:]); err != nil {
		return 0, asFault(err)
	}
	return reverseWord(binary.LittleEndian.Uint32(buf[:])), nil
}

func (c *CPU) writeWord(addr uint32, value uint32) *Fault {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], reverseWord(value))
	if err := c.mem.Write(addr, 4, buf[:]); err != nil {
		return asFault(err)
	}
	return nil
}

func (c *CPU) readHalf(addr uint32) (uint16, *Fault) {
	var buf [2]byte
	if err := c.mem.Read(addr, 2, buf[:]); err != nil {
		return 0, asFault(err)
	}
	return reverseHalf(binary.LittleEndian.Uint16(buf[:])), nil
}

func (c *CPU) writeHalf(addr uint32, value uint16) *Fault {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], reverseHalf(value))
	if err := c.mem.Write(addr, 2, buf[:]); err != nil {
		return asFault(err)
	}
	return nil
}

func (c *CPU) readByte(addr uint32) (uint8, *Fault) {
	var buf [1]byte
	if err := c.mem.Read(addr, 1, buf[:]); err != nil {
		return 0, asFault(err)
	}
	return buf[0], nil
}

func (c *CPU) writeByte(addr uint32, value uint8) *Fault {
	buf := [1]byte{value}
	if err := c.mem.Write(addr, 1, buf[:]); err != nil {
		return asFault(err)
	}
	return nil
}

func effectiveAddress(c *CPU, i itype) uint32 {
	return c.readReg(i.rs) + i.imm
}

func opLB(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i)
	b, fault := c.readByte(addr)
	if fault != nil {
		return fault
	}
	c.writeReg(i.rt, signExtend8(b))
	c.advancePC()
	return nil
}

func opLBU(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i)
	b, fault := c.readByte(addr)
	if fault != nil {
		return fault
	}
	c.writeReg(i.rt, uint32(b))
	c.advancePC()
	return nil
}

func opLH(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i)
	if addr%2 != 0 {
		return ErrInvalidAlignment
	}
	h, fault := c.readHalf(addr)
	if fault != nil {
		return fault
	}
	c.writeReg(i.rt, signExtend16(h))
	c.advancePC()
	return nil
}

func opLHU(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i)
	if addr%2 != 0 {
		return ErrInvalidAlignment
	}
	h, fault := c.readHalf(addr)
	if fault != nil {
		return fault
	}
	c.writeReg(i.rt, uint32(h))
	c.advancePC()
	return nil
}

func opLW(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i)
	if addr%4 != 0 {
		return ErrInvalidAlignment
	}
	w, fault := c.readWord(addr)
	if fault != nil {
		return fault
	}
	c.writeReg(i.rt, w)
	c.advancePC()
	return nil
}

func opSB(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i)
	if fault := c.writeByte(addr, uint8(c.readReg(i.rt))); fault != nil {
		return fault
	}
	c.advancePC()
	return nil
}

func opSH(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i)
	if addr%2 != 0 {
		return ErrInvalidAlignment
	}
	if fault := c.writeHalf(addr, uint16(c.readReg(i.rt))); fault != nil {
		return fault
	}
	c.advancePC()
	return nil
}

func opSW(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i)
	if addr%4 != 0 {
		return ErrInvalidAlignment
	}
	if fault := c.writeWord(addr, c.readReg(i.rt)); fault != nil {
		return fault
	}
	c.advancePC()
	return nil
}

// LWL/LWR/SWL/SWR implement the simplified 2-byte unaligned-access window
// spec.md §4.3/§9 describe: a genuine approximation of canonical MIPS
// LWL/LWR (which use 1-4 bytes selected by the address's low two bits),
// preserved here because the accompanying test suite is written against
// it.

func opLWL(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i)
	half, fault := c.readHalf(addr)
	if fault != nil {
		return fault
	}
	merged := uint32(half)<<16 | (c.readReg(i.rt) & 0x0000FFFF)
	c.writeReg(i.rt, merged)
	c.advancePC()
	return nil
}

func opLWR(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i) - 1
	half, fault := c.readHalf(addr)
	if fault != nil {
		return fault
	}
	merged := (c.readReg(i.rt) & 0xFFFF0000) | uint32(half)
	c.writeReg(i.rt, merged)
	c.advancePC()
	return nil
}

func opSWL(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i)
	half := uint16(c.readReg(i.rt) >> 16)
	if fault := c.writeHalf(addr, half); fault != nil {
		return fault
	}
	c.advancePC()
	return nil
}

func opSWR(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	addr := effectiveAddress(c, i) - 1
	half := uint16(c.readReg(i.rt) & 0xFFFF)
	if fault := c.writeHalf(addr, half); fault != nil {
		return fault
	}
	c.advancePC()
	return nil
}
