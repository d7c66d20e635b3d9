package cpu

// branchTarget computes pc_of_delay_slot + sign_extend(imm16)<<2. The
// left-shift is done on the unsigned, already sign-extended value, so
// wraparound addition still reproduces the signed byte offset.
func branchTarget(c *CPU, i itype) uint32 {
	return c.pcN + (i.imm << 2)
}

func opBEQ(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	if c.readReg(i.rs) == c.readReg(i.rt) {
		c.setBranchDelay(branchTarget(c, i))
	} else {
		c.advancePC()
	}
	return nil
}

func opBNE(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	if c.readReg(i.rs) != c.readReg(i.rt) {
		c.setBranchDelay(branchTarget(c, i))
	} else {
		c.advancePC()
	}
	return nil
}

func opBLEZ(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	if int32(c.readReg(i.rs)) <= 0 {
		c.setBranchDelay(branchTarget(c, i))
	} else {
		c.advancePC()
	}
	return nil
}

func opBGTZ(c *CPU, instruction uint32) *Fault {
	i := decodeIType(instruction)
	if int32(c.readReg(i.rs)) > 0 {
		c.setBranchDelay(branchTarget(c, i))
	} else {
		c.advancePC()
	}
	return nil
}

// regimmBranch builds one of the REGIMM zero-comparing branch handlers.
// The "AL" forms always write the link register, whether or not the
// branch is taken; the plain forms never do.
func regimmBranch(link bool, taken func(rs int32) bool) opHandler {
	return func(c *CPU, instruction uint32) *Fault {
		i := decodeIType(instruction)
		branch := taken(int32(c.readReg(i.rs)))
		if link {
			c.writeReg(31, c.linkAddress())
		}
		if branch {
			c.setBranchDelay(branchTarget(c, i))
		} else {
			c.advancePC()
		}
		return nil
	}
}

var (
	opBLTZ   = regimmBranch(false, func(rs int32) bool { return rs < 0 })
	opBGEZ   = regimmBranch(false, func(rs int32) bool { return rs >= 0 })
	opBLTZAL = regimmBranch(true, func(rs int32) bool { return rs < 0 })
	opBGEZAL = regimmBranch(true, func(rs int32) bool { return rs >= 0 })
)
