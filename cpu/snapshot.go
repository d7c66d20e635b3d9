package cpu

// Snapshot is an immutable copy of a CPU's architectural state, useful for
// diagnostics and tests that want to compare before/after without holding a
// live handle open.
type Snapshot struct {
	Registers [numRegisters]uint32
	HI        uint32
	LO        uint32
	PC        uint32
	PCNext    uint32
}

// Snapshot captures the CPU's current architectural state.
func (c *CPU) Snapshot() (Snapshot, *Fault) {
	if c == nil {
		return Snapshot{}, ErrInvalidHandle
	}
	return Snapshot{
		Registers: c.reg,
		HI:        c.hi,
		LO:        c.lo,
		PC:        c.pc,
		PCNext:    c.pcN,
	}, nil
}
