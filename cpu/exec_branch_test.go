package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBeqTakenBranchesAfterDelaySlot(t *testing.T) {
	c, mem := newTestCPU(t, 32)
	require.Nil(t, c.SetRegister(1, 5))
	require.Nil(t, c.SetRegister(2, 5))
	mem.putInstruction(0, encodeI(0x04, 1, 2, 2))  // BEQ r1,r2,+2 (target=pcN+8=12)
	mem.putInstruction(4, encodeR(0, 0, 0, 0, 0, 0))
	mem.putInstruction(8, encodeR(0, 0, 0, 0, 0, 0))

	require.Nil(t, c.Step()) // executes BEQ, delay slot instruction is next
	pc, _ := c.GetPC()
	require.EqualValues(t, 4, pc)

	require.Nil(t, c.Step()) // delay slot executes
	pc, _ = c.GetPC()
	require.EqualValues(t, 12, pc)
}

func TestBneNotTakenAdvancesNormally(t *testing.T) {
	c, mem := newTestCPU(t, 16)
	require.Nil(t, c.SetRegister(1, 5))
	require.Nil(t, c.SetRegister(2, 5))
	mem.putInstruction(0, encodeI(0x05, 1, 2, 100)) // BNE not taken
	require.Nil(t, c.Step())
	pc, _ := c.GetPC()
	require.EqualValues(t, 4, pc)
}

func TestBgezalAlwaysWritesLinkRegardlessOfOutcome(t *testing.T) {
	c, mem := newTestCPU(t, 16)
	require.Nil(t, c.SetRegister(1, asU32(-1))) // branch not taken (rs<0)
	mem.putInstruction(0, encodeI(0x01, 1, 0x11, 4))    // BGEZAL r1,+4
	require.Nil(t, c.Step())
	r31, _ := c.GetRegister(31)
	require.EqualValues(t, 8, r31) // pc(0)+8
	pc, _ := c.GetPC()
	require.EqualValues(t, 4, pc) // not taken: straight-line
}

func TestBltzTaken(t *testing.T) {
	c, mem := newTestCPU(t, 32)
	require.Nil(t, c.SetRegister(1, asU32(-1)))
	mem.putInstruction(0, encodeI(0x01, 1, 0x00, 2)) // BLTZ r1,+2 -> target=pcN+8=12
	mem.putInstruction(4, encodeR(0, 0, 0, 0, 0, 0))
	require.Nil(t, c.Step())
	require.Nil(t, c.Step())
	pc, _ := c.GetPC()
	require.EqualValues(t, 12, pc)
}
