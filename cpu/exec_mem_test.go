package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLwSwRoundTripBigEndian(t *testing.T) {
	c, mem := newTestCPU(t, 16)
	require.Nil(t, c.SetRegister(1, 0))
	require.Nil(t, c.SetRegister(2, 0x11223344))
	mem.putInstruction(0, encodeI(0x2B, 1, 2, 8)) // SW r2,8(r1)
	require.Nil(t, c.Step())
	require.EqualValues(t, []byte{0x11, 0x22, 0x33, 0x44}, mem.bytes[8:12])
}

func TestLhAlignmentFault(t *testing.T) {
	c, mem := newTestCPU(t, 16)
	require.Nil(t, c.SetRegister(1, 1))
	mem.putInstruction(0, encodeI(0x21, 1, 2, 0)) // LH r2,0(r1)
	require.Equal(t, ErrInvalidAlignment, c.Step())
	r2, _ := c.GetRegister(2)
	require.EqualValues(t, 0, r2)
}

func TestLhSignExtendsLhuZeroExtends(t *testing.T) {
	c, mem := newTestCPU(t, 16)
	mem.bytes[8] = 0xFF
	mem.bytes[9] = 0xFE
	require.Nil(t, c.SetRegister(1, 8))
	mem.putInstruction(0, encodeI(0x21, 1, 2, 0)) // LH r2,0(r1)
	mem.putInstruction(4, encodeI(0x25, 1, 3, 0)) // LHU r3,0(r1)
	require.Nil(t, c.Step())
	require.Nil(t, c.Step())
	r2, _ := c.GetRegister(2)
	r3, _ := c.GetRegister(3)
	require.EqualValues(t, 0xFFFFFFFE, r2)
	require.EqualValues(t, 0x0000FFFE, r3)
}

func TestLwlLwrMergeSimplifiedWindow(t *testing.T) {
	c, mem := newTestCPU(t, 16)
	mem.bytes[4] = 0xAA
	mem.bytes[5] = 0xBB
	require.Nil(t, c.SetRegister(1, 4))
	require.Nil(t, c.SetRegister(2, 0x000000FF))
	mem.putInstruction(0, encodeI(0x22, 1, 2, 0)) // LWL r2,0(r1)
	require.Nil(t, c.Step())
	r2, _ := c.GetRegister(2)
	require.EqualValues(t, 0xAABB00FF, r2)
}

func TestSwrWritesLowerHalfAtOffsetMinusOne(t *testing.T) {
	c, mem := newTestCPU(t, 16)
	require.Nil(t, c.SetRegister(1, 4))
	require.Nil(t, c.SetRegister(2, 0x1234ABCD))
	mem.putInstruction(0, encodeI(0x2E, 1, 2, 0)) // SWR r2,0(r1)
	require.Nil(t, c.Step())
	require.EqualValues(t, []byte{0xAB, 0xCD}, mem.bytes[3:5])
}
