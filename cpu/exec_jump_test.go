package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJalWritesReturnAddressAfterDelaySlot(t *testing.T) {
	c, mem := newTestCPU(t, 32)
	mem.putInstruction(0, encodeJ(0x03, 0x8>>2)) // JAL 0x8
	mem.putInstruction(4, encodeR(0, 0, 0, 0, 0, 0))

	require.Nil(t, c.Step())
	r31, _ := c.GetRegister(31)
	require.EqualValues(t, 8, r31) // pc(0)+8

	require.Nil(t, c.Step())
	pc, _ := c.GetPC()
	require.EqualValues(t, 8, pc)
}

func TestJrTransfersToRegisterValue(t *testing.T) {
	c, mem := newTestCPU(t, 32)
	require.Nil(t, c.SetRegister(1, 16))
	mem.putInstruction(0, encodeR(0, 1, 0, 0, 0, 0x08)) // JR r1
	mem.putInstruction(4, encodeR(0, 0, 0, 0, 0, 0))

	require.Nil(t, c.Step())
	require.Nil(t, c.Step())
	pc, _ := c.GetPC()
	require.EqualValues(t, 16, pc)
}

func TestJrRejectsMisalignedTarget(t *testing.T) {
	c, mem := newTestCPU(t, 32)
	require.Nil(t, c.SetRegister(1, 3))
	mem.putInstruction(0, encodeR(0, 1, 0, 0, 0, 0x08)) // JR r1
	require.Equal(t, ErrInvalidAlignment, c.Step())
	pc, _ := c.GetPC()
	require.EqualValues(t, 0, pc)
}

func TestJalrWritesLinkToExplicitDestination(t *testing.T) {
	c, mem := newTestCPU(t, 32)
	require.Nil(t, c.SetRegister(1, 16))
	mem.putInstruction(0, encodeR(0, 1, 0, 5, 0, 0x09)) // JALR r5,r1
	require.Nil(t, c.Step())
	r5, _ := c.GetRegister(5)
	require.EqualValues(t, 8, r5)
}
