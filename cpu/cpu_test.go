package cpu

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// testMem is a minimal in-package Memory collaborator: a flat byte slice
// with bounds checking, kept here rather than importing the mem package so
// cpu's tests have no dependency on it.
type testMem struct {
	bytes []byte
}

func newTestMem(size int) *testMem {
	return &testMem{bytes: make([]byte, size)}
}

func (m *testMem) Read(addr uint32, length int, dest []byte) error {
	if int(addr)+length > len(m.bytes) {
		return ErrInvalidAddress
	}
	copy(dest[:length], m.bytes[addr:int(addr)+length])
	return nil
}

func (m *testMem) Write(addr uint32, length int, src []byte) error {
	if int(addr)+length > len(m.bytes) {
		return ErrInvalidAddress
	}
	copy(m.bytes[addr:int(addr)+length], src[:length])
	return nil
}

// putInstruction stores word big-endian at addr, mirroring how a real
// loader deposits a MIPS-I image.
func (m *testMem) putInstruction(addr uint32, word uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], reverseWord(word))
	copy(m.bytes[addr:], buf[:])
}

func encodeR(opcode, rs, rt, rd, shamt, funct uint32) uint32 {
	return opcode<<26 | rs<<21 | rt<<16 | rd<<11 | shamt<<6 | funct
}

func encodeI(opcode, rs, rt, imm uint32) uint32 {
	return opcode<<26 | rs<<21 | rt<<16 | (imm & 0xFFFF)
}

func encodeJ(opcode, target uint32) uint32 {
	return opcode<<26 | (target & 0x03FFFFFF)
}

// asU32 reinterprets a signed 32-bit value as its unsigned bit pattern,
// via a runtime conversion since Go forbids converting a negative
// constant to an unsigned type at compile time.
func asU32(v int32) uint32 {
	return uint32(v)
}

func newTestCPU(t *testing.T, memSize int) (*CPU, *testMem) {
	mem := newTestMem(memSize)
	c, fault := Create(mem)
	require.Nil(t, fault)
	return c, mem
}

func TestCreateRejectsNilMemory(t *testing.T) {
	c, fault := Create(nil)
	require.Nil(t, c)
	require.Equal(t, ErrInvalidArgument, fault)
}

func TestRegisterZeroHardWired(t *testing.T) {
	c, _ := newTestCPU(t, 64)
	require.Nil(t, c.SetRegister(0, 0xDEADBEEF))
	v, fault := c.GetRegister(0)
	require.Nil(t, fault)
	require.EqualValues(t, 0, v)
}

func TestSetRegisterOutOfRange(t *testing.T) {
	c, _ := newTestCPU(t, 64)
	require.Equal(t, ErrInvalidArgument, c.SetRegister(32, 1))
	_, fault := c.GetRegister(32)
	require.Equal(t, ErrInvalidArgument, fault)
}

func TestResetPreservesCollaborators(t *testing.T) {
	c, mem := newTestCPU(t, 64)
	require.Nil(t, c.SetRegister(5, 42))
	require.Nil(t, c.SetDebugLevel(2, nil))
	require.Nil(t, c.Reset())
	v, _ := c.GetRegister(5)
	require.EqualValues(t, 0, v)
	require.Equal(t, mem, c.mem)
	require.EqualValues(t, 2, c.debugLevel)
}

func TestSetPCEstablishesSuccessor(t *testing.T) {
	c, _ := newTestCPU(t, 64)
	require.Nil(t, c.SetPC(0x100))
	pc, _ := c.GetPC()
	require.EqualValues(t, 0x100, pc)
	require.EqualValues(t, 0x104, c.pcN)
}
