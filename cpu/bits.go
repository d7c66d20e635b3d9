package cpu

// reverseWord swaps the byte order of a 32-bit word (bytes 0<->3, 1<->2),
// converting between the simulated processor's big-endian memory view and
// the host's native order.
func reverseWord(w uint32) uint32 {
	return (w&0x000000FF)<<24 |
		(w&0x0000FF00)<<8 |
		(w&0x00FF0000)>>8 |
		(w&0xFF000000)>>24
}

// reverseHalf swaps the byte order of a 16-bit half-word (bytes 0<->1).
func reverseHalf(h uint16) uint16 {
	return (h&0x00FF)<<8 | (h&0xFF00)>>8
}

// signExtend16 sign-extends the low 16 bits of a word to 32 bits.
func signExtend16(v uint16) uint32 {
	return uint32(int32(int16(v)))
}

// signExtend8 sign-extends the low 8 bits of a word to 32 bits.
func signExtend8(v uint8) uint32 {
	return uint32(int32(int8(v)))
}

func fieldOpcode(w uint32) uint32  { return w >> 26 }
func fieldRs(w uint32) uint32      { return (w >> 21) & 0x1F }
func fieldRt(w uint32) uint32      { return (w >> 16) & 0x1F }
func fieldRd(w uint32) uint32      { return (w >> 11) & 0x1F }
func fieldShamt(w uint32) uint32   { return (w >> 6) & 0x1F }
func fieldFunct(w uint32) uint32   { return w & 0x3F }
func fieldImm16(w uint32) uint32   { return signExtend16(uint16(w & 0xFFFF)) }
func fieldImm16Raw(w uint32) uint32 { return w & 0xFFFF }
func fieldTarget26(w uint32) uint32 { return w & 0x03FFFFFF }
