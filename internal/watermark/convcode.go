/*
NAME
  convcode.go

DESCRIPTION
  convcode.go implements the rate-1/2, constraint-length-7 non-recursive
  convolutional encoder that expands the 48-bit plain message (plus 6 tail
  zero bits) into the 108-bit coded word (spec §4.3).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import "math/bits"

// encodeConv encodes the messageWidth-bit message (right-justified in msg)
// followed by tailBits zero bits, emitting two parity bits per input bit.
// Output length is codeLen (108). See spec §4.3 for the shift-register
// and polynomial definitions.
func encodeConv(msg uint64) []byte {
	out := make([]byte, 0, codeLen)
	var state uint8 // 7-bit shift register.

	const regMask = 1<<constraintLen - 1 // 7-bit register.

	emit := func(b uint8) {
		state = ((state << 1) | b) & regMask
		p1 := bits.OnesCount8(state&genPoly1) & 1
		p2 := bits.OnesCount8(state&genPoly2) & 1
		out = append(out, byte(p1), byte(p2))
	}

	for i := messageWidth - 1; i >= 0; i-- {
		emit(uint8((msg >> uint(i)) & 1))
	}
	for i := 0; i < tailBits; i++ {
		emit(0)
	}
	return out
}
