/*
NAME
  convcode_test.go

DESCRIPTION
  convcode_test.go tests the rate-1/2 convolutional encoder: output
  length, determinism, and a hand-checked short example.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import "testing"

func TestEncodeConvLength(t *testing.T) {
	out := encodeConv(0)
	if len(out) != codeLen {
		t.Fatalf("encodeConv output length = %d, want %d", len(out), codeLen)
	}
}

func TestEncodeConvDeterministic(t *testing.T) {
	a := encodeConv(0xDEADBEEF)
	b := encodeConv(0xDEADBEEF)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("encodeConv not deterministic at bit %d", i)
		}
	}
}

func TestEncodeConvZeroInputIsZero(t *testing.T) {
	// An all-zero input never sets the shift register, so every parity
	// bit popcount is zero and the whole codeword is zero.
	out := encodeConv(0)
	for i, b := range out {
		if b != 0 {
			t.Fatalf("bit %d = %d, want 0 for all-zero input", i, b)
		}
	}
}

func TestEncodeConvFirstBits(t *testing.T) {
	// A single leading 1 bit (message = 1<<(messageWidth-1)) is shifted
	// into the LSB, so the register is 0b0000001 after the first emit; the
	// first parity pair is popcount(0x01 & genPoly1)%2, popcount(0x01 & genPoly2)%2.
	out := encodeConv(1 << (messageWidth - 1))

	wantP1 := byte(onesCount(0x01&genPoly1) % 2)
	wantP2 := byte(onesCount(0x01&genPoly2) % 2)
	if out[0] != wantP1 || out[1] != wantP2 {
		t.Fatalf("first parity pair = (%d,%d), want (%d,%d)", out[0], out[1], wantP1, wantP2)
	}
}

func onesCount(v int) int {
	count := 0
	for v != 0 {
		count += v & 1
		v >>= 1
	}
	return count
}
