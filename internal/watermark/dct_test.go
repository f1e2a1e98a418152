/*
NAME
  dct_test.go

DESCRIPTION
  dct_test.go tests the 8x8 type-II DCT/IDCT pair: round-trip accuracy
  and the DC-only basis property.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import (
	"math"
	"testing"
)

func TestDCTRoundTrip(t *testing.T) {
	var f block8
	v := 0.0
	for y := 0; y < blockSize; y++ {
		for x := 0; x < blockSize; x++ {
			f[y][x] = v
			v += 3.1
		}
	}

	c := forwardDCT(f)
	back := inverseDCT(c)

	for y := 0; y < blockSize; y++ {
		for x := 0; x < blockSize; x++ {
			if math.Abs(back[y][x]-f[y][x]) > 1e-9 {
				t.Fatalf("round trip mismatch at (%d,%d): got %v, want %v", y, x, back[y][x], f[y][x])
			}
		}
	}
}

func TestDCTConstantBlockHasOnlyDC(t *testing.T) {
	var f block8
	for y := range f {
		for x := range f[y] {
			f[y][x] = 10
		}
	}
	c := forwardDCT(f)
	for u := 0; u < blockSize; u++ {
		for v := 0; v < blockSize; v++ {
			if u == 0 && v == 0 {
				continue
			}
			if math.Abs(c[u][v]) > 1e-9 {
				t.Fatalf("AC coefficient (%d,%d) = %v, want ~0 for a constant block", u, v, c[u][v])
			}
		}
	}
}
