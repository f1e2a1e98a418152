/*
NAME
  grid.go

DESCRIPTION
  grid.go implements the optional synchronization carrier added to the
  luma plane before block modulation (spec §4.2): a low-amplitude 2D
  cosine grid, phase-seeded from the key, giving a detector a geometric
  reference for resampling/cropping recovery.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import "math"

// gridPhases draws phiX and phiY uniformly from [0, 2*pi) using the
// grid-phase stream derived from key.
func gridPhases(key uint64) (phiX, phiY float64) {
	s := newStream(key, gridPhaseSalt)
	phiX = s.float01() * 2 * math.Pi
	phiY = s.float01() * 2 * math.Pi
	return phiX, phiY
}

// applyGrid adds the synchronization carrier to luma in place, clamping
// and requantizing to 8 bits. If amp <= 0 the plane is left untouched and
// no phase is drawn, matching property 11 (spec §8).
func applyGrid(luma Plane, amp float64, key uint64) {
	if amp <= 0 {
		return
	}
	phiX, phiY := gridPhases(key)
	for y := 0; y < luma.H; y++ {
		for x := 0; x < luma.W; x++ {
			p := (amp / 2) * (math.Cos(2*math.Pi*float64(x)/gridPeriod+phiX) +
				math.Cos(2*math.Pi*float64(y)/gridPeriod+phiY))
			v := float64(luma.At(x, y)) + p
			luma.Set(x, y, clampU8(v))
		}
	}
}
