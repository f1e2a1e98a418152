/*
NAME
  block.go

DESCRIPTION
  block.go implements per-block DCT coefficient modulation with a
  perceptual mask derived from block variance (spec §4.6): each 8x8 luma
  block is assigned one target bit and the bit is impressed by adjusting
  a chosen pair of DCT coefficients, scaled by local texture.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import "gonum.org/v1/gonum/stat"

const dcBias = 128.0

// readBlock extracts the block at pixel origin (x0, y0) from luma, bias-
// subtracted to center samples around zero before the DCT (spec §4.6).
func readBlock(luma Plane, x0, y0 int) block8 {
	var b block8
	for dy := 0; dy < blockSize; dy++ {
		for dx := 0; dx < blockSize; dx++ {
			b[dy][dx] = float64(luma.At(x0+dx, y0+dy)) - dcBias
		}
	}
	return b
}

// writeBlock writes a bias-restored, clamped, requantized block back into
// luma at pixel origin (x0, y0).
func writeBlock(luma Plane, x0, y0 int, b block8) {
	for dy := 0; dy < blockSize; dy++ {
		for dx := 0; dx < blockSize; dx++ {
			luma.Set(x0+dx, y0+dy, clampU8(b[dy][dx]+dcBias))
		}
	}
}

// blockVariance returns the population variance of the raw (un-biased)
// 8-bit samples of the block at pixel origin (x0, y0).
func blockVariance(luma Plane, x0, y0 int) float64 {
	samples := make([]float64, 0, blockSize*blockSize)
	for dy := 0; dy < blockSize; dy++ {
		for dx := 0; dx < blockSize; dx++ {
			samples = append(samples, float64(luma.At(x0+dx, y0+dy)))
		}
	}
	return stat.PopVariance(samples, nil)
}

// effectiveMargin computes m_eff from the base margin and block variance
// v, per spec §4.6's perceptual mask.
func effectiveMargin(margin, v float64) float64 {
	m := v / (v + maskVarDivisor)
	if m < 0 {
		m = 0
	}
	if m > 1 {
		m = 1
	}
	return margin * (maskBase + maskScale*m)
}

// modulateBlock enforces the sign relation between Ca and Cb for the
// given target bit, with margin mEff, splitting any deficit evenly
// between the two coefficients (spec §4.6).
func modulateBlock(c block8, bit byte, mEff float64) block8 {
	ca, cb := c[uaRow][vaCol], c[ubRow][vbCol]

	if bit == 1 {
		if ca >= cb+mEff {
			return c
		}
		d := (cb + mEff) - ca
		c[uaRow][vaCol] = ca + d/2
		c[ubRow][vbCol] = cb - d/2
		return c
	}

	if cb >= ca+mEff {
		return c
	}
	d := (ca + mEff) - cb
	c[ubRow][vbCol] = cb + d/2
	c[uaRow][vaCol] = ca - d/2
	return c
}

// modulateOneBlock runs the full per-block pipeline (DCT, perceptual
// mask, coefficient modulation, inverse DCT) and writes the result back
// into luma at pixel origin (x0, y0) for the given target bit.
func modulateOneBlock(luma Plane, x0, y0 int, bit byte, margin float64) {
	v := blockVariance(luma, x0, y0)
	mEff := effectiveMargin(margin, v)

	f := readBlock(luma, x0, y0)
	c := forwardDCT(f)
	c = modulateBlock(c, bit, mEff)
	out := inverseDCT(c)
	writeBlock(luma, x0, y0, out)
}
