/*
NAME
  dct.go

DESCRIPTION
  dct.go implements the 8x8 type-II DCT and its inverse, using the
  orthonormal scaling that matches OpenCV's cv2.dct behavior for 8x8
  tiles (spec §4.6, §9 "Floating-point reproducibility"). The transform
  is hand-rolled rather than delegated to an external DCT routine because
  the spec's golden tests depend on an exactly pinned coefficient scaling
  and floating-point operation order; see DESIGN.md.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import "math"

// dctBasis[u][x] = alpha(u) * cos((2x+1)*u*pi/16), the orthonormal 8-point
// type-II DCT basis. Computed once at package init.
var dctBasis [blockSize][blockSize]float64

func init() {
	const n = blockSize
	for u := 0; u < n; u++ {
		alpha := math.Sqrt(2.0 / n)
		if u == 0 {
			alpha = math.Sqrt(1.0 / n)
		}
		for x := 0; x < n; x++ {
			dctBasis[u][x] = alpha * math.Cos(math.Pi*(2*float64(x)+1)*float64(u)/(2*n))
		}
	}
}

// block8 is an 8x8 block of float64 samples, row-major.
type block8 [blockSize][blockSize]float64

// forwardDCT applies the separable 2D type-II DCT: columns then rows,
// each via the orthonormal basis matrix multiplication C = M * f * M^T.
func forwardDCT(f block8) block8 {
	var tmp, out block8
	// Apply 1D DCT along each column: tmp[u][x] = sum_y M[u][y] * f[y][x].
	for u := 0; u < blockSize; u++ {
		for x := 0; x < blockSize; x++ {
			var sum float64
			for y := 0; y < blockSize; y++ {
				sum += dctBasis[u][y] * f[y][x]
			}
			tmp[u][x] = sum
		}
	}
	// Apply 1D DCT along each row: out[u][v] = sum_x tmp[u][x] * M[v][x].
	for u := 0; u < blockSize; u++ {
		for v := 0; v < blockSize; v++ {
			var sum float64
			for x := 0; x < blockSize; x++ {
				sum += tmp[u][x] * dctBasis[v][x]
			}
			out[u][v] = sum
		}
	}
	return out
}

// inverseDCT applies the inverse of forwardDCT. Since the basis matrix M
// is orthonormal, the inverse is M^T applied on both axes.
func inverseDCT(c block8) block8 {
	var tmp, out block8
	// f[y][v] = sum_u M[u][y] * c[u][v]  (M^T along rows).
	for y := 0; y < blockSize; y++ {
		for v := 0; v < blockSize; v++ {
			var sum float64
			for u := 0; u < blockSize; u++ {
				sum += dctBasis[u][y] * c[u][v]
			}
			tmp[y][v] = sum
		}
	}
	// f[y][x] = sum_v M[v][x] * tmp[y][v]  (M^T along columns).
	for y := 0; y < blockSize; y++ {
		for x := 0; x < blockSize; x++ {
			var sum float64
			for v := 0; v < blockSize; v++ {
				sum += dctBasis[v][x] * tmp[y][v]
			}
			out[y][x] = sum
		}
	}
	return out
}
