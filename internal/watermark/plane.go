/*
NAME
  plane.go

DESCRIPTION
  plane.go defines the in-memory luma/chroma plane representation used by
  the embedding pipeline, and the conversion to and from gocv.Mat at the
  colorspace boundary.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Plane is a single-channel 8-bit pixel plane, row-major.
type Plane struct {
	W, H int
	Pix  []uint8 // len == W*H, row-major, no padding.
}

// NewPlane allocates a zeroed plane of the given dimensions.
func NewPlane(w, h int) Plane {
	return Plane{W: w, H: h, Pix: make([]uint8, w*h)}
}

// At returns the pixel value at (x, y).
func (p Plane) At(x, y int) uint8 { return p.Pix[y*p.W+x] }

// Set writes the pixel value at (x, y).
func (p Plane) Set(x, y int, v uint8) { p.Pix[y*p.W+x] = v }

// planeFromChannel copies a single-channel 8-bit gocv.Mat into a Plane.
func planeFromChannel(m gocv.Mat) (Plane, error) {
	if m.Empty() {
		return Plane{}, errors.New("plane: empty mat")
	}
	rows, cols := m.Rows(), m.Cols()
	p := NewPlane(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p.Set(x, y, m.GetUCharAt(y, x))
		}
	}
	return p, nil
}

// toChannel writes a Plane back into a single-channel 8-bit gocv.Mat.
func (p Plane) toChannel() gocv.Mat {
	m := gocv.NewMatWithSize(p.H, p.W, gocv.MatTypeCV8U)
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			m.SetUCharAt(y, x, p.At(x, y))
		}
	}
	return m
}

// splitYCrCb converts a BGR Mat into Y, Cr, Cb planes using OpenCV's
// BT.601-equivalent conversion (spec §4.1). The chroma planes are
// returned alongside luma so they can be carried through untouched.
func splitYCrCb(bgr gocv.Mat) (y, cr, cb Plane, err error) {
	var ycc gocv.Mat
	ycc = gocv.NewMat()
	defer ycc.Close()
	gocv.CvtColor(bgr, &ycc, gocv.ColorBGRToYCrCb)

	chans := gocv.Split(ycc)
	defer func() {
		for i := range chans {
			chans[i].Close()
		}
	}()
	if len(chans) != 3 {
		return Plane{}, Plane{}, Plane{}, errors.Errorf("plane: expected 3 channels, got %d", len(chans))
	}

	y, err = planeFromChannel(chans[0])
	if err != nil {
		return Plane{}, Plane{}, Plane{}, errors.Wrap(err, "luma channel")
	}
	cr, err = planeFromChannel(chans[1])
	if err != nil {
		return Plane{}, Plane{}, Plane{}, errors.Wrap(err, "cr channel")
	}
	cb, err = planeFromChannel(chans[2])
	if err != nil {
		return Plane{}, Plane{}, Plane{}, errors.Wrap(err, "cb channel")
	}
	return y, cr, cb, nil
}

// mergeYCrCb recombines Y, Cr, Cb planes into a BGR Mat, inverting
// splitYCrCb.
func mergeYCrCb(y, cr, cb Plane) (gocv.Mat, error) {
	yM, crM, cbM := y.toChannel(), cr.toChannel(), cb.toChannel()
	defer yM.Close()
	defer crM.Close()
	defer cbM.Close()

	ycc := gocv.NewMat()
	defer ycc.Close()
	gocv.Merge([]gocv.Mat{yM, crM, cbM}, &ycc)

	bgr := gocv.NewMat()
	gocv.CvtColor(ycc, &bgr, gocv.ColorYCrCbToBGR)
	return bgr, nil
}

// clampU8 clamps a float64 to [0, 255] and rounds to the nearest uint8.
func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
