/*
NAME
  api.go

DESCRIPTION
  api.go exposes the pipeline building blocks needed by the alternative
  tiled pipeline (internal/tilewm, spec §4.7), which reuses the per-block
  engine independently inside large image tiles rather than across the
  whole image.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import "gocv.io/x/gocv"

// BuildTileGrid recomputes the message, convolutional code, permutation
// and tile grid for cfg. Exposed so a caller can compute it once and
// reuse it across independently-embedded regions (spec §4.7).
func BuildTileGrid(cfg Config) []byte { return buildTileGrid(cfg) }

// ModulateBlocks applies per-block DCT modulation to every whole 8x8
// block of luma using tile, per spec §4.6. Safe to call on a luma plane
// extracted from any rectangular image region; block indices are always
// relative to the passed-in plane's own origin.
func ModulateBlocks(luma Plane, tile []byte, margin float64) { modulateBlocks(luma, tile, margin) }

// SplitYCrCb converts a BGR Mat into Y, Cr, Cb planes (spec §4.1).
func SplitYCrCb(bgr gocv.Mat) (y, cr, cb Plane, err error) { return splitYCrCb(bgr) }

// MergeYCrCb recombines Y, Cr, Cb planes into a BGR Mat.
func MergeYCrCb(y, cr, cb Plane) (gocv.Mat, error) { return mergeYCrCb(y, cr, cb) }

// ClampU8 clamps a float64 to [0, 255] and rounds to the nearest uint8.
func ClampU8(v float64) uint8 { return clampU8(v) }
