/*
NAME
  embed.go

DESCRIPTION
  embed.go orchestrates the full embedding pipeline (spec §2): colorspace
  split, synchronization carrier, message construction and coding, tile
  composition, and per-block DCT modulation, reassembling the result into
  a BGR image.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import (
	"runtime"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"golang.org/x/sync/errgroup"
)

// Embed runs the watermark embedding pipeline on bgr (an 8-bit, 3-channel
// BGR image) and returns a new BGR Mat with the identifier embedded. The
// input Mat is not modified. Embed is a pure function of (bgr, cfg): it
// performs no I/O and observes no randomness outside the key-seeded PRNG
// (spec §5, §8 property 2).
//
// Callers own the returned Mat and must Close it.
func Embed(bgr gocv.Mat, cfg Config) (gocv.Mat, error) {
	if bgr.Empty() {
		return gocv.Mat{}, errors.New("watermark: empty input image")
	}

	luma, cr, cb, err := splitYCrCb(bgr)
	if err != nil {
		return gocv.Mat{}, errors.Wrap(err, "watermark: colorspace split")
	}

	applyGrid(luma, cfg.GridAmp, cfg.Key)

	tile := buildTileGrid(cfg)
	modulateBlocks(luma, tile, cfg.Margin)

	out, err := mergeYCrCb(luma, cr, cb)
	if err != nil {
		return gocv.Mat{}, errors.Wrap(err, "watermark: colorspace merge")
	}
	return out, nil
}

// buildTileGrid recomputes the message, convolutional code, permutation,
// slot map and tile grid for cfg (spec §2 step 3-4; all deterministic in
// (key, id)).
func buildTileGrid(cfg Config) []byte {
	msg := buildMessage(cfg.ID, cfg.Key)
	coded := encodeConv(msg)
	perm := tilePermutation(cfg.Key)
	slots := slotMap(cfg.Key)
	return buildTile(coded, perm, slots)
}

// modulateBlocks iterates the luma plane in row-major block order,
// modulating every whole 8x8 block (spec §4.6 edge-block rule: partial
// trailing blocks are skipped). Rows are modulated in parallel; each row
// touches disjoint blocks, and the tile grid is fixed before fan-out, so
// the result is bit-identical to serial execution (spec §5).
func modulateBlocks(luma Plane, tile []byte, margin float64) {
	bw := luma.W / blockSize
	bh := luma.H / blockSize
	if bw == 0 || bh == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for by := 0; by < bh; by++ {
		by := by
		g.Go(func() error {
			y0 := by * blockSize
			for bx := 0; bx < bw; bx++ {
				x0 := bx * blockSize
				bit := tileBit(tile, bx, by)
				modulateOneBlock(luma, x0, y0, bit, margin)
			}
			return nil
		})
	}
	_ = g.Wait() // modulateOneBlock never errors.
}
