/*
NAME
  tile.go

DESCRIPTION
  tile.go composes the T x T logical bit grid from the sync word and the
  coded message bits, via the key-derived permutation and slot map
  (spec §4.5).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

// buildTile returns a flat tileSlots-length array of bits (0/1), every
// position written exactly once via perm, a bijection on 0..tileSlots-1.
func buildTile(coded []byte, perm, slots []int) []byte {
	tile := make([]byte, tileSlots)

	for j := 0; j < syncSlots; j++ {
		bit := byte((syncWord >> uint(syncWordWidth-1-j)) & 1)
		tile[perm[j]] = bit
	}
	for s := 0; s < codedSlots; s++ {
		tile[perm[syncSlots+s]] = coded[slots[s]]
	}
	return tile
}

// tileBit looks up the target bit for block index (bx, by), per spec
// §4.6: tile position is (by mod T, bx mod T).
func tileBit(tile []byte, bx, by int) byte {
	row := by % tileSide
	col := bx % tileSide
	return tile[row*tileSide+col]
}
