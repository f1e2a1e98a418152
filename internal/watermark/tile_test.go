/*
NAME
  tile_test.go

DESCRIPTION
  tile_test.go tests tile grid composition: every position is written
  exactly once, and the sync word is recoverable via the inverse
  permutation.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import "testing"

func TestBuildTileSyncRecoverable(t *testing.T) {
	key := uint64(55)
	perm := tilePermutation(key)
	slots := slotMap(key)
	coded := encodeConv(0)

	tile := buildTile(coded, perm, slots)
	if len(tile) != tileSlots {
		t.Fatalf("tile length = %d, want %d", len(tile), tileSlots)
	}

	for j := 0; j < syncSlots; j++ {
		want := byte((syncWord >> uint(syncWordWidth-1-j)) & 1)
		if tile[perm[j]] != want {
			t.Errorf("sync bit %d at slot %d = %d, want %d", j, perm[j], tile[perm[j]], want)
		}
	}
}

func TestTileBitModWrap(t *testing.T) {
	tile := make([]byte, tileSlots)
	tile[3*tileSide+5] = 1

	// Block indices that wrap around to (3,5) via mod tileSide.
	if got := tileBit(tile, 5, 3); got != 1 {
		t.Errorf("tileBit(5,3) = %d, want 1", got)
	}
	if got := tileBit(tile, 5+tileSide, 3+2*tileSide); got != 1 {
		t.Errorf("tileBit wrapped = %d, want 1", got)
	}
}
