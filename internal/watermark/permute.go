/*
NAME
  permute.go

DESCRIPTION
  permute.go derives the tile permutation and slot map from the key
  (spec §4.4, §4.5): a bijection on the 256 tile bit slots, and a
  240-entry, possibly-repeating mapping from tile payload slots to
  codeword bit indices.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

// tilePermutation returns a uniform permutation of 0..tileSlots-1 derived
// from key.
func tilePermutation(key uint64) []int {
	s := newStream(key, tilePermSalt)
	return s.permutation(tileSlots)
}

// slotMap returns codedSlots indices into 0..codeLen-1, drawn with
// replacement, oversampling the codeword within the tile for redundancy
// (spec §4.5, GLOSSARY).
func slotMap(key uint64) []int {
	s := newStream(key, slotMapSalt)
	return s.intsIn(codedSlots, codeLen)
}
