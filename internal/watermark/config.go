/*
NAME
  config.go

DESCRIPTION
  config.go defines the immutable parameters of the watermark embedding
  pipeline, replacing the reference implementation's global configuration
  singleton with a value threaded explicitly through each embed call.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package watermark implements the DCT-based watermark embedding pipeline:
// message framing with forward error correction, keyed spatial scrambling,
// block-level DCT coefficient modulation with perceptual masking, and a
// synchronization carrier.
package watermark

// Field widths, in bits, of the plain message (spec §3, §4.3).
const (
	versionWidth  = 4
	idWidth       = 20
	nonceWidth    = 8
	checksumWidth = 16
	messageWidth  = versionWidth + idWidth + nonceWidth + checksumWidth // 48
)

// idMask masks an arbitrary integer id down to the 20-bit field width.
// Overflow of the id field is an open question in spec §9; this
// implementation masks rather than rejects (see DESIGN.md).
const idMask = 1<<idWidth - 1

// Convolutional code parameters (spec §4.3).
const (
	constraintLen = 7       // K.
	tailBits      = constraintLen - 1
	genPoly1      = 0o171 // G1.
	genPoly2      = 0o133 // G2.
	codeLen       = 2 * (messageWidth + tailBits) // 108.
)

// Tile and block geometry (spec §3, §4.6).
const (
	blockSize      = 8  // B.
	tileSide       = 16 // T.
	tileSlots      = tileSide * tileSide // T^2 = 256.
	syncSlots      = 16
	codedSlots     = tileSlots - syncSlots // 240.
	syncWord       = 0xA5C3
	syncWordWidth  = 16
)

// Grid (synchronization carrier) parameters (spec §4.2).
const gridPeriod = 32

// Perceptual mask constants (spec §4.6).
const (
	maskVarDivisor = 300.0
	maskBase       = 0.55
	maskScale      = 0.90
)

// DCT coefficient pair positions (spec §3, §4.6): Ca = C[uaRow][vaCol],
// Cb = C[ubRow][vbCol].
const (
	uaRow, vaCol = 2, 3
	ubRow, vbCol = 3, 2
)

// Default values for the optional HTTP form fields (spec §6).
const (
	DefaultMargin    = 14.0
	DefaultGridAmp   = 1.4
	DefaultMaxPixels = 40_000_000
)

// Config holds the parameters of one embed call. All per-request
// derivations (message, permutation, slot map, tile grid) are
// recomputed fresh from Config each call; Config itself carries no
// mutable state and may be shared and reused across calls.
type Config struct {
	// ID is the payload identifier, masked to the low 20 bits.
	ID uint32

	// Key is the 64-bit scrambling key.
	Key uint64

	// Margin is the base DCT coefficient margin (spec §4.6).
	Margin float64

	// GridAmp is the synchronization carrier amplitude in 8-bit units.
	// Zero disables the carrier.
	GridAmp float64
}

// maskID returns id masked to the 20-bit field width.
func maskID(id uint32) uint32 {
	return id & idMask
}
