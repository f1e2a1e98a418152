/*
NAME
  message.go

DESCRIPTION
  message.go builds the 48-bit plain message (version, id, nonce, checksum)
  per spec §4.3, and the key-seeded nonce draw per spec §4.4.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import (
	crc "github.com/pasztorpisti/go-crc"

	"github.com/ausocean/watermark/internal/bitio"
)

// messageVersion is the fixed 4-bit format version of the plain message.
const messageVersion = 1

// drawNonce draws the key-seeded nonce byte (spec §4.4).
func drawNonce(key uint64) uint8 {
	s := newStream(key, nonceSalt)
	return uint8(s.uintn(256))
}

// buildMessage packs version, id, nonce and their CRC-16/CCITT-FALSE
// checksum into the 48-bit plain message (spec §4.3), MSB-first, and
// returns it right-justified in a uint64.
func buildMessage(id uint32, key uint64) uint64 {
	id20 := maskID(id)
	nonce := drawNonce(key)

	w := bitio.NewWriter()
	w.WriteBits(uint64(messageVersion), versionWidth)
	w.WriteBits(uint64(id20), idWidth)
	w.WriteBits(uint64(nonce), nonceWidth)

	sum := crc.CRC16CCITTFALSE.CalcBits(w.Bytes(), w.BitLen())
	w.WriteBits(uint64(sum), checksumWidth)

	r := bitio.NewReader(w.Bytes())
	return r.ReadBits(w.BitLen())
}

// crc16CCITT computes the checksum spec §4.3 calls for: CRC-16/CCITT with
// polynomial 0x1021, initial register 0xFFFF, over the given MSB-first
// bit-packed data. Exposed for the CRC round-trip test (spec §8
// property 8).
func crc16CCITT(data []byte, bitLen int) uint16 {
	return uint16(crc.CRC16CCITTFALSE.CalcBits(data, bitLen))
}
