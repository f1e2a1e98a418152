/*
NAME
  message_test.go

DESCRIPTION
  message_test.go tests plain message construction and the CRC-16/CCITT
  round-trip (spec §8 property 8).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import (
	"testing"

	"github.com/ausocean/watermark/internal/bitio"
)

func TestCRCRoundTrip(t *testing.T) {
	for _, id := range []uint32{0, 1, 42, 1<<20 - 1} {
		for _, key := range []uint64{0, 1, 777} {
			w := bitio.NewWriter()
			nonce := drawNonce(key)
			w.WriteBits(uint64(messageVersion), versionWidth)
			w.WriteBits(uint64(maskID(id)), idWidth)
			w.WriteBits(uint64(nonce), nonceWidth)

			want := crc16CCITT(w.Bytes(), w.BitLen())

			msg := buildMessage(id, key)
			got := uint16(msg & (1<<checksumWidth - 1))

			if got != want {
				t.Errorf("id=%d key=%d: checksum in built message = %#x, want %#x", id, key, got, want)
			}
		}
	}
}

func TestBuildMessageWidth(t *testing.T) {
	msg := buildMessage(5, 99)
	if msg >= 1<<messageWidth {
		t.Fatalf("message %#x exceeds %d-bit width", msg, messageWidth)
	}
}

func TestMaskIDOverflow(t *testing.T) {
	// Scenario E (spec §8): id overflowing the 20-bit field is masked,
	// not rejected.
	got := maskID(1_000_000)
	want := uint32(1_000_000) & idMask
	if got != want {
		t.Fatalf("maskID(1000000) = %d, want %d", got, want)
	}
	if got >= 1<<idWidth {
		t.Fatalf("masked id %d still exceeds %d bits", got, idWidth)
	}
}
