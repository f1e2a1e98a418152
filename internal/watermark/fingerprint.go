/*
NAME
  fingerprint.go

DESCRIPTION
  fingerprint.go computes the template id (spec §6): a 12-hex-char SHA-1
  fingerprint of the input image, used by the detector to locate the
  matching original.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// TemplateID returns the first 12 hex digits of SHA-1 over
// pixelBytes || "|WxH|bgr" (spec §6).
func TemplateID(pixelBytes []byte, w, h int) string {
	h1 := sha1.New()
	h1.Write(pixelBytes)
	fmt.Fprintf(h1, "|%dx%d|bgr", w, h)
	sum := h1.Sum(nil)
	return hex.EncodeToString(sum)[:12]
}
