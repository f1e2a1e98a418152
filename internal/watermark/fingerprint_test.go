/*
NAME
  fingerprint_test.go

DESCRIPTION
  fingerprint_test.go tests the template id fingerprint format and
  stability.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package watermark

import "testing"

func TestTemplateIDLength(t *testing.T) {
	id := TemplateID([]byte{1, 2, 3}, 10, 20)
	if len(id) != 12 {
		t.Fatalf("len(TemplateID) = %d, want 12", len(id))
	}
}

func TestTemplateIDDeterministic(t *testing.T) {
	a := TemplateID([]byte{1, 2, 3}, 10, 20)
	b := TemplateID([]byte{1, 2, 3}, 10, 20)
	if a != b {
		t.Fatalf("TemplateID not deterministic: %s vs %s", a, b)
	}
}

func TestTemplateIDDimensionSensitive(t *testing.T) {
	a := TemplateID([]byte{1, 2, 3}, 10, 20)
	b := TemplateID([]byte{1, 2, 3}, 20, 10)
	if a == b {
		t.Fatalf("TemplateID should depend on WxH order, got same id %s", a)
	}
}
