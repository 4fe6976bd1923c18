package asn1

import "testing"

func TestBooleanRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		enc, err := Marshal(Boolean(v), WithRule(DER))
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", v, err)
		}
		var out Boolean
		rest, err := Unmarshal(enc, &out, WithRule(DER))
		if err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if len(rest) != 0 {
			t.Errorf("expected no remainder, got %d bytes", len(rest))
		}
		if bool(out) != v {
			t.Errorf("got %v, want %v", out, v)
		}
	}
}

func TestBooleanScenario1(t *testing.T) {
	// spec.md §8 concrete scenario 1.
	var b Boolean
	if _, err := Unmarshal([]byte{0x01, 0x01, 0xFF}, &b, WithRule(BER)); err != nil {
		t.Fatalf("BER decode failed: %v", err)
	}
	if !bool(b) {
		t.Errorf("expected true")
	}

	var b2 Boolean
	if _, err := Unmarshal([]byte{0x01, 0x01, 0x01}, &b2, WithRule(DER)); err == nil {
		t.Errorf("expected DER to reject non-canonical BOOLEAN content octet 0x01")
	} else if asErr, ok := err.(*Error); !ok || asErr.Kind != KindInvalidEncoding {
		t.Errorf("expected KindInvalidEncoding, got %v", err)
	}
}
