package asn1

import "testing"

func TestIntegerScenario2(t *testing.T) {
	var i Integer
	if _, err := Unmarshal([]byte{0x02, 0x02, 0x01, 0x00}, &i, WithRule(BER)); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if i.Native() != 256 {
		t.Errorf("got %s, want 256", i)
	}

	var i2 Integer
	if _, err := Unmarshal([]byte{0x02, 0x03, 0x00, 0x01, 0x00}, &i2, WithRule(DER)); err == nil {
		t.Errorf("expected DER to reject non-minimal INTEGER encoding")
	}
	var i3 Integer
	if _, err := Unmarshal([]byte{0x02, 0x03, 0x00, 0x01, 0x00}, &i3, WithRule(BER)); err != nil {
		t.Fatalf("BER should accept non-minimal INTEGER: %v", err)
	} else if i3.Native() != 256 {
		t.Errorf("got %s, want 256", i3)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, n := range []int64{0, -1, 127, 128, -128, -129, 1<<31 - 1, -(1 << 31), 1 << 31, -(1<<31 + 1)} {
		in, err := NewInteger(n)
		if err != nil {
			t.Fatalf("NewInteger(%d): %v", n, err)
		}
		enc, err := Marshal(in, WithRule(DER))
		if err != nil {
			t.Fatalf("Marshal(%d): %v", n, err)
		}
		var out Integer
		if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
			t.Fatalf("Unmarshal(%d): %v", n, err)
		}
		if out.Cmp(in) != 0 {
			t.Errorf("round-trip mismatch: got %s, want %d", out, n)
		}
	}
}

func TestIntegerBigRoundTrip(t *testing.T) {
	in, err := NewInteger("123456789012345678901234567890")
	if err != nil {
		t.Fatalf("NewInteger big: %v", err)
	}
	if !in.IsBig() {
		t.Fatalf("expected big representation")
	}
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal big: %v", err)
	}
	var out Integer
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal big: %v", err)
	}
	if out.String() != in.String() {
		t.Errorf("got %s, want %s", out, in)
	}
}
