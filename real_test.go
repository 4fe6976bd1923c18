package asn1

import (
	"math"
	"testing"
)

func TestRealRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 0.5, 100, -100, 1.0 / 3.0, 12345.6789} {
		enc, err := Marshal(Real(f), WithRule(DER))
		if err != nil {
			t.Fatalf("Marshal(%v): %v", f, err)
		}
		var out Real
		if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
			t.Fatalf("Unmarshal(%v): %v", f, err)
		}
		if float64(out) != f {
			t.Errorf("got %v, want %v", float64(out), f)
		}
	}
}

func TestRealSpecialValues(t *testing.T) {
	cases := map[string]float64{
		"+Inf": math.Inf(1),
		"-Inf": math.Inf(-1),
	}
	for name, f := range cases {
		enc, err := Marshal(Real(f), WithRule(DER))
		if err != nil {
			t.Fatalf("Marshal(%s): %v", name, err)
		}
		var out Real
		if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
			t.Fatalf("Unmarshal(%s): %v", name, err)
		}
		if float64(out) != f {
			t.Errorf("%s: got %v, want %v", name, out, f)
		}
	}

	enc, err := Marshal(Real(math.NaN()), WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal(NaN): %v", err)
	}
	var out Real
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal(NaN): %v", err)
	}
	if !math.IsNaN(float64(out)) {
		t.Errorf("got %v, want NaN", out)
	}
}

func TestRealPlusZeroIsEmptyContent(t *testing.T) {
	enc, err := Marshal(Real(0), WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(enc) != 2 || enc[0] != 0x09 || enc[1] != 0x00 {
		t.Errorf("got % X, want 09 00 (REAL, zero-length content)", enc)
	}
}

func TestRealRejectsDecimalCharacterForm(t *testing.T) {
	// first octet with bit 8 clear selects the ISO-6093 character form.
	data := []byte{0x09, 0x04, 0x01, '1', '.', '5'}
	var out Real
	if _, err := Unmarshal(data, &out, WithRule(BER)); err == nil {
		t.Errorf("expected decimal character form to be rejected")
	}
}
